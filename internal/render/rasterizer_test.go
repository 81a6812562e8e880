package render

import (
	"testing"

	"github.com/drsaluml/ashkalgo/internal/clip"
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/raster"
)

func solidVertex(x, y, z float32, term lighting.ShadingTerm) clip.ShadedVertex {
	return clip.ShadedVertex{Position: mathutil.NewPoint(x, y, z), Shading: term}
}

// Scenario 2 from the literal end-to-end test list: a full-white ambient
// term, no directional contribution, a solid-red material.
func TestSingleTriangleScreenFill(t *testing.T) {
	background := colorspace.NewColor(0, 0, 0, 255)
	fb := raster.NewFrameBuffer(4, 4, background)
	depth := raster.NewDepthBuffer(4, 4)

	term := lighting.ShadingTerm{Color: colorspace.NewColor(255, 255, 255, 255), Intensity: 1}
	tri := [3]clip.ShadedVertex{
		solidVertex(-2, 2, -2, term),
		solidVertex(2, 2, -2, term),
		solidVertex(0, -2, -2, term),
	}
	material := colorspace.NewSolidSampler(colorspace.NewColor(255, 0, 0, 255))

	Triangle(tri, material, fb, depth)

	var sawRed, sawBackground bool
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := fb.Get(x, y)
			switch c {
			case colorspace.NewColor(255, 0, 0, 255):
				sawRed = true
			case background:
				sawBackground = true
			}
		}
	}
	if !sawRed {
		t.Fatalf("expected at least one pixel shaded red inside the triangle")
	}
	if !sawBackground {
		t.Fatalf("expected at least one pixel left at background outside the triangle")
	}
}

// Scenario 3: two coincident full-screen triangles at different depths;
// the closer one must win regardless of draw order.
func TestDepthOrderingClosestWins(t *testing.T) {
	fb := raster.NewFrameBuffer(4, 4, colorspace.NewColor(0, 0, 0, 255))
	depth := raster.NewDepthBuffer(4, 4)

	white := lighting.ShadingTerm{Color: colorspace.NewColor(255, 255, 255, 255), Intensity: 1}
	red := colorspace.NewSolidSampler(colorspace.NewColor(255, 0, 0, 255))
	green := colorspace.NewSolidSampler(colorspace.NewColor(0, 255, 0, 255))

	farTri := [3]clip.ShadedVertex{
		solidVertex(-10, 10, -3, white),
		solidVertex(10, 10, -3, white),
		solidVertex(0, -10, -3, white),
	}
	nearTri := [3]clip.ShadedVertex{
		solidVertex(-10, 10, -2, white),
		solidVertex(10, 10, -2, white),
		solidVertex(0, -10, -2, white),
	}

	// Draw the far (green) triangle first, then the near (red) one: the
	// depth test must still let the nearer triangle win.
	Triangle(farTri, green, fb, depth)
	Triangle(nearTri, red, fb, depth)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := fb.Get(x, y); c.G != 0 {
				t.Fatalf("expected every pixel to be won by the closer (red) triangle, got %v at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestDepthOrderingIsOrderIndependent(t *testing.T) {
	fb := raster.NewFrameBuffer(4, 4, colorspace.NewColor(0, 0, 0, 255))
	depth := raster.NewDepthBuffer(4, 4)

	white := lighting.ShadingTerm{Color: colorspace.NewColor(255, 255, 255, 255), Intensity: 1}
	red := colorspace.NewSolidSampler(colorspace.NewColor(255, 0, 0, 255))
	green := colorspace.NewSolidSampler(colorspace.NewColor(0, 255, 0, 255))

	farTri := [3]clip.ShadedVertex{
		solidVertex(-10, 10, -3, white),
		solidVertex(10, 10, -3, white),
		solidVertex(0, -10, -3, white),
	}
	nearTri := [3]clip.ShadedVertex{
		solidVertex(-10, 10, -2, white),
		solidVertex(10, 10, -2, white),
		solidVertex(0, -10, -2, white),
	}

	// This time draw near first, far second: result must be identical.
	Triangle(nearTri, red, fb, depth)
	Triangle(farTri, green, fb, depth)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := fb.Get(x, y); c.G != 0 {
				t.Fatalf("expected draw order not to affect the depth-tested winner, got %v at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestBackFacingTriangleRendersNothing(t *testing.T) {
	fb := raster.NewFrameBuffer(4, 4, colorspace.NewColor(1, 2, 3, 255))
	depth := raster.NewDepthBuffer(4, 4)
	white := lighting.ShadingTerm{Color: colorspace.NewColor(255, 255, 255, 255), Intensity: 1}

	// Reverse winding relative to the screen-fill test above.
	tri := [3]clip.ShadedVertex{
		solidVertex(0, -2, -2, white),
		solidVertex(2, 2, -2, white),
		solidVertex(-2, 2, -2, white),
	}
	material := colorspace.NewSolidSampler(colorspace.NewColor(255, 0, 0, 255))
	Triangle(tri, material, fb, depth)

	if fb.Get(1, 1) != colorspace.NewColor(1, 2, 3, 255) {
		t.Fatalf("expected a back-facing triangle to leave the framebuffer untouched")
	}
}

// Scenario 6: perspective-correct UV interpolation must differ from naive
// screen-space-linear interpolation whenever a triangle's vertices vary in
// depth. Exercises the same alpha/beta/gamma weights the rasterizer
// computes, comparing the 1/z-weighted result against a plain linear one.
func TestPerspectiveCorrectUVDiffersFromLinear(t *testing.T) {
	width, height := 8, 8

	tri := [3]clip.ShadedVertex{
		{Position: mathutil.NewPoint(-4, 2, -2), UV: colorspace.TextureCoordinate{U: 0, V: 0}},
		{Position: mathutil.NewPoint(4, 2, -8), UV: colorspace.TextureCoordinate{U: 1, V: 0}},
		{Position: mathutil.NewPoint(0, -2, -5), UV: colorspace.TextureCoordinate{U: 0.5, V: 1}},
	}

	a := makeScreenVertex(tri[0], width, height)
	b := makeScreenVertex(tri[1], width, height)
	c := makeScreenVertex(tri[2], width, height)

	var anyDiffers bool
	for py := 0; py < height; py++ {
		sy := float32(py) + 0.5
		for px := 0; px < width; px++ {
			sx := float32(px) + 0.5

			w0 := edgeFunction(b.x, b.y, c.x, c.y, sx, sy)
			w1 := edgeFunction(c.x, c.y, a.x, a.y, sx, sy)
			w2 := edgeFunction(a.x, a.y, b.x, b.y, sx, sy)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			s := w0 + w1 + w2
			if s == 0 {
				continue
			}
			alpha, beta, gamma := w0/s, w1/s, w2/s

			invZ := alpha*a.invZ + beta*b.invZ + gamma*c.invZ
			perspectiveU := (alpha*a.uOverZ + beta*b.uOverZ + gamma*c.uOverZ) / invZ
			linearU := alpha*tri[0].UV.U + beta*tri[1].UV.U + gamma*tri[2].UV.U

			if diff := perspectiveU - linearU; diff > 1e-3 || diff < -1e-3 {
				anyDiffers = true
			}
		}
	}

	if !anyDiffers {
		t.Fatalf("expected perspective-correct and naive-linear UV to diverge somewhere on a depth-varying triangle")
	}
}
