package render

import (
	"github.com/drsaluml/ashkalgo/internal/clip"
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/raster"
)

// screenVertex is a shaded vertex together with its projected screen
// position and perspective-correction terms, computed once per triangle
// setup and reused for every pixel in the inner loop.
type screenVertex struct {
	x, y    float32
	invZ    float32
	uOverZ  float32
	vOverZ  float32
	shading lighting.ShadingTerm
}

func makeScreenVertex(v clip.ShadedVertex, width, height int) screenVertex {
	x, y := project(v.Position, width, height)
	// -1 biases inv_z strictly positive for the post-clip z range (z < -1).
	invZ := -1 / (v.Position.Z - 1)
	return screenVertex{
		x: x, y: y,
		invZ:    invZ,
		uOverZ:  v.UV.U * invZ,
		vOverZ:  v.UV.V * invZ,
		shading: v.Shading,
	}
}

// Triangle rasterizes one clipped, shaded triangle, given in view space and
// projected to screen space here, into fb and depth, sampling color
// through material.
func Triangle(tri [3]clip.ShadedVertex, material colorspace.Sampler, fb *raster.FrameBuffer, depth *raster.DepthBuffer) {
	width, height := fb.Width(), fb.Height()

	a := makeScreenVertex(tri[0], width, height)
	b := makeScreenVertex(tri[1], width, height)
	c := makeScreenVertex(tri[2], width, height)

	minX, maxX, minY, maxY := boundingRect(a, b, c, width, height)
	if minX > maxX || minY > maxY {
		return
	}

	for py := minY; py <= maxY; py++ {
		sy := float32(py) + 0.5
		for px := minX; px <= maxX; px++ {
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
			z := 1 / invZ

			if z >= depth.Get(px, py) {
				continue
			}

			u := (alpha*a.uOverZ + beta*b.uOverZ + gamma*c.uOverZ) / invZ
			v := (alpha*a.vOverZ + beta*b.vOverZ + gamma*c.vOverZ) / invZ

			texel := material.Sample(colorspace.TextureCoordinate{U: u, V: v})
			shading := interpolateShading(a.shading, b.shading, c.shading, alpha, beta, gamma)

			fb.Set(px, py, lighting.Apply(shading, texel))
			depth.Set(px, py, z)
		}
	}
}

func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func boundingRect(a, b, c screenVertex, width, height int) (minX, maxX, minY, maxY int) {
	minXf := minOf3(a.x, b.x, c.x)
	maxXf := maxOf3(a.x, b.x, c.x)
	minYf := minOf3(a.y, b.y, c.y)
	maxYf := maxOf3(a.y, b.y, c.y)

	minX = clampInt(int(minXf), 0, width-1)
	maxX = clampInt(int(maxXf), 0, width-1)
	minY = clampInt(int(minYf), 0, height-1)
	maxY = clampInt(int(maxYf), 0, height-1)
	return minX, maxX, minY, maxY
}

func interpolateShading(a, b, c lighting.ShadingTerm, alpha, beta, gamma float32) lighting.ShadingTerm {
	return lighting.ShadingTerm{
		Color: colorspace.Color{
			R: lerpChannel8(a.Color.R, b.Color.R, c.Color.R, alpha, beta, gamma),
			G: lerpChannel8(a.Color.G, b.Color.G, c.Color.G, alpha, beta, gamma),
			B: lerpChannel8(a.Color.B, b.Color.B, c.Color.B, alpha, beta, gamma),
			A: lerpChannel8(a.Color.A, b.Color.A, c.Color.A, alpha, beta, gamma),
		},
		Intensity: alpha*a.Intensity + beta*b.Intensity + gamma*c.Intensity,
	}
}

func lerpChannel8(a, b, c uint8, alpha, beta, gamma float32) uint8 {
	v := alpha*float32(a) + beta*float32(b) + gamma*float32(c)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
