package render

import (
	"testing"

	"github.com/drsaluml/ashkalgo/internal/camera"
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
	"github.com/drsaluml/ashkalgo/internal/raster"
	"github.com/drsaluml/ashkalgo/internal/scene"
)

// Scenario 1: an empty scene leaves every pixel at background.
func TestEmptySceneProducesOnlyBackground(t *testing.T) {
	background := colorspace.NewColor(20, 30, 40, 255)
	fb := raster.NewFrameBuffer(4, 4, background)
	depth := raster.NewDepthBuffer(4, 4)

	s := scene.New(lighting.NewAmbientLight(colorspace.NewColor(255, 255, 255, 255), 1), lighting.DirectionalLight{})
	Render(s, camera.New(), fb, depth)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := fb.Get(x, y); c != background {
				t.Fatalf("expected background at (%d,%d), got %v", x, y, c)
			}
		}
	}
}

func TestRenderDrawsAFragmentThroughTheFullPipeline(t *testing.T) {
	background := colorspace.NewColor(0, 0, 0, 255)
	fb := raster.NewFrameBuffer(8, 8, background)
	depth := raster.NewDepthBuffer(8, 8)

	vertices := []mesh.Vertex{
		{Position: mathutil.NewPoint(-2, 2, 5), Normal: mathutil.NewVector(0, 0, -1)},
		{Position: mathutil.NewPoint(2, 2, 5), Normal: mathutil.NewVector(0, 0, -1)},
		{Position: mathutil.NewPoint(0, -2, 5), Normal: mathutil.NewVector(0, 0, -1)},
	}
	material := colorspace.NewMaterial(colorspace.NewSolidSampler(colorspace.NewColor(0, 200, 0, 255)))
	fragment := mesh.NewFragment([]mesh.Triangle{{A: 0, B: 1, C: 2}}, material)
	m := mesh.NewMesh(vertices, mesh.NewFragmentNode(fragment))

	model := scene.NewModel(m)
	s := scene.New(lighting.NewAmbientLight(colorspace.NewColor(255, 255, 255, 255), 1), lighting.DirectionalLight{})
	s.Add(model)

	Render(s, camera.New(), fb, depth)

	var sawGreen bool
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if fb.Get(x, y).G == 200 {
				sawGreen = true
			}
		}
	}
	if !sawGreen {
		t.Fatalf("expected the fragment's triangle to shade at least one pixel green")
	}
}
