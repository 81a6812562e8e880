package render

import (
	"github.com/drsaluml/ashkalgo/internal/camera"
	"github.com/drsaluml/ashkalgo/internal/clip"
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
	"github.com/drsaluml/ashkalgo/internal/raster"
	"github.com/drsaluml/ashkalgo/internal/scene"
)

// Render walks every model in the scene, transforms and lights each
// triangle, clips it against the near plane, and rasterizes the surviving
// triangles into fb and depth. It is synchronous: it returns only once
// every pixel touched by the scene has been written.
func Render(s *scene.Scene, cam camera.Camera, fb *raster.FrameBuffer, depth *raster.DepthBuffer) {
	ambient := s.AmbientLight()
	directional := s.DirectionalLight()

	for _, model := range s.Models() {
		walk(model.Mesh().Root, model.Transformation(), nil, mathutil.Identity(), cam, ambient, directional, model.Mesh(), fb, depth)
	}
}

func walk(
	node mesh.MeshNode,
	transformation *scene.Transformation,
	path mesh.NodePath,
	accumulated mathutil.Matrix,
	cam camera.Camera,
	ambient lighting.AmbientLight,
	directional lighting.DirectionalLight,
	m *mesh.Mesh,
	fb *raster.FrameBuffer,
	depth *raster.DepthBuffer,
) {
	local := transformation.Get(path)
	accumulated = mathutil.MatrixMul(accumulated, local)

	switch node.Kind {
	case mesh.NodeChunk:
		for i, child := range node.Children {
			childPath := append(append(mesh.NodePath{}, path...), i)
			walk(child, transformation, childPath, accumulated, cam, ambient, directional, m, fb, depth)
		}
	case mesh.NodeFragment:
		drawFragment(node.Fragment, accumulated, cam, ambient, directional, m, fb, depth)
	}
}

func drawFragment(
	fragment mesh.Fragment,
	accumulated mathutil.Matrix,
	cam camera.Camera,
	ambient lighting.AmbientLight,
	directional lighting.DirectionalLight,
	m *mesh.Mesh,
	fb *raster.FrameBuffer,
	depth *raster.DepthBuffer,
) {
	var sampler colorspace.Sampler
	if fragment.Material != nil {
		sampler = fragment.Material.Diffuse()
	} else {
		sampler = colorspace.NewSolidSampler(colorspace.NewColor(255, 255, 255, 255))
	}

	for _, tri := range fragment.Triangles {
		av, bv, cv := m.Triangle(tri)

		a := shade(av, accumulated, cam, ambient, directional)
		b := shade(bv, accumulated, cam, ambient, directional)
		c := shade(cv, accumulated, cam, ambient, directional)

		clipped := clip.Triangle(a, b, c)
		for _, t := range clip.Fan(clipped) {
			Triangle(t, sampler, fb, depth)
		}
	}
}
