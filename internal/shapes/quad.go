package shapes

import (
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
)

// Quad builds a single-sided flat quad of the given half-width/half-height
// in the XY plane, facing -Z, with one material.
func Quad(halfWidth, halfHeight float32, material *colorspace.Material) mesh.Mesh {
	normal := mathutil.NewVector(0, 0, -1)
	vertices := []mesh.Vertex{
		{Position: mathutil.NewPoint(-halfWidth, -halfHeight, 0), UV: colorspace.TextureCoordinate{U: 0, V: 0}, Normal: normal},
		{Position: mathutil.NewPoint(halfWidth, -halfHeight, 0), UV: colorspace.TextureCoordinate{U: 1, V: 0}, Normal: normal},
		{Position: mathutil.NewPoint(halfWidth, halfHeight, 0), UV: colorspace.TextureCoordinate{U: 1, V: 1}, Normal: normal},
		{Position: mathutil.NewPoint(-halfWidth, halfHeight, 0), UV: colorspace.TextureCoordinate{U: 0, V: 1}, Normal: normal},
	}
	triangles := []mesh.Triangle{
		{A: 0, B: 1, C: 2},
		{A: 0, B: 2, C: 3},
	}
	fragment := mesh.NewFragment(triangles, material)
	return mesh.NewMesh(vertices, mesh.NewFragmentNode(fragment))
}
