// Package shapes builds small procedural meshes used by the demo scene and
// scene files, so the renderer can be exercised end to end without needing
// a mesh-loading pipeline for on-disk formats, which is out of scope for
// the core.
package shapes

import (
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
)

// Cube builds an axis-aligned cube of the given half-extent, centered on
// the origin, with one material applied to every face.
func Cube(halfExtent float32, material *colorspace.Material) mesh.Mesh {
	corner := func(x, y, z float32) mathutil.Point {
		return mathutil.NewPoint(x*halfExtent, y*halfExtent, z*halfExtent)
	}

	type face struct {
		normal                 mathutil.Vector
		a, b, c, d             mathutil.Point
		ua, ub, uc, ud         colorspace.TextureCoordinate
	}

	uv00 := colorspace.TextureCoordinate{U: 0, V: 0}
	uv10 := colorspace.TextureCoordinate{U: 1, V: 0}
	uv11 := colorspace.TextureCoordinate{U: 1, V: 1}
	uv01 := colorspace.TextureCoordinate{U: 0, V: 1}

	faces := []face{
		{mathutil.NewVector(0, 0, -1), corner(-1, -1, -1), corner(1, -1, -1), corner(1, 1, -1), corner(-1, 1, -1), uv00, uv10, uv11, uv01},
		{mathutil.NewVector(0, 0, 1), corner(1, -1, 1), corner(-1, -1, 1), corner(-1, 1, 1), corner(1, 1, 1), uv00, uv10, uv11, uv01},
		{mathutil.NewVector(-1, 0, 0), corner(-1, -1, 1), corner(-1, -1, -1), corner(-1, 1, -1), corner(-1, 1, 1), uv00, uv10, uv11, uv01},
		{mathutil.NewVector(1, 0, 0), corner(1, -1, -1), corner(1, -1, 1), corner(1, 1, 1), corner(1, 1, -1), uv00, uv10, uv11, uv01},
		{mathutil.NewVector(0, 1, 0), corner(-1, 1, -1), corner(1, 1, -1), corner(1, 1, 1), corner(-1, 1, 1), uv00, uv10, uv11, uv01},
		{mathutil.NewVector(0, -1, 0), corner(-1, -1, 1), corner(1, -1, 1), corner(1, -1, -1), corner(-1, -1, -1), uv00, uv10, uv11, uv01},
	}

	var vertices []mesh.Vertex
	var triangles []mesh.Triangle
	for _, f := range faces {
		base := len(vertices)
		vertices = append(vertices,
			mesh.Vertex{Position: f.a, UV: f.ua, Normal: f.normal},
			mesh.Vertex{Position: f.b, UV: f.ub, Normal: f.normal},
			mesh.Vertex{Position: f.c, UV: f.uc, Normal: f.normal},
			mesh.Vertex{Position: f.d, UV: f.ud, Normal: f.normal},
		)
		triangles = append(triangles,
			mesh.Triangle{A: base, B: base + 1, C: base + 2},
			mesh.Triangle{A: base, B: base + 2, C: base + 3},
		)
	}

	fragment := mesh.NewFragment(triangles, material)
	return mesh.NewMesh(vertices, mesh.NewFragmentNode(fragment))
}
