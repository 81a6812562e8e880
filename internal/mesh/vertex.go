package mesh

import (
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

// Vertex stores the position, texture coordinate, and normal associated
// with one point of a mesh. Normals are unit length in the mesh's local
// frame.
type Vertex struct {
	Position mathutil.Point
	UV       colorspace.TextureCoordinate
	Normal   mathutil.Vector
}

// Triangle holds the indices of the three vertices making up a triangle.
// Winding is counter-clockwise as seen by a camera looking at the front
// face.
type Triangle struct {
	A, B, C int
}

// Fragment is an ordered set of triangles sharing one material.
type Fragment struct {
	Triangles []Triangle
	Material  *colorspace.Material
}

// NewFragment constructs a Fragment from its triangles and material.
func NewFragment(triangles []Triangle, material *colorspace.Material) Fragment {
	return Fragment{Triangles: triangles, Material: material}
}
