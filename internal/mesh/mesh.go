package mesh

// Mesh is a complete piece of renderable geometry: a shared vertex pool and
// a tree of nodes referencing it. The tree shape is fixed at construction;
// per-instance placement lives in a parallel transformation structure
// (internal/scene), not in the Mesh itself.
type Mesh struct {
	Vertices []Vertex
	Root     MeshNode
}

// NewMesh constructs a Mesh from its vertex pool and root node.
func NewMesh(vertices []Vertex, root MeshNode) Mesh {
	return Mesh{Vertices: vertices, Root: root}
}

// Triangle resolves the three vertices referenced by t.
func (m Mesh) Triangle(t Triangle) (a, b, c Vertex) {
	return m.Vertices[t.A], m.Vertices[t.B], m.Vertices[t.C]
}
