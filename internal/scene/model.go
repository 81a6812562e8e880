package scene

import "github.com/drsaluml/ashkalgo/internal/mesh"

// Model pairs an immutable Mesh with a mutable per-instance Transformation
// tree mirroring its node shape.
type Model struct {
	mesh           mesh.Mesh
	transformation *Transformation
}

// NewModel constructs a Model over m, with every node's transformation
// slot initialized to the identity matrix.
func NewModel(m mesh.Mesh) *Model {
	return &Model{
		mesh:           m,
		transformation: NewTransformation(m.Root),
	}
}

// Mesh returns the model's underlying mesh.
func (m *Model) Mesh() *mesh.Mesh {
	return &m.mesh
}

// Transformation returns the model's transformation tree.
func (m *Model) Transformation() *Transformation {
	return m.transformation
}
