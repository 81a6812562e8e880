package scene

import (
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
)

// Transformation mirrors a mesh's node tree, holding one local matrix per
// node. Nodes are addressed by mesh.NodePath (parent index + child index)
// rather than by node identity, so lookups are plain array indexing
// instead of pointer-keyed hashing.
type Transformation struct {
	root transformNode
}

type transformNode struct {
	matrix   mathutil.Matrix
	children []transformNode
}

// NewTransformation builds a Transformation tree with the same shape as
// root, every slot initialized to the identity matrix.
func NewTransformation(root mesh.MeshNode) *Transformation {
	return &Transformation{root: newTransformNode(root)}
}

func newTransformNode(n mesh.MeshNode) transformNode {
	t := transformNode{matrix: mathutil.Identity()}
	if n.Kind == mesh.NodeChunk {
		t.children = make([]transformNode, len(n.Children))
		for i, c := range n.Children {
			t.children[i] = newTransformNode(c)
		}
	}
	return t
}

func (t *Transformation) navigate(path mesh.NodePath) *transformNode {
	node := &t.root
	for _, idx := range path {
		node = &node.children[idx]
	}
	return node
}

// Apply pre-multiplies m onto the slot at path: slot = m * slot.
func (t *Transformation) Apply(m mathutil.Matrix, path mesh.NodePath) {
	node := t.navigate(path)
	node.matrix = mathutil.MatrixMul(m, node.matrix)
}

// Get returns the local matrix stored at path.
func (t *Transformation) Get(path mesh.NodePath) mathutil.Matrix {
	return t.navigate(path).matrix
}
