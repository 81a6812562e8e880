package scene

import (
	"testing"

	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
)

func cubeMesh() mesh.Mesh {
	leaf := mesh.NewFragmentNode(mesh.NewFragment(nil, nil))
	root := mesh.NewChunkNode([]mesh.MeshNode{leaf, leaf})
	return mesh.NewMesh(nil, root)
}

func TestNewTransformationMirrorsShapeWithIdentity(t *testing.T) {
	tr := NewTransformation(cubeMesh().Root)
	m := tr.Get(mesh.NodePath{1})
	if m != mathutil.Identity() {
		t.Fatalf("expected fresh transformation slot to be identity")
	}
}

func TestTransformationApplyPreMultiplies(t *testing.T) {
	tr := NewTransformation(cubeMesh().Root)
	translate := mathutil.Translate(mathutil.NewVector(1, 0, 0))
	tr.Apply(translate, mesh.NodePath{0})

	p := tr.Get(mesh.NodePath{0}).MulPoint(mathutil.NewPoint(0, 0, 0))
	if p.X != 1 {
		t.Fatalf("expected applied translation to move the slot, got %v", p)
	}

	other := tr.Get(mesh.NodePath{1})
	if other != mathutil.Identity() {
		t.Fatalf("expected sibling slot to remain untouched")
	}
}

func TestSceneAddAndRemoveModelSwapPop(t *testing.T) {
	s := New(lighting.NewAmbientLight(colorspace.NewColor(255, 255, 255, 255), 1), lighting.DirectionalLight{})
	m0 := NewModel(cubeMesh())
	m1 := NewModel(cubeMesh())
	m2 := NewModel(cubeMesh())

	s.Add(m0)
	s.Add(m1)
	s.Add(m2)

	s.RemoveModel(0)

	models := s.Models()
	if len(models) != 2 {
		t.Fatalf("expected 2 models after removal, got %d", len(models))
	}
	if models[0] != m2 {
		t.Fatalf("expected swap-pop to move the last model into the removed slot")
	}
}

func TestSceneLightAccessors(t *testing.T) {
	ambient := lighting.NewAmbientLight(colorspace.NewColor(10, 10, 10, 255), 0.2)
	s := New(ambient, lighting.DirectionalLight{})
	if s.AmbientLight() != ambient {
		t.Fatalf("expected ambient light accessor to round-trip")
	}

	updated := lighting.NewAmbientLight(colorspace.NewColor(0, 0, 0, 255), 0)
	s.SetAmbientLight(updated)
	if s.AmbientLight() != updated {
		t.Fatalf("expected SetAmbientLight to replace the light")
	}
}
