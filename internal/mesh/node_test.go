package mesh

import "testing"

func TestWalkReachesNestedChunk(t *testing.T) {
	leaf := NewFragmentNode(NewFragment(nil, nil))
	inner := NewChunkNode([]MeshNode{leaf})
	root := NewChunkNode([]MeshNode{NewFragmentNode(NewFragment(nil, nil)), inner})

	got := root.Walk(NodePath{1, 0})
	if got.Kind != NodeFragment {
		t.Fatalf("expected to reach the fragment leaf, got kind %v", got.Kind)
	}
}

func TestWalkEmptyPathReturnsRoot(t *testing.T) {
	root := NewFragmentNode(NewFragment(nil, nil))
	got := root.Walk(nil)
	if got != &root {
		t.Fatalf("expected empty path to return the root itself")
	}
}
