package scenefile

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDocument = `{
  "camera": {"position": [0,0,0], "direction": [0,0,1], "orientation": [0,1,0]},
  "ambient": {"color": [255,255,255,255], "intensity": 0.3},
  "directional": {"direction": [0,-1,0], "color": [255,255,255,255], "intensity": 0.8},
  "models": [
    {"shape": "cube", "half_extent_x": 2, "position": [0,0,10], "material_color": [200,50,50,255]}
  ]
}`

func writeTempDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("failed to write temp scene file: %v", err)
	}
	return path
}

func TestLoadParsesDocument(t *testing.T) {
	doc, err := Load(writeTempDocument(t))
	if err != nil {
		t.Fatalf("unexpected error loading scene file: %v", err)
	}
	if len(doc.Models) != 1 {
		t.Fatalf("expected 1 model placement, got %d", len(doc.Models))
	}
	if doc.Ambient.Intensity != 0.3 {
		t.Fatalf("expected ambient intensity 0.3, got %v", doc.Ambient.Intensity)
	}
}

func TestBuildSceneProducesOneModel(t *testing.T) {
	doc, err := Load(writeTempDocument(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := doc.BuildScene()
	if len(s.Models()) != 1 {
		t.Fatalf("expected 1 model in the built scene, got %d", len(s.Models()))
	}
}

func TestBuildCameraDefaultsDirection(t *testing.T) {
	doc := Document{}
	cam := doc.BuildCamera()
	dir := cam.Direction()
	if dir.Z != 1 {
		t.Fatalf("expected default camera direction (0,0,1), got %v", dir)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error loading a missing scene file")
	}
}
