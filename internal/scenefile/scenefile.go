// Package scenefile loads a JSON description of a camera, the two scene
// lights, and a set of procedurally-built model placements. It is a
// boundary adapter: a convenience for the CLI, not something the core
// rendering packages depend on.
package scenefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drsaluml/ashkalgo/internal/camera"
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
	"github.com/drsaluml/ashkalgo/internal/sampler/bitmap"
	"github.com/drsaluml/ashkalgo/internal/scene"
	"github.com/drsaluml/ashkalgo/internal/shapes"
)

// Vec3 is a JSON-friendly 3-component vector/point.
type Vec3 [3]float32

func (v Vec3) toVector() mathutil.Vector {
	return mathutil.NewVector(v[0], v[1], v[2])
}

func (v Vec3) toPoint() mathutil.Point {
	return mathutil.NewPoint(v[0], v[1], v[2])
}

// RGBA is a JSON-friendly 8-bit color.
type RGBA [4]uint8

func (c RGBA) toColor() colorspace.Color {
	return colorspace.NewColor(c[0], c[1], c[2], c[3])
}

// CameraSpec describes a camera's pose.
type CameraSpec struct {
	Position    Vec3 `json:"position"`
	Direction   Vec3 `json:"direction"`
	Orientation Vec3 `json:"orientation"`
}

// AmbientSpec describes the scene's ambient light.
type AmbientSpec struct {
	Color     RGBA    `json:"color"`
	Intensity float32 `json:"intensity"`
}

// DirectionalSpec describes the scene's directional light.
type DirectionalSpec struct {
	Direction Vec3    `json:"direction"`
	Color     RGBA    `json:"color"`
	Intensity float32 `json:"intensity"`
}

// ModelSpec places one procedurally-built shape in the scene.
type ModelSpec struct {
	Shape         string  `json:"shape"` // "cube" or "quad"
	HalfExtentX   float32 `json:"half_extent_x"`
	HalfExtentY   float32 `json:"half_extent_y"`
	Position      Vec3    `json:"position"`
	MaterialColor RGBA    `json:"material_color"`
	Texture       string  `json:"texture"` // optional path to a bitmap; overrides material_color
}

// Document is the root of a scene file.
type Document struct {
	Camera      CameraSpec      `json:"camera"`
	Ambient     AmbientSpec     `json:"ambient"`
	Directional DirectionalSpec `json:"directional"`
	Models      []ModelSpec     `json:"models"`
}

// Load reads and parses a scene file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("scenefile: parse %s: %w", path, err)
	}
	return doc, nil
}

// BuildCamera constructs a camera.Camera from the document's camera spec.
func (d Document) BuildCamera() camera.Camera {
	direction := d.Camera.Direction.toVector()
	orientation := d.Camera.Orientation.toVector()
	if direction == (mathutil.Vector{}) {
		direction = mathutil.NewVector(0, 0, 1)
	}
	if orientation == (mathutil.Vector{}) {
		orientation = mathutil.NewVector(0, 1, 0)
	}
	return camera.NewAt(d.Camera.Position.toPoint(), mathutil.Normalize(direction), mathutil.Normalize(orientation))
}

// BuildScene constructs a scene.Scene with the document's lights and
// models.
func (d Document) BuildScene() *scene.Scene {
	ambient := lighting.NewAmbientLight(d.Ambient.Color.toColor(), d.Ambient.Intensity)
	directional := lighting.NewDirectionalLight(d.Directional.Direction.toVector(), d.Directional.Color.toColor(), d.Directional.Intensity)

	s := scene.New(ambient, directional)
	textures := bitmap.NewCache()
	for _, placement := range d.Models {
		model := scene.NewModel(buildMesh(placement, textures))
		model.Transformation().Apply(mathutil.Translate(mathutil.VectorFromPoint(placement.Position.toPoint())), nil)
		s.Add(model)
	}
	return s
}

func buildMesh(placement ModelSpec, textures *bitmap.Cache) mesh.Mesh {
	var diffuse colorspace.Sampler = colorspace.NewSolidSampler(placement.MaterialColor.toColor())
	if placement.Texture != "" {
		if sampler := textures.Resolve(placement.Texture); sampler != nil {
			diffuse = sampler
		}
	}
	material := colorspace.NewMaterial(diffuse)

	switch placement.Shape {
	case "quad":
		hw, hh := placement.HalfExtentX, placement.HalfExtentY
		if hw == 0 {
			hw = 1
		}
		if hh == 0 {
			hh = 1
		}
		return shapes.Quad(hw, hh, material)
	default:
		halfExtent := placement.HalfExtentX
		if halfExtent == 0 {
			halfExtent = 1
		}
		return shapes.Cube(halfExtent, material)
	}
}
