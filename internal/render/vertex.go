package render

import (
	"github.com/drsaluml/ashkalgo/internal/camera"
	"github.com/drsaluml/ashkalgo/internal/clip"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/mesh"
)

// shade transforms a local-space mesh vertex into a view-space
// ShadedVertex: world position via the accumulated object-to-world matrix,
// then into the camera's view space; the world-space normal lit by the
// scene's ambient and directional terms.
func shade(v mesh.Vertex, accumulated mathutil.Matrix, cam camera.Camera, ambient lighting.AmbientLight, directional lighting.DirectionalLight) clip.ShadedVertex {
	worldPosition := accumulated.MulPoint(v.Position)
	viewPosition := camera.WorldToView(worldPosition, cam)

	worldNormal := mathutil.Normalize(mathutil.Linear(accumulated, v.Normal))

	ambientTerm := ambient.Shade()
	directionalTerm := directional.Shade(worldNormal)

	return clip.ShadedVertex{
		Position: viewPosition,
		UV:       v.UV,
		Shading:  ambientTerm.Add(directionalTerm),
	}
}
