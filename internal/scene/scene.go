package scene

import "github.com/drsaluml/ashkalgo/internal/lighting"

// Scene is an ordered sequence of owned models, plus the two analytic
// lights shared by the whole scene.
type Scene struct {
	models      []*Model
	ambient     lighting.AmbientLight
	directional lighting.DirectionalLight
}

// New constructs an empty Scene with the given lights.
func New(ambient lighting.AmbientLight, directional lighting.DirectionalLight) *Scene {
	return &Scene{ambient: ambient, directional: directional}
}

// Add transfers ownership of a model into the scene, returning its index.
func (s *Scene) Add(model *Model) int {
	s.models = append(s.models, model)
	return len(s.models) - 1
}

// RemoveModel removes the model at index in O(1) by swapping it with the
// last element and popping. Indices are stable only between mutations.
func (s *Scene) RemoveModel(index int) {
	last := len(s.models) - 1
	s.models[index] = s.models[last]
	s.models[last] = nil
	s.models = s.models[:last]
}

// Models returns the scene's models in their current order.
func (s *Scene) Models() []*Model {
	return s.models
}

// SetAmbientLight replaces the scene's ambient light.
func (s *Scene) SetAmbientLight(light lighting.AmbientLight) {
	s.ambient = light
}

// AmbientLight returns the scene's ambient light.
func (s *Scene) AmbientLight() lighting.AmbientLight {
	return s.ambient
}

// SetDirectionalLight replaces the scene's directional light.
func (s *Scene) SetDirectionalLight(light lighting.DirectionalLight) {
	s.directional = light
}

// DirectionalLight returns the scene's directional light.
func (s *Scene) DirectionalLight() lighting.DirectionalLight {
	return s.directional
}
