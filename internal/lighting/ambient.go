package lighting

import "github.com/drsaluml/ashkalgo/internal/colorspace"

// AmbientLight contributes a uniform shading term regardless of surface
// orientation.
type AmbientLight struct {
	Color     colorspace.Color
	Intensity float32
}

// NewAmbientLight constructs an AmbientLight.
func NewAmbientLight(color colorspace.Color, intensity float32) AmbientLight {
	return AmbientLight{Color: color, Intensity: intensity}
}

// Shade returns the ShadingTerm contributed by an ambient light: the
// light's full color and intensity, independent of the surface normal.
func (l AmbientLight) Shade() ShadingTerm {
	return ShadingTerm{Color: l.Color, Intensity: l.Intensity}
}
