package lighting

import (
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

// DirectionalLight is a light with a fixed world-space direction, such as
// sunlight. Direction points from the light outward, toward the scene.
type DirectionalLight struct {
	Direction mathutil.Vector
	Color     colorspace.Color
	Intensity float32
}

// NewDirectionalLight constructs a DirectionalLight, normalizing direction.
func NewDirectionalLight(direction mathutil.Vector, color colorspace.Color, intensity float32) DirectionalLight {
	return DirectionalLight{
		Direction: mathutil.Normalize(direction),
		Color:     color,
		Intensity: intensity,
	}
}

// Shade computes the ShadingTerm a surface with world-space normal
// contributes from this light: the light's color, weighted by how directly
// the surface faces the light (clamped at zero so faces turned away
// receive no directional contribution).
func (l DirectionalLight) Shade(normal mathutil.Vector) ShadingTerm {
	facing := mathutil.Dot(normal, l.Direction.Negate())
	if facing < 0 {
		facing = 0
	}
	return ShadingTerm{Color: l.Color, Intensity: facing}
}
