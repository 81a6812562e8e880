package colorspace

// TextureCoordinate is a (u, v) pair used to sample a Sampler. By
// convention (0,0) is the bottom-left of the texture.
type TextureCoordinate struct {
	U, V float32
}

// Sampler is the capability the rasterizer needs from any diffuse source:
// given a (u, v) coordinate, return a Color.
type Sampler interface {
	Sample(uv TextureCoordinate) Color
}

// SolidSampler always returns the same color, regardless of (u, v).
type SolidSampler struct {
	color Color
}

// NewSolidSampler constructs a Sampler that returns a fixed color.
func NewSolidSampler(color Color) SolidSampler {
	return SolidSampler{color: color}
}

func (s SolidSampler) Sample(TextureCoordinate) Color {
	return s.color
}

// Material owns the Sampler used as a fragment's diffuse map.
type Material struct {
	diffuse Sampler
}

// NewMaterial constructs a Material from a diffuse Sampler.
func NewMaterial(diffuse Sampler) *Material {
	return &Material{diffuse: diffuse}
}

// Diffuse returns the material's diffuse sampler.
func (m *Material) Diffuse() Sampler {
	return m.diffuse
}
