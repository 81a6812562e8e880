package lighting

import "github.com/drsaluml/ashkalgo/internal/colorspace"

// ShadingTerm is the accumulated lighting contribution at a point: a color
// tint and an intensity scalar. Multiple lights combine by Add-ing their
// ShadingTerms before the result is applied to a surface's sampled color.
type ShadingTerm struct {
	Color     colorspace.Color
	Intensity float32
}

// Add combines two shading terms: colors saturating-add, intensities sum.
func (t ShadingTerm) Add(o ShadingTerm) ShadingTerm {
	return ShadingTerm{
		Color:     t.Color.Add(o.Color),
		Intensity: t.Intensity + o.Intensity,
	}
}

// Apply modulates color by the shading term: each channel is scaled by the
// term's color and intensity, matching the fixed-point-style
// (light * surface * intensity) / 255 combination rule. Alpha passes
// through unchanged.
func Apply(term ShadingTerm, color colorspace.Color) colorspace.Color {
	r := shadeChannel(term.Color.R, color.R, term.Intensity)
	g := shadeChannel(term.Color.G, color.G, term.Intensity)
	b := shadeChannel(term.Color.B, color.B, term.Intensity)
	return colorspace.NewColor(r, g, b, color.A)
}

func shadeChannel(lightChannel, surfaceChannel uint8, intensity float32) uint8 {
	v := float32(lightChannel) * float32(surfaceChannel) * intensity / 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
