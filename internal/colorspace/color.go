package colorspace

import "fmt"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// NewColor constructs a Color from its four channels.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Add saturating-adds each of the R/G/B channels and preserves the left
// operand's alpha.
func (c Color) Add(o Color) Color {
	return Color{
		R: saturatingAddUint8(c.R, o.R),
		G: saturatingAddUint8(c.G, o.G),
		B: saturatingAddUint8(c.B, o.B),
		A: c.A,
	}
}

func saturatingAddUint8(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// lerpChannel linearly interpolates an 8-bit channel between a and b.
func lerpChannel(a, b uint8, t float32) uint8 {
	v := float32(a) + t*(float32(b)-float32(a))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Lerp linearly interpolates each channel (including alpha) between a and b.
func Lerp(a, b Color, t float32) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}
