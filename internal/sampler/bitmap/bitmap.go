// Package bitmap adapts a decoded image into the render core's Sampler
// capability. Decoding bytes on disk into pixels is explicitly out of
// scope for the core (spec §1); this package is the boundary adapter that
// owns that decode step and hands the core nothing but Sample(u, v) calls.
package bitmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	_ "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"github.com/drsaluml/ashkalgo/internal/colorspace"
)

// PixelFormat describes how to extract 8-bit R/G/B/A channels from a raw
// pixel word, mirroring the channel-mask lookup a platform image surface
// exposes.
type PixelFormat struct {
	RMask, GMask, BMask, AMask uint32
	RShift, GShift, BShift, AShift uint
}

// NRGBAFormat is the channel layout produced by image.NRGBA.
var NRGBAFormat = PixelFormat{
	RMask: 0xFF, RShift: 0,
	GMask: 0xFF, GShift: 8,
	BMask: 0xFF, BShift: 16,
	AMask: 0xFF, AShift: 24,
}

// Sampler maps (u, v) onto a decoded, immutable image of width W, height H.
// Out-of-range (u, v) clamps to the nearest border pixel.
type Sampler struct {
	img    *image.NRGBA
	format PixelFormat
}

// New wraps an already-decoded image as a Sampler, converting to NRGBA if
// necessary the same way a texture loader normalizes arbitrary source
// formats before handing pixels to the rasterizer.
func New(src image.Image) *Sampler {
	nrgba := toNRGBA(src)
	return &Sampler{img: nrgba, format: NRGBAFormat}
}

// Decode decodes raw image bytes (JPEG, PNG, or TGA, per the registered
// stdlib/ecosystem decoders) into a Sampler.
func Decode(data []byte) (*Sampler, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}
	return New(img), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// Sample implements colorspace.Sampler. u maps to column floor(u*(W-1)); v
// maps to row floor((1-v)*(H-1)) since the texture's v axis is bottom-up
// while the decoded image's row order is top-down.
func (s *Sampler) Sample(uv colorspace.TextureCoordinate) colorspace.Color {
	bounds := s.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return colorspace.NewColor(0, 0, 0, 0)
	}

	col := clampIndex(int(uv.U*float32(w-1)), w-1)
	row := clampIndex(int((1-uv.V)*float32(h-1)), h-1)

	i := s.img.PixOffset(bounds.Min.X+col, bounds.Min.Y+row)
	pix := s.img.Pix
	word := uint32(pix[i]) | uint32(pix[i+1])<<8 | uint32(pix[i+2])<<16 | uint32(pix[i+3])<<24
	return decodePixel(word, s.format)
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func decodePixel(word uint32, f PixelFormat) colorspace.Color {
	r := uint8((word >> f.RShift) & f.RMask)
	g := uint8((word >> f.GShift) & f.GMask)
	b := uint8((word >> f.BShift) & f.BMask)
	a := uint8((word >> f.AShift) & f.AMask)
	return colorspace.NewColor(r, g, b, a)
}

// EncodePNG writes img to w as PNG, a small convenience for inspecting a
// bitmap without pulling in the WebP encoder.
func EncodePNG(w *bytes.Buffer, img *image.NRGBA) error {
	return png.Encode(w, img)
}
