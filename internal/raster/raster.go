package raster

import (
	"math"

	"github.com/drsaluml/ashkalgo/internal/colorspace"
)

// Raster is a row-major 2D buffer of width*height elements. Index (x, y)
// maps to y*width + x.
type Raster[T any] struct {
	width, height int
	data          []T
}

// New constructs a Raster of the given dimensions, filled with fill.
func New[T any](width, height int, fill T) *Raster[T] {
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Raster[T]{width: width, height: height, data: data}
}

// Width returns the raster's width in elements.
func (r *Raster[T]) Width() int {
	return r.width
}

// Height returns the raster's height in elements.
func (r *Raster[T]) Height() int {
	return r.height
}

func (r *Raster[T]) index(x, y int) int {
	return y*r.width + x
}

// Get returns the element at (x, y).
func (r *Raster[T]) Get(x, y int) T {
	return r.data[r.index(x, y)]
}

// Set writes value at (x, y).
func (r *Raster[T]) Set(x, y int, value T) {
	r.data[r.index(x, y)] = value
}

// Fill overwrites every element with value.
func (r *Raster[T]) Fill(value T) {
	for i := range r.data {
		r.data[i] = value
	}
}

// Data returns the raster's backing storage, row-major.
func (r *Raster[T]) Data() []T {
	return r.data
}

// FrameBuffer holds one color per pixel.
type FrameBuffer = Raster[colorspace.Color]

// NewFrameBuffer constructs a FrameBuffer cleared to background.
func NewFrameBuffer(width, height int, background colorspace.Color) *FrameBuffer {
	return New(width, height, background)
}

// DepthBuffer holds one depth value per pixel.
type DepthBuffer = Raster[float32]

// NewDepthBuffer constructs a DepthBuffer cleared to +infinity, the
// furthest possible depth.
func NewDepthBuffer(width, height int) *DepthBuffer {
	return New(width, height, float32(math.Inf(1)))
}
