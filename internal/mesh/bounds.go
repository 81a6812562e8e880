package mesh

import "github.com/drsaluml/ashkalgo/internal/mathutil"

// BoundingBox is an axis-aligned box described by its center and
// half-extents along each axis.
type BoundingBox struct {
	Center      mathutil.Point
	HalfExtents mathutil.Vector
}

// UnitBoundingBox returns the default bounding box: a cube of side 2
// centered on the origin.
func UnitBoundingBox() BoundingBox {
	return BoundingBox{
		Center:      mathutil.NewPoint(0, 0, 0),
		HalfExtents: mathutil.NewVector(1, 1, 1),
	}
}

// NewBoundingBox constructs a BoundingBox from its min and max corners.
func NewBoundingBox(min, max mathutil.Point) BoundingBox {
	center := mathutil.NewPoint(
		(min.X+max.X)/2,
		(min.Y+max.Y)/2,
		(min.Z+max.Z)/2,
	)
	half := mathutil.NewVector(
		(max.X-min.X)/2,
		(max.Y-min.Y)/2,
		(max.Z-min.Z)/2,
	)
	return BoundingBox{Center: center, HalfExtents: half}
}

// Min returns the box's minimum corner.
func (b BoundingBox) Min() mathutil.Point {
	return mathutil.PointSub(b.Center, b.HalfExtents)
}

// Max returns the box's maximum corner.
func (b BoundingBox) Max() mathutil.Point {
	return mathutil.PointAdd(b.Center, b.HalfExtents)
}

// Apply recomputes a tight bounding box around the box transformed by m.
// The new center is simply the transformed center; the new half-extents
// are the per-axis absolute-value sum of the transformed axes scaled by the
// original half-extents, which is exact for any affine m and tight for
// axis-aligned input.
func (b BoundingBox) Apply(m mathutil.Matrix) BoundingBox {
	center := m.MulPoint(b.Center)

	var half [3]float32
	for row := 0; row < 3; row++ {
		half[row] = abs32(m.Get(0, row))*b.HalfExtents.X +
			abs32(m.Get(1, row))*b.HalfExtents.Y +
			abs32(m.Get(2, row))*b.HalfExtents.Z
	}

	return BoundingBox{
		Center:      center,
		HalfExtents: mathutil.NewVector(half[0], half[1], half[2]),
	}
}

// Merge returns the smallest bounding box containing both b and o.
func (b BoundingBox) Merge(o BoundingBox) BoundingBox {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return NewBoundingBox(
		mathutil.NewPoint(min32(bMin.X, oMin.X), min32(bMin.Y, oMin.Y), min32(bMin.Z, oMin.Z)),
		mathutil.NewPoint(max32(bMax.X, oMax.X), max32(bMax.Y, oMax.Y), max32(bMax.Z, oMax.Z)),
	)
}

// Contains reports whether p lies within the box, inclusive of its
// boundary.
func (b BoundingBox) Contains(p mathutil.Point) bool {
	min, max := b.Min(), b.Max()
	return p.X >= min.X && p.X <= max.X &&
		p.Y >= min.Y && p.Y <= max.Y &&
		p.Z >= min.Z && p.Z <= max.Z
}

// Intersects reports whether b and o overlap.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X <= oMax.X && bMax.X >= oMin.X &&
		bMin.Y <= oMax.Y && bMax.Y >= oMin.Y &&
		bMin.Z <= oMax.Z && bMax.Z >= oMin.Z
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
