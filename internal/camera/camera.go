package camera

import (
	"fmt"

	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

// Row/column indices into the camera's view-to-world matrix. The camera
// encodes its full orthonormal basis plus position inside one 4x4: each
// basis vector occupies a row's first three columns, and the position
// occupies the last column's first three rows.
const (
	rightRow       = 0
	orientationRow = 1
	directionRow   = 2
	homogeneousRow = 3
	positionColumn = 3
)

// NearPlaneZ is the view-space z of the camera's near clip plane.
const NearPlaneZ float32 = -1

// Camera holds a position, direction, and orientation (up) basis, packed
// into a single view-to-world matrix.
type Camera struct {
	viewToWorld mathutil.Matrix
}

// New constructs a camera at the origin, facing (0, 0, 1), oriented
// upwards (0, 1, 0).
func New() Camera {
	return Camera{viewToWorld: mathutil.Identity()}
}

// NewAt constructs a camera at position, looking along direction, with up
// vector orientation. direction and orientation need not be pre-normalized
// by the caller for the cross products below, but callers constructing a
// camera directly should pass unit vectors to keep the basis orthonormal.
func NewAt(position mathutil.Point, direction, orientation mathutil.Vector) Camera {
	var m mathutil.Matrix

	m.Set(positionColumn, 0, position.X)
	m.Set(positionColumn, 1, position.Y)
	m.Set(positionColumn, 2, position.Z)
	m.Set(positionColumn, 3, 1)

	m.Set(0, directionRow, direction.X)
	m.Set(1, directionRow, direction.Y)
	m.Set(2, directionRow, direction.Z)

	m.Set(0, orientationRow, orientation.X)
	m.Set(1, orientationRow, orientation.Y)
	m.Set(2, orientationRow, orientation.Z)

	right := mathutil.Cross(orientation, direction)
	m.Set(0, rightRow, right.X)
	m.Set(1, rightRow, right.Y)
	m.Set(2, rightRow, right.Z)

	m.Set(0, homogeneousRow, 0)
	m.Set(1, homogeneousRow, 0)
	m.Set(2, homogeneousRow, 0)
	m.Set(3, homogeneousRow, 1)

	return Camera{viewToWorld: m}
}

// ViewToWorld returns the camera's view-to-world matrix.
func (c Camera) ViewToWorld() mathutil.Matrix {
	return c.viewToWorld
}

// Position returns the camera's world-space position.
func (c Camera) Position() mathutil.Point {
	return mathutil.NewPoint(
		c.viewToWorld.Get(positionColumn, 0),
		c.viewToWorld.Get(positionColumn, 1),
		c.viewToWorld.Get(positionColumn, 2),
	)
}

// Direction returns the camera's world-space facing direction.
func (c Camera) Direction() mathutil.Vector {
	return mathutil.NewVector(
		c.viewToWorld.Get(0, directionRow),
		c.viewToWorld.Get(1, directionRow),
		c.viewToWorld.Get(2, directionRow),
	)
}

// Orientation returns the camera's world-space up vector.
func (c Camera) Orientation() mathutil.Vector {
	return mathutil.NewVector(
		c.viewToWorld.Get(0, orientationRow),
		c.viewToWorld.Get(1, orientationRow),
		c.viewToWorld.Get(2, orientationRow),
	)
}

// Right returns the camera's world-space rightward vector.
func (c Camera) Right() mathutil.Vector {
	return mathutil.NewVector(
		c.viewToWorld.Get(0, rightRow),
		c.viewToWorld.Get(1, rightRow),
		c.viewToWorld.Get(2, rightRow),
	)
}

// Apply pre-multiplies transformation onto the camera's view-to-world
// matrix, in place.
func (c *Camera) Apply(transformation mathutil.Matrix) {
	c.viewToWorld = mathutil.MatrixMul(transformation, c.viewToWorld)
}

func (c Camera) String() string {
	return fmt.Sprintf("Camera(%v, %v, %v, %v)", c.Position(), c.Direction(), c.Orientation(), c.Right())
}

// IsInFront reports whether a view-space point lies in front of the near
// plane.
func IsInFront(point mathutil.Point) bool {
	return point.Z < NearPlaneZ
}

// WorldToView transforms a world-space point into the camera's view space.
func WorldToView(point mathutil.Point, c Camera) mathutil.Point {
	delta := mathutil.PointDelta(point, c.Position())
	return mathutil.NewPoint(
		mathutil.Dot(delta, c.Right()),
		mathutil.Dot(delta, c.Orientation()),
		mathutil.Dot(delta, c.Direction().Negate()),
	)
}
