package mathutil

import "fmt"

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float32
}

// NewPoint constructs a Point from its three coordinates.
func NewPoint(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Floor returns a point whose coordinates are all floored.
func Floor(p Point) Point {
	return Point{X: floor32(p.X), Y: floor32(p.Y), Z: floor32(p.Z)}
}

func floor32(v float32) float32 {
	i := float32(int64(v))
	if v < 0 && i != v {
		return i - 1
	}
	return i
}
