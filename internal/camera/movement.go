package camera

import "github.com/drsaluml/ashkalgo/internal/mathutil"

// MoveForward moves the camera forward by distance along its own facing
// direction.
func MoveForward(c *Camera, distance float32) {
	c.Apply(mathutil.Translate(c.Direction().Scale(distance)))
}

// MoveBackward moves the camera backward by distance.
func MoveBackward(c *Camera, distance float32) {
	MoveForward(c, -distance)
}

// MoveLeft moves the camera left by distance.
func MoveLeft(c *Camera, distance float32) {
	roll := mathutil.Cross(c.Orientation(), c.Direction())
	c.Apply(mathutil.Translate(roll.Negate().Scale(distance)))
}

// MoveRight moves the camera right by distance.
func MoveRight(c *Camera, distance float32) {
	MoveLeft(c, -distance)
}

// MoveUp moves the camera up by distance along its orientation (up) axis.
func MoveUp(c *Camera, distance float32) {
	c.Apply(mathutil.Translate(c.Orientation().Scale(distance)))
}

// MoveDown moves the camera down by distance.
func MoveDown(c *Camera, distance float32) {
	MoveUp(c, -distance)
}

// Tilt rotates the camera about its own position: tiltX yaws, tiltY
// pitches by -tiltY, so positive tiltY turns the facing direction
// downward.
func Tilt(c *Camera, tiltX, tiltY float32) {
	position := c.Position()
	toOrigin := mathutil.Translate(mathutil.VectorFromPoint(position).Negate())
	backToPosition := mathutil.Translate(mathutil.VectorFromPoint(position))
	rotation := mathutil.MatrixMul(mathutil.Yaw(tiltX), mathutil.Pitch(-tiltY))
	transform := mathutil.MatrixMul(backToPosition, mathutil.MatrixMul(rotation, toOrigin))
	c.Apply(transform)
}

// Roll rotates the camera about its own facing direction.
func Roll(c *Camera, radians float32) {
	c.Apply(mathutil.Rotate(c.Direction(), radians))
}
