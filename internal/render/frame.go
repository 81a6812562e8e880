package render

import (
	"math"

	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/raster"
)

// ResetFrame clears fb to background and depth to +infinity, the state a
// new frame starts from.
func ResetFrame(fb *raster.FrameBuffer, depth *raster.DepthBuffer, background colorspace.Color) {
	fb.Fill(background)
	depth.Fill(float32(math.Inf(1)))
}
