package render

import (
	"github.com/drsaluml/ashkalgo/internal/clip"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

const screenEpsilon float32 = 1e-5

// project maps a view-space point to screen space, given the raster's
// width and height. The H/W factor folds in a vertical-FOV-like aspect
// correction: the image plane has half-height 1 and half-width W/H.
func project(p mathutil.Point, width, height int) (fx, fy float32) {
	w, h := float32(width), float32(height)

	zPrime := p.Z + clip.NearZ
	if zPrime >= 0 {
		zPrime = -screenEpsilon
	}

	nx := (h * p.X) / (w * -zPrime)
	ny := p.Y / -zPrime

	fx = (nx + 1) * 0.5 * w
	fy = (1 - (ny+1)*0.5) * h
	return fx, fy
}
