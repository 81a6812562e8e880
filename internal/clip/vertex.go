package clip

import (
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

// ShadedVertex is a vertex after view transform and lighting, the form the
// rasterizer consumes: a view-space position, a texture coordinate, and an
// accumulated shading term.
type ShadedVertex struct {
	Position mathutil.Point
	UV       colorspace.TextureCoordinate
	Shading  lighting.ShadingTerm
}
