package clip

import (
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

// NearZ is the view-space z of the near clip plane. Its normal in view
// space is +z.
const NearZ float32 = -1

// clipBias pushes a generated vertex a small distance away from the near
// plane so it does not immediately re-fail the IsInFront test due to
// floating-point rounding.
const clipBias float32 = 1e-5

// IsInFront reports whether a view-space point lies in front of the near
// plane.
func IsInFront(p mathutil.Point) bool {
	return p.Z < NearZ
}

// Triangle clips a triangle (three vertices in winding order) against the
// near plane, returning 0, 3, or 4 output vertices. 0 means the triangle is
// entirely behind the plane and should be dropped; 3 means the triangle
// survives as a single triangle; 4 means it survives as a quad that the
// caller should fan-triangulate as (v0,v1,v2) and (v0,v2,v3).
func Triangle(a, b, c ShadedVertex) []ShadedVertex {
	out := make([]ShadedVertex, 0, 4)
	out = clipEdge(out, a, b)
	out = clipEdge(out, b, c)
	out = clipEdge(out, c, a)
	if len(out) < 3 {
		return nil
	}
	return out
}

func clipEdge(out []ShadedVertex, a, b ShadedVertex) []ShadedVertex {
	aFront := IsInFront(a.Position)
	bFront := IsInFront(b.Position)

	switch {
	case aFront && bFront:
		return append(out, b)
	case aFront && !bFront:
		return append(out, intersect(a, b))
	case !aFront && bFront:
		return append(out, intersect(a, b), b)
	default:
		return out
	}
}

// intersect computes the point where edge (a, b) crosses the near plane.
// Position and uv interpolate linearly at the crossing parameter; the
// shading term is inherited from b rather than interpolated, matching the
// original renderer's behavior (see DESIGN.md).
func intersect(a, b ShadedVertex) ShadedVertex {
	t := (a.Position.Z + NearZ) / (a.Position.Z - b.Position.Z)

	position := mathutil.LerpPoint(a.Position, b.Position, t)
	position.Z = -NearZ - clipBias

	return ShadedVertex{
		Position: position,
		UV:       lerpUV(a.UV, b.UV, t),
		Shading:  b.Shading,
	}
}

func lerpUV(a, b colorspace.TextureCoordinate, t float32) colorspace.TextureCoordinate {
	return colorspace.TextureCoordinate{
		U: a.U + t*(b.U-a.U),
		V: a.V + t*(b.V-a.V),
	}
}
