package pclasso

import (
	"errors"
	"fmt"

	"github.com/seqsense/pcgol/mat"
)

var (
	ErrInvalidArity      = errors.New("invalid number of lasso points")
	ErrDegeneratePolygon = errors.New("degenerate lasso polygon")
)

// Squared sine of the smallest angle accepted between two edges of a plane.
const degenerateSinSq = 1e-10

// Plane is the surface Normal.p = D. Normal has unit length.
type Plane struct {
	Normal mat.Vec3
	D      float32
}

// PlaneFrom3 returns the plane through three points.
// The normal is (p1-p0) x (p2-p0), so swapping two points flips it.
// false is returned if the points are collinear or coincident.
func PlaneFrom3(p0, p1, p2 mat.Vec3) (Plane, bool) {
	v1, v2 := p1.Sub(p0), p2.Sub(p0)
	norm := v1.Cross(v2)
	if n := norm.NormSq(); n == 0 || n <= degenerateSinSq*v1.NormSq()*v2.NormSq() {
		return Plane{}, false
	}
	norm = norm.Normalized()
	return Plane{Normal: norm, D: norm.Dot(p0)}, true
}

// Distance returns the signed distance from the plane.
// Positive values are on the side the normal points to.
func (p Plane) Distance(v mat.Vec3) float32 {
	return p.Normal.Dot(v) - p.D
}

// Region is a pyramid bounded by four planes sharing the apex.
type Region [LassoArity]Plane

// BuildRegion builds the region spanned by the apex and the lasso polygon.
// Plane i contains the polygon edge from points[i] to points[i+1], wrapping
// around at the end. inverted reverses the winding, flipping every normal.
func BuildRegion(points []mat.Vec3, apex mat.Vec3, inverted bool) (Region, error) {
	if len(points) != LassoArity {
		return Region{}, fmt.Errorf("%w: expected %d, got %d", ErrInvalidArity, LassoArity, len(points))
	}
	var r Region
	for i := range r {
		a, b := points[i], points[(i+1)%LassoArity]
		var ok bool
		if inverted {
			r[i], ok = PlaneFrom3(apex, a, b)
		} else {
			r[i], ok = PlaneFrom3(a, apex, b)
		}
		if !ok {
			return Region{}, fmt.Errorf("%w: edge %d", ErrDegeneratePolygon, i)
		}
	}
	return r, nil
}
