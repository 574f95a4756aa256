package curve

import "math"

// PointContainment classifies a point against the region bounded by a closed
// planar curve.
type PointContainment int

const (
	// PointUnset means the classification is undefined, e.g. for an open
	// curve.
	PointUnset PointContainment = iota
	PointInside
	PointOutside
	// PointCoincident means the point lies on the curve within tolerance.
	PointCoincident
)

func (pc PointContainment) String() string {
	switch pc {
	case PointInside:
		return "Inside"
	case PointOutside:
		return "Outside"
	case PointCoincident:
		return "Coincident"
	default:
		return "Unset"
	}
}

// Containment classifies pt against the region bounded by the closed curve c
// on the given plane. Points more than tolerance off the plane are Outside.
// The classification is undefined (PointUnset) for curves that aren't closed.
func Containment(c Curve, pl Plane, pt Point, tolerance float64) PointContainment {
	if c == nil {
		panic("curve: Containment called with nil curve")
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if !c.IsClosed() {
		return PointUnset
	}
	if math.Abs(pl.Elevation(pt)) > tolerance {
		return PointOutside
	}
	poly := flattenToPlane(c, pl, containmentFlattenTolerance(tolerance))
	p := pl.uv(pt)
	if distToPolyline2(poly, p, true) <= tolerance {
		return PointCoincident
	}
	if polygonWinding(poly, p) != 0 {
		return PointInside
	}
	return PointOutside
}

func containmentFlattenTolerance(tolerance float64) float64 {
	return min(0.25*tolerance, 1e-4)
}

// flattenToPlane returns the curve's flattened vertices in plane coordinates.
// For a closed curve the duplicate seam vertex is dropped.
func flattenToPlane(c Curve, pl Plane, tolerance float64) []pt2 {
	pts, _ := c.Flattened(tolerance)
	if c.IsClosed() && len(pts) > 1 {
		pts = pts[:len(pts)-1]
	}
	out := make([]pt2, len(pts))
	for i, pt := range pts {
		out[i] = pl.uv(pt)
	}
	return out
}
