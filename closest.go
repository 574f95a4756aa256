package curve

import "math"

// ClosestPoint returns the parameter of the point on the curve closest to pt.
// The curve is flattened to locate the nearest region and the parameter is
// then refined on the exact curve.
func ClosestPoint(c Curve, pt Point) (float64, bool) {
	if c == nil {
		panic("curve: ClosestPoint called with nil curve")
	}
	pts, params := c.Flattened(divideFlattenTolerance)
	if len(pts) == 0 {
		return 0, false
	}

	best := 0
	bestDist := pts[0].DistanceSquared(pt)
	for i := 1; i < len(pts); i++ {
		if d := pts[i].DistanceSquared(pt); d < bestDist {
			best, bestDist = i, d
		}
	}
	lo := params[max(best-1, 0)]
	hi := params[min(best+1, len(params)-1)]
	return refineClosest(c, pt, lo, hi), true
}

// refineClosest minimizes the distance to pt over [lo, hi] by golden section
// search. The squared distance is unimodal on a span this narrow.
func refineClosest(c Curve, pt Point, lo, hi float64) float64 {
	const invPhi = 0.6180339887498949
	distSq := func(t float64) float64 {
		p, ok := c.PointAt(t)
		if !ok {
			return math.Inf(1)
		}
		return p.DistanceSquared(pt)
	}
	a, b := lo, hi
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := distSq(x1), distSq(x2)
	for b-a > paramTolerance {
		if f1 < f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - invPhi*(b-a)
			f1 = distSq(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + invPhi*(b-a)
			f2 = distSq(x2)
		}
	}
	t := 0.5 * (a + b)
	// The span endpoints may still beat the interior minimum when the true
	// closest point sits on a flattening vertex.
	if d := distSq(lo); d < distSq(t) {
		t = lo
	}
	if d := distSq(hi); d < distSq(t) {
		t = hi
	}
	return t
}
