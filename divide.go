package curve

import (
	"sort"
)

// divideFlattenTolerance controls the polyline approximation backing the
// arc-length tables used by the divide operations.
const divideFlattenTolerance = 1e-6

// lengthTable maps accumulated arc length to curve parameters, built from a
// flattened polyline.
type lengthTable struct {
	params []float64
	cum    []float64
}

func buildLengthTable(c Curve, tolerance float64) lengthTable {
	pts, params := c.Flattened(tolerance)
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i-1].Distance(pts[i])
	}
	return lengthTable{params: params, cum: cum}
}

func (lt lengthTable) total() float64 {
	return lt.cum[len(lt.cum)-1]
}

// paramAt returns the curve parameter at arc length s from the start.
func (lt lengthTable) paramAt(s float64) float64 {
	s = min(max(s, 0), lt.total())
	i := sort.SearchFloat64s(lt.cum, s)
	if i == 0 {
		return lt.params[0]
	}
	if i == len(lt.cum) {
		return lt.params[len(lt.params)-1]
	}
	span := Interval{lt.cum[i-1], lt.cum[i]}
	if span.IsSingleton() {
		return lt.params[i]
	}
	return Interval{lt.params[i-1], lt.params[i]}.Denormalize(span.Normalize(s))
}

// DivideByCount divides the curve into n pieces of equal arc length and
// returns the parameters of the cuts, strictly increasing. For an open curve
// with includeEnds the result holds n+1 parameters, without includeEnds the
// n−1 interior ones. For a closed curve the result holds n parameters,
// starting at the seam. It reports failure when n < 1 (or n < 2 for a closed
// curve) or the curve is degenerate.
func DivideByCount(c Curve, n int, includeEnds bool) ([]float64, bool) {
	if c == nil {
		panic("curve: DivideByCount called with nil curve")
	}
	closed := c.IsClosed()
	if n < 1 || (closed && n < 2) {
		return nil, false
	}
	lt := buildLengthTable(c, divideFlattenTolerance)
	total := lt.total()
	if total <= 0 {
		return nil, false
	}
	step := total / float64(n)

	var out []float64
	switch {
	case closed:
		for k := 0; k < n; k++ {
			out = append(out, lt.paramAt(float64(k)*step))
		}
	case includeEnds:
		for k := 0; k <= n; k++ {
			out = append(out, lt.paramAt(float64(k)*step))
		}
	default:
		for k := 1; k < n; k++ {
			out = append(out, lt.paramAt(float64(k)*step))
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i] <= out[i-1] {
			return nil, false
		}
	}
	return out, true
}

// DivideByLength returns the parameters spaced by the given arc length along
// the curve, starting at the domain start. The start parameter itself is
// included when includeStart is set. The leftover piece shorter than length
// at the end isn't represented. It reports failure when length isn't positive
// or exceeds the curve's length.
func DivideByLength(c Curve, length float64, includeStart bool) ([]float64, bool) {
	if c == nil {
		panic("curve: DivideByLength called with nil curve")
	}
	if length <= 0 {
		return nil, false
	}
	lt := buildLengthTable(c, divideFlattenTolerance)
	total := lt.total()
	if length > total {
		return nil, false
	}
	var out []float64
	if includeStart {
		out = append(out, lt.params[0])
	}
	for s := length; s <= total; s += length {
		out = append(out, lt.paramAt(s))
	}
	return out, true
}

// DivideEquidistant returns points along the curve such that consecutive
// points are the given straight-line distance apart. The first point is the
// curve start; the walk stops when no further point on the curve lies at that
// distance from the previous one. It reports failure when distance isn't
// positive or no second point exists.
func DivideEquidistant(c Curve, distance float64) ([]Point, bool) {
	if c == nil {
		panic("curve: DivideEquidistant called with nil curve")
	}
	if distance <= 0 {
		return nil, false
	}
	pts, _ := c.Flattened(divideFlattenTolerance)
	out := []Point{pts[0]}
	anchor := pts[0]
	seg := 0
	u := 0.0
	for {
		next, nseg, nu, ok := marchToDistance(pts, anchor, distance, seg, u)
		if !ok {
			break
		}
		out = append(out, next)
		anchor, seg, u = next, nseg, nu
	}
	if len(out) < 2 {
		return nil, false
	}
	return out, true
}

// marchToDistance finds the first point on the polyline after position
// (seg, u) whose straight-line distance to anchor equals d.
func marchToDistance(pts []Point, anchor Point, d float64, seg int, u float64) (Point, int, float64, bool) {
	for i := seg; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		lo := 0.0
		if i == seg {
			lo = u
		}
		// Solve |a + u·(b−a) − anchor|² = d² for u.
		ab := b.Sub(a)
		am := a.Sub(anchor)
		roots, n := SolveQuadratic(am.Hypot2()-d*d, 2*am.Dot(ab), ab.Hypot2())
		for _, r := range roots[:n] {
			if r > lo+1e-12 && r <= 1 {
				return a.Translate(ab.Mul(r)), i, r, true
			}
		}
	}
	return Point{}, 0, 0, false
}
