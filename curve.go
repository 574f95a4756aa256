package curve

import (
	"math"
)

// DefaultTolerance is a default absolute tolerance for methods that take a
// distance tolerance argument. It is suitable for models in the unit-to-meter
// size range.
const DefaultTolerance = 1e-9

// DefaultAngleTolerance is a default angular tolerance in radians (one
// degree).
const DefaultAngleTolerance = 0.017453292519943295

// paramTolerance is the relative tolerance applied when checking whether an
// evaluation parameter lies inside a curve's domain.
const paramTolerance = 1e-10

// Curve describes a parametric curve in 3D space, mapping a scalar parameter
// over [Curve.Domain] to points.
//
// All implementations in this package are single-owner values: shape edits
// (Trim, Split, package-level operations) construct new curves and never
// mutate their receiver. The two exceptions, by contract, are Reverse and
// Transform, which modify the curve in place. Concurrent mutation of a curve
// is not supported.
type Curve interface {
	// Domain returns the interval of valid parameters.
	Domain() Interval

	// Dimension returns the embedding dimension, which is 3 for every curve
	// in this package.
	Dimension() int

	// Degree returns the polynomial degree of the representation.
	Degree() int

	// SpanCount returns the number of polynomial spans.
	SpanCount() int

	// IsClosed reports whether start and end point coincide within
	// [DefaultTolerance].
	IsClosed() bool

	// IsPeriodic reports whether the parameterization is smoothly periodic
	// across the seam.
	IsPeriodic() bool

	StartPoint() Point
	EndPoint() Point

	// PointAt evaluates the curve at parameter t. It reports failure when t
	// lies outside the domain beyond tolerance or the curve is degenerate.
	PointAt(t float64) (Point, bool)

	// DerivativesAt evaluates the curve and its derivatives at parameter t.
	// The result holds order+1 vectors: index 0 is the position (as a vector
	// from the world origin), index i is the i-th derivative. It reports
	// failure under the same conditions as PointAt.
	DerivativesAt(t float64, order int) ([]Vec, bool)

	// Reverse reverses the curve in place. The domain [a, b] becomes
	// [−b, −a], and evaluation at −t afterwards yields the point previously
	// at t.
	Reverse()

	// Trim returns a new curve restricted to [t0, t1] ⊆ domain. The receiver
	// is not modified. It reports failure when the sub-interval is invalid,
	// outside the domain, or degenerate.
	Trim(t0, t1 float64) (Curve, bool)

	// Split cuts the curve at an interior parameter t, returning the pieces
	// below and above t as new curves.
	Split(t float64) (Curve, Curve, bool)

	// Length returns the arc length of the curve, accurate to the given
	// accuracy.
	Length(accuracy float64) float64

	// Transform applies a similarity transform to the curve in place.
	Transform(x Xform)

	// BoundingBox returns an axis-aligned box containing the curve. For
	// NURBS curves the box is the control hull's box, which contains the
	// curve but isn't necessarily tight.
	BoundingBox() Box

	// Flattened approximates the curve by a polyline whose maximum deviation
	// from the curve is at most tolerance. It returns the polyline vertices
	// together with the curve parameter of each vertex.
	Flattened(tolerance float64) ([]Point, []float64)

	// Clone returns an independent copy of the curve.
	Clone() Curve
}

// clampParam validates an evaluation parameter against a domain, allowing it
// to miss either bound by a relative tolerance, and clamps it inside.
func clampParam(dom Interval, t float64) (float64, bool) {
	if math.IsNaN(t) {
		return 0, false
	}
	eps := paramTolerance * max(1.0, math.Abs(dom.T0), math.Abs(dom.T1))
	if !dom.Contains(t, eps) {
		return 0, false
	}
	return dom.Clamp(t), true
}

// TangentAt returns the unit tangent of the curve at parameter t. It reports
// failure when t is out of the domain or the derivative vanishes (as it does
// at the apex of a degenerate curve).
func TangentAt(c Curve, t float64) (Vec, bool) {
	ders, ok := c.DerivativesAt(t, 1)
	if !ok {
		return Vec{}, false
	}
	d := ders[1]
	if d.Hypot2() == 0 {
		return Vec{}, false
	}
	return d.Normalize(), true
}

// CurvatureAt returns the curvature vector of the curve at parameter t. The
// vector points from the curve towards the center of the osculating circle
// and its magnitude is the reciprocal of that circle's radius. A straight
// curve yields the zero vector.
func CurvatureAt(c Curve, t float64) (Vec, bool) {
	ders, ok := c.DerivativesAt(t, 2)
	if !ok {
		return Vec{}, false
	}
	d1, d2 := ders[1], ders[2]
	l2 := d1.Hypot2()
	if l2 == 0 {
		return Vec{}, false
	}
	// κ = (d1 × d2) × d1 / |d1|⁴
	return d1.Cross(d2).Cross(d1).Div(l2 * l2), true
}

// SolveForLength solves for the parameter at the given arc length from the
// start of the curve.
//
// This uses the ITP method, as provided by [SolveITP], which is as robust as
// bisection but typically converges faster. Care is taken to measure
// increasingly smaller pieces of the curve instead of repeatedly measuring
// from the domain start.
func SolveForLength(c Curve, length float64, accuracy float64) (float64, bool) {
	dom := c.Domain()
	if dom.IsSingleton() {
		return 0, false
	}
	if length <= 0 {
		return dom.T0, length >= -accuracy
	}
	total := c.Length(accuracy)
	if length >= total {
		return dom.T1, length <= total+accuracy
	}
	tLast := dom.T0
	lenLast := 0.0
	epsilon := accuracy / total * dom.Length()
	n := 1.0 - min(math.Ceil(math.Log2(epsilon/dom.Length())), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		lo, hi, dir := tLast, t, 1.0
		if t < tLast {
			lo, hi, dir = t, tLast, -1.0
		}
		if lo < hi {
			if piece, ok := c.Trim(lo, hi); ok {
				lenLast += piece.Length(innerAccuracy) * dir
			}
		}
		tLast = t
		return lenLast - length
	}
	k1 := 0.2 / dom.Length()
	return SolveITP(f, dom.T0, dom.T1, epsilon, 1, k1, -length, total-length), true
}

// Extend returns a new curve lengthened by the given amount with a tangent
// line extension at the chosen end (or half the amount at each end for
// BothEnds). The original curve is not modified. It reports failure when the
// curve is closed, the length isn't positive, or the end tangent vanishes.
func Extend(c Curve, side CurveEnd, length float64) (Curve, bool) {
	if c == nil {
		panic("curve: Extend called with nil curve")
	}
	if length <= 0 || c.IsClosed() {
		return nil, false
	}
	dom := c.Domain()
	startLen, endLen := 0.0, 0.0
	switch side {
	case CurveEndStart:
		startLen = length
	case CurveEndEnd:
		endLen = length
	case CurveEndBoth:
		startLen = 0.5 * length
		endLen = 0.5 * length
	default:
		panic("curve: Extend called with invalid side")
	}

	pc := NewPolyCurve()
	if startLen > 0 {
		tan, ok := TangentAt(c, dom.T0)
		if !ok {
			return nil, false
		}
		start := c.StartPoint()
		pc.Append(NewLineCurve(start.Translate(tan.Mul(-startLen)), start))
	}
	pc.Append(c.Clone())
	if endLen > 0 {
		tan, ok := TangentAt(c, dom.T1)
		if !ok {
			return nil, false
		}
		end := c.EndPoint()
		pc.Append(NewLineCurve(end, end.Translate(tan.Mul(endLen))))
	}
	return pc, true
}

// CurveEnd selects which end of a curve an operation applies to.
type CurveEnd int

const (
	CurveEndStart CurveEnd = iota + 1
	CurveEndEnd
	CurveEndBoth
)

func (e CurveEnd) String() string {
	switch e {
	case CurveEndStart:
		return "Start"
	case CurveEndEnd:
		return "End"
	case CurveEndBoth:
		return "Both"
	default:
		return "InvalidCurveEnd"
	}
}
