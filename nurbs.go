package curve

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// NurbsCurve is a non-uniform rational B-spline curve, the general
// representation the other curve types can all be expressed in. The knot
// vector is clamped and determines the curve's domain; a curve without
// weights is non-rational.
//
// The evaluation routines follow the standard algorithms from Piegl and
// Tiller, "The NURBS Book", 2nd edition.
type NurbsCurve struct {
	degree   int
	points   []Point
	weights  []float64
	knots    []float64
	periodic bool
}

var _ Curve = (*NurbsCurve)(nil)

// NewNurbsCurve returns a NURBS curve of the given degree with the given
// control points, weights, and clamped knot vector. A nil weights slice makes
// the curve non-rational. All slices are copied.
//
// It reports failure when the inputs are structurally inconsistent: fewer
// than degree+1 control points, a knot vector whose length isn't
// len(points)+degree+1, decreasing or unclamped knots, non-positive weights,
// or an empty domain.
func NewNurbsCurve(degree int, points []Point, weights []float64, knots []float64) (*NurbsCurve, bool) {
	if degree < 1 || len(points) < degree+1 {
		return nil, false
	}
	if weights != nil && len(weights) != len(points) {
		return nil, false
	}
	for _, w := range weights {
		if !(w > 0) {
			return nil, false
		}
	}
	if len(knots) != len(points)+degree+1 {
		return nil, false
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, false
		}
	}
	// Clamped ends: the first and last degree+1 knots coincide, so the curve
	// interpolates its end control points.
	if knots[0] != knots[degree] || knots[len(knots)-1-degree] != knots[len(knots)-1] {
		return nil, false
	}
	if knots[degree] >= knots[len(knots)-1-degree] {
		return nil, false
	}
	nc := &NurbsCurve{
		degree: degree,
		points: slices.Clone(points),
		knots:  slices.Clone(knots),
	}
	if weights != nil {
		nc.weights = slices.Clone(weights)
	}
	return nc, true
}

// NewNurbsThroughPoints returns a curve of the given degree that interpolates
// the given points in order, using chord length parameterization and knot
// averaging. It reports failure when there are fewer than degree+1 points or
// the interpolation system is singular (as happens with stacked points).
func NewNurbsThroughPoints(degree int, pts []Point) (*NurbsCurve, bool) {
	n := len(pts)
	if degree < 1 || n < degree+1 {
		return nil, false
	}

	// Chord length parameterization.
	ubar := make([]float64, n)
	var total float64
	for i := 1; i < n; i++ {
		total += pts[i-1].Distance(pts[i])
	}
	if total == 0 {
		return nil, false
	}
	var acc float64
	for i := 1; i < n; i++ {
		acc += pts[i-1].Distance(pts[i])
		ubar[i] = acc / total
	}
	ubar[n-1] = 1

	// Knot vector by averaging (The NURBS Book, eq. 9.8).
	knots := make([]float64, n+degree+1)
	for i := len(knots) - 1 - degree; i < len(knots); i++ {
		knots[i] = 1
	}
	for j := 1; j < n-degree; j++ {
		var sum float64
		for i := j; i < j+degree; i++ {
			sum += ubar[i]
		}
		knots[j+degree] = sum / float64(degree)
	}

	// Solve N · P = Q per coordinate.
	coeff := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		span := findSpan(n-1, degree, ubar[i], knots)
		basis := basisFuns(span, ubar[i], degree, knots)
		for j, b := range basis {
			coeff.Set(i, span-degree+j, b)
		}
	}
	rhs := mat.NewDense(n, 3, nil)
	for i, pt := range pts {
		rhs.Set(i, 0, pt.X)
		rhs.Set(i, 1, pt.Y)
		rhs.Set(i, 2, pt.Z)
	}
	var sol mat.Dense
	if err := sol.Solve(coeff, rhs); err != nil {
		return nil, false
	}
	ctrl := make([]Point, n)
	for i := range ctrl {
		ctrl[i] = Pt(sol.At(i, 0), sol.At(i, 1), sol.At(i, 2))
	}
	return &NurbsCurve{degree: degree, points: ctrl, knots: knots}, true
}

// IsRational reports whether the curve carries non-uniform weights.
func (nc *NurbsCurve) IsRational() bool { return nc.weights != nil }

// ControlPoints returns a copy of the curve's control points.
func (nc *NurbsCurve) ControlPoints() []Point { return slices.Clone(nc.points) }

// Knots returns a copy of the curve's knot vector.
func (nc *NurbsCurve) Knots() []float64 { return slices.Clone(nc.knots) }

// Weights returns a copy of the curve's weights, or nil for a non-rational
// curve.
func (nc *NurbsCurve) Weights() []float64 { return slices.Clone(nc.weights) }

func (nc *NurbsCurve) Domain() Interval {
	return Interval{nc.knots[nc.degree], nc.knots[len(nc.knots)-1-nc.degree]}
}

func (nc *NurbsCurve) Dimension() int { return 3 }
func (nc *NurbsCurve) Degree() int    { return nc.degree }

func (nc *NurbsCurve) SpanCount() int {
	count := 0
	for i := nc.degree; i < len(nc.knots)-1-nc.degree; i++ {
		if nc.knots[i] < nc.knots[i+1] {
			count++
		}
	}
	return count
}

func (nc *NurbsCurve) IsClosed() bool {
	return nc.StartPoint().Distance(nc.EndPoint()) <= DefaultTolerance
}

func (nc *NurbsCurve) IsPeriodic() bool { return nc.periodic }

func (nc *NurbsCurve) StartPoint() Point { return nc.points[0] }
func (nc *NurbsCurve) EndPoint() Point   { return nc.points[len(nc.points)-1] }

func (nc *NurbsCurve) weight(i int) float64 {
	if nc.weights == nil {
		return 1
	}
	return nc.weights[i]
}

func (nc *NurbsCurve) PointAt(t float64) (Point, bool) {
	t, ok := clampParam(nc.Domain(), t)
	if !ok {
		return Point{}, false
	}
	span := findSpan(len(nc.points)-1, nc.degree, t, nc.knots)
	basis := basisFuns(span, t, nc.degree, nc.knots)
	var sum Vec
	var wsum float64
	for j, b := range basis {
		i := span - nc.degree + j
		w := nc.weight(i)
		sum = sum.Add(Vec(nc.points[i]).Mul(b * w))
		wsum += b * w
	}
	return Point(sum.Div(wsum)), true
}

func (nc *NurbsCurve) DerivativesAt(t float64, order int) ([]Vec, bool) {
	if order < 0 {
		panic("curve: DerivativesAt called with negative order")
	}
	t, ok := clampParam(nc.Domain(), t)
	if !ok {
		return nil, false
	}
	p := nc.degree
	span := findSpan(len(nc.points)-1, p, t, nc.knots)
	du := min(order, p)
	nders := dersBasisFuns(span, t, p, du, nc.knots)

	// Derivatives of the homogeneous curve A(u) and the weight function w(u).
	// Past the degree they vanish within a span.
	aders := make([]Vec, order+1)
	wders := make([]float64, order+1)
	for k := 0; k <= du; k++ {
		for j, b := range nders[k] {
			i := span - p + j
			w := nc.weight(i)
			aders[k] = aders[k].Add(Vec(nc.points[i]).Mul(b * w))
			wders[k] += b * w
		}
	}

	// The NURBS Book, eq. 4.8: peel the weight derivatives off.
	ders := make([]Vec, order+1)
	for k := 0; k <= order; k++ {
		v := aders[k]
		for i := 1; i <= k; i++ {
			v = v.Sub(ders[k-i].Mul(binomial(k, i) * wders[i]))
		}
		ders[k] = v.Div(wders[0])
	}
	return ders, true
}

func (nc *NurbsCurve) Reverse() {
	slices.Reverse(nc.points)
	if nc.weights != nil {
		slices.Reverse(nc.weights)
	}
	m := len(nc.knots)
	rev := make([]float64, m)
	for i := 0; i < m; i++ {
		rev[i] = -nc.knots[m-1-i]
	}
	nc.knots = rev
}

// insertKnot inserts the knot u r times. u must lie strictly inside the
// domain and the resulting multiplicity must not exceed the degree.
// (The NURBS Book, algorithm A5.1, carried out on homogeneous coordinates.)
func (nc *NurbsCurve) insertKnot(u float64, r int) {
	p := nc.degree
	n := len(nc.points) - 1
	k := findSpan(n, p, u, nc.knots)
	s := 0 // current multiplicity of u
	for _, knot := range nc.knots {
		if knot == u {
			s++
		}
	}
	if r <= 0 || s+r > p {
		return
	}

	type hpoint struct {
		v Vec
		w float64
	}
	hom := func(i int) hpoint {
		w := nc.weight(i)
		return hpoint{Vec(nc.points[i]).Mul(w), w}
	}

	newKnots := make([]float64, len(nc.knots)+r)
	copy(newKnots, nc.knots[:k+1])
	for i := 1; i <= r; i++ {
		newKnots[k+i] = u
	}
	copy(newKnots[k+r+1:], nc.knots[k+1:])

	newPts := make([]hpoint, len(nc.points)+r)
	for i := 0; i <= k-p; i++ {
		newPts[i] = hom(i)
	}
	for i := k - s; i <= n; i++ {
		newPts[i+r] = hom(i)
	}
	tmp := make([]hpoint, p-s+1)
	for i := 0; i <= p-s; i++ {
		tmp[i] = hom(k - p + i)
	}
	var l int
	for j := 1; j <= r; j++ {
		l = k - p + j
		for i := 0; i <= p-j-s; i++ {
			alpha := (u - nc.knots[l+i]) / (nc.knots[i+k+1] - nc.knots[l+i])
			tmp[i] = hpoint{
				v: tmp[i+1].v.Mul(alpha).Add(tmp[i].v.Mul(1 - alpha)),
				w: alpha*tmp[i+1].w + (1-alpha)*tmp[i].w,
			}
		}
		newPts[l] = tmp[0]
		newPts[k+r-j-s] = tmp[p-j-s]
	}
	for i := l + 1; i < k-s; i++ {
		newPts[i] = tmp[i-l]
	}

	pts := make([]Point, len(newPts))
	ws := make([]float64, len(newPts))
	rational := nc.weights != nil
	for i, hp := range newPts {
		pts[i] = Point(hp.v.Div(hp.w))
		ws[i] = hp.w
	}
	nc.points = pts
	if rational {
		nc.weights = ws
	}
	nc.knots = newKnots
}

func (nc *NurbsCurve) Split(t float64) (Curve, Curve, bool) {
	dom := nc.Domain()
	if t <= dom.T0 || t >= dom.T1 {
		return nil, nil, false
	}
	p := nc.degree
	work := nc.Clone().(*NurbsCurve)
	s := 0
	for _, knot := range work.knots {
		if knot == t {
			s++
		}
	}
	work.insertKnot(t, p-s)

	// Find the index of the first knot equal to t.
	first := 0
	for first < len(work.knots) && work.knots[first] < t {
		first++
	}
	// Left piece: control points 0..first-1, knots 0..first+p with a clamped
	// end at t.
	leftKnots := make([]float64, first+p+1)
	copy(leftKnots, work.knots[:first+p])
	leftKnots[first+p] = t
	left := &NurbsCurve{
		degree: p,
		points: slices.Clone(work.points[:first]),
		knots:  leftKnots,
	}
	rightKnots := make([]float64, len(work.knots)-first+1)
	rightKnots[0] = t
	copy(rightKnots[1:], work.knots[first:])
	right := &NurbsCurve{
		degree: p,
		points: slices.Clone(work.points[first-1:]),
		knots:  rightKnots,
	}
	if work.weights != nil {
		left.weights = slices.Clone(work.weights[:first])
		right.weights = slices.Clone(work.weights[first-1:])
	}
	return left, right, true
}

func (nc *NurbsCurve) Trim(t0, t1 float64) (Curve, bool) {
	if t0 >= t1 {
		return nil, false
	}
	dom := nc.Domain()
	c0, ok0 := clampParam(dom, t0)
	c1, ok1 := clampParam(dom, t1)
	if !ok0 || !ok1 {
		return nil, false
	}
	cur := Curve(nc.Clone().(*NurbsCurve))
	if c0 > dom.T0 {
		_, above, ok := cur.Split(c0)
		if !ok {
			return nil, false
		}
		cur = above
	}
	if c1 < dom.T1 {
		below, _, ok := cur.Split(c1)
		if !ok {
			return nil, false
		}
		cur = below
	}
	if cur.Domain().IsSingleton() {
		return nil, false
	}
	return cur, true
}

func (nc *NurbsCurve) Length(accuracy float64) float64 {
	speed := func(t float64) float64 {
		ders, ok := nc.DerivativesAt(t, 1)
		if !ok {
			return 0
		}
		return ders[1].Hypot()
	}
	var total float64
	spanAccuracy := accuracy / float64(max(nc.SpanCount(), 1))
	for i := nc.degree; i < len(nc.knots)-1-nc.degree; i++ {
		if nc.knots[i] < nc.knots[i+1] {
			total += adaptiveQuad(speed, nc.knots[i], nc.knots[i+1], spanAccuracy, 0)
		}
	}
	return total
}

// adaptiveQuad integrates f over [a, b], bisecting until the 8- and 16-point
// Gauss–Legendre estimates agree within accuracy.
func adaptiveQuad(f func(float64) float64, a, b, accuracy float64, depth int) float64 {
	est8 := gaussQuad(f, a, b, gaussLegendreCoeffs8Half[:])
	est16 := gaussQuad(f, a, b, gaussLegendreCoeffs16Half[:])
	if math.Abs(est16-est8) <= accuracy || depth >= 16 {
		return est16
	}
	mid := 0.5 * (a + b)
	return adaptiveQuad(f, a, mid, 0.5*accuracy, depth+1) +
		adaptiveQuad(f, mid, b, 0.5*accuracy, depth+1)
}

func (nc *NurbsCurve) Transform(x Xform) {
	for i := range nc.points {
		nc.points[i] = x.ApplyPoint(nc.points[i])
	}
}

func (nc *NurbsCurve) BoundingBox() Box {
	// Convex hull property: the control polygon's box contains the curve.
	return NewBoxFromPoints(nc.points...)
}

func (nc *NurbsCurve) Flattened(tolerance float64) ([]Point, []float64) {
	// Seed with the distinct knots so that refinement can't skip over a span.
	seeds := make([]float64, 0, len(nc.knots))
	for i := nc.degree; i <= len(nc.knots)-1-nc.degree; i++ {
		if len(seeds) == 0 || nc.knots[i] > seeds[len(seeds)-1] {
			seeds = append(seeds, nc.knots[i])
		}
	}
	eval := func(t float64) Point {
		pt, _ := nc.PointAt(t)
		return pt
	}
	return flattenAdaptive(eval, seeds, tolerance)
}

func (nc *NurbsCurve) Clone() Curve {
	c := &NurbsCurve{
		degree:   nc.degree,
		points:   slices.Clone(nc.points),
		knots:    slices.Clone(nc.knots),
		periodic: nc.periodic,
	}
	if nc.weights != nil {
		c.weights = slices.Clone(nc.weights)
	}
	return c
}

// findSpan returns the index of the knot span containing u.
// (The NURBS Book, algorithm A2.1; n is the number of basis functions − 1.)
func findSpan(n, degree int, u float64, knots []float64) int {
	if u >= knots[n+1] {
		return n
	}
	if u < knots[degree] {
		return degree
	}
	low, high := degree, n+1
	mid := (low + high) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// basisFuns returns the degree+1 non-vanishing basis functions at u.
// (The NURBS Book, algorithm A2.2.)
func basisFuns(span int, u float64, degree int, knots []float64) []float64 {
	out := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	out[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		out[j] = saved
	}
	return out
}

// dersBasisFuns returns the non-vanishing basis functions and their
// derivatives up to order n at u; out[k][j] is the k-th derivative of
// function span-degree+j. (The NURBS Book, algorithm A2.3.)
func dersBasisFuns(span int, u float64, degree, n int, knots []float64) [][]float64 {
	ndu := make([][]float64, degree+1)
	for i := range ndu {
		ndu[i] = make([]float64, degree+1)
	}
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	ndu[0][0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			tmp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		ndu[j][j] = saved
	}

	out := make([][]float64, n+1)
	for i := range out {
		out[i] = make([]float64, degree+1)
	}
	for j := 0; j <= degree; j++ {
		out[0][j] = ndu[j][degree]
	}
	a := [2][]float64{
		make([]float64, degree+1),
		make([]float64, degree+1),
	}
	for r := 0; r <= degree; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= n; k++ {
			var d float64
			rk := r - k
			pk := degree - k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = degree - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			out[k][r] = d
			s1, s2 = s2, s1
		}
	}
	factor := float64(degree)
	for k := 1; k <= n; k++ {
		for j := 0; j <= degree; j++ {
			out[k][j] *= factor
		}
		factor *= float64(degree - k)
	}
	return out
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1.0
	for i := 0; i < k; i++ {
		out = out * float64(n-i) / float64(i+1)
	}
	return out
}
