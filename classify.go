package curve

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IsLinear reports whether the curve deviates from the chord between its
// endpoints by at most tolerance.
func IsLinear(c Curve, tolerance float64) bool {
	if c == nil {
		panic("curve: IsLinear called with nil curve")
	}
	pts, _ := c.Flattened(0.25 * tolerance)
	a := pts[0]
	b := pts[len(pts)-1]
	if a.Distance(b) <= tolerance {
		return false
	}
	for _, pt := range pts {
		if distToChord(pt, a, b) > tolerance {
			return false
		}
	}
	return true
}

// TryGetLine returns the chord of the curve if the curve is linear within
// tolerance.
func TryGetLine(c Curve, tolerance float64) (*LineCurve, bool) {
	if !IsLinear(c, tolerance) {
		return nil, false
	}
	return NewLineCurve(c.StartPoint(), c.EndPoint()), true
}

// TryGetPolyline returns the curve's vertices as a polyline if the curve is
// structurally piecewise linear: a line, a polyline, a degree-1 NURBS curve,
// or a polycurve of such segments. Curves that are merely close to a polyline
// don't qualify.
func TryGetPolyline(c Curve) (*PolylineCurve, bool) {
	pts, ok := polylineVertices(c)
	if !ok || len(pts) < 2 {
		return nil, false
	}
	return NewPolylineCurve(pts), true
}

func polylineVertices(c Curve) ([]Point, bool) {
	switch c := c.(type) {
	case *LineCurve:
		return []Point{c.StartPoint(), c.EndPoint()}, true
	case *PolylineCurve:
		return c.Points(), true
	case *NurbsCurve:
		if c.Degree() != 1 {
			return nil, false
		}
		return c.ControlPoints(), true
	case *PolyCurve:
		var out []Point
		for i, seg := range c.segments {
			pts, ok := polylineVertices(seg)
			if !ok {
				return nil, false
			}
			if i > 0 {
				pts = pts[1:]
			}
			out = append(out, pts...)
		}
		return out, len(out) >= 2
	default:
		return nil, false
	}
}

// TryGetPlane returns a plane the curve lies on within tolerance. For linear
// curves the plane's orientation around the chord is arbitrary.
func TryGetPlane(c Curve, tolerance float64) (Plane, bool) {
	if c == nil {
		panic("curve: TryGetPlane called with nil curve")
	}
	pts, _ := c.Flattened(0.25 * tolerance)
	if pl, ok := IsPlanar(pts, tolerance); ok {
		return pl, true
	}
	// Collinear points don't determine a plane; pick one through the chord.
	if IsLinear(c, tolerance) {
		dir := c.EndPoint().Sub(c.StartPoint())
		hint := Vec{Z: 1}
		if dir.IsParallel(hint, 1e-6) {
			hint = Vec{Y: 1}
		}
		return NewPlaneFromFrame(c.StartPoint(), dir, hint), true
	}
	return Plane{}, false
}

// TryGetArc returns a circular arc matching the curve within tolerance. The
// arc's plane normal is oriented so the arc sweeps counterclockwise, its x
// axis points at the curve's start, and its domain starts at 0. Closed curves
// that match a full circle are reported with a 2π sweep.
func TryGetArc(c Curve, tolerance float64) (*ArcCurve, bool) {
	if c == nil {
		panic("curve: TryGetArc called with nil curve")
	}
	pts, _ := c.Flattened(0.25 * tolerance)
	if len(pts) < 3 {
		return nil, false
	}
	pl, ok := IsPlanar(pts, tolerance)
	if !ok {
		return nil, false
	}
	uv := make([]pt2, len(pts))
	for i, pt := range pts {
		uv[i] = pl.uv(pt)
	}
	center, radius, ok := fitCircle2(uv)
	if !ok || radius <= tolerance {
		return nil, false
	}
	for _, p := range uv {
		if math.Abs(p.distance(center)-radius) > tolerance {
			return nil, false
		}
	}

	// Travel direction: flip the plane if the samples run clockwise.
	var rot float64
	for i := 1; i < len(uv); i++ {
		rot += uv[i-1].sub(center).cross(uv[i].sub(center))
	}
	center3 := pl.PointAt(center.X, center.Y)
	if rot < 0 {
		pl = pl.Reversed()
	}

	// Re-anchor the frame so the start point sits at angle 0, then unwrap
	// the sample angles to find the sweep.
	x := pts[0].Sub(center3)
	if x.Hypot2() == 0 {
		return nil, false
	}
	// Project the start direction into the plane to keep the frame exactly
	// orthonormal.
	x = x.Sub(pl.ZAxis.Mul(x.Dot(pl.ZAxis))).Normalize()
	arcPlane := Plane{
		Origin: center3,
		XAxis:  x,
		YAxis:  pl.ZAxis.Cross(x),
		ZAxis:  pl.ZAxis,
	}
	prev := 0.0
	sweep := 0.0
	for _, pt := range pts[1:] {
		u, v := arcPlane.UV(pt)
		th := math.Atan2(v, u)
		for th < prev-1e-9 {
			th += 2 * math.Pi
		}
		if th-prev > math.Pi {
			// A jump this large means the samples don't advance steadily
			// around the center, so the curve isn't a single arc.
			return nil, false
		}
		sweep = th
		prev = th
	}
	if c.IsClosed() {
		sweep = 2 * math.Pi
	}
	if sweep <= 0 || sweep > 2*math.Pi {
		return nil, false
	}
	return NewArcCurve(arcPlane, radius, 0, sweep), true
}

// TryGetCircle returns a full circle matching the curve within tolerance. It
// reports failure for open curves.
func TryGetCircle(c Curve, tolerance float64) (*ArcCurve, bool) {
	if !c.IsClosed() {
		return nil, false
	}
	arc, ok := TryGetArc(c, tolerance)
	if !ok || !arc.IsCircle() {
		return nil, false
	}
	return arc, true
}

// fitCircle2 fits a circle to plane points by linear least squares
// (the Kåsa method: u² + v² = 2u·cu + 2v·cv + d).
func fitCircle2(pts []pt2) (pt2, float64, bool) {
	a := mat.NewDense(len(pts), 3, nil)
	b := mat.NewVecDense(len(pts), nil)
	for i, p := range pts {
		a.Set(i, 0, 2*p.X)
		a.Set(i, 1, 2*p.Y)
		a.Set(i, 2, 1)
		b.SetVec(i, p.X*p.X+p.Y*p.Y)
	}
	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return pt2{}, 0, false
	}
	center := pt2{sol.AtVec(0), sol.AtVec(1)}
	r2 := sol.AtVec(2) + center.X*center.X + center.Y*center.Y
	if r2 <= 0 {
		return pt2{}, 0, false
	}
	return center, math.Sqrt(r2), true
}

// Ellipse is a full ellipse, the result of a successful [TryGetEllipse]. Its
// axes lie along the plane's x and y axes.
type Ellipse struct {
	Plane   Plane
	RadiusX float64
	RadiusY float64
}

// TryGetEllipse returns an ellipse matching the closed curve within
// tolerance.
func TryGetEllipse(c Curve, tolerance float64) (Ellipse, bool) {
	if c == nil {
		panic("curve: TryGetEllipse called with nil curve")
	}
	if !c.IsClosed() {
		return Ellipse{}, false
	}
	pts, _ := c.Flattened(0.25 * tolerance)
	if len(pts) < 6 {
		return Ellipse{}, false
	}
	pl, ok := IsPlanar(pts, tolerance)
	if !ok {
		return Ellipse{}, false
	}
	uv := make([]pt2, len(pts))
	for i, pt := range pts {
		uv[i] = pl.uv(pt)
	}
	conic, ok := fitConic2(uv)
	if !ok {
		return Ellipse{}, false
	}
	center, theta, ra, rb, ok := conic.ellipseForm()
	if !ok {
		return Ellipse{}, false
	}
	sin, cos := math.Sincos(theta)
	for _, p := range uv {
		// Distance to the ellipse point at the same parametric angle. This
		// underestimates slightly off-axis but is plenty for a fit check.
		du := p.X - center.X
		dv := p.Y - center.Y
		x := du*cos + dv*sin
		y := -du*sin + dv*cos
		rho := math.Hypot(x/ra, y/rb)
		if rho == 0 {
			return Ellipse{}, false
		}
		if math.Hypot(x-x/rho, y-y/rho) > tolerance {
			return Ellipse{}, false
		}
	}
	origin := pl.PointAt(center.X, center.Y)
	xAxis := pl.XAxis.Mul(cos).Add(pl.YAxis.Mul(sin))
	ellipsePlane := NewPlaneFromFrame(origin, xAxis, pl.YAxis.Mul(cos).Add(pl.XAxis.Mul(-sin)))
	return Ellipse{Plane: ellipsePlane, RadiusX: ra, RadiusY: rb}, true
}

// conic2 holds the coefficients of A u² + B uv + C v² + D u + E v + F = 0.
type conic2 struct {
	A, B, C, D, E, F float64
}

// fitConic2 fits a conic to plane points as the null vector of the design
// matrix, via SVD.
func fitConic2(pts []pt2) (conic2, bool) {
	d := mat.NewDense(len(pts), 6, nil)
	for i, p := range pts {
		d.Set(i, 0, p.X*p.X)
		d.Set(i, 1, p.X*p.Y)
		d.Set(i, 2, p.Y*p.Y)
		d.Set(i, 3, p.X)
		d.Set(i, 4, p.Y)
		d.Set(i, 5, 1)
	}
	var svd mat.SVD
	if !svd.Factorize(d, mat.SVDThin) {
		return conic2{}, false
	}
	var v mat.Dense
	svd.VTo(&v)
	// Singular values are descending; the last right-singular vector spans
	// the (approximate) null space.
	return conic2{
		A: v.At(0, 5),
		B: v.At(1, 5),
		C: v.At(2, 5),
		D: v.At(3, 5),
		E: v.At(4, 5),
		F: v.At(5, 5),
	}, true
}

// ellipseForm converts the conic to center, axis rotation, and semi-axes. It
// reports failure when the conic isn't an ellipse.
func (co conic2) ellipseForm() (pt2, float64, float64, float64, bool) {
	disc := co.B*co.B - 4*co.A*co.C
	if disc >= 0 {
		return pt2{}, 0, 0, 0, false
	}
	center := pt2{
		X: (2*co.C*co.D - co.B*co.E) / disc,
		Y: (2*co.A*co.E - co.B*co.D) / disc,
	}
	// Value of the conic at its center; in centered coordinates the ellipse
	// is A x² + B xy + C y² + f0 = 0.
	f0 := co.A*center.X*center.X + co.B*center.X*center.Y + co.C*center.Y*center.Y +
		co.D*center.X + co.E*center.Y + co.F
	if f0 == 0 {
		return pt2{}, 0, 0, 0, false
	}
	half := 0.5 * (co.A + co.C)
	diff := 0.5 * (co.A - co.C)
	root := math.Hypot(diff, 0.5*co.B)
	l1 := half + root
	l2 := half - root
	// Both -f0/λ must be positive for a real ellipse.
	r1sq := -f0 / l1
	r2sq := -f0 / l2
	if r1sq <= 0 || r2sq <= 0 {
		return pt2{}, 0, 0, 0, false
	}
	theta := 0.5 * math.Atan2(co.B, co.A-co.C)
	// λ1 belongs to the axis at theta.
	return center, theta, math.Sqrt(r1sq), math.Sqrt(r2sq), true
}
