package curve

import (
	"math"
)

// ArcCurve is a circular arc, or a full circle, on a plane. Freshly
// constructed arcs are parameterized by the angle swept from the plane's x
// axis; derived arcs inherit the sub-interval they were cut from.
type ArcCurve struct {
	plane  Plane
	radius float64
	angles Interval
	dom    Interval
}

var _ Curve = (*ArcCurve)(nil)

// NewArcCurve returns the arc on the given plane swept counterclockwise (as
// seen against the plane normal) from angle0 to angle1, both in radians. It
// panics when the radius isn't positive or the sweep is empty or exceeds a
// full turn.
func NewArcCurve(plane Plane, radius, angle0, angle1 float64) *ArcCurve {
	if radius <= 0 {
		panic("curve: NewArcCurve requires a positive radius")
	}
	if angle1 <= angle0 || angle1-angle0 > 2*math.Pi+1e-12 {
		panic("curve: NewArcCurve requires a sweep in (0, 2π]")
	}
	angles := Interval{angle0, angle1}
	return &ArcCurve{
		plane:  plane,
		radius: radius,
		angles: angles,
		dom:    angles,
	}
}

// NewCircleCurve returns the full circle of the given radius centered at the
// plane origin.
func NewCircleCurve(plane Plane, radius float64) *ArcCurve {
	return NewArcCurve(plane, radius, 0, 2*math.Pi)
}

// NewArcThroughPoints returns the arc that starts at a, passes through b, and
// ends at c. It reports failure when the points are collinear or coincident
// within floating point noise.
func NewArcThroughPoints(a, b, c Point) (*ArcCurve, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	normal := ab.Cross(ac)
	if normal.Hypot2() == 0 {
		return nil, false
	}
	pl := NewPlane(a, normal)
	pa := pl.uv(a)
	pb := pl.uv(b)
	pc := pl.uv(c)
	center, ok := circumcenter2(pa, pb, pc)
	if !ok {
		return nil, false
	}
	radius := center.distance(pa)

	pl.Origin = pl.PointAt(center.X, center.Y)
	tha := math.Atan2(pa.Y-center.Y, pa.X-center.X)
	thb := math.Atan2(pb.Y-center.Y, pb.X-center.X)
	thc := math.Atan2(pc.Y-center.Y, pc.X-center.X)
	// Unwrap so that tha < thb < thc along the travel direction.
	for thb <= tha {
		thb += 2 * math.Pi
	}
	for thc <= thb {
		thc += 2 * math.Pi
	}
	if thc-tha > 2*math.Pi {
		return nil, false
	}
	return NewArcCurve(pl, radius, tha, thc), true
}

// circumcenter2 returns the center of the circle through three plane points.
func circumcenter2(a, b, c pt2) (pt2, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return pt2{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return pt2{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}

// Plane returns the plane the arc lies on. The arc's center is the plane
// origin.
func (a *ArcCurve) Plane() Plane { return a.plane }

// Center returns the arc's center.
func (a *ArcCurve) Center() Point { return a.plane.Origin }

// Radius returns the arc's radius.
func (a *ArcCurve) Radius() float64 { return a.radius }

// SweepAngle returns the swept angle in radians.
func (a *ArcCurve) SweepAngle() float64 { return a.angles.Length() }

// IsCircle reports whether the arc sweeps a full turn.
func (a *ArcCurve) IsCircle() bool {
	return math.Abs(a.angles.Length()-2*math.Pi) <= 1e-12
}

func (a *ArcCurve) Domain() Interval { return a.dom }
func (a *ArcCurve) Dimension() int   { return 3 }
func (a *ArcCurve) Degree() int      { return 2 }

func (a *ArcCurve) SpanCount() int {
	return int(math.Ceil(a.angles.Length() / (0.5 * math.Pi)))
}

func (a *ArcCurve) IsClosed() bool {
	return a.StartPoint().Distance(a.EndPoint()) <= DefaultTolerance
}

func (a *ArcCurve) IsPeriodic() bool { return a.IsCircle() }

// angleAt maps a domain parameter to the swept angle.
func (a *ArcCurve) angleAt(t float64) float64 {
	return a.angles.Denormalize(a.dom.Normalize(t))
}

func (a *ArcCurve) pointAtAngle(th float64) Point {
	sin, cos := math.Sincos(th)
	return a.plane.PointAt(a.radius*cos, a.radius*sin)
}

func (a *ArcCurve) StartPoint() Point { return a.pointAtAngle(a.angles.T0) }
func (a *ArcCurve) EndPoint() Point   { return a.pointAtAngle(a.angles.T1) }

func (a *ArcCurve) PointAt(t float64) (Point, bool) {
	t, ok := clampParam(a.dom, t)
	if !ok {
		return Point{}, false
	}
	return a.pointAtAngle(a.angleAt(t)), true
}

func (a *ArcCurve) DerivativesAt(t float64, order int) ([]Vec, bool) {
	if order < 0 {
		panic("curve: DerivativesAt called with negative order")
	}
	t, ok := clampParam(a.dom, t)
	if !ok {
		return nil, false
	}
	th := a.angleAt(t)
	// Angle changes at a constant rate; each derivative advances the phase
	// by π/2 and gains a factor of the rate.
	rate := a.angles.Length() / a.dom.Length()
	ders := make([]Vec, order+1)
	ders[0] = Vec(a.pointAtAngle(th))
	scale := a.radius
	for n := 1; n <= order; n++ {
		scale *= rate
		phase := th + float64(n)*0.5*math.Pi
		sin, cos := math.Sincos(phase)
		ders[n] = a.plane.XAxis.Mul(scale * cos).Add(a.plane.YAxis.Mul(scale * sin))
	}
	return ders, true
}

func (a *ArcCurve) Reverse() {
	// Flipping the plane's y axis mirrors the angle; combined with the
	// reversed sweep this traverses the same points in the opposite order.
	a.plane = a.plane.Reversed()
	a.angles = a.angles.Reversed()
	a.dom = a.dom.Reversed()
}

func (a *ArcCurve) Trim(t0, t1 float64) (Curve, bool) {
	if t0 >= t1 {
		return nil, false
	}
	c0, ok0 := clampParam(a.dom, t0)
	c1, ok1 := clampParam(a.dom, t1)
	if !ok0 || !ok1 {
		return nil, false
	}
	return &ArcCurve{
		plane:  a.plane,
		radius: a.radius,
		angles: Interval{a.angleAt(c0), a.angleAt(c1)},
		dom:    Interval{t0, t1},
	}, true
}

func (a *ArcCurve) Split(t float64) (Curve, Curve, bool) {
	if t <= a.dom.T0 || t >= a.dom.T1 {
		return nil, nil, false
	}
	below, ok0 := a.Trim(a.dom.T0, t)
	above, ok1 := a.Trim(t, a.dom.T1)
	if !ok0 || !ok1 {
		return nil, nil, false
	}
	return below, above, true
}

func (a *ArcCurve) Length(accuracy float64) float64 {
	return a.radius * a.angles.Length()
}

func (a *ArcCurve) Transform(x Xform) {
	a.plane = x.ApplyPlane(a.plane)
	a.radius *= x.Scale()
}

func (a *ArcCurve) BoundingBox() Box {
	b := NewBoxFromPoints(a.StartPoint(), a.EndPoint())
	// For each world axis, the coordinate extremum lies where the angle
	// aligns with the axis' in-plane direction.
	for _, e := range [3]Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		u := a.plane.XAxis.Dot(e)
		v := a.plane.YAxis.Dot(e)
		if u == 0 && v == 0 {
			continue
		}
		th := math.Atan2(v, u)
		for _, cand := range [2]float64{th, th + math.Pi} {
			for cand < a.angles.T0 {
				cand += 2 * math.Pi
			}
			if cand <= a.angles.T1 {
				b = b.UnionPoint(a.pointAtAngle(cand))
			}
		}
	}
	return b
}

func (a *ArcCurve) Flattened(tolerance float64) ([]Point, []float64) {
	// Chord sagitta r(1−cos(Δθ/2)) stays below tolerance.
	var dth float64
	if tolerance >= a.radius {
		dth = 0.5 * math.Pi
	} else {
		dth = 2 * math.Acos(1-tolerance/a.radius)
	}
	n := min(max(int(math.Ceil(a.angles.Length()/dth)), 2), 1<<14)
	pts := make([]Point, n+1)
	params := make([]float64, n+1)
	for i := 0; i < n + 1; i++ {
		s := float64(i) / float64(n)
		pts[i] = a.pointAtAngle(a.angles.Denormalize(s))
		params[i] = a.dom.Denormalize(s)
	}
	return pts, params
}

func (a *ArcCurve) Clone() Curve {
	c := *a
	return &c
}
