package curve

// LineCurve is a line segment. Freshly constructed lines are parameterized by
// arc length over [0, length]; derived lines (via Trim or Split) inherit the
// sub-interval they were cut from.
type LineCurve struct {
	p0  Point
	p1  Point
	dom Interval
}

var _ Curve = (*LineCurve)(nil)

// NewLineCurve returns the line segment from p0 to p1.
func NewLineCurve(p0, p1 Point) *LineCurve {
	return &LineCurve{
		p0:  p0,
		p1:  p1,
		dom: Interval{0, p0.Distance(p1)},
	}
}

func (l *LineCurve) Domain() Interval { return l.dom }
func (l *LineCurve) Dimension() int   { return 3 }
func (l *LineCurve) Degree() int      { return 1 }
func (l *LineCurve) SpanCount() int   { return 1 }
func (l *LineCurve) IsPeriodic() bool { return false }

func (l *LineCurve) IsClosed() bool {
	return l.p0.Distance(l.p1) <= DefaultTolerance
}

func (l *LineCurve) StartPoint() Point { return l.p0 }
func (l *LineCurve) EndPoint() Point   { return l.p1 }

func (l *LineCurve) PointAt(t float64) (Point, bool) {
	t, ok := clampParam(l.dom, t)
	if !ok {
		return Point{}, false
	}
	return l.p0.Lerp(l.p1, l.dom.Normalize(t)), true
}

func (l *LineCurve) DerivativesAt(t float64, order int) ([]Vec, bool) {
	if order < 0 {
		panic("curve: DerivativesAt called with negative order")
	}
	pt, ok := l.PointAt(t)
	if !ok {
		return nil, false
	}
	ders := make([]Vec, order+1)
	ders[0] = Vec(pt)
	if order >= 1 && !l.dom.IsSingleton() {
		ders[1] = l.p1.Sub(l.p0).Div(l.dom.Length())
	}
	return ders, true
}

func (l *LineCurve) Reverse() {
	l.p0, l.p1 = l.p1, l.p0
	l.dom = l.dom.Reversed()
}

func (l *LineCurve) Trim(t0, t1 float64) (Curve, bool) {
	if t0 >= t1 {
		return nil, false
	}
	a, ok0 := l.PointAt(t0)
	b, ok1 := l.PointAt(t1)
	if !ok0 || !ok1 {
		return nil, false
	}
	return &LineCurve{p0: a, p1: b, dom: Interval{t0, t1}}, true
}

func (l *LineCurve) Split(t float64) (Curve, Curve, bool) {
	if t <= l.dom.T0 || t >= l.dom.T1 {
		return nil, nil, false
	}
	below, _ := l.Trim(l.dom.T0, t)
	above, _ := l.Trim(t, l.dom.T1)
	return below, above, true
}

func (l *LineCurve) Length(accuracy float64) float64 {
	return l.p0.Distance(l.p1)
}

func (l *LineCurve) Transform(x Xform) {
	l.p0 = x.ApplyPoint(l.p0)
	l.p1 = x.ApplyPoint(l.p1)
}

func (l *LineCurve) BoundingBox() Box {
	return NewBoxFromPoints(l.p0, l.p1)
}

func (l *LineCurve) Flattened(tolerance float64) ([]Point, []float64) {
	return []Point{l.p0, l.p1}, []float64{l.dom.T0, l.dom.T1}
}

func (l *LineCurve) Clone() Curve {
	c := *l
	return &c
}
