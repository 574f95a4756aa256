package curve

import (
	"slices"
	"sort"
)

// PolylineCurve is a piecewise linear curve through an ordered list of
// vertices. Freshly constructed polylines are parameterized by cumulative
// chord length; derived polylines inherit the parameters they were cut from.
type PolylineCurve struct {
	points []Point
	params []float64
}

var _ Curve = (*PolylineCurve)(nil)

// NewPolylineCurve returns the polyline through the given vertices. The
// vertex slice is copied. It panics when given fewer than two vertices.
func NewPolylineCurve(pts []Point) *PolylineCurve {
	if len(pts) < 2 {
		panic("curve: NewPolylineCurve requires at least two vertices")
	}
	params := make([]float64, len(pts))
	var acc float64
	for i := 1; i < len(pts); i++ {
		acc += pts[i-1].Distance(pts[i])
		params[i] = acc
	}
	return &PolylineCurve{
		points: slices.Clone(pts),
		params: params,
	}
}

// Points returns a copy of the polyline's vertices.
func (p *PolylineCurve) Points() []Point {
	return slices.Clone(p.points)
}

func (p *PolylineCurve) Domain() Interval {
	return Interval{p.params[0], p.params[len(p.params)-1]}
}

func (p *PolylineCurve) Dimension() int   { return 3 }
func (p *PolylineCurve) Degree() int      { return 1 }
func (p *PolylineCurve) SpanCount() int   { return len(p.points) - 1 }
func (p *PolylineCurve) IsPeriodic() bool { return false }

func (p *PolylineCurve) IsClosed() bool {
	return p.StartPoint().Distance(p.EndPoint()) <= DefaultTolerance
}

func (p *PolylineCurve) StartPoint() Point { return p.points[0] }
func (p *PolylineCurve) EndPoint() Point   { return p.points[len(p.points)-1] }

// span returns the index i of the segment [params[i], params[i+1]] that
// contains t, preferring non-degenerate segments.
func (p *PolylineCurve) span(t float64) int {
	i := sort.SearchFloat64s(p.params, t)
	if i > 0 {
		i--
	}
	for i < len(p.points)-2 && p.params[i+1] <= t {
		i++
	}
	return i
}

func (p *PolylineCurve) PointAt(t float64) (Point, bool) {
	t, ok := clampParam(p.Domain(), t)
	if !ok {
		return Point{}, false
	}
	i := p.span(t)
	span := Interval{p.params[i], p.params[i+1]}
	return p.points[i].Lerp(p.points[i+1], span.Normalize(t)), true
}

func (p *PolylineCurve) DerivativesAt(t float64, order int) ([]Vec, bool) {
	if order < 0 {
		panic("curve: DerivativesAt called with negative order")
	}
	pt, ok := p.PointAt(t)
	if !ok {
		return nil, false
	}
	ders := make([]Vec, order+1)
	ders[0] = Vec(pt)
	if order >= 1 {
		t = p.Domain().Clamp(t)
		i := p.span(t)
		span := Interval{p.params[i], p.params[i+1]}
		if !span.IsSingleton() {
			ders[1] = p.points[i+1].Sub(p.points[i]).Div(span.Length())
		}
	}
	return ders, true
}

func (p *PolylineCurve) Reverse() {
	n := len(p.points)
	pts := make([]Point, n)
	params := make([]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = p.points[n-1-i]
		params[i] = -p.params[n-1-i]
	}
	p.points = pts
	p.params = params
}

func (p *PolylineCurve) Trim(t0, t1 float64) (Curve, bool) {
	if t0 >= t1 {
		return nil, false
	}
	a, ok0 := p.PointAt(t0)
	b, ok1 := p.PointAt(t1)
	if !ok0 || !ok1 {
		return nil, false
	}
	t0 = p.Domain().Clamp(t0)
	t1 = p.Domain().Clamp(t1)

	pts := []Point{a}
	params := []float64{t0}
	for i, u := range p.params {
		if u > t0 && u < t1 {
			pts = append(pts, p.points[i])
			params = append(params, u)
		}
	}
	pts = append(pts, b)
	params = append(params, t1)
	return &PolylineCurve{points: pts, params: params}, true
}

func (p *PolylineCurve) Split(t float64) (Curve, Curve, bool) {
	dom := p.Domain()
	if t <= dom.T0 || t >= dom.T1 {
		return nil, nil, false
	}
	below, ok0 := p.Trim(dom.T0, t)
	above, ok1 := p.Trim(t, dom.T1)
	if !ok0 || !ok1 {
		return nil, nil, false
	}
	return below, above, true
}

func (p *PolylineCurve) Length(accuracy float64) float64 {
	var sum float64
	for i := 1; i < len(p.points); i++ {
		sum += p.points[i-1].Distance(p.points[i])
	}
	return sum
}

func (p *PolylineCurve) Transform(x Xform) {
	for i := range p.points {
		p.points[i] = x.ApplyPoint(p.points[i])
	}
}

func (p *PolylineCurve) BoundingBox() Box {
	return NewBoxFromPoints(p.points...)
}

func (p *PolylineCurve) Flattened(tolerance float64) ([]Point, []float64) {
	return slices.Clone(p.points), slices.Clone(p.params)
}

func (p *PolylineCurve) Clone() Curve {
	return &PolylineCurve{
		points: slices.Clone(p.points),
		params: slices.Clone(p.params),
	}
}
