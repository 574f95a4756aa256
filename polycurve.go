package curve

import (
	"sort"
)

// DefaultJoinTolerance is the default gap below which curve ends are
// considered to connect.
const DefaultJoinTolerance = 1e-6

// PolyCurve is a curve composed of consecutive segments. It owns its
// segments: appended curves must not be mutated by the caller afterwards, and
// [PolyCurve.Explode] hands out copies.
//
// The composite parameterization stacks the segment domains end to end, each
// span as long as the segment's own domain.
type PolyCurve struct {
	segments []Curve
	breaks   []float64
}

var _ Curve = (*PolyCurve)(nil)

// NewPolyCurve returns an empty polycurve. Most methods require at least one
// appended segment.
func NewPolyCurve() *PolyCurve {
	return &PolyCurve{breaks: []float64{0}}
}

// Append adds a segment to the end of the polycurve, taking ownership of it.
// It reports failure when the segment's start doesn't meet the current end
// within [DefaultJoinTolerance]. It panics when given a nil segment.
func (p *PolyCurve) Append(c Curve) bool {
	return p.appendWithin(c, DefaultJoinTolerance)
}

func (p *PolyCurve) appendWithin(c Curve, tolerance float64) bool {
	if c == nil {
		panic("curve: PolyCurve.Append called with nil segment")
	}
	if len(p.segments) > 0 {
		end := p.segments[len(p.segments)-1].EndPoint()
		if end.Distance(c.StartPoint()) > tolerance {
			return false
		}
	}
	p.segments = append(p.segments, c)
	p.breaks = append(p.breaks, p.breaks[len(p.breaks)-1]+c.Domain().Length())
	return true
}

// SegmentCount returns the number of segments.
func (p *PolyCurve) SegmentCount() int { return len(p.segments) }

// Explode returns copies of the polycurve's segments.
func (p *PolyCurve) Explode() []Curve {
	out := make([]Curve, len(p.segments))
	for i, seg := range p.segments {
		out[i] = seg.Clone()
	}
	return out
}

func (p *PolyCurve) mustSegments() {
	if len(p.segments) == 0 {
		panic("curve: operation on empty PolyCurve")
	}
}

func (p *PolyCurve) Domain() Interval {
	p.mustSegments()
	return Interval{p.breaks[0], p.breaks[len(p.breaks)-1]}
}

func (p *PolyCurve) Dimension() int { return 3 }

func (p *PolyCurve) Degree() int {
	p.mustSegments()
	deg := 0
	for _, seg := range p.segments {
		deg = max(deg, seg.Degree())
	}
	return deg
}

func (p *PolyCurve) SpanCount() int {
	var n int
	for _, seg := range p.segments {
		n += seg.SpanCount()
	}
	return n
}

func (p *PolyCurve) IsPeriodic() bool { return false }

func (p *PolyCurve) IsClosed() bool {
	p.mustSegments()
	return p.StartPoint().Distance(p.EndPoint()) <= DefaultTolerance
}

func (p *PolyCurve) StartPoint() Point {
	p.mustSegments()
	return p.segments[0].StartPoint()
}

func (p *PolyCurve) EndPoint() Point {
	p.mustSegments()
	return p.segments[len(p.segments)-1].EndPoint()
}

// segAt returns the index of the segment whose break span contains t,
// preferring non-degenerate spans.
func (p *PolyCurve) segAt(t float64) int {
	i := sort.SearchFloat64s(p.breaks, t)
	if i > 0 {
		i--
	}
	for i < len(p.segments)-1 && p.breaks[i+1] <= t {
		i++
	}
	return i
}

// localParam maps a composite parameter to a segment index and the segment's
// own parameter.
func (p *PolyCurve) localParam(t float64) (int, float64) {
	i := p.segAt(t)
	span := Interval{p.breaks[i], p.breaks[i+1]}
	return i, p.segments[i].Domain().Denormalize(span.Normalize(t))
}

func (p *PolyCurve) PointAt(t float64) (Point, bool) {
	p.mustSegments()
	t, ok := clampParam(p.Domain(), t)
	if !ok {
		return Point{}, false
	}
	i, local := p.localParam(t)
	return p.segments[i].PointAt(local)
}

func (p *PolyCurve) DerivativesAt(t float64, order int) ([]Vec, bool) {
	p.mustSegments()
	t, ok := clampParam(p.Domain(), t)
	if !ok {
		return nil, false
	}
	i, local := p.localParam(t)
	ders, ok := p.segments[i].DerivativesAt(local, order)
	if !ok {
		return nil, false
	}
	// Chain rule for the affine reparameterization of the segment.
	span := Interval{p.breaks[i], p.breaks[i+1]}
	rate := p.segments[i].Domain().Length() / span.Length()
	scale := 1.0
	for k := 1; k < len(ders); k++ {
		scale *= rate
		ders[k] = ders[k].Mul(scale)
	}
	return ders, true
}

func (p *PolyCurve) Reverse() {
	n := len(p.segments)
	segs := make([]Curve, n)
	for i, seg := range p.segments {
		seg.Reverse()
		segs[n-1-i] = seg
	}
	m := len(p.breaks)
	breaks := make([]float64, m)
	for i := 0; i < m; i++ {
		breaks[i] = -p.breaks[m-1-i]
	}
	p.segments = segs
	p.breaks = breaks
}

func (p *PolyCurve) Trim(t0, t1 float64) (Curve, bool) {
	p.mustSegments()
	if t0 >= t1 {
		return nil, false
	}
	dom := p.Domain()
	c0, ok0 := clampParam(dom, t0)
	c1, ok1 := clampParam(dom, t1)
	if !ok0 || !ok1 {
		return nil, false
	}

	out := &PolyCurve{breaks: []float64{t0}}
	for i, seg := range p.segments {
		span := Interval{p.breaks[i], p.breaks[i+1]}
		overlap, ok := span.Intersect(Interval{c0, c1})
		if !ok || overlap.IsSingleton() {
			continue
		}
		segDom := seg.Domain()
		l0 := segDom.Denormalize(span.Normalize(overlap.T0))
		l1 := segDom.Denormalize(span.Normalize(overlap.T1))
		var piece Curve
		if l0 <= segDom.T0 && l1 >= segDom.T1 {
			piece = seg.Clone()
		} else {
			piece, ok = seg.Trim(max(l0, segDom.T0), min(l1, segDom.T1))
			if !ok {
				return nil, false
			}
		}
		out.segments = append(out.segments, piece)
		// Keep the composite positions of the original so that evaluation on
		// the trimmed curve coincides with the original parameterization.
		out.breaks = append(out.breaks, overlap.T1)
	}
	if len(out.segments) == 0 {
		return nil, false
	}
	out.breaks[len(out.breaks)-1] = t1
	return out, true
}

func (p *PolyCurve) Split(t float64) (Curve, Curve, bool) {
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

func (p *PolyCurve) Length(accuracy float64) float64 {
	segAccuracy := accuracy / float64(max(len(p.segments), 1))
	var sum float64
	for _, seg := range p.segments {
		sum += seg.Length(segAccuracy)
	}
	return sum
}

func (p *PolyCurve) Transform(x Xform) {
	for _, seg := range p.segments {
		seg.Transform(x)
	}
}

func (p *PolyCurve) BoundingBox() Box {
	p.mustSegments()
	b := p.segments[0].BoundingBox()
	for _, seg := range p.segments[1:] {
		b = b.Union(seg.BoundingBox())
	}
	return b
}

func (p *PolyCurve) Flattened(tolerance float64) ([]Point, []float64) {
	p.mustSegments()
	var pts []Point
	var params []float64
	for i, seg := range p.segments {
		span := Interval{p.breaks[i], p.breaks[i+1]}
		segDom := seg.Domain()
		sp, su := seg.Flattened(tolerance)
		start := 0
		if i > 0 {
			// The segment's first vertex repeats the previous end.
			start = 1
		}
		for j := start; j < len(sp); j++ {
			pts = append(pts, sp[j])
			params = append(params, span.Denormalize(segDom.Normalize(su[j])))
		}
	}
	return pts, params
}

func (p *PolyCurve) Clone() Curve {
	out := &PolyCurve{
		segments: make([]Curve, len(p.segments)),
		breaks:   make([]float64, len(p.breaks)),
	}
	for i, seg := range p.segments {
		out.segments[i] = seg.Clone()
	}
	copy(out.breaks, p.breaks)
	return out
}

// IsContinuous reports whether consecutive segments connect within tolerance.
func (p *PolyCurve) IsContinuous(tolerance float64) bool {
	for i := 1; i < len(p.segments); i++ {
		if p.segments[i-1].EndPoint().Distance(p.segments[i].StartPoint()) > tolerance {
			return false
		}
	}
	return true
}
