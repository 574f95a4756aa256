package curve

import (
	"math"
	"testing"
)

func TestDivideByCountLine(t *testing.T) {
	l := NewLineCurve(Pt(0, 0, 0), Pt(10, 0, 0))
	params, ok := DivideByCount(l, 5, true)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	diff(t, 6, len(params))
	for i, u := range params {
		approxPt(t, Pt(2*float64(i), 0, 0), mustPointAt(t, l, u), 1e-6)
	}

	params, ok = DivideByCount(l, 5, false)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	diff(t, 4, len(params))
	approxPt(t, Pt(2, 0, 0), mustPointAt(t, l, params[0]), 1e-6)
}

func TestDivideByCountArc(t *testing.T) {
	a := NewArcCurve(PlaneXY(), 2, 0, math.Pi)
	params, ok := DivideByCount(a, 4, true)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	diff(t, 5, len(params))
	// Equal arc length spacing on a circular arc is equal angle spacing.
	prev := mustPointAt(t, a, params[0])
	for _, u := range params[1:] {
		pt := mustPointAt(t, a, u)
		approx(t, 2*2*math.Sin(math.Pi/8), prev.Distance(pt), 1e-4)
		prev = pt
	}
}

func TestDivideByCountClosed(t *testing.T) {
	c := NewCircleCurve(PlaneXY(), 1)
	params, ok := DivideByCount(c, 4, true)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	diff(t, 4, len(params))
	approxPt(t, Pt(1, 0, 0), mustPointAt(t, c, params[0]), 1e-4)
	approxPt(t, Pt(0, 1, 0), mustPointAt(t, c, params[1]), 1e-4)
	approxPt(t, Pt(-1, 0, 0), mustPointAt(t, c, params[2]), 1e-4)
	approxPt(t, Pt(0, -1, 0), mustPointAt(t, c, params[3]), 1e-4)

	if _, ok := DivideByCount(c, 1, true); ok {
		t.Error("expected dividing a closed curve into one piece to fail")
	}
}

func TestDivideByCountInvalid(t *testing.T) {
	l := NewLineCurve(Pt(0, 0, 0), Pt(1, 0, 0))
	if _, ok := DivideByCount(l, 0, true); ok {
		t.Error("expected zero pieces to fail")
	}
	degenerate := NewLineCurve(Pt(1, 1, 1), Pt(1, 1, 1))
	if _, ok := DivideByCount(degenerate, 2, true); ok {
		t.Error("expected a degenerate curve to fail")
	}
}

func TestDivideByLength(t *testing.T) {
	l := NewLineCurve(Pt(0, 0, 0), Pt(10, 0, 0))
	params, ok := DivideByLength(l, 3, false)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	// 3, 6, 9; the leftover meter is dropped.
	diff(t, 3, len(params))
	approxPt(t, Pt(3, 0, 0), mustPointAt(t, l, params[0]), 1e-6)
	approxPt(t, Pt(9, 0, 0), mustPointAt(t, l, params[2]), 1e-6)

	params, ok = DivideByLength(l, 3, true)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	diff(t, 4, len(params))
	approxPt(t, Pt(0, 0, 0), mustPointAt(t, l, params[0]), 1e-6)

	if _, ok := DivideByLength(l, 0, false); ok {
		t.Error("expected a zero length to fail")
	}
	if _, ok := DivideByLength(l, 11, false); ok {
		t.Error("expected a length beyond the curve to fail")
	}
}

func TestDivideEquidistant(t *testing.T) {
	// On a straight line, chordal and arc length spacing agree.
	l := NewLineCurve(Pt(0, 0, 0), Pt(10, 0, 0))
	pts, ok := DivideEquidistant(l, 4)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	diff(t, 3, len(pts))
	approxPt(t, Pt(0, 0, 0), pts[0], 1e-9)
	approxPt(t, Pt(4, 0, 0), pts[1], 1e-9)
	approxPt(t, Pt(8, 0, 0), pts[2], 1e-9)

	// On an arc, consecutive points are a constant chord apart, which is a
	// shorter step in arc length.
	a := NewArcCurve(PlaneXY(), 3, 0, math.Pi)
	pts, ok = DivideEquidistant(a, 1)
	if !ok {
		t.Fatal("expected the division to succeed")
	}
	if len(pts) < 8 {
		t.Fatalf("got %d points, expected at least 8", len(pts))
	}
	approxPt(t, Pt(3, 0, 0), pts[0], 1e-9)
	for i := 1; i < len(pts); i++ {
		approx(t, 1, pts[i-1].Distance(pts[i]), 1e-4)
	}

	if _, ok := DivideEquidistant(l, 20); ok {
		t.Error("expected a distance beyond the curve to fail")
	}
}
