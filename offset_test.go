package curve

import (
	"math"
	"testing"
)

func TestOffsetLine(t *testing.T) {
	pl := PlaneXY()
	l := NewLineCurve(Pt(0, 0, 0), Pt(4, 0, 0))
	out := Offset(l, pl, 1, 1e-6)
	if len(out) != 1 {
		t.Fatalf("got %d curves, expected 1", len(out))
	}
	// Positive distance offsets to the left of the travel direction.
	approxPt(t, Pt(0, 1, 0), out[0].StartPoint(), 1e-9)
	approxPt(t, Pt(4, 1, 0), out[0].EndPoint(), 1e-9)

	out = Offset(l, pl, -1, 1e-6)
	if len(out) != 1 {
		t.Fatalf("got %d curves, expected 1", len(out))
	}
	approxPt(t, Pt(0, -1, 0), out[0].StartPoint(), 1e-9)
}

func TestOffsetCircle(t *testing.T) {
	pl := PlaneXY()
	c := NewCircleCurve(pl, 2)

	// The circle runs counterclockwise, so its left side faces the center.
	shrunk := Offset(c, pl, 1, 1e-4)
	if len(shrunk) != 1 {
		t.Fatalf("got %d curves, expected 1", len(shrunk))
	}
	if !shrunk[0].IsClosed() {
		t.Error("expected the offset of a circle to be closed")
	}
	pts, _ := shrunk[0].Flattened(1e-6)
	for _, pt := range pts {
		approx(t, 1, pt.Sub(Pt(0, 0, 0)).Hypot(), 1e-3)
	}

	grown := Offset(c, pl, -1, 1e-4)
	if len(grown) != 1 {
		t.Fatalf("got %d curves, expected 1", len(grown))
	}
	pts, _ = grown[0].Flattened(1e-6)
	for _, pt := range pts {
		approx(t, 3, pt.Sub(Pt(0, 0, 0)).Hypot(), 1e-3)
	}

	// Offsetting inwards past the radius collapses the circle.
	if out := Offset(c, pl, 2.5, 1e-4); len(out) != 0 {
		t.Errorf("got %d curves, expected the offset to collapse", len(out))
	}
}

func TestOffsetSquare(t *testing.T) {
	pl := PlaneXY()
	// Counterclockwise unit square; its left side is the inside.
	sq := NewPolylineCurve([]Point{
		Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(0, 1, 0), Pt(0, 0, 0),
	})
	in := Offset(sq, pl, 0.25, 1e-6)
	if len(in) != 1 {
		t.Fatalf("got %d curves, expected 1", len(in))
	}
	b := in[0].BoundingBox()
	approxPt(t, Pt(0.25, 0.25, 0), b.Min, 1e-9)
	approxPt(t, Pt(0.75, 0.75, 0), b.Max, 1e-9)
	// A point inside the inward offset is inside the source too.
	if got := Containment(in[0], pl, Pt(0.5, 0.5, 0), 1e-6); got != PointInside {
		t.Errorf("got %v, expected %v", got, PointInside)
	}
	if got := Containment(sq, pl, Pt(0.5, 0.5, 0), 1e-6); got != PointInside {
		t.Errorf("got %v, expected %v", got, PointInside)
	}

	outside := Offset(sq, pl, -0.5, 1e-6)
	if len(outside) != 1 {
		t.Fatalf("got %d curves, expected 1", len(outside))
	}
	b = outside[0].BoundingBox()
	approxPt(t, Pt(-0.5, -0.5, 0), b.Min, 1e-9)
	approxPt(t, Pt(1.5, 1.5, 0), b.Max, 1e-9)

	// Offsetting inwards by more than half the side collapses the square.
	if out := Offset(sq, pl, 0.75, 1e-6); len(out) != 0 {
		t.Errorf("got %d curves, expected the offset to collapse", len(out))
	}
}

func TestOffsetConcaveCorner(t *testing.T) {
	pl := PlaneXY()
	// A V with a sharp bottom, offset towards the concave side. The corner
	// gets trimmed where the two offset segments meet, and the result keeps
	// the full offset distance everywhere.
	v := NewPolylineCurve([]Point{
		Pt(-4, 4, 0), Pt(0, 0, 0), Pt(4, 4, 0),
	})
	out := Offset(v, pl, 1, 1e-6)
	if len(out) == 0 {
		t.Fatal("expected surviving offset pieces")
	}
	// Every surviving piece keeps its distance from the source.
	src := []pt2{{-4, 4}, {0, 0}, {4, 4}}
	for _, piece := range out {
		pts, _ := piece.Flattened(1e-6)
		for _, pt := range pts {
			d := distToPolyline2(src, pt2{pt.X, pt.Y}, false)
			if d < 1-1e-6 {
				t.Fatalf("got a piece point %v at distance %v from the source", pt, d)
			}
		}
	}
}

func TestOffsetNonPlanar(t *testing.T) {
	pl := PlaneXY()
	slanted := NewLineCurve(Pt(0, 0, 0), Pt(1, 0, 1))
	if out := Offset(slanted, pl, 0.5, 1e-6); len(out) != 0 {
		t.Errorf("got %d curves, expected none for an off-plane curve", len(out))
	}
}

func TestOffsetZeroDistance(t *testing.T) {
	pl := PlaneXY()
	l := NewLineCurve(Pt(0, 0, 0), Pt(1, 0, 0))
	out := Offset(l, pl, 0, 1e-6)
	if len(out) != 1 {
		t.Fatalf("got %d curves, expected a copy", len(out))
	}
	approx(t, 1, out[0].Length(1e-9), 1e-12)
}

func TestOffsetDirectionOnArc(t *testing.T) {
	pl := PlaneXY()
	a := NewArcCurve(pl, 2, 0, math.Pi)
	// Travelling counterclockwise, the left side faces the center.
	in := Offset(a, pl, 1, 1e-4)
	if len(in) != 1 {
		t.Fatalf("got %d curves, expected 1", len(in))
	}
	pts, _ := in[0].Flattened(1e-6)
	for _, pt := range pts {
		approx(t, 1, pt.Sub(Pt(0, 0, 0)).Hypot(), 1e-3)
	}
}
