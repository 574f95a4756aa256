package curve

import (
	"testing"
)

func TestContainmentCircle(t *testing.T) {
	pl := PlaneXY()
	c := NewCircleCurve(pl, 2)
	for _, tc := range []struct {
		pt   Point
		want PointContainment
	}{
		{Pt(0, 0, 0), PointInside},
		{Pt(1.5, 0.5, 0), PointInside},
		{Pt(3, 0, 0), PointOutside},
		{Pt(-2.5, 2.5, 0), PointOutside},
		{Pt(2, 0, 0), PointCoincident},
		{Pt(0, -2, 0), PointCoincident},
		// Off the plane entirely.
		{Pt(0, 0, 1), PointOutside},
	} {
		if got := Containment(c, pl, tc.pt, 1e-6); got != tc.want {
			t.Errorf("Containment(%v) = %v, expected %v", tc.pt, got, tc.want)
		}
	}
}

func TestContainmentConcavePolygon(t *testing.T) {
	// An L shape: the notch at the top right is outside.
	pl := PlaneXY()
	l := NewPolylineCurve([]Point{
		Pt(0, 0, 0), Pt(4, 0, 0), Pt(4, 2, 0), Pt(2, 2, 0),
		Pt(2, 4, 0), Pt(0, 4, 0), Pt(0, 0, 0),
	})
	for _, tc := range []struct {
		pt   Point
		want PointContainment
	}{
		{Pt(1, 1, 0), PointInside},
		{Pt(3, 1, 0), PointInside},
		{Pt(1, 3, 0), PointInside},
		{Pt(3, 3, 0), PointOutside},
		{Pt(5, 1, 0), PointOutside},
		{Pt(2, 3, 0), PointCoincident},
	} {
		if got := Containment(l, pl, tc.pt, 1e-6); got != tc.want {
			t.Errorf("Containment(%v) = %v, expected %v", tc.pt, got, tc.want)
		}
	}
}

func TestContainmentOpenCurve(t *testing.T) {
	open := NewLineCurve(Pt(0, 0, 0), Pt(1, 0, 0))
	if got := Containment(open, PlaneXY(), Pt(0.5, 0.5, 0), 1e-6); got != PointUnset {
		t.Errorf("got %v, expected Unset for an open curve", got)
	}
}

func TestContainmentTiltedPlane(t *testing.T) {
	pl := NewPlane(Pt(1, 1, 1), V(1, -2, 0.5))
	c := NewCircleCurve(pl, 1)
	if got := Containment(c, pl, Pt(1, 1, 1), 1e-6); got != PointInside {
		t.Errorf("got %v, expected the center to be inside", got)
	}
	outside := pl.PointAt(2, 0)
	if got := Containment(c, pl, outside, 1e-6); got != PointOutside {
		t.Errorf("got %v, expected a far point to be outside", got)
	}
}

func TestPointContainmentString(t *testing.T) {
	diff(t, "Inside", PointInside.String())
	diff(t, "Outside", PointOutside.String())
	diff(t, "Coincident", PointCoincident.String())
	diff(t, "Unset", PointUnset.String())
}
