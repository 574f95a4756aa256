package curve

import (
	"strings"
	"testing"
)

func TestSVGOpenCurve(t *testing.T) {
	l := NewLineCurve(Pt(0, 0, 0), Pt(2, 1, 0))
	got := SVG(l, PlaneXY(), SVGOptions{})
	if got != "M0,0 L2,1" {
		t.Errorf("got %q, expected %q", got, "M0,0 L2,1")
	}
}

func TestSVGClosedCurve(t *testing.T) {
	tri := NewPolylineCurve([]Point{
		Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 0),
	})
	got := SVG(tri, PlaneXY(), SVGOptions{})
	if got != "M0,0 L1,0 L0,1 Z" {
		t.Errorf("got %q, expected %q", got, "M0,0 L1,0 L0,1 Z")
	}
}

func TestSVGMaxPrecision(t *testing.T) {
	l := NewLineCurve(Pt(0.123456, 0.5, 0), Pt(1.25, 2.5, 0))
	got := SVG(l, PlaneXY(), SVGOptions{MaxPrecision: 2})
	if got != "M0.12,0.5 L1.25,2.5" {
		t.Errorf("got %q, expected %q", got, "M0.12,0.5 L1.25,2.5")
	}
}

func TestSVGProjection(t *testing.T) {
	// A curve drawn in a lifted plane projects to that plane's uv
	// coordinates, independent of where the plane sits in space.
	pl := NewPlaneFromFrame(Pt(10, 20, 30), V(0, 1, 0), V(0, 0, 1))
	l := NewLineCurve(pl.PointAt(3, 4), pl.PointAt(5, 6))
	got := SVG(l, pl, SVGOptions{})
	if got != "M3,4 L5,6" {
		t.Errorf("got %q, expected %q", got, "M3,4 L5,6")
	}
}

func TestSVGArcFlattening(t *testing.T) {
	a := NewArcCurve(PlaneXY(), 1, 0, 1)
	got := SVG(a, PlaneXY(), SVGOptions{Tolerance: 1e-2})
	if !strings.HasPrefix(got, "M1,0 L") {
		t.Errorf("got %q, expected it to start with %q", got, "M1,0 L")
	}
	if strings.HasSuffix(got, " Z") {
		t.Errorf("got %q, expected no close-path command on an open arc", got)
	}
	if n := strings.Count(got, "L"); n < 2 {
		t.Errorf("got %d line commands, expected at least 2", n)
	}
}
