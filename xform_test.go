package curve

import (
	"math"
	"testing"
)

func TestXformTranslate(t *testing.T) {
	x := XTranslate(V(1, -2, 3))
	diff(t, Pt(2, 0, 3), x.ApplyPoint(Pt(1, 2, 0)))
	// Vectors are unaffected by translation.
	diff(t, V(1, 2, 0), x.ApplyVec(V(1, 2, 0)))
	approx(t, 1, x.Scale(), 1e-15)
}

func TestXformScale(t *testing.T) {
	x := XScale(Pt(1, 1, 1), 2)
	diff(t, Pt(1, 1, 1), x.ApplyPoint(Pt(1, 1, 1)))
	diff(t, Pt(3, 1, 1), x.ApplyPoint(Pt(2, 1, 1)))
	approx(t, 2, x.Scale(), 1e-12)
}

func TestXformRotate(t *testing.T) {
	x := XRotate(Pt(0, 0, 0), V(0, 0, 1), 0.5*math.Pi)
	approxPt(t, Pt(0, 1, 0), x.ApplyPoint(Pt(1, 0, 0)), 1e-12)
	approxPt(t, Pt(-1, 0, 0), x.ApplyPoint(Pt(0, 1, 0)), 1e-12)
	approx(t, 1, x.Scale(), 1e-12)

	// Rotation about an arbitrary axis preserves distances.
	r := XRotate(Pt(1, 2, 3), V(1, 1, -0.5), 1.234)
	a := Pt(4, -1, 0)
	b := Pt(-2, 0.5, 6)
	approx(t, a.Distance(b), r.ApplyPoint(a).Distance(r.ApplyPoint(b)), 1e-12)
	// The rotation center is fixed.
	approxPt(t, Pt(1, 2, 3), r.ApplyPoint(Pt(1, 2, 3)), 1e-12)
}

func TestXformThen(t *testing.T) {
	first := XRotate(Pt(0, 0, 0), V(0, 0, 1), 0.3)
	second := XTranslate(V(5, 0, -1))
	combined := first.Then(second)
	for _, pt := range []Point{{}, Pt(1, 2, 3), Pt(-4, 0.5, 2)} {
		approxPt(t, second.ApplyPoint(first.ApplyPoint(pt)), combined.ApplyPoint(pt), 1e-12)
	}
}

func TestXformApplyPlane(t *testing.T) {
	pl := NewPlaneFromFrame(Pt(1, 0, 0), V(0, 1, 0), V(0, 0, 1))
	x := XRotate(Pt(0, 0, 0), V(1, 0, 0), 0.7).Then(XScale(Pt(0, 0, 0), 3))
	moved := x.ApplyPlane(pl)
	// The frame stays orthonormal even under scaling.
	approx(t, 1, moved.XAxis.Hypot(), 1e-12)
	approx(t, 0, moved.XAxis.Dot(moved.YAxis), 1e-12)
	approxPt(t, x.ApplyPoint(pl.Origin), moved.Origin, 1e-12)
	approx(t, 3, x.Scale(), 1e-12)
}
