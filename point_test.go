package curve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(1, 2, 3)
	b := Pt(4, 6, 3)
	diff(t, V(3, 4, 0), b.Sub(a))
	approx(t, 5, a.Distance(b), 1e-15)
	approx(t, 25, a.DistanceSquared(b), 1e-15)
	diff(t, Pt(2.5, 4, 3), a.Midpoint(b))
	diff(t, Pt(1, 2, 3), a.Lerp(b, 0))
	diff(t, Pt(4, 6, 3), a.Lerp(b, 1))
	diff(t, b, a.Translate(b.Sub(a)))
}

func TestVecCross(t *testing.T) {
	diff(t, V(0, 0, 1), V(1, 0, 0).Cross(V(0, 1, 0)))
	diff(t, V(0, 0, -1), V(0, 1, 0).Cross(V(1, 0, 0)))
	diff(t, V(0, 0, 0), V(2, 4, 6).Cross(V(1, 2, 3)))

	// a × b is orthogonal to both factors.
	a := V(1, 2, 3)
	b := V(-2, 0.5, 4)
	c := a.Cross(b)
	approx(t, 0, c.Dot(a), 1e-12)
	approx(t, 0, c.Dot(b), 1e-12)
}

func TestVecNormalize(t *testing.T) {
	v := V(3, 0, 4).Normalize()
	approx(t, 1, v.Hypot(), 1e-15)
	diff(t, V(0.6, 0, 0.8), v)
}

func TestVecIsParallel(t *testing.T) {
	if !V(1, 1, 0).IsParallel(V(2, 2, 0), 1e-9) {
		t.Error("expected scaled vectors to be parallel")
	}
	if !V(1, 1, 0).IsParallel(V(-3, -3, 0), 1e-9) {
		t.Error("expected opposite vectors to be parallel")
	}
	if V(1, 0, 0).IsParallel(V(1, 0.1, 0), 1e-9) {
		t.Error("expected tilted vectors not to be parallel")
	}
}

func TestPointNonFinite(t *testing.T) {
	if Pt(1, 2, 3).IsNaN() || Pt(1, 2, 3).IsInf() {
		t.Error("expected a finite point to be finite")
	}
	if !Pt(math.NaN(), 0, 0).IsNaN() {
		t.Error("expected NaN to be detected")
	}
	if !Pt(0, math.Inf(1), 0).IsInf() {
		t.Error("expected Inf to be detected")
	}
}
