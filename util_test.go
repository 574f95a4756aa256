package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, want, got, tolerance float64) {
	t.Helper()
	if math.Abs(want-got) > tolerance {
		t.Errorf("got %v, expected %v (±%v)", got, want, tolerance)
	}
}

func approxPt(t *testing.T, want, got Point, tolerance float64) {
	t.Helper()
	if want.Distance(got) > tolerance {
		t.Errorf("got %v, expected %v (±%v)", got, want, tolerance)
	}
}

// mustPointAt evaluates the curve, failing the test on an invalid parameter.
func mustPointAt(t *testing.T, c Curve, u float64) Point {
	t.Helper()
	pt, ok := c.PointAt(u)
	if !ok {
		t.Fatalf("PointAt(%v) failed, domain %v", u, c.Domain())
	}
	return pt
}

// checkReversal verifies that reversing a clone maps the domain [a, b] to
// [−b, −a] and evaluation at −t yields the point previously at t.
func checkReversal(t *testing.T, c Curve) {
	t.Helper()
	r := c.Clone()
	r.Reverse()
	dom := c.Domain()
	diff(t, dom.Reversed(), r.Domain())
	for _, s := range []float64{0, 0.25, 0.5, 0.8, 1} {
		u := dom.Denormalize(s)
		approxPt(t, mustPointAt(t, c, u), mustPointAt(t, r, -u), 1e-9)
	}
}

// checkTrimCoincidence verifies that a trimmed curve evaluates to the same
// points as the original over the kept sub-interval.
func checkTrimCoincidence(t *testing.T, c Curve, t0, t1 float64) {
	t.Helper()
	trimmed, ok := c.Trim(t0, t1)
	if !ok {
		t.Fatalf("Trim(%v, %v) failed, domain %v", t0, t1, c.Domain())
	}
	diff(t, Interval{t0, t1}, trimmed.Domain())
	for _, s := range []float64{0, 0.3, 0.5, 0.75, 1} {
		u := trimmed.Domain().Denormalize(s)
		approxPt(t, mustPointAt(t, c, u), mustPointAt(t, trimmed, u), 1e-9)
	}
}
