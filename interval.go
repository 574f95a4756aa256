package curve

import (
	"fmt"
	"math"
)

// Interval is a closed parameter interval [T0, T1].
//
// A well formed interval has T0 ≤ T1. Reversing a curve maps its domain
// [a, b] to [−b, −a], which preserves that ordering.
type Interval struct {
	T0 float64
	T1 float64
}

func (in Interval) String() string {
	return fmt.Sprintf("[%g, %g]", in.T0, in.T1)
}

// Length returns T1 − T0.
func (in Interval) Length() float64 {
	return in.T1 - in.T0
}

// Mid returns the midpoint of the interval.
func (in Interval) Mid() float64 {
	return 0.5 * (in.T0 + in.T1)
}

// IsValid reports whether the interval is well formed and finite.
func (in Interval) IsValid() bool {
	return in.T0 <= in.T1 &&
		!math.IsNaN(in.T0) && !math.IsNaN(in.T1) &&
		!math.IsInf(in.T0, 0) && !math.IsInf(in.T1, 0)
}

// IsSingleton reports whether the interval has zero length.
func (in Interval) IsSingleton() bool {
	return in.T0 == in.T1
}

// Reversed returns the interval of a reversed parameterization, [−T1, −T0].
func (in Interval) Reversed() Interval {
	return Interval{T0: -in.T1, T1: -in.T0}
}

// Contains reports whether t lies in the interval, allowing it to miss either
// bound by up to tolerance.
func (in Interval) Contains(t float64, tolerance float64) bool {
	return t >= in.T0-tolerance && t <= in.T1+tolerance
}

// Clamp returns t clamped to the interval.
func (in Interval) Clamp(t float64) float64 {
	return min(max(t, in.T0), in.T1)
}

// Normalize maps t affinely from the interval onto [0, 1]. A singleton
// interval maps everything to 0.
func (in Interval) Normalize(t float64) float64 {
	if in.IsSingleton() {
		return 0
	}
	return (t - in.T0) / (in.T1 - in.T0)
}

// Denormalize maps s affinely from [0, 1] onto the interval.
func (in Interval) Denormalize(s float64) float64 {
	// Evaluating as a lerp keeps the endpoints exact.
	return in.T0 + s*(in.T1-in.T0)
}

// Intersect returns the overlap of two intervals, if any.
func (in Interval) Intersect(o Interval) (Interval, bool) {
	t0 := max(in.T0, o.T0)
	t1 := min(in.T1, o.T1)
	if t0 > t1 {
		return Interval{}, false
	}
	return Interval{t0, t1}, true
}
