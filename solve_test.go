package curve

import (
	"math"
	"slices"
	"testing"
)

func verifyRoots(t *testing.T, roots []float64, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got roots %v, expected %v", roots, expected)
	}
	roots = slices.Clone(roots)
	slices.Sort(roots)
	for i, r := range roots {
		if math.Abs(r-expected[i]) > 1e-12 {
			t.Errorf("got roots %v, expected %v", roots, expected)
			return
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	roots, n := SolveQuadratic(-5, 0, 5)
	verifyRoots(t, roots[:n], []float64{-1, 1})

	roots, n = SolveQuadratic(25, -10, 1)
	verifyRoots(t, roots[:n], []float64{5})

	_, n = SolveQuadratic(1, 0, 1)
	if n != 0 {
		t.Errorf("got %d roots, expected none", n)
	}

	// Degenerates to a linear equation.
	roots, n = SolveQuadratic(-5, 1, 0)
	verifyRoots(t, roots[:n], []float64{5})
}

func TestSolveCubic(t *testing.T) {
	// (x - 1)(x - 2)(x - 3) = x³ - 6x² + 11x - 6
	roots, n := SolveCubic(-6, 11, -6, 1)
	verifyRoots(t, roots[:n], []float64{1, 2, 3})

	// x³ + 1 has the single real root -1.
	roots, n = SolveCubic(1, 0, 0, 1)
	verifyRoots(t, roots[:n], []float64{-1})

	// Degenerates to a quadratic.
	roots, n = SolveCubic(-1, 0, 1, 0)
	verifyRoots(t, roots[:n], []float64{-1, 1})
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	x := SolveITP(f, 1, 2, 1e-12, 0, 0.2, f(1), f(2))
	approx(t, 0, f(x), 1e-9)

	// Cube root of 63, from the method's literature.
	g := func(x float64) float64 { return x*x*x - 63 }
	x = SolveITP(g, 3, 4, 1e-12, 0, 0.2, g(3), g(4))
	approx(t, math.Cbrt(63), x, 1e-9)
}

func TestGaussQuad(t *testing.T) {
	// ∫ sin x over [0, π] = 2.
	got := gaussQuad(math.Sin, 0, math.Pi, gaussLegendreCoeffs16Half[:])
	approx(t, 2, got, 1e-12)

	// Polynomials up to degree 15 are exact with 8 points.
	poly := func(x float64) float64 { return 3*x*x*x - 2*x + 1 }
	got = gaussQuad(poly, -1, 2, gaussLegendreCoeffs8Half[:])
	// Antiderivative: 0.75 x⁴ − x² + x evaluated on [−1, 2].
	want := (0.75*16 - 4 + 2) - (0.75 - 1 - 1)
	approx(t, want, got, 1e-12)
}
