package curve

// flattenAdaptive approximates a curve by a polyline by recursively bisecting
// parameter spans until every chord stays within tolerance of the curve. The
// seed parameters must be increasing and cover the region of interest;
// refinement never drops a seed, so discontinuities in derivative (knots,
// kinks) should be seeded.
func flattenAdaptive(eval func(t float64) Point, seeds []float64, tolerance float64) ([]Point, []float64) {
	if len(seeds) < 2 {
		panic("curve: flattenAdaptive requires at least two seed parameters")
	}
	pts := []Point{eval(seeds[0])}
	params := []float64{seeds[0]}

	var refine func(t0 float64, p0 Point, t1 float64, p1 Point, depth int)
	refine = func(t0 float64, p0 Point, t1 float64, p1 Point, depth int) {
		tm := 0.5 * (t0 + t1)
		pm := eval(tm)
		// Checking a second, asymmetric sample guards against curves that
		// happen to pass through the chord midpoint.
		tq := t0 + 0.375*(t1-t0)
		pq := eval(tq)
		if depth >= 24 ||
			(distToChord(pm, p0, p1) <= tolerance && distToChord(pq, p0, p1) <= tolerance) {
			pts = append(pts, p1)
			params = append(params, t1)
			return
		}
		refine(t0, p0, tm, pm, depth+1)
		refine(tm, pm, t1, p1, depth+1)
	}

	for i := 1; i < len(seeds); i++ {
		t0, t1 := seeds[i-1], seeds[i]
		if t1 <= t0 {
			continue
		}
		refine(t0, eval(t0), t1, eval(t1), 0)
	}
	return pts, params
}

// distToChord returns the distance from pt to the segment [a, b].
func distToChord(pt, a, b Point) float64 {
	ab := b.Sub(a)
	denom := ab.Hypot2()
	if denom == 0 {
		return pt.Distance(a)
	}
	t := min(max(pt.Sub(a).Dot(ab)/denom, 0), 1)
	return pt.Distance(a.Translate(ab.Mul(t)))
}
