package curve

// Join merges curve segments into as few continuous curves as possible.
// Segment ends within tolerance of each other connect; a tolerance of zero or
// less means [DefaultJoinTolerance]. Unless preserveDirection is set, a
// segment may be reversed to make a connection. Segments that connect to
// nothing are returned unchanged, and the input curves are never mutated.
func Join(curves []Curve, tolerance float64, preserveDirection bool) []Curve {
	for _, c := range curves {
		if c == nil {
			panic("curve: Join called with nil curve")
		}
	}
	if tolerance <= 0 {
		tolerance = DefaultJoinTolerance
	}

	pool := make([]Curve, len(curves))
	for i, c := range curves {
		pool[i] = c.Clone()
	}
	used := make([]bool, len(pool))

	var out []Curve
	for i := range pool {
		if used[i] {
			continue
		}
		used[i] = true
		chain := []Curve{pool[i]}

		// Grow at the tail, then at the head.
		for {
			if chainClosed(chain, tolerance) {
				break
			}
			j, flip := findConnection(pool, used, chain[len(chain)-1].EndPoint(), false, preserveDirection, tolerance)
			if j == -1 {
				break
			}
			used[j] = true
			if flip {
				pool[j].Reverse()
			}
			chain = append(chain, pool[j])
		}
		for {
			if chainClosed(chain, tolerance) {
				break
			}
			j, flip := findConnection(pool, used, chain[0].StartPoint(), true, preserveDirection, tolerance)
			if j == -1 {
				break
			}
			used[j] = true
			if flip {
				pool[j].Reverse()
			}
			chain = append([]Curve{pool[j]}, chain...)
		}

		if len(chain) == 1 {
			out = append(out, chain[0])
			continue
		}
		joined := NewPolyCurve()
		for _, seg := range chain {
			joined.appendWithin(seg, tolerance)
		}
		out = append(out, joined)
	}
	return out
}

func chainClosed(chain []Curve, tolerance float64) bool {
	return chain[0].StartPoint().Distance(chain[len(chain)-1].EndPoint()) <= tolerance
}

// findConnection looks for an unused curve that connects to the given chain
// end: for the tail one whose start meets it, for the head one whose end
// does. It picks the closest candidate and reports whether it must be
// reversed first.
func findConnection(pool []Curve, used []bool, at Point, head, preserveDirection bool, tolerance float64) (int, bool) {
	best := -1
	flip := false
	bestDist := tolerance
	for j, c := range pool {
		if used[j] {
			continue
		}
		near, far := c.StartPoint(), c.EndPoint()
		if head {
			near, far = far, near
		}
		if d := near.Distance(at); d <= bestDist {
			best, flip, bestDist = j, false, d
		}
		if preserveDirection {
			continue
		}
		if d := far.Distance(at); d < bestDist {
			best, flip, bestDist = j, true, d
		}
	}
	return best, flip
}
