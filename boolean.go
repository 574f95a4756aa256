package curve

import (
	"math"
	"slices"
)

// booleanOp selects the region combination rule.
type booleanOp int

const (
	opUnion booleanOp = iota
	opIntersection
	opDifference
)

// BooleanUnion returns the outline of the union of the regions bounded by
// two coplanar closed curves. Disjoint inputs yield both outlines. An empty
// result means the inputs aren't closed or coplanar within tolerance.
func BooleanUnion(a, b Curve, tolerance float64) []Curve {
	return booleanCombine(a, b, opUnion, tolerance)
}

// BooleanIntersection returns the outline of the intersection of the regions
// bounded by two coplanar closed curves. An empty result means the regions
// don't overlap, or the inputs aren't closed or coplanar within tolerance.
func BooleanIntersection(a, b Curve, tolerance float64) []Curve {
	return booleanCombine(a, b, opIntersection, tolerance)
}

// BooleanDifference returns the outline of the region bounded by a with the
// region bounded by b removed. When b punches a hole through the middle of a,
// the result contains the hole's outline (traversed opposite to the outer
// loop) alongside the outer one. An empty result means b covers a entirely,
// or the inputs aren't closed or coplanar within tolerance.
func BooleanDifference(a, b Curve, tolerance float64) []Curve {
	return booleanCombine(a, b, opDifference, tolerance)
}

func booleanCombine(a, b Curve, op booleanOp, tolerance float64) []Curve {
	if a == nil || b == nil {
		panic("curve: boolean operation on nil curve")
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if !a.IsClosed() || !b.IsClosed() {
		return nil
	}
	ftol := min(0.25*tolerance, 1e-4)
	ptsA, _ := a.Flattened(ftol)
	ptsB, _ := b.Flattened(ftol)
	pl, ok := IsPlanar(append(slices.Clone(ptsA), ptsB...), tolerance)
	if !ok {
		return nil
	}

	ringA := toRing(ptsA, pl)
	ringB := toRing(ptsB, pl)
	if len(ringA) < 3 || len(ringB) < 3 {
		return nil
	}

	cutA, cutB := mutualCuts(ringA, ringB)

	var edges []ringEdge
	edges = append(edges, selectEdges(cutA, ringB, op, false, tolerance)...)
	edges = append(edges, selectEdges(cutB, ringA, op, true, tolerance)...)

	loops := stitchLoops(edges)
	var out []Curve
	for _, loop := range loops {
		if math.Abs(polygonArea(loop)) <= tolerance*tolerance {
			continue
		}
		world := make([]Point, len(loop)+1)
		for i, p := range loop {
			world[i] = pl.PointAt(p.X, p.Y)
		}
		world[len(loop)] = world[0]
		out = append(out, NewPolylineCurve(world))
	}
	return out
}

// toRing projects a closed flattened curve onto the plane and orients it
// counterclockwise.
func toRing(pts []Point, pl Plane) []pt2 {
	ring := make([]pt2, 0, len(pts))
	for _, pt := range pts[:len(pts)-1] {
		ring = append(ring, pl.uv(pt))
	}
	ring = dedupePoly(ring, 1e-12)
	if len(ring) >= 3 && polygonArea(ring) < 0 {
		slices.Reverse(ring)
	}
	return ring
}

// mutualCuts inserts the crossing points of the two rings into both, so each
// returned ring's edges lie entirely inside or outside the other region.
func mutualCuts(ringA, ringB []pt2) ([]pt2, []pt2) {
	cutsA := make(map[int][]float64)
	cutsB := make(map[int][]float64)
	na, nb := len(ringA), len(ringB)
	for i := 0; i < na; i++ {
		a0 := ringA[i]
		a1 := ringA[(i+1)%na]
		for j := 0; j < nb; j++ {
			b0 := ringB[j]
			b1 := ringB[(j+1)%nb]
			ta, tb, ok := segIntersect2(a0, a1, b0, b1)
			if !ok {
				continue
			}
			cutsA[i] = append(cutsA[i], ta)
			cutsB[j] = append(cutsB[j], tb)
		}
	}
	return insertCuts(ringA, cutsA), insertCuts(ringB, cutsB)
}

func insertCuts(ring []pt2, cuts map[int][]float64) []pt2 {
	if len(cuts) == 0 {
		return ring
	}
	n := len(ring)
	out := make([]pt2, 0, n+len(cuts))
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		out = append(out, a)
		ts := cuts[i]
		slices.Sort(ts)
		for _, t := range ts {
			out = append(out, a.lerp(b, t))
		}
	}
	return dedupePoly(out, 1e-12)
}

type ringEdge struct {
	a, b pt2
}

// selectEdges classifies every edge of the ring against the other region and
// keeps the ones the operation calls for. Edges of the second operand are
// reversed for a difference, so the hole outline runs opposite to the outer
// loop.
func selectEdges(ring []pt2, other []pt2, op booleanOp, second bool, tolerance float64) []ringEdge {
	var out []ringEdge
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		mid := a.lerp(b, 0.5)
		var inside bool
		if distToPolyline2(other, mid, true) <= tolerance {
			// Shared boundary: count it once, by keeping the second operand's
			// copy and dropping the first's for union, and vice versa for
			// intersection.
			inside = !second
		} else {
			inside = polygonWinding(other, mid) != 0
		}

		var keep bool
		switch op {
		case opUnion:
			keep = !inside
		case opIntersection:
			keep = inside
		case opDifference:
			if second {
				keep = inside
			} else {
				keep = !inside
			}
		}
		if !keep {
			continue
		}
		if op == opDifference && second {
			a, b = b, a
		}
		out = append(out, ringEdge{a, b})
	}
	return out
}

// stitchLoops chains edges end to start into closed loops. Chains that can't
// be closed are dropped.
func stitchLoops(edges []ringEdge) [][]pt2 {
	const eps = 1e-9
	used := make([]bool, len(edges))
	var loops [][]pt2
	for i := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		loop := []pt2{edges[i].a, edges[i].b}
		for {
			tail := loop[len(loop)-1]
			if tail.distance(loop[0]) <= eps {
				loops = append(loops, loop[:len(loop)-1])
				break
			}
			next := -1
			for j := range edges {
				if !used[j] && edges[j].a.distance(tail) <= eps {
					next = j
					break
				}
			}
			if next == -1 {
				// Open chain; discard.
				break
			}
			used[next] = true
			loop = append(loop, edges[next].b)
		}
	}
	return loops
}
