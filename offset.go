package curve

import (
	"math"
	"slices"
)

// Offset offsets a planar curve sideways on its plane and returns the
// resulting pieces. A positive distance offsets towards the left of the
// travel direction (as seen against the plane normal), negative towards the
// right.
//
// This is a many-result operation: when the offset of a curve with kinks
// self-intersects, the invalid regions are cut away and the surviving pieces
// are returned individually. Offsetting away from the center of a closed
// convex curve yields a single closed curve. An empty result means the curve
// doesn't lie on the plane within tolerance, or the offset collapsed
// entirely, as when a closed curve is offset inwards by more than its inner
// radius.
func Offset(c Curve, pl Plane, distance, tolerance float64) []Curve {
	if c == nil {
		panic("curve: Offset called with nil curve")
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if distance == 0 {
		return []Curve{c.Clone()}
	}

	ftol := min(0.25*tolerance, 1e-4)
	pts3, _ := c.Flattened(ftol)
	for _, pt := range pts3 {
		if math.Abs(pl.Elevation(pt)) > tolerance {
			return nil
		}
	}
	closed := c.IsClosed()
	poly := make([]pt2, len(pts3))
	for i, pt := range pts3 {
		poly[i] = pl.uv(pt)
	}
	if closed {
		poly = poly[:len(poly)-1]
	}
	poly = dedupePoly(poly, 1e-12)
	if len(poly) < 2 {
		return nil
	}

	offset := offsetPolyline(poly, closed, distance)
	if len(offset) < 2 {
		return nil
	}

	pieces := splitSelfIntersections(offset, closed)
	var out []Curve
	keep := math.Abs(distance) - tolerance
	for _, piece := range pieces {
		if len(piece) < 2 || !pieceClearsSource(piece, poly, closed, keep) {
			continue
		}
		world := make([]Point, len(piece))
		for i, p := range piece {
			world[i] = pl.PointAt(p.X, p.Y)
		}
		out = append(out, NewPolylineCurve(world))
	}
	return out
}

func dedupePoly(poly []pt2, eps float64) []pt2 {
	out := poly[:0]
	for _, p := range poly {
		if len(out) == 0 || out[len(out)-1].distance(p) > eps {
			out = append(out, p)
		}
	}
	return out
}

// offsetPolyline offsets each segment sideways and joins consecutive
// segments with a miter, falling back to a bevel when the miter would shoot
// off beyond four times the offset distance.
func offsetPolyline(poly []pt2, closed bool, d float64) []pt2 {
	n := len(poly)
	segCount := n - 1
	if closed {
		segCount = n
	}
	type offSeg struct {
		a, b pt2
	}
	segs := make([]offSeg, 0, segCount)
	for i := 0; i < segCount; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		dir := b.sub(a)
		if dir.hypot2() == 0 {
			continue
		}
		normal := dir.perp().normalize().mul(d)
		segs = append(segs, offSeg{a.translate(normal), b.translate(normal)})
	}
	if len(segs) == 0 {
		return nil
	}

	miterLimit := 4 * math.Abs(d)
	var out []pt2
	join := func(s0, s1 offSeg) {
		// Corner between the end of s0 and the start of s1.
		ta, _, ok := lineIntersect2(s0.a, s0.b, s1.a, s1.b)
		if ok {
			m := s0.a.lerp(s0.b, ta)
			if m.distance(s0.b) <= miterLimit {
				out = append(out, m)
				return
			}
		}
		out = append(out, s0.b, s1.a)
	}
	if closed {
		for i, s := range segs {
			next := segs[(i+1)%len(segs)]
			join(s, next)
		}
	} else {
		out = append(out, segs[0].a)
		for i := 0; i < len(segs)-1; i++ {
			join(segs[i], segs[i+1])
		}
		out = append(out, segs[len(segs)-1].b)
	}
	return dedupePoly(out, 1e-12)
}

// lineIntersect2 intersects the infinite lines through [a0, a1] and [b0, b1],
// returning the normalized positions on both.
func lineIntersect2(a0, a1, b0, b1 pt2) (float64, float64, bool) {
	da := a1.sub(a0)
	db := b1.sub(b0)
	denom := da.cross(db)
	if math.Abs(denom) <= 1e-12*da.hypot()*db.hypot() {
		return 0, 0, false
	}
	diff := b0.sub(a0)
	return diff.cross(db) / denom, diff.cross(da) / denom, true
}

// splitSelfIntersections cuts a polyline at every point where it crosses
// itself and returns the pieces. A closed polyline without crossings comes
// back as a single closed piece (first vertex repeated at the end).
func splitSelfIntersections(poly []pt2, closed bool) [][]pt2 {
	n := len(poly)
	segCount := n - 1
	if closed {
		segCount = n
	}
	// cuts[i] holds the normalized positions where segment i gets cut.
	cuts := make(map[int][]float64)
	for i := 0; i < segCount; i++ {
		a0 := poly[i]
		a1 := poly[(i+1)%n]
		for j := i + 2; j < segCount; j++ {
			if closed && i == 0 && j == segCount-1 {
				// Adjacent across the seam.
				continue
			}
			b0 := poly[j]
			b1 := poly[(j+1)%n]
			ta, tb, ok := segIntersect2(a0, a1, b0, b1)
			if !ok {
				continue
			}
			cuts[i] = append(cuts[i], ta)
			cuts[j] = append(cuts[j], tb)
		}
	}
	if len(cuts) == 0 {
		if closed {
			loop := append(append([]pt2(nil), poly...), poly[0])
			return [][]pt2{loop}
		}
		return [][]pt2{poly}
	}

	var pieces [][]pt2
	var cur []pt2
	flush := func() {
		if len(cur) >= 2 {
			pieces = append(pieces, cur)
		}
	}
	cur = []pt2{poly[0]}
	for i := 0; i < segCount; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		ts := cuts[i]
		slices.Sort(ts)
		for _, t := range ts {
			x := a.lerp(b, t)
			cur = append(cur, x)
			flush()
			cur = []pt2{x}
		}
		cur = append(cur, b)
	}
	flush()
	return pieces
}

// pieceClearsSource reports whether every sampled point of the piece stays at
// least keep away from the source polyline. Offset pieces that dip closer
// than the offset distance belong to cut-away regions.
func pieceClearsSource(piece []pt2, source []pt2, closedSource bool, keep float64) bool {
	for i := 1; i < len(piece); i++ {
		mid := piece[i-1].lerp(piece[i], 0.5)
		if distToPolyline2(source, mid, closedSource) < keep {
			return false
		}
	}
	return true
}
