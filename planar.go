package curve

import "math"

// pt2 is a point in plane coordinates. The planar machinery (winding numbers,
// offsets, booleans) works on curves projected onto a [Plane]; these types
// never escape the package.
type pt2 struct {
	X float64
	Y float64
}

func (p pt2) sub(o pt2) vec2 {
	return vec2{p.X - o.X, p.Y - o.Y}
}

func (p pt2) translate(v vec2) pt2 {
	return pt2{p.X + v.X, p.Y + v.Y}
}

func (p pt2) lerp(o pt2, t float64) pt2 {
	return pt2{p.X + t*(o.X-p.X), p.Y + t*(o.Y-p.Y)}
}

func (p pt2) distance(o pt2) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

type vec2 struct {
	X float64
	Y float64
}

func (v vec2) dot(o vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// cross returns the z component of the 3D cross product, i.e. the signed area
// of the parallelogram spanned by v and o.
func (v vec2) cross(o vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v vec2) hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v vec2) hypot2() float64 {
	return v.dot(v)
}

func (v vec2) mul(f float64) vec2 {
	return vec2{v.X * f, v.Y * f}
}

func (v vec2) add(o vec2) vec2 {
	return vec2{v.X + o.X, v.Y + o.Y}
}

func (v vec2) normalize() vec2 {
	return v.mul(1.0 / v.hypot())
}

// perp returns v rotated by 90° counterclockwise.
func (v vec2) perp() vec2 {
	return vec2{-v.Y, v.X}
}

// distToSegment2 returns the distance from p to the segment [a, b] in plane
// coordinates, together with the normalized position of the closest point.
func distToSegment2(p, a, b pt2) (float64, float64) {
	ab := b.sub(a)
	denom := ab.hypot2()
	if denom == 0 {
		return p.distance(a), 0
	}
	t := min(max(p.sub(a).dot(ab)/denom, 0), 1)
	return p.distance(a.lerp(b, t)), t
}

// segIntersect2 intersects the segments [a0, a1] and [b0, b1]. On success it
// returns the normalized positions of the crossing on both segments.
// Parallel and degenerate pairs report no intersection.
func segIntersect2(a0, a1, b0, b1 pt2) (ta, tb float64, ok bool) {
	da := a1.sub(a0)
	db := b1.sub(b0)
	denom := da.cross(db)
	if denom == 0 {
		return 0, 0, false
	}
	d := b0.sub(a0)
	ta = d.cross(db) / denom
	tb = d.cross(da) / denom
	if ta < 0 || ta > 1 || tb < 0 || tb > 1 {
		return 0, 0, false
	}
	return ta, tb, true
}

// polygonWinding returns the winding number of pt with respect to the closed
// polygon. The polygon does not need to repeat its first point.
func polygonWinding(poly []pt2, pt pt2) int {
	winding := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && b.sub(a).cross(pt.sub(a)) > 0 {
				winding++
			}
		} else {
			if b.Y <= pt.Y && b.sub(a).cross(pt.sub(a)) < 0 {
				winding--
			}
		}
	}
	return winding
}

// polygonArea returns the signed area of the closed polygon, positive for
// counterclockwise orientation. The polygon does not need to repeat its first
// point.
func polygonArea(poly []pt2) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return 0.5 * sum
}

// distToPolyline2 returns the smallest distance from pt to any segment of the
// polyline.
func distToPolyline2(poly []pt2, pt pt2, closed bool) float64 {
	best := math.Inf(1)
	n := len(poly)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		d, _ := distToSegment2(pt, poly[i], poly[(i+1)%n])
		if d < best {
			best = d
		}
	}
	return best
}
