package curve

import (
	"fmt"
)

// Box is an axis-aligned bounding box in 3D space.
type Box struct {
	Min Point
	Max Point
}

// NewBoxFromPoints returns the smallest box containing all of the given
// points. It panics when called without points.
func NewBoxFromPoints(pts ...Point) Box {
	if len(pts) == 0 {
		panic("curve: NewBoxFromPoints requires at least one point")
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("%v – %v", b.Min, b.Max)
}

// UnionPoint returns the smallest box containing both b and pt.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		Min: Point{min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)},
		Max: Point{max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)},
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Center returns the center of the box.
func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Diagonal returns the vector from Min to Max.
func (b Box) Diagonal() Vec {
	return b.Max.Sub(b.Min)
}

// ContainsPoint reports whether pt lies inside the box, allowing it to miss
// each face by up to tolerance.
func (b Box) ContainsPoint(pt Point, tolerance float64) bool {
	return pt.X >= b.Min.X-tolerance && pt.X <= b.Max.X+tolerance &&
		pt.Y >= b.Min.Y-tolerance && pt.Y <= b.Max.Y+tolerance &&
		pt.Z >= b.Min.Z-tolerance && pt.Z <= b.Max.Z+tolerance
}

// IsValid reports whether Min ≤ Max on every axis and no coordinate is NaN.
func (b Box) IsValid() bool {
	if b.Min.IsNaN() || b.Max.IsNaN() {
		return false
	}
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// inflate grows the box by d on every side.
func (b Box) inflate(d float64) Box {
	return Box{
		Min: b.Min.Translate(Vec{-d, -d, -d}),
		Max: b.Max.Translate(Vec{d, d, d}),
	}
}
