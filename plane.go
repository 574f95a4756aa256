package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Plane is an oriented plane in 3D space, described by an origin and a
// right-handed orthonormal frame.
type Plane struct {
	Origin Point
	XAxis  Vec
	YAxis  Vec
	ZAxis  Vec
}

// PlaneXY returns the world XY plane with its origin at the world origin.
func PlaneXY() Plane {
	return Plane{
		Origin: Point{},
		XAxis:  Vec{X: 1},
		YAxis:  Vec{Y: 1},
		ZAxis:  Vec{Z: 1},
	}
}

// NewPlane returns a plane through origin with the given normal. The in-plane
// axes are chosen arbitrarily. It panics if the normal is zero.
func NewPlane(origin Point, normal Vec) Plane {
	if normal.Hypot2() == 0 {
		panic("curve: NewPlane requires a non-zero normal")
	}
	z := normal.Normalize()
	x := z.Cross(Vec{Z: 1})
	if x.Hypot2() < 1e-12 {
		x = z.Cross(Vec{Y: 1})
	}
	x = x.Normalize()
	return Plane{
		Origin: origin,
		XAxis:  x,
		YAxis:  z.Cross(x),
		ZAxis:  z,
	}
}

// NewPlaneFromFrame returns a plane through origin whose x axis points along
// xDir and whose y axis lies in the half-plane of yHint. It panics if xDir is
// zero or yHint is parallel to xDir.
func NewPlaneFromFrame(origin Point, xDir, yHint Vec) Plane {
	if xDir.Hypot2() == 0 {
		panic("curve: NewPlaneFromFrame requires a non-zero x direction")
	}
	x := xDir.Normalize()
	z := x.Cross(yHint)
	if z.Hypot2() == 0 {
		panic("curve: NewPlaneFromFrame requires a y hint that isn't parallel to x")
	}
	z = z.Normalize()
	return Plane{
		Origin: origin,
		XAxis:  x,
		YAxis:  z.Cross(x),
		ZAxis:  z,
	}
}

func (pl Plane) String() string {
	return fmt.Sprintf("Plane(%v, x: %v, y: %v)", pl.Origin, pl.XAxis, pl.YAxis)
}

// UV returns the plane coordinates of the projection of pt onto the plane.
func (pl Plane) UV(pt Point) (float64, float64) {
	d := pt.Sub(pl.Origin)
	return d.Dot(pl.XAxis), d.Dot(pl.YAxis)
}

func (pl Plane) uv(pt Point) pt2 {
	u, v := pl.UV(pt)
	return pt2{u, v}
}

// PointAt returns the world point at plane coordinates (u, v).
func (pl Plane) PointAt(u, v float64) Point {
	return pl.Origin.Translate(pl.XAxis.Mul(u).Add(pl.YAxis.Mul(v)))
}

// Elevation returns the signed distance of pt above the plane, positive on
// the side the normal points to.
func (pl Plane) Elevation(pt Point) float64 {
	return pt.Sub(pl.Origin).Dot(pl.ZAxis)
}

// ClosestPoint returns the orthogonal projection of pt onto the plane.
func (pl Plane) ClosestPoint(pt Point) Point {
	u, v := pl.UV(pt)
	return pl.PointAt(u, v)
}

// ContainsPoint reports whether pt lies on the plane within tolerance.
func (pl Plane) ContainsPoint(pt Point, tolerance float64) bool {
	return math.Abs(pl.Elevation(pt)) <= tolerance
}

// Reversed returns the plane with its normal flipped. The x axis is kept, so
// the frame stays right-handed.
func (pl Plane) Reversed() Plane {
	return Plane{
		Origin: pl.Origin,
		XAxis:  pl.XAxis,
		YAxis:  pl.YAxis.Negate(),
		ZAxis:  pl.ZAxis.Negate(),
	}
}

// FitPlane fits a plane through the given points by total least squares and
// returns it along with the largest absolute deviation of any point from the
// plane. Fitting fails when there are fewer than three points or the points
// are coincident or collinear within floating point noise.
func FitPlane(pts []Point) (Plane, float64, bool) {
	if len(pts) < 3 {
		return Plane{}, 0, false
	}
	var cx, cy, cz float64
	for _, pt := range pts {
		cx += pt.X
		cy += pt.Y
		cz += pt.Z
	}
	n := float64(len(pts))
	centroid := Pt(cx/n, cy/n, cz/n)

	var xx, xy, xz, yy, yz, zz float64
	for _, pt := range pts {
		d := pt.Sub(centroid)
		xx += d.X * d.X
		xy += d.X * d.Y
		xz += d.X * d.Z
		yy += d.Y * d.Y
		yz += d.Y * d.Z
		zz += d.Z * d.Z
	}
	cov := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})
	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return Plane{}, 0, false
	}
	vals := eig.Values(nil)
	// vals are ascending; the normal is the eigenvector of the smallest one.
	// Two vanishing eigenvalues mean the points don't span a plane.
	if vals[2] <= 0 || vals[1] <= vals[2]*1e-14 {
		return Plane{}, 0, false
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	normal := Vec{X: vecs.At(0, 0), Y: vecs.At(1, 0), Z: vecs.At(2, 0)}
	pl := NewPlane(centroid, normal)

	var dev float64
	for _, pt := range pts {
		dev = max(dev, math.Abs(pl.Elevation(pt)))
	}
	return pl, dev, true
}

// IsPlanar reports whether all points lie on a common plane within tolerance,
// and returns that plane. Collinear or coincident point sets report false, as
// they don't determine a unique plane.
func IsPlanar(pts []Point, tolerance float64) (Plane, bool) {
	pl, dev, ok := FitPlane(pts)
	if !ok || dev > tolerance {
		return Plane{}, false
	}
	return pl, true
}
