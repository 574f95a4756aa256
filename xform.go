package curve

import (
	"math"
)

// Xform describes a similarity transform in 3D space: the composition of a
// rotation, a uniform scale, and a translation.
//
// Restricting transforms to similarities keeps every curve representation
// closed under transformation; in particular an arc stays an arc. The linear
// part is stored as a 3×3 matrix whose columns are the images of the world
// axes; the matrix is kept a scaled rotation by construction.
type Xform struct {
	M [3][3]float64
	T Vec
}

// XIdentity is the identity transform.
var XIdentity = Xform{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

// XTranslate creates a transform representing translation by v.
func XTranslate(v Vec) Xform {
	x := XIdentity
	x.T = v
	return x
}

// XScale creates a transform representing uniform scaling by factor s about
// center.
func XScale(center Point, s float64) Xform {
	x := Xform{M: [3][3]float64{{s, 0, 0}, {0, s, 0}, {0, 0, s}}}
	c := Vec(center)
	x.T = c.Sub(c.Mul(s))
	return x
}

// XRotate creates a transform representing a rotation of th radians about the
// axis through center. The rotation follows the right-hand rule with respect
// to the axis direction. It panics if the axis is zero.
func XRotate(center Point, axis Vec, th float64) Xform {
	if axis.Hypot2() == 0 {
		panic("curve: XRotate requires a non-zero axis")
	}
	u := axis.Normalize()
	sin, cos := math.Sincos(th)
	omc := 1 - cos
	x := Xform{M: [3][3]float64{
		{cos + u.X*u.X*omc, u.X*u.Y*omc - u.Z*sin, u.X*u.Z*omc + u.Y*sin},
		{u.Y*u.X*omc + u.Z*sin, cos + u.Y*u.Y*omc, u.Y*u.Z*omc - u.X*sin},
		{u.Z*u.X*omc - u.Y*sin, u.Z*u.Y*omc + u.X*sin, cos + u.Z*u.Z*omc},
	}}
	c := Vec(center)
	x.T = c.Sub(x.applyLinear(c))
	return x
}

func (x Xform) applyLinear(v Vec) Vec {
	return Vec{
		X: x.M[0][0]*v.X + x.M[0][1]*v.Y + x.M[0][2]*v.Z,
		Y: x.M[1][0]*v.X + x.M[1][1]*v.Y + x.M[1][2]*v.Z,
		Z: x.M[2][0]*v.X + x.M[2][1]*v.Y + x.M[2][2]*v.Z,
	}
}

// ApplyPoint transforms a point.
func (x Xform) ApplyPoint(pt Point) Point {
	return Point(x.applyLinear(Vec(pt)).Add(x.T))
}

// ApplyVec transforms a displacement; translation doesn't apply.
func (x Xform) ApplyVec(v Vec) Vec {
	return x.applyLinear(v)
}

// ApplyPlane transforms a plane frame.
func (x Xform) ApplyPlane(pl Plane) Plane {
	return Plane{
		Origin: x.ApplyPoint(pl.Origin),
		XAxis:  x.ApplyVec(pl.XAxis).Normalize(),
		YAxis:  x.ApplyVec(pl.YAxis).Normalize(),
		ZAxis:  x.ApplyVec(pl.ZAxis).Normalize(),
	}
}

// Scale returns the uniform scale factor of the transform.
func (x Xform) Scale() float64 {
	return x.applyLinear(Vec{X: 1}).Hypot()
}

// Then returns the transform that first applies x, then o, i.e. o ∘ x.
func (x Xform) Then(o Xform) Xform {
	var out Xform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = o.M[i][0]*x.M[0][j] + o.M[i][1]*x.M[1][j] + o.M[i][2]*x.M[2][j]
		}
	}
	out.T = o.applyLinear(x.T).Add(o.T)
	return out
}
