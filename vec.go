package curve

import (
	"fmt"
	"math"
)

// Vec is a displacement in 3D space.
type Vec struct {
	X float64
	Y float64
	Z float64
}

// V returns the vector ⟨x, y, z⟩.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Splat returns the vector's x, y, and z coordinates.
func (v Vec) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec.Hypot].
func (v Vec) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float64) Vec {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec) Normalize() Vec {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vec) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec) Add(o Vec) Vec {
	return Vec{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec) Sub(o Vec) Vec {
	return Vec{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec) Mul(f float64) Vec {
	return Vec{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec) Div(f float64) Vec {
	return Vec{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vec) Negate() Vec {
	return Vec{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsParallel reports whether v and o are parallel within an angular tolerance
// given in radians. Anti-parallel vectors count as parallel.
func (v Vec) IsParallel(o Vec, tolerance float64) bool {
	ll := v.Hypot() * o.Hypot()
	if ll == 0 {
		return false
	}
	s := v.Cross(o).Hypot() / ll
	return math.Asin(min(s, 1)) <= tolerance
}
