// Package curve provides parametric curves in 3D space and routines for
// querying and editing them. It was designed to serve the needs of CAD-style
// geometry plumbing, but it is intended to be general enough to be useful for
// other applications.
//
// # Curves
//
// [Curve] describes a parametric curve over an explicit domain: curves can be
// evaluated at any parameter inside their [Interval] and return points and
// derivative vectors in a 3D Cartesian coordinate system. The simplest curve
// is the [LineCurve], whose evaluation is a linear interpolation between its
// start and end points.
//
// This package includes the following curves:
//   - [LineCurve]
//   - [PolylineCurve]
//   - [ArcCurve]
//   - [NurbsCurve]
//   - [PolyCurve] (a composite of consecutive segments)
//
// Every curve supports evaluation ([Curve.PointAt], [Curve.DerivativesAt]),
// trimming and splitting, in-place reversal, arc length computation, affine
// transformation, and flattening to a polyline within a tolerance. Derived
// quantities such as tangents and curvature are provided as package functions
// ([TangentAt], [CurvatureAt]) so every curve gets them for free.
//
// Reversing a curve maps a domain [a, b] to [-b, -a], so a parameter t on the
// original corresponds to -t on the reversal.
//
// # Queries and editing
//
// Beyond evaluation, the package provides:
//   - Shape classification (see [TryGetLine], [TryGetArc], [TryGetCircle],
//     [TryGetEllipse], [TryGetPolyline], [TryGetPlane])
//   - Division into equal spans, by length, and by chordal distance (see
//     [DivideByCount], [DivideByLength], [DivideEquidistant])
//   - Arc length solving (see [SolveForLength]) and closest points (see
//     [ClosestPoint])
//   - Extension and joining (see [Extend], [Join])
//
// # Planar operations
//
// Several operations only make sense for curves lying in a plane: offsetting
// (see [Offset]), point containment for closed curves (see [Containment]),
// and boolean combinations of closed curves (see [BooleanUnion],
// [BooleanIntersection], [BooleanDifference]). These take or fit a [Plane]
// and work on the curve's projection onto it. They operate on flattened
// approximations within a tolerance, which is the price of supporting every
// curve type uniformly.
//
// # Failure
//
// Geometric operations that can fail for legitimate geometric reasons (a
// parameter outside the domain, a curve that isn't planar, a shape that isn't
// an arc) report failure with an additional boolean result. Operations return
// zero or more curves where the result count is inherently variable, such as
// offsetting a curve that self-intersects. Only programming errors, like nil
// curves or non-positive radii, panic.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - The NURBS Book by Piegl and Tiller
//   - [Green's theorem]
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
package curve
