// Package geom computes intersections between 2D geometric primitives: points,
// line segments, rays, quadratic and cubic Béziers, circles, ellipses,
// rectangles, polygons and Bézier paths.
//
// # Primitives
//
// [Primitive] is the closed set of shapes that [Intersect] accepts. Each
// primitive has a natural parametrization, which intersection results refer
// to:
//   - [Line], [QuadBez] and [CubicBez] are parametrized by t ∈ [0, 1].
//   - [Ray] is parametrized by t ∈ [MinT, MaxT] and doubles as the
//     representation of half-lines and infinite lines.
//   - [Circle] and [Ellipse] are parametrized by an angle in [0, 2π). For an
//     ellipse this is the angle on the unit circle that the ellipse is an
//     affine image of.
//   - [Rect], [Polygon] and [BezPath] are made of segments, which are
//     identified by an index and parametrized like lines and Béziers.
//
// [ClosedShape] describes those primitives that bound an area and can compute
// a point's [winding number].
//
// # Intersections
//
// Every pair of primitives has a dedicated routine, such as
// [IntersectLineCubic] or [IntersectEllipseEllipse]. [Intersect] dispatches to
// the right one for any pair. The result is a [ResultEx], which holds a
// [Status] and zero or more [IntersectionPointEx]. The status says whether the
// primitives cross and, if not, why: they might be parallel, touch, lie on the
// same curve, or one might enclose the other. [ResultEx.Simple] drops the
// information about the second primitive.
//
// All routines take a tolerance eps. It is the distance below which points
// are considered equal and by which parameter ranges are widened, so that
// segments touching at their endpoints are found.
//
// # Algebraic approach
//
// Intersections are computed algebraically. Lines are turned into implicit
// equations, circles and ellipses into [Conic]s, and curves are substituted
// into them, giving polynomials in the curve parameter. Two conics are
// intersected via their Bézout resultant, and two Béziers via the resultant of
// their coordinate polynomials. [Polynomial] solves equations of degree four
// and lower in closed form and anything of higher degree by bisection between
// the roots of the derivative.
//
// # Paths
//
// [BezPath] represents Bézier paths as a slice of [PathElement]. Iterators over
// elements and segments can be converted with [Segments] and
// [IndexedSegments]. Intersections with paths report the index of the
// element that ends the segment, which [BezPath.Segment] maps back to the
// segment.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Bézout matrix]
//   - [Ferrari's method] for quartic equations
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Bézout matrix]: https://en.wikipedia.org/wiki/B%C3%A9zout_matrix
// [Ferrari's method]: https://en.wikipedia.org/wiki/Quartic_function#Ferrari's_solution
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
package geom
