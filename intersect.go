package geom

import "fmt"

// Intersect intersects any two primitives. It dispatches to the specialized
// routine for the pair, such as [IntersectLineCubic] or
// [IntersectEllipseEllipse], and swaps the result if the routine takes the
// primitives in the opposite order. Rectangles, polygons and paths are
// decomposed into their segments, see [IntersectRect] and [IntersectPath].
//
// For pairs involving a [Point], eps is the tolerance radius of the hit test.
//
// Intersect panics if either primitive is of an unknown type.
func Intersect(a, b Primitive, eps float64) ResultEx {
	switch a := a.(type) {
	case Rect:
		return IntersectRect(a, b, eps)
	case Polygon:
		return IntersectPolygon(a, b, eps)
	case BezPath:
		return IntersectPath(a.Elements(), b, eps)
	}
	switch b.(type) {
	case Rect, Polygon, BezPath:
		return Intersect(b, a, eps).Swap()
	}
	if order(a) > order(b) {
		return intersectOrdered(b, a, eps).Swap()
	}
	return intersectOrdered(a, b, eps)
}

// order ranks the elementary primitives. intersectOrdered handles pairs in
// ascending order.
func order(p Primitive) int {
	switch p.(type) {
	case Point:
		return 0
	case Line:
		return 1
	case Ray:
		return 2
	case QuadBez:
		return 3
	case CubicBez:
		return 4
	case Circle:
		return 5
	case Ellipse:
		return 6
	default:
		panic(fmt.Sprintf("unsupported primitive %T", p))
	}
}

func intersectOrdered(a, b Primitive, eps float64) ResultEx {
	switch a := a.(type) {
	case Point:
		switch b := b.(type) {
		case Point:
			return IntersectPointPoint(a, b, eps)
		case Line:
			return IntersectPointLine(a, b, eps)
		case Ray:
			return IntersectPointRay(a, b, eps)
		case QuadBez:
			return IntersectPointQuad(a, b, eps)
		case CubicBez:
			return IntersectPointCubic(a, b, eps)
		case Circle:
			return IntersectPointCircle(a, b, eps)
		case Ellipse:
			return IntersectPointEllipse(a, b, eps)
		}
	case Line:
		switch b := b.(type) {
		case Line:
			return IntersectLineLine(a, b, eps)
		case Ray:
			return IntersectLineRay(a, b, eps)
		case QuadBez:
			return IntersectLineQuad(a, b, eps)
		case CubicBez:
			return IntersectLineCubic(a, b, eps)
		case Circle:
			return IntersectCircleLine(b, a, eps).Swap()
		case Ellipse:
			return IntersectEllipseLine(b, a, eps).Swap()
		}
	case Ray:
		switch b := b.(type) {
		case Ray:
			return IntersectRayRay(a, b, eps)
		case QuadBez:
			return IntersectRayQuad(a, b, eps)
		case CubicBez:
			return IntersectRayCubic(a, b, eps)
		case Circle:
			return IntersectCircleRay(b, a, eps).Swap()
		case Ellipse:
			return IntersectEllipseRay(b, a, eps).Swap()
		}
	case QuadBez:
		switch b := b.(type) {
		case QuadBez:
			return IntersectQuadQuad(a, b, eps)
		case CubicBez:
			return IntersectCubicQuad(b, a, eps).Swap()
		case Circle:
			return IntersectQuadCircle(a, b, eps)
		case Ellipse:
			return IntersectQuadEllipse(a, b, eps)
		}
	case CubicBez:
		switch b := b.(type) {
		case CubicBez:
			return IntersectCubicCubic(a, b, eps)
		case Circle:
			return IntersectCubicCircle(a, b, eps)
		case Ellipse:
			return IntersectCubicEllipse(a, b, eps)
		}
	case Circle:
		switch b := b.(type) {
		case Circle:
			return IntersectCircleCircle(a, b, eps)
		case Ellipse:
			return IntersectCircleEllipse(a, b, eps)
		}
	case Ellipse:
		if b, ok := b.(Ellipse); ok {
			return IntersectEllipseEllipse(a, b, eps)
		}
	}
	panic(fmt.Sprintf("unsupported primitives %T and %T", a, b))
}
