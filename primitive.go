package geom

// Primitive is one of the shapes that [Intersect] accepts: [Point], [Line],
// [Ray], [QuadBez], [CubicBez], [Circle], [Ellipse], [Rect], [Polygon] and
// [BezPath]. The set is closed.
type Primitive interface {
	// BoundingBox returns a rectangle that encloses the primitive.
	BoundingBox() Rect

	primitive()
}

// ClosedShape is a primitive that bounds an area.
type ClosedShape interface {
	Primitive

	// Winding returns the [winding number] of a point.
	//
	// [winding number]: https://en.wikipedia.org/wiki/Winding_number
	Winding(pt Point) int

	// Contains reports whether pt lies inside the shape by the nonzero rule.
	Contains(pt Point) bool
}

var (
	_ ClosedShape = Circle{}
	_ ClosedShape = Ellipse{}
	_ ClosedShape = Rect{}
	_ ClosedShape = Polygon{}
	_ ClosedShape = BezPath{}
)

// asClosed returns p as a closed shape. Paths only count as closed if every
// subpath ends where it starts.
func asClosed(p Primitive) (ClosedShape, bool) {
	switch p := p.(type) {
	case BezPath:
		if !isClosedPath(p) {
			return nil, false
		}
		return p, true
	case Polygon:
		return p, len(p) > 2
	case ClosedShape:
		return p, true
	default:
		return nil, false
	}
}

// anyPoint returns a point on the boundary of p, or false if p is empty.
func anyPoint(p Primitive) (Point, bool) {
	switch p := p.(type) {
	case Point:
		return p, true
	case Line:
		return p.P0, true
	case Ray:
		return p.Eval(p.anyT()), true
	case QuadBez:
		return p.P0, true
	case CubicBez:
		return p.P0, true
	case Circle:
		return p.Eval(0), true
	case Ellipse:
		return p.Eval(0), true
	case Rect:
		return Point{p.X0, p.Y0}, true
	case Polygon:
		if len(p) == 0 {
			return Point{}, false
		}
		return p[0], true
	case BezPath:
		for seg := range p.Segments() {
			return seg.P0, true
		}
		return Point{}, false
	default:
		return Point{}, false
	}
}

func isClosedPath(p BezPath) bool {
	sps := subpaths(p.Elements())
	if len(sps) == 0 {
		return false
	}
	for _, sp := range sps {
		if !sp.closed() {
			return false
		}
	}
	return true
}
