package geom

import "iter"

// IntersectRect intersects the boundary of a rectangle with any primitive.
// SegmentA of each point is the index of the edge it lies on, see
// [Rect.Edges].
//
// The status is [Intersecting] if any edge crosses q. Otherwise it is the
// most specific of [NoIntersectionTangent] and [NoIntersectionCoincident]
// reported by any edge, or, failing that, [NoIntersectionInside] if one of
// the rectangle and q encloses the other and [NoIntersectionOutside] if not.
func IntersectRect(r Rect, q Primitive, eps float64) ResultEx {
	return intersectComposite(composite{
		segs: func(yield func(int, PathSegment) bool) {
			for i, e := range r.Edges() {
				if !yield(i, e.Seg()) {
					return
				}
			}
		},
		area:     r,
		isClosed: true,
	}, q, eps)
}

// IntersectPolygon is like [IntersectRect] but for polygons. Polygons with
// fewer than three vertices don't enclose anything.
func IntersectPolygon(p Polygon, q Primitive, eps float64) ResultEx {
	return intersectComposite(composite{
		segs: func(yield func(int, PathSegment) bool) {
			for i, e := range p.Edges() {
				if !yield(i, e.Seg()) {
					return
				}
			}
		},
		area:     p,
		isClosed: len(p) > 2,
	}, q, eps)
}

// IntersectPath intersects the path described by path with any primitive.
// SegmentA of each point is the index of the element that ends the segment
// the point lies on, see [IndexedSegments] and [BezPath.Segment].
//
// Paths whose subpaths are all closed enclose an area and are classified
// like [IntersectRect]. Open paths can only be [NoIntersectionInside] or
// [NoIntersectionOutside] of a closed q.
func IntersectPath(path iter.Seq[PathElement], q Primitive, eps float64) ResultEx {
	var p BezPath
	for el := range path {
		p = append(p, el)
	}
	return intersectComposite(composite{
		segs:     IndexedSegments(p.Elements()),
		area:     p,
		isClosed: isClosedPath(p),
	}, q, eps)
}

// IntersectPathLine intersects a path with a line segment.
func IntersectPathLine(path iter.Seq[PathElement], l Line, eps float64) ResultEx {
	return IntersectPath(path, l, eps)
}

// IntersectPathRay intersects a path with a ray or infinite line.
func IntersectPathRay(path iter.Seq[PathElement], r Ray, eps float64) ResultEx {
	return IntersectPath(path, r, eps)
}

// IntersectPathCircle intersects a path with a circle.
func IntersectPathCircle(path iter.Seq[PathElement], c Circle, eps float64) ResultEx {
	return IntersectPath(path, c, eps)
}

// IntersectPathEllipse intersects a path with an ellipse.
func IntersectPathEllipse(path iter.Seq[PathElement], e Ellipse, eps float64) ResultEx {
	return IntersectPath(path, e, eps)
}

// IntersectPathPoint tests whether a path passes within tolerance of pt. A
// point enclosed by a closed path is [NoIntersectionInside].
func IntersectPathPoint(path iter.Seq[PathElement], pt Point, tolerance float64) ResultEx {
	return IntersectPath(path, pt, tolerance)
}

// composite is a primitive made of segments.
type composite struct {
	segs iter.Seq2[int, PathSegment]
	area ClosedShape
	// isClosed reports whether area actually bounds an area.
	isClosed bool
}

func intersectComposite(c composite, q Primitive, eps float64) ResultEx {
	var status Status
	var pts []IntersectionPointEx
	for i, seg := range c.segs {
		res := Intersect(seg.Primitive(), q, eps)
		switch res.status {
		case NoIntersectionInside, NoIntersectionOutside:
			// Containment of a single segment says nothing about the whole.
		default:
			status = MergeStatus(status, res.status)
		}
		for _, p := range res.points {
			p.SegmentA = i
			pts = append(pts, p)
		}
	}
	switch status {
	case Intersecting, NoIntersectionTangent, NoIntersectionCoincident:
		return newResult(status, pts)
	}

	qc, qClosed := asClosed(q)
	if c.isClosed {
		if pt, ok := anyPoint(q); ok && c.area.Contains(pt) {
			return statusOnly(NoIntersectionInside)
		}
	}
	if qClosed {
		if pt, ok := anyPoint(c.area); ok && qc.Contains(pt) {
			return statusOnly(NoIntersectionInside)
		}
	}
	if c.isClosed || qClosed {
		return statusOnly(NoIntersectionOutside)
	}
	return statusOnly(status)
}
