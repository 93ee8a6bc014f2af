package geom

import (
	"iter"
	"math"
)

// Polygon is a closed polygon. The last vertex connects back to the first,
// there is no need to repeat it.
//
// Edge i runs from vertex i to vertex i+1. Polygons with fewer than two
// vertices have no edges.
type Polygon []Point

var _ Primitive = Polygon{}

// Edges returns the edges of the polygon together with their indices.
func (p Polygon) Edges() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		if len(p) < 2 {
			return
		}
		for i := range p {
			if !yield(i, Line{p[i], p[(i+1)%len(p)]}) {
				return
			}
		}
	}
}

// BoundingBox implements Primitive.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := p[0].BoundingBox()
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Winding returns the winding number of the polygon around pt.
func (p Polygon) Winding(pt Point) int {
	var w int
	for _, e := range p.Edges() {
		w += edgeWinding(e, pt)
	}
	return w
}

// Contains reports whether pt lies inside the polygon, using the nonzero rule.
func (p Polygon) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

func (p Polygon) IsInf() bool {
	for _, pt := range p {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

func (p Polygon) IsNaN() bool {
	for _, pt := range p {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

// PathElements returns the polygon as a closed path.
func (p Polygon) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(MoveTo(p[0])) {
			return
		}
		for _, pt := range p[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (Polygon) primitive() {}

// edgeWinding is the winding contribution of a line, counted by casting a
// ray from pt towards negative x.
func edgeWinding(l Line, pt Point) int {
	start, end := l.P0, l.P1
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < math.Min(start.X, end.X) {
		return 0
	}
	if pt.X >= math.Max(start.X, end.X) {
		return sign
	}
	// line equation ax + by = c
	a := end.Y - start.Y
	b := start.X - end.X
	c := a*start.X + b*start.Y
	if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
		return sign
	}
	return 0
}
