package geom

import (
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle given by two opposite corners.
//
// For intersections a rectangle is the closed polygon through (X0, Y0),
// (X1, Y0), (X1, Y1) and (X0, Y1). Its edges are numbered in that order,
// starting at 0.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ Primitive = Rect{}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Overlaps reports whether r and o share at least one point, allowing for a
// gap of eps. Both rectangles must have non-negative width and height.
func (r Rect) Overlaps(o Rect, eps float64) bool {
	r = r.Inflate(eps, eps)
	return r.X0 <= o.X1 && o.X0 <= r.X1 &&
		r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) || math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

// BoundingBox implements Primitive.
func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

// Contains reports whether pt lies inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return r.Winding(pt) != 0
}

func (r Rect) Winding(pt Point) int {
	// Note: this function is carefully designed so that if the plane is
	// tiled with rectangles, the winding number will be nonzero for exactly
	// one of them.
	xmin := min(r.X0, r.X1)
	xmax := max(r.X0, r.X1)
	ymin := min(r.Y0, r.Y1)
	ymax := max(r.Y0, r.Y1)
	if pt.X >= xmin && pt.X < xmax && pt.Y >= ymin && pt.Y < ymax {
		if r.X1 > r.X0 != (r.Y1 > r.Y0) {
			return -1
		} else {
			return 1
		}
	} else {
		return 0
	}
}

// Corners returns the four corners in edge order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

// Edges returns the four edges of the rectangle together with their indices.
func (r Rect) Edges() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		cs := r.Corners()
		for i := range cs {
			if !yield(i, Line{cs[i], cs[(i+1)%len(cs)]}) {
				return
			}
		}
	}
}

func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

func (Rect) primitive() {}
