package geom

import "math"

// Line represents a line segment from P0 to P1, parametrized by t ∈ [0, 1].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Primitive = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Tangent returns the derivative of the line, which is constant.
func (l Line) Tangent() Vec2 {
	return l.P1.Sub(l.P0)
}

// Ray returns the line as a ray restricted to t ∈ [0, 1].
func (l Line) Ray() Ray {
	return Ray{Origin: l.P0, Dir: l.P1.Sub(l.P0), MinT: 0, MaxT: 1}
}

// Nearest returns the squared distance from pt to the nearest point of the
// line, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	return l.Ray().Nearest(pt)
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

func (l Line) polys() curvePoly {
	return curvePoly{
		x: NewPolynomial(l.P1.X-l.P0.X, l.P0.X),
		y: NewPolynomial(l.P1.Y-l.P0.Y, l.P0.Y),
	}
}

func (Line) primitive() {}

// Ray is the set of points Origin + t·Dir for t ∈ [MinT, MaxT].
//
// MinT and MaxT may be infinite. A ray in the common sense starts at its
// origin and has MinT = 0 and MaxT = +∞, see [NewRay]. An infinite line has
// MinT = −∞, see [NewInfiniteLine]. A segment has MinT = 0 and MaxT = 1, see
// [Line.Ray].
type Ray struct {
	Origin Point
	Dir    Vec2
	MinT   float64
	MaxT   float64
}

var _ Primitive = Ray{}

// NewRay returns the ray that starts at origin and extends infinitely in
// direction dir.
func NewRay(origin Point, dir Vec2) Ray {
	return Ray{Origin: origin, Dir: dir, MinT: 0, MaxT: math.Inf(1)}
}

// NewInfiniteLine returns the infinite line through p0 and p1, with p0 at
// t = 0 and p1 at t = 1.
func NewInfiniteLine(p0, p1 Point) Ray {
	return Ray{Origin: p0, Dir: p1.Sub(p0), MinT: math.Inf(-1), MaxT: math.Inf(1)}
}

func (r Ray) Eval(t float64) Point {
	return r.Origin.Translate(r.Dir.Mul(t))
}

// Nearest returns the squared distance from pt to the nearest point of the
// ray, and that point's parameter.
func (r Ray) Nearest(pt Point) (distSq, t float64) {
	d2 := r.Dir.Hypot2()
	if d2 == 0 {
		t = r.anyT()
	} else {
		t = clamp(pt.Sub(r.Origin).Dot(r.Dir)/d2, r.MinT, r.MaxT)
	}
	return pt.Sub(r.Eval(t)).Hypot2(), t
}

// inRange reports whether t lies in [MinT − eps, MaxT + eps].
func (r Ray) inRange(t, eps float64) bool {
	return t >= r.MinT-eps && t <= r.MaxT+eps
}

// anyT returns a finite parameter in range, the one closest to zero.
func (r Ray) anyT() float64 {
	return clamp(0, r.MinT, r.MaxT)
}

// BoundingBox implements Primitive. Unbounded rays have infinite boxes.
func (r Ray) BoundingBox() Rect {
	end := func(o, d, t float64) float64 {
		if d == 0 {
			return o
		}
		return o + d*t
	}
	return Rect{
		X0: end(r.Origin.X, r.Dir.X, r.MinT),
		Y0: end(r.Origin.Y, r.Dir.Y, r.MinT),
		X1: end(r.Origin.X, r.Dir.X, r.MaxT),
		Y1: end(r.Origin.Y, r.Dir.Y, r.MaxT),
	}.Abs()
}

func (Ray) primitive() {}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
