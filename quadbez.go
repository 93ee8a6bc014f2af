package geom

// QuadBez is a quadratic Bézier curve, parametrized by t ∈ [0, 1].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ Primitive = QuadBez{}

// BoundingBox returns the bounding box of the control points, which
// encloses the curve.
func (q QuadBez) BoundingBox() Rect {
	return NewRectFromPoints(q.P0, q.P1).UnionPoint(q.P2)
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Differentiate returns the derivative, which is a line.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Tangent returns the derivative at t.
func (q QuadBez) Tangent(t float64) Vec2 {
	return Vec2(q.Differentiate().Eval(t))
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

func (q QuadBez) polys() curvePoly {
	x0, x1, x2 := quadBezCoefficients(q.P0.X, q.P1.X, q.P2.X)
	y0, y1, y2 := quadBezCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	return curvePoly{
		x: PolynomialFromCoefficients([]float64{x0, x1, x2}),
		y: PolynomialFromCoefficients([]float64{y0, y1, y2}),
	}
}

func (QuadBez) primitive() {}

// quadBezCoefficients returns the power basis coefficients of one
// coordinate, lowest degree first.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}
