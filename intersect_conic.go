package geom

import "math"

// IntersectCircleLine intersects a circle with a line segment.
//
// If the segment doesn't cross the circle, the status is
// [NoIntersectionInside] for segments that lie entirely within the circle and
// [NoIntersectionOutside] otherwise. A segment that touches the circle within
// eps is reported as [NoIntersectionTangent], with the touching point.
func IntersectCircleLine(c Circle, l Line, eps float64) ResultEx {
	return IntersectCircleRay(c, l.Ray(), eps)
}

// IntersectCircleRay is like [IntersectCircleLine] but for rays and infinite
// lines.
func IntersectCircleRay(c Circle, r Ray, eps float64) ResultEx {
	lr := r.Dir.Hypot()
	radius := math.Abs(c.Radius)
	if lr <= eps {
		return pointConic(r, IntersectPointCircle(r.Eval(r.anyT()), c, eps).Swap(), func(pt Point) bool {
			return c.Contains(pt)
		})
	}

	u := r.Dir.Mul(1 / lr)
	w := c.Center.Sub(r.Origin)
	// Distance of the center's projection from the origin, along the ray, and
	// of the center from the line.
	tm := w.Dot(u)
	dperp := math.Abs(u.Cross(w))
	epsR := eps / lr

	hit := func(s float64) IntersectionPointEx {
		p := r.Eval(s)
		th := c.Angle(p)
		p = c.Eval(th)
		return IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: p, ArgumentA: th},
			ArgumentB:         s,
			TangentA:          c.Tangent(th),
			TangentB:          r.Dir,
		}
	}

	switch {
	case dperp > radius+eps:
		return statusOnly(NoIntersectionOutside)
	case math.Abs(dperp-radius) <= eps:
		s := tm / lr
		if !r.inRange(s, epsR) {
			return statusOnly(NoIntersectionOutside)
		}
		return newResult(NoIntersectionTangent, []IntersectionPointEx{hit(clamp(s, r.MinT, r.MaxT))})
	}

	h := math.Sqrt(radius*radius - dperp*dperp)
	s0, s1 := (tm-h)/lr, (tm+h)/lr
	var pts []IntersectionPointEx
	for _, s := range [2]float64{s0, s1} {
		if r.inRange(s, epsR) {
			pts = append(pts, hit(clamp(s, r.MinT, r.MaxT)))
		}
	}
	if len(pts) > 0 {
		return newResult(Intersecting, pts)
	}
	if r.MinT > s0 && r.MaxT < s1 {
		return statusOnly(NoIntersectionInside)
	}
	return statusOnly(NoIntersectionOutside)
}

// IntersectEllipseLine intersects an ellipse with a line segment. See
// [IntersectCircleLine] for the classification of segments that don't cross.
//
// The segment is mapped into the space in which the ellipse is the unit
// circle, where it remains a segment with the same parametrization. Degenerate
// ellipses, whose axes have zero length, don't intersect anything.
func IntersectEllipseLine(e Ellipse, l Line, eps float64) ResultEx {
	return IntersectEllipseRay(e, l.Ray(), eps)
}

// IntersectEllipseRay is like [IntersectEllipseLine] but for rays and infinite
// lines.
func IntersectEllipseRay(e Ellipse, r Ray, eps float64) ResultEx {
	radii := e.Radii()
	if radii.Y <= Epsilon {
		return statusOnly(NoIntersection)
	}
	inv := e.inner.Invert()
	local := Ray{
		Origin: r.Origin.Transform(inv),
		Dir:    inv.TransformVec(r.Dir),
		MinT:   r.MinT,
		MaxT:   r.MaxT,
	}
	res := IntersectCircleRay(Circle{Radius: 1}, local, eps/radii.Y)
	for i := range res.points {
		p := &res.points[i]
		p.Point = e.Eval(p.ArgumentA)
		p.TangentA = e.Tangent(p.ArgumentA)
		p.TangentB = r.Dir
	}
	return res
}

// pointConic adapts the result of a point hit test, with the point as the
// second primitive, to the degenerate ray r.
func pointConic(r Ray, res ResultEx, contains func(Point) bool) ResultEx {
	if res.status != Intersecting {
		if contains(r.Origin) {
			return statusOnly(NoIntersectionInside)
		}
		return statusOnly(NoIntersectionOutside)
	}
	pts := make([]IntersectionPointEx, len(res.points))
	for i, p := range res.points {
		p.ArgumentB = r.anyT()
		p.TangentB = r.Dir
		pts[i] = p
	}
	return newResult(Intersecting, pts)
}

// IntersectCircleCircle intersects two circles. It returns at most two points.
//
// Circles whose centers and radii agree within eps are
// [NoIntersectionCoincident]. Circles that touch within eps are
// [NoIntersectionTangent] and report the touching point.
func IntersectCircleCircle(a, b Circle, eps float64) ResultEx {
	ra, rb := math.Abs(a.Radius), math.Abs(b.Radius)
	v := b.Center.Sub(a.Center)
	d := v.Hypot()

	switch {
	case d <= eps && math.Abs(ra-rb) <= eps:
		return statusOnly(NoIntersectionCoincident)
	case d > ra+rb+eps:
		return statusOnly(NoIntersectionOutside)
	case d < math.Abs(ra-rb)-eps || d <= eps:
		return statusOnly(NoIntersectionInside)
	}

	u := v.Mul(1 / d)
	hit := func(p Point) IntersectionPointEx {
		tha, thb := a.Angle(p), b.Angle(p)
		return IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: p, ArgumentA: tha},
			ArgumentB:         thb,
			TangentA:          a.Tangent(tha),
			TangentB:          b.Tangent(thb),
		}
	}

	// x is the distance from a's center to the chord through both points,
	// along the line between the centers.
	x := (d*d + ra*ra - rb*rb) / (2 * d)
	if math.Abs(d-(ra+rb)) <= eps || math.Abs(d-math.Abs(ra-rb)) <= eps {
		p := a.Center.Translate(u.Mul(clamp(x, -ra, ra)))
		return newResult(NoIntersectionTangent, []IntersectionPointEx{hit(p)})
	}
	h := math.Sqrt(max(0, ra*ra-x*x))
	mid := a.Center.Translate(u.Mul(x))
	off := u.Perp().Mul(h)
	return newResult(Intersecting, []IntersectionPointEx{
		hit(mid.Translate(off)),
		hit(mid.Translate(off.Negate())),
	})
}

// IntersectCircleEllipse intersects a circle with an ellipse. See
// [IntersectEllipseEllipse].
func IntersectCircleEllipse(c Circle, e Ellipse, eps float64) ResultEx {
	return IntersectEllipseEllipse(c.Ellipse(), e, eps)
}

// IntersectEllipseEllipse intersects two ellipses. It returns at most four
// points.
//
// The y coordinates of the intersections, relative to a's center, are the
// roots of the Bézout resultant of the two conics, a quartic. For each root
// the equation of a is solved for x, and the candidates that lie on both
// ellipses within [ConicTolerance], relative to the ellipses' size, are
// polished with Newton's method.
//
// Ellipses that share five points are [NoIntersectionCoincident]. Ellipses
// that only touch are [NoIntersectionTangent].
func IntersectEllipseEllipse(a, b Ellipse, eps float64) ResultEx {
	ra, rb := a.Radii(), b.Radii()
	if ra.Y <= Epsilon || rb.Y <= Epsilon {
		return statusOnly(NoIntersection)
	}
	// The conics are taken relative to a's center, which keeps the
	// coefficients of the resultant at the scale of the ellipses.
	o := Vec2(a.Center())
	qa, qb := a.Translate(o.Negate()).Conic(), b.Translate(o.Negate()).Conic()
	size := max(ra.X, rb.X)

	coincident := true
	for i := range 5 {
		if qb.distance(a.Eval(float64(i)*2*math.Pi/5).Translate(o.Negate())) > eps {
			coincident = false
			break
		}
	}
	if coincident {
		return statusOnly(NoIntersectionCoincident)
	}
	if !a.BoundingBox().Overlaps(b.BoundingBox(), eps) {
		return statusOnly(NoIntersectionOutside)
	}

	tol := ConicTolerance * size
	var cands []Point
	for _, y := range Bezout(qa, qb).Normalize().Roots() {
		xp := qa.xPolynomial(y)
		xs := xp.Roots()
		if len(xs) == 0 {
			// Tangent points can have a slightly negative discriminant. Try
			// the vertex of the parabola.
			xs = []float64{-xp.Coefficient(1) / (2 * xp.Coefficient(2))}
		}
		for _, x := range xs {
			p := Point{X: x, Y: y}
			if qa.distance(p) > tol || qb.distance(p) > tol {
				continue
			}
			p = refineConics(qa, qb, p).Translate(o)
			if !containsPoint(cands, p, math.Sqrt(Epsilon)*size) {
				cands = append(cands, p)
			}
		}
	}

	if len(cands) == 0 {
		if a.Contains(b.Eval(0)) || b.Contains(a.Eval(0)) {
			return statusOnly(NoIntersectionInside)
		}
		return statusOnly(NoIntersectionOutside)
	}

	pts := make([]IntersectionPointEx, len(cands))
	tangent := true
	for i, p := range cands {
		tha, thb := a.Angle(p), b.Angle(p)
		pts[i] = IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: p, ArgumentA: tha},
			ArgumentB:         thb,
			TangentA:          a.Tangent(tha),
			TangentB:          b.Tangent(thb),
		}
		if !isTouching(pts[i].TangentA, pts[i].TangentB) {
			tangent = false
		}
	}
	if len(pts) == 1 || tangent {
		return newResult(NoIntersectionTangent, pts)
	}
	return newResult(Intersecting, pts)
}

// refineConics polishes a common point of two conics with Newton's method,
// for as long as that brings the point closer to both.
func refineConics(a, b Conic, p Point) Point {
	residual := func(p Point) float64 {
		return math.Hypot(a.Eval(p), b.Eval(p))
	}
	best := residual(p)
	for range 8 {
		if best == 0 {
			break
		}
		ga, gb := a.Gradient(p), b.Gradient(p)
		det := ga.Cross(gb)
		if math.Abs(det) <= Epsilon*ga.Hypot()*gb.Hypot() {
			break
		}
		fa, fb := a.Eval(p), b.Eval(p)
		// Solve [ga; gb]·Δ = −(fa, fb) by Cramer's rule.
		np := Point{
			X: p.X - (fa*gb.Y-fb*ga.Y)/det,
			Y: p.Y - (ga.X*fb-gb.X*fa)/det,
		}
		r := residual(np)
		if !(r < best) {
			break
		}
		p, best = np, r
	}
	return p
}

// isTouching reports whether two curves with tangents ta and tb meet without
// crossing, which is when the tangents are parallel.
func isTouching(ta, tb Vec2) bool {
	la, lb := ta.Hypot(), tb.Hypot()
	if la == 0 || lb == 0 {
		return false
	}
	return math.Abs(ta.Cross(tb)) <= ConicTolerance*la*lb
}

// IntersectQuadCircle intersects a quadratic Bézier curve with a circle. It
// returns at most four points.
//
// Curves that don't meet the circle are [NoIntersectionInside] if they lie
// within it and [NoIntersectionOutside] otherwise. Curves that only touch the
// circle are [NoIntersectionTangent].
func IntersectQuadCircle(q QuadBez, c Circle, eps float64) ResultEx {
	return intersectCurveConic(q.polys(), c.Conic(), conicShape{c.Angle, c.Tangent, c.Contains}, eps)
}

// IntersectQuadEllipse is like [IntersectQuadCircle] but for ellipses.
func IntersectQuadEllipse(q QuadBez, e Ellipse, eps float64) ResultEx {
	return intersectCurveConic(q.polys(), e.Conic(), conicShape{e.Angle, e.Tangent, e.Contains}, eps)
}

// IntersectCubicCircle intersects a cubic Bézier curve with a circle. It
// returns at most six points. See [IntersectQuadCircle].
func IntersectCubicCircle(cb CubicBez, c Circle, eps float64) ResultEx {
	return intersectCurveConic(cb.polys(), c.Conic(), conicShape{c.Angle, c.Tangent, c.Contains}, eps)
}

// IntersectCubicEllipse is like [IntersectCubicCircle] but for ellipses.
func IntersectCubicEllipse(cb CubicBez, e Ellipse, eps float64) ResultEx {
	return intersectCurveConic(cb.polys(), e.Conic(), conicShape{e.Angle, e.Tangent, e.Contains}, eps)
}

// conicShape is the parametrization of a circle or ellipse.
type conicShape struct {
	angle    func(Point) float64
	tangent  func(float64) Vec2
	contains func(Point) bool
}

func intersectCurveConic(c curvePoly, q Conic, shape conicShape, eps float64) ResultEx {
	if c.degree() == 0 {
		p := c.eval(0)
		if q.distance(p) > eps {
			if shape.contains(p) {
				return statusOnly(NoIntersectionInside)
			}
			return statusOnly(NoIntersectionOutside)
		}
		th := shape.angle(p)
		return newResult(Intersecting, []IntersectionPointEx{{
			IntersectionPoint: IntersectionPoint{Point: p},
			ArgumentB:         th,
			TangentB:          shape.tangent(th),
		}})
	}

	// Substitute relative to the curve's start point. In absolute coordinates
	// the constant terms would cancel.
	o := Vec2(c.eval(0)).Negate()
	lc := c.translate(o)
	f := q.translate(o).substitute(lc.x, lc.y).Normalize()
	epsT := c.paramEps(eps)
	var pts []IntersectionPointEx
	tangent := true
	for _, t := range f.RootsInInterval(-epsT, 1+epsT) {
		t = f.polish(clamp(t, 0, 1), 0, 1)
		p := c.eval(t)
		th := shape.angle(p)
		pt := IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: p, ArgumentA: t},
			ArgumentB:         th,
			TangentA:          c.tangent(t),
			TangentB:          shape.tangent(th),
		}
		if !isTouching(pt.TangentA, pt.TangentB) {
			tangent = false
		}
		pts = append(pts, pt)
	}
	if len(pts) == 0 {
		if shape.contains(c.eval(0)) {
			return statusOnly(NoIntersectionInside)
		}
		return statusOnly(NoIntersectionOutside)
	}
	if tangent {
		return newResult(NoIntersectionTangent, pts)
	}
	return newResult(Intersecting, pts)
}
