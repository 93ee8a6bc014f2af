package geom

import "math"

// IntersectLineQuad intersects a line segment with a quadratic Bézier curve.
// It returns at most two points.
//
// The line is converted to its implicit form n·P + c = 0. Substituting the
// curve yields a quadratic in the curve parameter, whose roots are mapped
// back onto the line. Both parameter ranges are widened by eps.
//
// A curve that lies on the line is [NoIntersectionCoincident] with the ends
// of the shared part as points if the two overlap, and [NoIntersection] if
// they don't.
func IntersectLineQuad(l Line, q QuadBez, eps float64) ResultEx {
	return intersectRayCurve(l.Ray(), q.polys(), eps)
}

// IntersectLineCubic intersects a line segment with a cubic Bézier curve. It
// returns at most three points. See [IntersectLineQuad].
func IntersectLineCubic(l Line, c CubicBez, eps float64) ResultEx {
	return intersectRayCurve(l.Ray(), c.polys(), eps)
}

// IntersectRayQuad is like [IntersectLineQuad] but for rays and infinite lines.
func IntersectRayQuad(r Ray, q QuadBez, eps float64) ResultEx {
	return intersectRayCurve(r, q.polys(), eps)
}

// IntersectRayCubic is like [IntersectLineCubic] but for rays and infinite lines.
func IntersectRayCubic(r Ray, c CubicBez, eps float64) ResultEx {
	return intersectRayCurve(r, c.polys(), eps)
}

func intersectRayCurve(r Ray, c curvePoly, eps float64) ResultEx {
	lr := r.Dir.Hypot()
	if lr <= eps {
		// A degenerate line is a point.
		ta := r.anyT()
		res := intersectPointCurve(r.Eval(ta), c, eps)
		if res.status != Intersecting {
			return statusOnly(NoIntersection)
		}
		pts := make([]IntersectionPointEx, len(res.points))
		for i, p := range res.points {
			p.ArgumentA = ta
			p.TangentA = r.Dir
			pts[i] = p
		}
		return newResult(Intersecting, pts)
	}

	if c.degree() == 0 {
		p := c.eval(0)
		distSq, s := r.Nearest(p)
		if distSq > eps*eps {
			return statusOnly(NoIntersection)
		}
		return newResult(Intersecting, []IntersectionPointEx{{
			IntersectionPoint: IntersectionPoint{Point: p, ArgumentA: s},
			TangentA:          r.Dir,
		}})
	}

	// Signed distance of the curve from the line.
	n := r.Dir.Perp().Mul(1 / lr)
	f := c.x.Scale(n.X).Add(c.y.Scale(n.Y)).Sub(NewPolynomial(n.Dot(Vec2(r.Origin))))
	epsR := eps / lr
	if maxAbsCoeff(f) <= eps {
		return rayCurveOverlap(r, c, eps, epsR)
	}

	epsT := c.paramEps(eps)
	var pts []IntersectionPointEx
	for _, t := range f.RootsInInterval(-epsT, 1+epsT) {
		t = clamp(t, 0, 1)
		p := c.eval(t)
		s := p.Sub(r.Origin).Dot(r.Dir) / (lr * lr)
		if !r.inRange(s, epsR) {
			continue
		}
		s = clamp(s, r.MinT, r.MaxT)
		pts = append(pts, IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: p, ArgumentA: s},
			ArgumentB:         t,
			TangentA:          r.Dir,
			TangentB:          c.tangent(t),
		})
	}
	if len(pts) == 0 {
		return statusOnly(NoIntersection)
	}
	return newResult(Intersecting, pts)
}

// rayCurveOverlap intersects a ray with a curve that lies on the ray's line.
// The ray's finite ends that lie on the curve and the curve's ends that lie
// on the ray bound the shared part.
func rayCurveOverlap(r Ray, c curvePoly, eps, epsR float64) ResultEx {
	var pts []IntersectionPointEx
	add := func(s, t float64) {
		for _, o := range pts {
			if math.Abs(o.ArgumentA-s) <= epsR && math.Abs(o.ArgumentB-t) <= RootMatchTolerance {
				return
			}
		}
		pts = append(pts, IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: c.eval(t), ArgumentA: s},
			ArgumentB:         t,
			TangentA:          r.Dir,
			TangentB:          c.tangent(t),
		})
	}
	for _, t := range [...]float64{0, 1} {
		if s := c.eval(t).Sub(r.Origin).Dot(r.Dir) / r.Dir.Hypot2(); r.inRange(s, epsR) {
			add(clamp(s, r.MinT, r.MaxT), t)
		}
	}
	for _, s := range [...]float64{r.MinT, r.MaxT} {
		if math.IsInf(s, 0) {
			continue
		}
		for p := range intersectPointCurve(r.Eval(s), c, eps).Points() {
			add(s, p.ArgumentB)
		}
	}
	switch len(pts) {
	case 0:
		return statusOnly(NoIntersection)
	case 1:
		return newResult(Intersecting, pts)
	default:
		return newResult(NoIntersectionCoincident, pts)
	}
}

func maxAbsCoeff(p Polynomial) float64 {
	var m float64
	for _, c := range p.coeffs {
		m = max(m, math.Abs(c))
	}
	return m
}
