package geom

import "math"

// IntersectQuadQuad intersects two quadratic Bézier curves. It returns at most
// four points.
//
// Eliminating the parameter t of a from a(t) = b(s) yields the resultant, a
// polynomial in s of degree four. For each of its roots in [0, 1], t is
// recovered by solving x(t) and y(t) of a separately. Roots on which the two
// solutions don't agree within [RootMatchTolerance] are artifacts of the
// elimination and are dropped. The remaining pairs are polished with Newton's
// method.
//
// Curves that overlap along a stretch are [NoIntersectionCoincident], with the
// ends of the shared stretch as points. Curves on the same locus that don't
// overlap are [NoIntersection], or [Intersecting] if they share an endpoint.
// If all points are tangential the status is [NoIntersectionTangent].
func IntersectQuadQuad(a, b QuadBez, eps float64) ResultEx {
	return intersectCurves(a.polys(), b.polys(), eps)
}

// IntersectCubicQuad intersects a cubic with a quadratic Bézier curve. It
// returns at most six points. See [IntersectQuadQuad].
func IntersectCubicQuad(c CubicBez, q QuadBez, eps float64) ResultEx {
	return intersectCurves(c.polys(), q.polys(), eps)
}

// IntersectCubicCubic intersects two cubic Bézier curves. It returns at most
// nine points. See [IntersectQuadQuad].
func IntersectCubicCubic(a, b CubicBez, eps float64) ResultEx {
	return intersectCurves(a.polys(), b.polys(), eps)
}

func intersectCurves(a, b curvePoly, eps float64) ResultEx {
	switch {
	case a.degree() == 0:
		return intersectPointCurve(a.eval(0), b, eps)
	case b.degree() == 0:
		return intersectPointCurve(b.eval(0), a, eps).Swap()
	}

	// The resultant is built around a's start point, so that its
	// coefficients scale with the extent of the curves and not with their
	// position.
	o := Vec2(a.eval(0)).Negate()
	la, lb := a.translate(o), b.translate(o)

	// a(t) − b(s) as polynomials in t whose coefficients are polynomials in s.
	n := la.degree()
	p := make([]Polynomial, n+1)
	q := make([]Polynomial, n+1)
	for i := range n + 1 {
		p[i] = NewPolynomial(la.x.Coefficient(i))
		q[i] = NewPolynomial(la.y.Coefficient(i))
	}
	p[0] = p[0].Sub(lb.x)
	q[0] = q[0].Sub(lb.y)

	res := resultant(p, q)
	epsT, epsS := a.paramEps(eps), b.paramEps(eps)
	tol := max(eps, RootMatchTolerance*a.speed())
	m := max(maxAbsCoeff(la.x), maxAbsCoeff(la.y), maxAbsCoeff(lb.x), maxAbsCoeff(lb.y))
	if maxAbsCoeff(res) <= Epsilon*math.Pow(m, float64(2*n)) && sameLocus(a, b, tol) {
		return intersectOverlap(a, b, tol)
	}

	var pts []IntersectionPointEx
	tangent := true
	for _, s := range res.Normalize().RootsInInterval(-epsS, 1+epsS) {
		s = clamp(s, 0, 1)
		for _, t := range matchParameter(a, b.eval(s), epsT) {
			ta, sb := refineCurves(a, b, t, s)
			if ta < -epsT || ta > 1+epsT || sb < -epsS || sb > 1+epsS {
				continue
			}
			ta, sb = clamp(ta, 0, 1), clamp(sb, 0, 1)
			pt := a.eval(ta)
			if pt.Distance(b.eval(sb)) > tol {
				continue
			}
			dup := false
			for _, o := range pts {
				if math.Abs(o.ArgumentA-ta) <= RootMatchTolerance && math.Abs(o.ArgumentB-sb) <= RootMatchTolerance {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			ip := IntersectionPointEx{
				IntersectionPoint: IntersectionPoint{Point: pt, ArgumentA: ta},
				ArgumentB:         sb,
				TangentA:          a.tangent(ta),
				TangentB:          b.tangent(sb),
			}
			if !isTouching(ip.TangentA, ip.TangentB) {
				tangent = false
			}
			pts = append(pts, ip)
		}
	}
	switch {
	case len(pts) == 0:
		return statusOnly(NoIntersection)
	case tangent:
		return newResult(NoIntersectionTangent, pts)
	default:
		return newResult(Intersecting, pts)
	}
}

// matchParameter returns the parameters t in [−epsT, 1+epsT] at which the
// curve passes through pt, recovered from the x and the y coordinate
// separately. A coordinate in which the curve is constant doesn't constrain t.
func matchParameter(c curvePoly, pt Point, epsT float64) []float64 {
	fx := c.x.Sub(NewPolynomial(pt.X))
	fy := c.y.Sub(NewPolynomial(pt.Y))
	switch {
	case fx.SimplifiedDegree() == 0:
		return fy.RootsInInterval(-epsT, 1+epsT)
	case fy.SimplifiedDegree() == 0:
		return fx.RootsInInterval(-epsT, 1+epsT)
	}
	var out []float64
	ty := fy.RootsInInterval(-epsT, 1+epsT)
	for _, tx := range fx.RootsInInterval(-epsT, 1+epsT) {
		for _, t := range ty {
			if math.Abs(tx-t) <= RootMatchTolerance {
				out = append(out, (tx+t)/2)
			}
		}
	}
	return out
}

// sameLocus reports whether b lies on the curve that a's polynomials describe
// for all t, not only for t in [0, 1].
func sameLocus(a, b curvePoly, tol float64) bool {
	for _, s := range [...]float64{0.25, 0.5, 0.75} {
		if !a.onLocus(b.eval(s), tol) {
			return false
		}
	}
	return true
}

// intersectOverlap intersects two curves on the same locus. The endpoints of
// either curve that lie on the other bound the shared stretch. Curves that
// only share an endpoint intersect there.
func intersectOverlap(a, b curvePoly, tol float64) ResultEx {
	var pts []IntersectionPointEx
	add := func(ta, sb float64) {
		for _, o := range pts {
			if math.Abs(o.ArgumentA-ta) <= RootMatchTolerance && math.Abs(o.ArgumentB-sb) <= RootMatchTolerance {
				return
			}
		}
		pts = append(pts, IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{Point: a.eval(ta), ArgumentA: ta},
			ArgumentB:         sb,
			TangentA:          a.tangent(ta),
			TangentB:          b.tangent(sb),
		})
	}
	for _, ta := range [...]float64{0, 1} {
		for p := range intersectPointCurve(a.eval(ta), b, tol).Points() {
			add(ta, p.ArgumentB)
		}
	}
	for _, sb := range [...]float64{0, 1} {
		for p := range intersectPointCurve(b.eval(sb), a, tol).Points() {
			add(p.ArgumentB, sb)
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
