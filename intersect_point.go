package geom

import "math"

// The point routines are hit tests. They report [Intersecting] if the
// primitive passes within tolerance of the point, with the nearest point of
// the primitive as the intersection point. If several points of the
// primitive are equally near, within [Epsilon], all of them are reported.
// ArgumentA is always zero, ArgumentB is the parameter on the primitive.

// IntersectPointPoint reports whether a and b are at most tolerance apart.
func IntersectPointPoint(a, b Point, tolerance float64) ResultEx {
	if a.Distance(b) > tolerance {
		return statusOnly(NoIntersection)
	}
	return newResult(Intersecting, []IntersectionPointEx{{
		IntersectionPoint: IntersectionPoint{Point: b},
	}})
}

// IntersectPointLine tests whether the segment l passes within tolerance of p.
func IntersectPointLine(p Point, l Line, tolerance float64) ResultEx {
	return IntersectPointRay(p, l.Ray(), tolerance)
}

// IntersectPointRay tests whether the ray r passes within tolerance of p.
func IntersectPointRay(p Point, r Ray, tolerance float64) ResultEx {
	distSq, t := r.Nearest(p)
	if distSq > tolerance*tolerance {
		return statusOnly(NoIntersection)
	}
	return newResult(Intersecting, []IntersectionPointEx{
		pointHit(r.Eval(t), t, r.Dir),
	})
}

// IntersectPointQuad tests whether q passes within tolerance of p.
func IntersectPointQuad(p Point, q QuadBez, tolerance float64) ResultEx {
	return intersectPointCurve(p, q.polys(), tolerance)
}

// IntersectPointCubic tests whether c passes within tolerance of p.
//
// The nearest points are the roots of the derivative of the squared
// distance, a quintic, and the endpoints of the curve.
func IntersectPointCubic(p Point, c CubicBez, tolerance float64) ResultEx {
	return intersectPointCurve(p, c.polys(), tolerance)
}

// IntersectPointCircle tests whether c passes within tolerance of p. For p
// at the center, the point at angle 0 is reported.
func IntersectPointCircle(p Point, c Circle, tolerance float64) ResultEx {
	d := p.Distance(c.Center)
	if math.Abs(d-math.Abs(c.Radius)) > tolerance {
		return statusOnly(NoIntersection)
	}
	var th float64
	if d > 0 {
		th = c.Angle(p)
	}
	return newResult(Intersecting, []IntersectionPointEx{
		pointHit(c.Eval(th), th, c.Tangent(th)),
	})
}

// IntersectPointEllipse tests whether e passes within tolerance of p.
func IntersectPointEllipse(p Point, e Ellipse, tolerance float64) ResultEx {
	radii, rot := e.RadiiRotation()
	a, b := radii.X, radii.Y
	frame := Translate(Vec2(e.Center())).Mul(Rotate(rot))
	local := Rotate(-rot).TransformVec(p.Sub(e.Center()))

	// In the ellipse's frame, the nearest point (a·cos θ, b·sin θ) satisfies
	// (b²−a²)·sin θ·cos θ + a·x·sin θ − b·y·cos θ = 0. With u = tan(θ/2)
	// this becomes a quartic in u. θ = π corresponds to u = ∞.
	k := b*b - a*a
	poly := NewPolynomial(b*local.Y, 2*(a*local.X-k), 0, 2*(a*local.X+k), -b*local.Y)
	cands := []float64{0, math.Pi}
	for _, u := range poly.Roots() {
		cands = append(cands, 2*math.Atan(u))
	}

	var pts []Point
	best := math.Inf(1)
	for _, th := range cands {
		sin, cos := math.Sincos(th)
		q := Point{X: a * cos, Y: b * sin}.Transform(frame)
		d := q.Distance(p)
		switch {
		case d < best-Epsilon:
			best = d
			pts = append(pts[:0], q)
		case d <= best+Epsilon:
			best = min(best, d)
			if !containsPoint(pts, q, Epsilon) {
				pts = append(pts, q)
			}
		}
	}
	if best > tolerance {
		return statusOnly(NoIntersection)
	}
	hits := make([]IntersectionPointEx, len(pts))
	for i, q := range pts {
		th := e.Angle(q)
		hits[i] = pointHit(q, th, e.Tangent(th))
	}
	return newResult(Intersecting, hits)
}

func intersectPointCurve(p Point, c curvePoly, tolerance float64) ResultEx {
	d := c.deriv()
	dx := c.x.Sub(NewPolynomial(p.X))
	dy := c.y.Sub(NewPolynomial(p.Y))
	// Half the derivative of the squared distance.
	f := dx.Mul(d.x).Add(dy.Mul(d.y))

	cands := []float64{0, 1}
	for _, t := range f.RootsInInterval(0, 1) {
		cands = append(cands, f.polish(t, 0, 1))
	}

	type hit struct {
		t  float64
		pt Point
	}
	var hits []hit
	best := math.Inf(1)
	for _, t := range cands {
		q := c.eval(t)
		dist := q.Distance(p)
		switch {
		case dist < best-Epsilon:
			best = dist
			hits = append(hits[:0], hit{t, q})
		case dist <= best+Epsilon:
			best = min(best, dist)
			dup := false
			for _, h := range hits {
				if h.pt == q || math.Abs(h.t-t) <= Epsilon {
					dup = true
					break
				}
			}
			if !dup {
				hits = append(hits, hit{t, q})
			}
		}
	}
	if best > tolerance {
		return statusOnly(NoIntersection)
	}
	pts := make([]IntersectionPointEx, len(hits))
	for i, h := range hits {
		pts[i] = pointHit(h.pt, h.t, c.tangent(h.t))
	}
	return newResult(Intersecting, pts)
}

// pointHit returns the intersection of a point with a primitive at q, where q
// has parameter t and tangent tangent on the primitive.
func pointHit(q Point, t float64, tangent Vec2) IntersectionPointEx {
	return IntersectionPointEx{
		IntersectionPoint: IntersectionPoint{Point: q},
		ArgumentB:         t,
		TangentB:          tangent,
	}
}

func containsPoint(pts []Point, q Point, eps float64) bool {
	for _, p := range pts {
		if p.ApproxEqual(q, eps) {
			return true
		}
	}
	return false
}
