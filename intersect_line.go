package geom

import "math"

// IntersectLineLine intersects two line segments.
//
// The parameter ranges of both segments are widened by eps, measured in
// length, so that segments whose endpoints touch within eps are reported as
// intersecting. Segments whose directions differ by an angle of less than
// about eps radians are treated as parallel. Collinear segments that overlap
// are [NoIntersectionCoincident], with the two ends of the shared part as
// points; collinear segments that share only an endpoint intersect at that
// point.
func IntersectLineLine(a, b Line, eps float64) ResultEx {
	return intersectRays(a.Ray(), b.Ray(), eps)
}

// IntersectLineRay intersects a line segment with a ray or infinite line. See
// [IntersectLineLine] for the treatment of eps.
func IntersectLineRay(a Line, b Ray, eps float64) ResultEx {
	return intersectRays(a.Ray(), b, eps)
}

// IntersectRayRay intersects two rays. See [IntersectLineLine] for the
// treatment of eps.
func IntersectRayRay(a, b Ray, eps float64) ResultEx {
	return intersectRays(a, b, eps)
}

func intersectRays(a, b Ray, eps float64) ResultEx {
	la := a.Dir.Hypot()
	lb := b.Dir.Hypot()
	switch {
	case la <= eps && lb <= eps:
		ta, tb := a.anyT(), b.anyT()
		p := a.Eval(ta)
		if !p.ApproxEqual(b.Eval(tb), eps) {
			return statusOnly(NoIntersection)
		}
		return newResult(Intersecting, []IntersectionPointEx{rayPoint(a, b, ta, tb)})
	case la <= eps:
		ta := a.anyT()
		distSq, tb := b.Nearest(a.Eval(ta))
		if distSq > eps*eps {
			return statusOnly(NoIntersection)
		}
		return newResult(Intersecting, []IntersectionPointEx{rayPoint(a, b, ta, tb)})
	case lb <= eps:
		return intersectRays(b, a, eps).Swap()
	}

	epsA := eps / la
	epsB := eps / lb
	w := a.Origin.Sub(b.Origin)
	cross := a.Dir.Cross(b.Dir)
	if math.Abs(cross) <= eps*la*lb {
		if math.Abs(a.Dir.Cross(b.Origin.Sub(a.Origin)))/la > eps {
			return statusOnly(NoIntersectionParallel)
		}
		return intersectCollinear(a, b, epsA)
	}

	ta := b.Dir.Cross(w) / cross
	tb := a.Dir.Cross(w) / cross
	if !a.inRange(ta, epsA) || !b.inRange(tb, epsB) {
		return statusOnly(NoIntersection)
	}
	ta = clamp(ta, a.MinT, a.MaxT)
	tb = clamp(tb, b.MinT, b.MaxT)
	return newResult(Intersecting, []IntersectionPointEx{rayPoint(a, b, ta, tb)})
}

// intersectCollinear handles two rays on the same line. epsA is the
// tolerance in a's parameter.
func intersectCollinear(a, b Ray, epsA float64) ResultEx {
	// Map b's parameters to a's: ta = alpha + beta·tb.
	la2 := a.Dir.Hypot2()
	alpha := b.Origin.Sub(a.Origin).Dot(a.Dir) / la2
	beta := b.Dir.Dot(a.Dir) / la2
	toB := func(ta float64) float64 { return (ta - alpha) / beta }

	t0 := alpha + beta*b.MinT
	t1 := alpha + beta*b.MaxT
	lo := max(min(t0, t1), a.MinT)
	hi := min(max(t0, t1), a.MaxT)
	switch {
	case lo > hi+epsA:
		return statusOnly(NoIntersectionCoincident)
	case hi-lo <= epsA:
		// The rays touch end to end.
		ta := clamp(0.5*(lo+hi), a.MinT, a.MaxT)
		return newResult(Intersecting, []IntersectionPointEx{rayPoint(a, b, ta, clamp(toB(ta), b.MinT, b.MaxT))})
	}
	var pts []IntersectionPointEx
	for _, ta := range [2]float64{lo, hi} {
		if math.IsInf(ta, 0) {
			continue
		}
		pts = append(pts, rayPoint(a, b, ta, clamp(toB(ta), b.MinT, b.MaxT)))
	}
	return newResult(NoIntersectionCoincident, pts)
}

func rayPoint(a, b Ray, ta, tb float64) IntersectionPointEx {
	return IntersectionPointEx{
		IntersectionPoint: IntersectionPoint{Point: a.Eval(ta), ArgumentA: ta},
		ArgumentB:         tb,
		TangentA:          a.Dir,
		TangentB:          b.Dir,
	}
}
