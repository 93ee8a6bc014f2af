package geom

import (
	"fmt"
	"math"
	"slices"
)

// Roots returns the distinct real roots of the polynomial in ascending order.
//
// Roots are computed in closed form and the polynomial's simplified degree
// (see [Polynomial.SimplifiedDegree]) must not exceed 4. Roots panics
// otherwise; use [Polynomial.RootsInInterval] for higher degrees.
//
// Constant polynomials, including the zero polynomial, have no roots.
func (p Polynomial) Roots() []float64 {
	s := p.Simplify()
	var roots []float64
	switch deg := s.Degree(); deg {
	case 0:
	case 1:
		roots = s.linearRoots()
	case 2:
		roots = s.quadraticRoots()
	case 3:
		roots = s.cubicRoots()
	case 4:
		roots = s.quarticRoots()
	default:
		panic(fmt.Sprintf("polynomial of degree %d has no closed-form roots, use RootsInInterval", deg))
	}
	return uniqueRoots(roots)
}

// uniqueRoots sorts roots and drops the repeats produced by the closed forms
// for multiple roots.
func uniqueRoots(roots []float64) []float64 {
	slices.Sort(roots)
	return slices.CompactFunc(roots, func(a, b float64) bool {
		return math.Abs(a-b) <= Epsilon*max(1, math.Abs(a))
	})
}

// snapRel returns 0 for values whose magnitude is at most Epsilon relative to
// scale, the magnitude of the terms that v was computed from. Scales below 1
// snap at Epsilon.
func snapRel(v, scale float64) float64 {
	if math.Abs(v) <= Epsilon*max(1, scale) {
		return 0
	}
	return v
}

func (p Polynomial) linearRoots() []float64 {
	c0, c1 := p.coeffs[0], p.coeffs[1]
	if c1 == 0 {
		return nil
	}
	return []float64{-c0 / c1}
}

func (p Polynomial) quadraticRoots() []float64 {
	a := p.coeffs[2]
	b := p.coeffs[1] / a
	c := p.coeffs[0] / a
	d := b*b - 4*c
	switch {
	case d > 0:
		// Compute the larger root first and the other one via Vieta's formula
		// to avoid cancellation.
		e := math.Sqrt(d)
		q := -0.5 * (b + math.Copysign(e, b))
		if q == 0 {
			return []float64{0.5 * e, -0.5 * e}
		}
		return []float64{q, c / q}
	case d == 0:
		return []float64{-0.5 * b}
	default:
		return nil
	}
}

// cubicRoots solves the depressed cubic t³ + at + b = 0 with Cardano's
// formula, or its trigonometric form when there are three real roots.
func (p Polynomial) cubicRoots() []float64 {
	c3 := p.coeffs[3]
	c2 := p.coeffs[2] / c3
	c1 := p.coeffs[1] / c3
	c0 := p.coeffs[0] / c3

	a := (3*c1 - c2*c2) / 3
	b := (2*c2*c2*c2 - 9*c1*c2 + 27*c0) / 27
	// The magnitudes of the terms of a and b bound their rounding errors.
	aMag := (3*math.Abs(c1) + c2*c2) / 3
	bMag := (2*math.Abs(c2*c2*c2) + 9*math.Abs(c1*c2) + 27*math.Abs(c0)) / 27
	offset := c2 / 3
	discrim := snapRel(b*b/4+a*a*a/27, max(b*b/4, math.Abs(a*a*a/27), bMag*math.Abs(b)/2+aMag*a*a/9))
	halfB := b / 2

	switch {
	case discrim > 0:
		e := math.Sqrt(discrim)
		root := math.Cbrt(-halfB+e) + math.Cbrt(-halfB-e)
		return p.recoverDoubleRoots([]float64{root - offset})
	case discrim < 0:
		distance := math.Sqrt(-a / 3)
		angle := math.Atan2(math.Sqrt(-discrim), -halfB) / 3
		sin, cos := math.Sincos(angle)
		sqrt3 := math.Sqrt(3)
		return []float64{
			2*distance*cos - offset,
			-distance*(cos+sqrt3*sin) - offset,
			-distance*(cos-sqrt3*sin) - offset,
		}
	default:
		tmp := math.Cbrt(-halfB)
		return []float64{2*tmp - offset, -tmp - offset}
	}
}

// quarticRoots uses Ferrari's method: the largest root of the resolvent cubic
// splits the quartic into two quadratics.
func (p Polynomial) quarticRoots() []float64 {
	c4 := p.coeffs[4]
	c3 := p.coeffs[3] / c4
	c2 := p.coeffs[2] / c4
	c1 := p.coeffs[1] / c4
	c0 := p.coeffs[0] / c4

	resolvent := NewPolynomial(1, -c2, c3*c1-4*c0, -c3*c3*c0+4*c2*c0-c1*c1).Roots()
	// A monic cubic always has a real root.
	y := resolvent[len(resolvent)-1]
	discrim := snapRel(c3*c3/4-c2+y, max(c3*c3/4, math.Abs(c2), math.Abs(y)))

	var roots []float64
	switch {
	case discrim > 0:
		e := math.Sqrt(discrim)
		t1 := 3*c3*c3/4 - e*e - 2*c2
		t2 := (4*c3*c2 - 8*c1 - c3*c3*c3) / (4 * e)
		scale := max(
			3*c3*c3/4+e*e+2*math.Abs(c2),
			(math.Abs(4*c3*c2)+math.Abs(8*c1)+math.Abs(c3*c3*c3))/(4*e),
		)
		plus := snapRel(t1+t2, scale)
		minus := snapRel(t1-t2, scale)
		if plus >= 0 {
			f := math.Sqrt(plus)
			roots = append(roots, -c3/4+(e+f)/2, -c3/4+(e-f)/2)
		}
		if minus >= 0 {
			f := math.Sqrt(minus)
			roots = append(roots, -c3/4+(f-e)/2, -c3/4-(f+e)/2)
		}
	case discrim == 0:
		t2 := snapRel(y*y-4*c0, max(y*y, math.Abs(4*c0)))
		if t2 < 0 {
			break
		}
		t2 = 2 * math.Sqrt(t2)
		t1 := 3*c3*c3/4 - 2*c2
		scale := max(3*c3*c3/4+2*math.Abs(c2), t2)
		if v := snapRel(t1+t2, scale); v >= 0 {
			d := math.Sqrt(v)
			roots = append(roots, -c3/4+d/2, -c3/4-d/2)
		}
		if v := snapRel(t1-t2, scale); v >= 0 {
			d := math.Sqrt(v)
			roots = append(roots, -c3/4+d/2, -c3/4-d/2)
		}
	}
	return p.recoverDoubleRoots(roots)
}

// recoverDoubleRoots adds the double roots that rounding made the closed
// forms miss. Near a double root a discriminant may come out slightly on the
// wrong side of zero, which loses the pair of roots. Such a root is a local
// extremum of p at which p vanishes relative to the magnitude of its terms,
// and no other root lies between the neighboring extrema.
func (p Polynomial) recoverDoubleRoots(roots []float64) []float64 {
	crit := p.Derivative().Roots()
	for i, x := range crit {
		lo, hi := math.Inf(-1), math.Inf(1)
		if i > 0 {
			lo = crit[i-1]
		}
		if i < len(crit)-1 {
			hi = crit[i+1]
		}
		if slices.ContainsFunc(roots, func(r float64) bool { return r > lo && r < hi }) {
			continue
		}
		if math.Abs(p.Eval(x)) <= Epsilon*p.magnitude(x) {
			roots = append(roots, x)
		}
	}
	return roots
}

// magnitude returns the sum of the magnitudes of the terms of p at x.
func (p Polynomial) magnitude(x float64) float64 {
	var m float64
	ax := math.Abs(x)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		m = m*ax + math.Abs(p.coeffs[i])
	}
	return m
}

// RootsInInterval returns the distinct real roots in [lo, hi] in ascending
// order.
//
// Polynomials of simplified degree 4 or less are solved in closed form. For
// higher degrees the roots of the derivative split the interval into pieces
// on which the polynomial is monotonic, and each piece is searched with
// [Polynomial.Bisection]. Infinite bounds are replaced by a bound on the
// magnitude of all roots.
func (p Polynomial) RootsInInterval(lo, hi float64) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	s := p.Simplify()
	if s.Degree() <= 4 {
		var out []float64
		for _, r := range s.Roots() {
			if r >= lo && r <= hi {
				out = append(out, r)
			}
		}
		return out
	}

	bound := s.rootBound()
	lo = max(lo, -bound)
	hi = min(hi, bound)
	if lo > hi {
		return nil
	}

	var out []float64
	a := lo
	for _, b := range append(s.Derivative().RootsInInterval(lo, hi), hi) {
		if r, ok := s.Bisection(a, b); ok {
			if n := len(out); n == 0 || math.Abs(out[n-1]-r) > Epsilon*max(1, math.Abs(r)) {
				out = append(out, r)
			}
		}
		a = b
	}
	return out
}

// rootBound returns Cauchy's bound, which exceeds the magnitude of every root.
// The polynomial must be simplified.
func (p Polynomial) rootBound() float64 {
	n := len(p.coeffs) - 1
	var m float64
	for _, c := range p.coeffs[:n] {
		m = max(m, math.Abs(c/p.coeffs[n]))
	}
	return 1 + m
}

// Bisection searches [lo, hi] for a root by bisection.
//
// An endpoint at which the polynomial is within [Epsilon] of zero is returned
// immediately. Otherwise the polynomial must change sign over the interval,
// or ok is false. The search stops when the value at the midpoint is within
// Epsilon of zero, or once the interval has been narrowed to
// [BisectionAccuracy] decimal digits of its original width.
func (p Polynomial) Bisection(lo, hi float64) (root float64, ok bool) {
	loValue := p.Eval(lo)
	hiValue := p.Eval(hi)
	if math.Abs(loValue) <= Epsilon {
		return lo, true
	}
	if math.Abs(hiValue) <= Epsilon {
		return hi, true
	}
	if loValue*hiValue > 0 {
		return 0, false
	}

	iters := int(math.Ceil((math.Log(hi-lo) + math.Ln10*BisectionAccuracy) / math.Ln2))
	root = 0.5 * (lo + hi)
	for range iters {
		root = 0.5 * (lo + hi)
		value := p.Eval(root)
		if math.Abs(value) <= Epsilon {
			break
		}
		if value*loValue < 0 {
			hi = root
		} else {
			lo = root
			loValue = value
		}
	}
	return root, true
}

// polish improves a root found by bisection with Newton's method, as long as
// that reduces the magnitude of the polynomial and stays within [lo, hi].
func (p Polynomial) polish(x, lo, hi float64) float64 {
	d := p.Derivative()
	best, bestValue := x, math.Abs(p.Eval(x))
	for range 8 {
		if bestValue == 0 {
			break
		}
		dv := d.Eval(x)
		if dv == 0 {
			break
		}
		x -= p.Eval(x) / dv
		if !(x >= lo && x <= hi) {
			break
		}
		v := math.Abs(p.Eval(x))
		if v >= bestValue {
			break
		}
		best, bestValue = x, v
	}
	return best
}
