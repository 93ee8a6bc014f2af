package geom

import "math"

// curvePoly is a polynomial curve (x(t), y(t)) in power basis. Lines and
// Bézier curves are converted to this form for intersecting them.
type curvePoly struct {
	x, y Polynomial
}

func (c curvePoly) eval(t float64) Point {
	return Point{X: c.x.Eval(t), Y: c.y.Eval(t)}
}

func (c curvePoly) translate(v Vec2) curvePoly {
	return curvePoly{x: c.x.Add(NewPolynomial(v.X)), y: c.y.Add(NewPolynomial(v.Y))}
}

// onLocus reports whether pt lies within tol of the curve, which is extended
// beyond [0, 1] to all t.
func (c curvePoly) onLocus(pt Point, tol float64) bool {
	all := func(f Polynomial) []float64 {
		if f.SimplifiedDegree() == 0 {
			return nil
		}
		return f.RootsInInterval(math.Inf(-1), math.Inf(1))
	}
	ts := append(all(c.x.Sub(NewPolynomial(pt.X))), all(c.y.Sub(NewPolynomial(pt.Y)))...)
	for _, t := range ts {
		if c.eval(t).Distance(pt) <= tol {
			return true
		}
	}
	return false
}

func (c curvePoly) deriv() curvePoly {
	return curvePoly{x: c.x.Derivative(), y: c.y.Derivative()}
}

func (c curvePoly) tangent(t float64) Vec2 {
	d := c.deriv()
	return Vec2{X: d.x.Eval(t), Y: d.y.Eval(t)}
}

// degree returns the simplified degree of the curve, which is 0 for curves
// that collapse to a point.
func (c curvePoly) degree() int {
	return max(c.x.SimplifiedDegree(), c.y.SimplifiedDegree())
}

// speed returns an upper bound of the magnitude of the derivative on [0, 1].
func (c curvePoly) speed() float64 {
	var s float64
	for i := 1; i <= max(c.x.Degree(), c.y.Degree()); i++ {
		s += float64(i) * math.Hypot(c.x.Coefficient(i), c.y.Coefficient(i))
	}
	return s
}

// paramEps converts the geometric tolerance eps into a tolerance for the
// parameter.
func (c curvePoly) paramEps(eps float64) float64 {
	if s := c.speed(); s > 0 {
		return eps / s
	}
	return 0
}

// winding returns the winding contribution of the curve around pt, counted
// by casting a ray from pt towards negative x. Crossings that go up are
// counted on [0, 1) and crossings that go down on (0, 1], so that joined
// segments count shared endpoints once.
func (c curvePoly) winding(pt Point) int {
	dy := c.y.Derivative()
	var w int
	for _, t := range c.y.Sub(NewPolynomial(pt.Y)).RootsInInterval(0, 1) {
		s := dy.Eval(t)
		if c.x.Eval(t) > pt.X {
			continue
		}
		if s > 0 && t < 1 {
			w--
		} else if s < 0 && t > 0 {
			w++
		}
	}
	return w
}

// refineCurves polishes the parameters of an intersection of a and b with
// Newton's method on a(t) − b(s) = 0. It returns the best parameters found.
func refineCurves(a, b curvePoly, t, s float64) (float64, float64) {
	da, db := a.deriv(), b.deriv()
	best := a.eval(t).Sub(b.eval(s)).Hypot2()
	for range 8 {
		if best == 0 {
			break
		}
		f := a.eval(t).Sub(b.eval(s))
		ta := Vec2{X: da.x.Eval(t), Y: da.y.Eval(t)}
		tb := Vec2{X: db.x.Eval(s), Y: db.y.Eval(s)}
		det := -ta.Cross(tb)
		if math.Abs(det) <= Epsilon*ta.Hypot()*tb.Hypot() {
			break
		}
		nt := t + f.Cross(tb)/det
		ns := s - ta.Cross(f)/det
		d := a.eval(nt).Sub(b.eval(ns)).Hypot2()
		if !(d < best) {
			break
		}
		t, s, best = nt, ns, d
	}
	return t, s
}
