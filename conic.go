package geom

import "math"

// Conic is the implicit equation A·x² + B·xy + C·y² + D·x + E·y + F = 0 of a
// conic section.
type Conic struct {
	A, B, C, D, E, F float64
}

// Eval evaluates the left-hand side of the equation at pt. It is zero on the
// curve and, for the conics of circles and ellipses, negative inside.
func (c Conic) Eval(pt Point) float64 {
	x, y := pt.Splat()
	return c.A*x*x + c.B*x*y + c.C*y*y + c.D*x + c.E*y + c.F
}

// Gradient returns the gradient of [Conic.Eval] at pt.
func (c Conic) Gradient(pt Point) Vec2 {
	x, y := pt.Splat()
	return Vec2{
		X: 2*c.A*x + c.B*y + c.D,
		Y: c.B*x + 2*c.C*y + c.E,
	}
}

// translate returns the conic moved by v.
func (c Conic) translate(v Vec2) Conic {
	return Conic{
		A: c.A,
		B: c.B,
		C: c.C,
		D: c.D - 2*c.A*v.X - c.B*v.Y,
		E: c.E - c.B*v.X - 2*c.C*v.Y,
		F: c.Eval(Point(v.Negate())),
	}
}

// distance estimates the distance of pt from the curve to first order.
func (c Conic) distance(pt Point) float64 {
	g := c.Gradient(pt).Hypot()
	v := math.Abs(c.Eval(pt))
	if g == 0 {
		if v == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return v / g
}

// xPolynomial returns the equation as a quadratic in x for a fixed y.
func (c Conic) xPolynomial(y float64) Polynomial {
	return NewPolynomial(c.A, c.B*y+c.D, c.C*y*y+c.E*y+c.F)
}

// substitute returns the polynomial in t obtained by substituting x(t) and
// y(t) into the equation.
func (c Conic) substitute(x, y Polynomial) Polynomial {
	return x.Mul(x).Scale(c.A).
		Add(x.Mul(y).Scale(c.B)).
		Add(y.Mul(y).Scale(c.C)).
		Add(x.Scale(c.D)).
		Add(y.Scale(c.E)).
		Add(NewPolynomial(c.F))
}

// Bezout returns the resultant of two conics with respect to x. It is a
// polynomial in y of degree at most 4 whose roots are the y coordinates
// shared by points on both curves.
func Bezout(e1, e2 Conic) Polynomial {
	a := [6]float64{e1.A, e1.B, e1.C, e1.D, e1.E, e1.F}
	b := [6]float64{e2.A, e2.B, e2.C, e2.D, e2.E, e2.F}
	AB := a[0]*b[1] - b[0]*a[1]
	AC := a[0]*b[2] - b[0]*a[2]
	AD := a[0]*b[3] - b[0]*a[3]
	AE := a[0]*b[4] - b[0]*a[4]
	AF := a[0]*b[5] - b[0]*a[5]
	BC := a[1]*b[2] - b[1]*a[2]
	BE := a[1]*b[4] - b[1]*a[4]
	BF := a[1]*b[5] - b[1]*a[5]
	CD := a[2]*b[3] - b[2]*a[3]
	DE := a[3]*b[4] - b[3]*a[4]
	DF := a[3]*b[5] - b[3]*a[5]
	BFpDE := BF + DE
	BEmCD := BE - CD
	return NewPolynomial(
		AB*BC-AC*AC,
		AB*BEmCD+AD*BC-2*AC*AE,
		AB*BFpDE+AD*BEmCD-AE*AE-2*AC*AF,
		AB*DF+AD*BFpDE-2*AE*AF,
		AD*DF-AF*AF,
	)
}

// resultant eliminates t from the equations p(t) = 0 and q(t) = 0, whose
// coefficients are polynomials in s. p[i] and q[i] are the coefficients of
// t^i. The result is the determinant of the Bézout matrix of p and q, a
// polynomial in s that vanishes wherever p and q have a common root in t.
func resultant(p, q []Polynomial) Polynomial {
	coeff := func(c []Polynomial, i int) Polynomial {
		if i < len(c) {
			return c[i]
		}
		return Polynomial{}
	}
	n := max(len(p), len(q)) - 1
	if n < 1 {
		return Polynomial{}
	}
	m := make([][]Polynomial, n)
	for i := range n {
		m[i] = make([]Polynomial, n)
		for j := range n {
			var b Polynomial
			for l := 0; l <= min(i, j); l++ {
				k := i + j + 1 - l
				b = b.Add(coeff(p, k).Mul(coeff(q, l))).Sub(coeff(p, l).Mul(coeff(q, k)))
			}
			m[i][j] = b
		}
	}
	return determinant(m)
}

// determinant computes the determinant of a square matrix of polynomials by
// cofactor expansion along the first row. The matrices that occur here are
// at most 3×3.
func determinant(m [][]Polynomial) Polynomial {
	switch len(m) {
	case 0:
		return NewPolynomial(1)
	case 1:
		return m[0][0]
	case 2:
		return m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0]))
	}
	var det Polynomial
	for col := range m {
		minor := make([][]Polynomial, 0, len(m)-1)
		for _, row := range m[1:] {
			r := make([]Polynomial, 0, len(m)-1)
			r = append(r, row[:col]...)
			r = append(r, row[col+1:]...)
			minor = append(minor, r)
		}
		term := m[0][col].Mul(determinant(minor))
		if col%2 == 0 {
			det = det.Add(term)
		} else {
			det = det.Sub(term)
		}
	}
	return det
}
