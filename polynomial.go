package geom

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Polynomial is a polynomial in one variable with real coefficients.
//
// Polynomials are immutable. All operations return new polynomials.
//
// The zero value is the zero polynomial.
type Polynomial struct {
	// coeffs[i] is the coefficient of x^i.
	coeffs []float64
}

// NewPolynomial returns the polynomial with the given coefficients, highest
// degree first, the way polynomials are usually written. NewPolynomial(1, -3, 2)
// is x² − 3x + 2.
func NewPolynomial(coeffs ...float64) Polynomial {
	c := make([]float64, len(coeffs))
	for i, v := range coeffs {
		c[len(coeffs)-1-i] = v
	}
	return Polynomial{coeffs: c}
}

// PolynomialFromCoefficients returns the polynomial whose i'th coefficient
// multiplies x^i.
func PolynomialFromCoefficients(coeffs []float64) Polynomial {
	return Polynomial{coeffs: slices.Clone(coeffs)}
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p Polynomial) Coefficients() []float64 {
	return slices.Clone(p.coeffs)
}

// Coefficient returns the coefficient of x^i, which is zero for i outside
// the stored range.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Degree returns the degree of the polynomial as stored, including leading
// coefficients that are zero.
func (p Polynomial) Degree() int {
	return max(len(p.coeffs)-1, 0)
}

// SimplifiedDegree returns the degree after dropping leading coefficients
// whose magnitude is at most [Epsilon].
func (p Polynomial) SimplifiedDegree() int {
	for i := len(p.coeffs) - 1; i > 0; i-- {
		if math.Abs(p.coeffs[i]) > Epsilon {
			return i
		}
	}
	return 0
}

// Simplify returns the polynomial with leading near-zero coefficients removed.
func (p Polynomial) Simplify() Polynomial {
	if len(p.coeffs) == 0 {
		return Polynomial{coeffs: []float64{0}}
	}
	return Polynomial{coeffs: slices.Clone(p.coeffs[:p.SimplifiedDegree()+1])}
}

// Eval evaluates the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	var v float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		v = v*x + p.coeffs[i]
	}
	return v
}

func (p Polynomial) Add(o Polynomial) Polynomial {
	out := make([]float64, max(len(p.coeffs), len(o.coeffs)))
	copy(out, p.coeffs)
	for i, c := range o.coeffs {
		out[i] += c
	}
	return Polynomial{coeffs: out}
}

func (p Polynomial) Sub(o Polynomial) Polynomial {
	out := make([]float64, max(len(p.coeffs), len(o.coeffs)))
	copy(out, p.coeffs)
	for i, c := range o.coeffs {
		out[i] -= c
	}
	return Polynomial{coeffs: out}
}

func (p Polynomial) Mul(o Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(o.coeffs) == 0 {
		return Polynomial{}
	}
	out := make([]float64, len(p.coeffs)+len(o.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range o.coeffs {
			out[i+j] += a * b
		}
	}
	return Polynomial{coeffs: out}
}

// Scale multiplies every coefficient by f.
func (p Polynomial) Scale(f float64) Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * f
	}
	return Polynomial{coeffs: out}
}

// Derivative returns the first derivative.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{coeffs: []float64{0}}
	}
	out := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = float64(i) * p.coeffs[i]
	}
	return Polynomial{coeffs: out}
}

// Normalize divides the polynomial by its largest coefficient magnitude. The
// roots don't change, but [Epsilon] becomes relative to the coefficients,
// which matters for resultants with very large or very small coefficients.
func (p Polynomial) Normalize() Polynomial {
	var m float64
	for _, c := range p.coeffs {
		m = max(m, math.Abs(c))
	}
	if m == 0 {
		return Polynomial{coeffs: slices.Clone(p.coeffs)}
	}
	return p.Scale(1 / m)
}

// IsZero reports whether all coefficients are at most [Epsilon] in magnitude.
func (p Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if math.Abs(c) > Epsilon {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		if sb.Len() == 0 {
			if c < 0 {
				sb.WriteString("-")
			}
		} else if c < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		c = math.Abs(c)
		if c != 1 || i == 0 {
			fmt.Fprintf(&sb, "%g", c)
		}
		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
