package geom

import (
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

func TestPolynomialArithmetic(t *testing.T) {
	p := NewPolynomial(1, -3, 2)
	q := NewPolynomial(1, -1)

	diff(t, []float64{2, -3, 1}, p.Coefficients())
	diff(t, 2, p.Degree())
	diff(t, []float64{-2, 5, -4, 1}, p.Mul(q).Coefficients())
	diff(t, []float64{3, -2, 1}, p.Add(NewPolynomial(1, 1)).Coefficients())
	diff(t, []float64{1, -4, 1}, p.Sub(NewPolynomial(1, 1)).Coefficients())
	diff(t, []float64{-3, 2}, p.Derivative().Coefficients())
	diff(t, []float64{4, -6, 2}, p.Scale(2).Coefficients())
	diff(t, 0.0, p.Eval(1))
	diff(t, 6.0, p.Eval(4))
	diff(t, 0.0, p.Coefficient(7))
}

func TestPolynomialSimplify(t *testing.T) {
	p := PolynomialFromCoefficients([]float64{1, 2, 1e-12, 0})
	diff(t, 3, p.Degree())
	diff(t, 1, p.SimplifiedDegree())
	diff(t, []float64{1, 2}, p.Simplify().Coefficients())
	if !(Polynomial{}).IsZero() || !NewPolynomial(1e-12, 0).IsZero() {
		t.Error("expected polynomial to be zero")
	}
	if NewPolynomial(1, 0).IsZero() {
		t.Error("x is not zero")
	}
}

func TestPolynomialNormalize(t *testing.T) {
	p := NewPolynomial(-4, 2, 1).Normalize()
	diff(t, []float64{0.25, 0.5, -1}, p.Coefficients())
	diff(t, []float64{0}, PolynomialFromCoefficients([]float64{0}).Normalize().Coefficients())
}

func TestPolynomialString(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want string
	}{
		{NewPolynomial(1, -3, 2), "x^2 - 3x + 2"},
		{NewPolynomial(-2, 0, 1), "-2x^2 + 1"},
		{NewPolynomial(1, 0), "x"},
		{Polynomial{}, "0"},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.p.String())
	}
}

func TestPolynomialRoots(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		want []float64
	}{
		{"constant", NewPolynomial(3), nil},
		{"zero", Polynomial{}, nil},
		{"linear", NewPolynomial(2, -1), []float64{0.5}},
		{"quadratic", NewPolynomial(1, -3, 2), []float64{1, 2}},
		{"double root", NewPolynomial(1, -2, 1), []float64{1}},
		{"no real roots", NewPolynomial(1, 0, 1), nil},
		{"cubic", NewPolynomial(1, -6, 11, -6), []float64{1, 2, 3}},
		{"cubic one root", NewPolynomial(1, 0, 1, 0), []float64{0}},
		{"quartic", NewPolynomial(1, -10, 35, -50, 24), []float64{1, 2, 3, 4}},
		{"biquadratic", NewPolynomial(1, 0, -5, 0, 4), []float64{-2, -1, 1, 2}},
		{"quartic no real roots", NewPolynomial(1, 0, 2, 0, 1), nil},
		// The leading coefficient is below Epsilon, which makes this a quadratic.
		{"degenerate quartic", NewPolynomial(1e-12, 0, 1, -3, 2), []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.p.Roots(), cmpopts.EquateApprox(0, 1e-6), cmpopts.EquateEmpty())
		})
	}
}

func TestPolynomialRootsHighDegreePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewPolynomial(1, 0, -5, 0, 4, 0).Roots()
}

func TestPolynomialRootsInInterval(t *testing.T) {
	quintic := NewPolynomial(1, 0, -5, 0, 4, 0)
	diff(t, []float64{-2, -1, 0, 1, 2}, quintic.RootsInInterval(-3, 3), cmpopts.EquateApprox(0, 1e-5))
	diff(t, []float64{-1, 0, 1}, quintic.RootsInInterval(-1.5, 1.5), cmpopts.EquateApprox(0, 1e-5))
	// Bounds may be given in either order.
	diff(t, []float64{1, 2}, quintic.RootsInInterval(3, 0.5), cmpopts.EquateApprox(0, 1e-5))
	diff(t, []float64{1, 2}, NewPolynomial(1, -3, 2).RootsInInterval(0, 5))
	diff(t, []float64{2}, NewPolynomial(1, -3, 2).RootsInInterval(1.5, 5))
	diff(t, []float64(nil), NewPolynomial(1, -3, 2).RootsInInterval(3, 5))
}

func TestPolynomialBisection(t *testing.T) {
	p := NewPolynomial(1, 0, -2)

	root, ok := p.Bisection(0, 2)
	if !ok {
		t.Fatal("expected root")
	}
	if math.Abs(root-math.Sqrt2) > 1e-5 {
		t.Errorf("got root %v, want %v", root, math.Sqrt2)
	}

	if _, ok := p.Bisection(2, 3); ok {
		t.Error("expected no root without a sign change")
	}

	// Roots at the bounds are returned directly.
	root, ok = NewPolynomial(1, -1).Bisection(1, 2)
	if !ok || root != 1 {
		t.Errorf("got (%v, %t), want (1, true)", root, ok)
	}
}

// companionRoots computes the real roots of p as the real eigenvalues of its
// companion matrix.
func companionRoots(p Polynomial) []float64 {
	c := p.Coefficients()
	n := len(c) - 1
	m := mat.NewDense(n, n, nil)
	for i := range n {
		if i > 0 {
			m.Set(i, i-1, 1)
		}
		m.Set(i, n-1, -c[i]/c[n])
	}
	var eig mat.Eigen
	if !eig.Factorize(m, mat.EigenNone) {
		return nil
	}
	var out []float64
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) < 1e-9 {
			out = append(out, real(v))
		} else if cmplx.IsNaN(v) {
			return nil
		}
	}
	slices.Sort(out)
	return out
}

func TestPolynomialRootsMatchEigenvalues(t *testing.T) {
	polys := []Polynomial{
		NewPolynomial(1, -6, 11, -6),
		NewPolynomial(2, -3, -11, 6),
		NewPolynomial(1, -10, 35, -50, 24),
		NewPolynomial(3, 1, -7, 2, 1),
		NewPolynomial(1, 0, 1).
			Mul(NewPolynomial(1, -0.5)).
			Mul(NewPolynomial(1, 3)).
			Mul(NewPolynomial(1, -7)),
		NewPolynomial(1, -1).
			Mul(NewPolynomial(1, 2)).
			Mul(NewPolynomial(1, -4)).
			Mul(NewPolynomial(1, 0.25)).
			Mul(NewPolynomial(1, 5)).
			Mul(NewPolynomial(1, -6)),
	}
	for _, p := range polys {
		want := companionRoots(p)
		got := p.RootsInInterval(math.Inf(-1), math.Inf(1))
		diff(t, want, got, cmpopts.EquateApprox(0, 1e-3), cmpopts.EquateEmpty())
	}
}

func TestPolynomialDoubleRoots(t *testing.T) {
	for _, c := range []float64{0, 10, -7.5} {
		lin := func(r float64) Polynomial { return NewPolynomial(1, -r) }

		// ((x − c)² − 1)² has double roots at c ± 1.
		q := lin(c - 1).Mul(lin(c + 1))
		diff(t, []float64{c - 1, c + 1}, q.Mul(q).Roots(), cmpopts.EquateApprox(0, 1e-6))

		// (x − c − 1)²(x − c − 3)
		p := lin(c + 1).Mul(lin(c + 1)).Mul(lin(c + 3))
		diff(t, []float64{c + 1, c + 3}, p.Roots(), cmpopts.EquateApprox(0, 1e-6))
	}
}
