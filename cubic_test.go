package geom

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezPolys(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(-1, 0.5)}
	cp := c.polys()
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, cp.eval(ts), c.Eval(ts), 1e-12)
		diff(t, c.Tangent(ts), cp.tangent(ts), approx)
	}
}

func TestIntersectCubic(t *testing.T) {
	c := CubicBez{Pt(0.0, -10.0), Pt(10.0, 20.0), Pt(20.0, -20.0), Pt(30.0, 10.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	res := IntersectLineCubic(vLine, c, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	if res.Len() != 1 {
		t.Fatalf("got %d points, want 1", res.Len())
	}
	diff(t, 16.0/27.0, res.At(0).ArgumentA, approx)
	diff(t, 1.0/3.0, res.At(0).ArgumentB, approx)
	assertNear(t, res.At(0).Point, Pt(10, 50.0/27.0), 1e-9)

	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	res = IntersectLineCubic(hLine, c, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	d := math.Sqrt(21) / 14
	var ts []float64
	for p := range res.Points() {
		ts = append(ts, p.ArgumentB)
		diff(t, 0.0, p.Y, approx)
	}
	diff(t, []float64{0.5 - d, 0.5, 0.5 + d}, ts, approx)
}

func TestIntersectRayCubic(t *testing.T) {
	c := CubicBez{Pt(0.0, -10.0), Pt(10.0, 20.0), Pt(20.0, -20.0), Pt(30.0, 10.0)}

	// The infinite line x = 10 extends past both ends of the segment.
	res := IntersectRayCubic(NewInfiniteLine(Pt(10, 0), Pt(10, 1)), c, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, 50.0/27.0, res.At(0).ArgumentA, approx)
	diff(t, 1.0/3.0, res.At(0).ArgumentB, approx)

	res = IntersectRayCubic(NewRay(Pt(10, 5), Vec(0, 1)), c, DefaultEpsilon)
	assertStatus(t, res, NoIntersection)
}

func TestIntersectCubicCubic(t *testing.T) {
	a := CubicBez{Pt(0, 0), Pt(1, 3), Pt(2, -3), Pt(3, 0)}
	b := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	res := IntersectCubicCubic(a, b, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, []Point{Pt(0, 0), Pt(1.5, 0), Pt(3, 0)}, points(res), approx)
	for p := range res.Points() {
		diff(t, p.ArgumentA, p.ArgumentB, approx)
	}

	if res := IntersectCubicCubic(a, a, DefaultEpsilon); res.Status() != NoIntersectionCoincident {
		t.Errorf("got %s, want coincident", res)
	}

	far := CubicBez{Pt(0, 10), Pt(1, 10), Pt(2, 10), Pt(3, 10)}
	assertStatus(t, IntersectCubicCubic(a, far, DefaultEpsilon), NoIntersection)
}

func TestIntersectPointCubic(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 3), Pt(3, 3), Pt(3, 0)}

	res := IntersectPointCubic(Pt(1.5, 2.25), c, 0.01)
	assertStatus(t, res, Intersecting)
	diff(t, 0.5, res.At(0).ArgumentB, approx)
	assertNear(t, res.At(0).Point, Pt(1.5, 2.25), 1e-9)

	assertStatus(t, IntersectPointCubic(Pt(3, 4), c, 0.01), NoIntersection)

	// Points beyond the ends are nearest to the endpoints.
	cubic := CubicBez{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 0), Pt(1, 1)}
	res = IntersectPointCubic(Pt(1.1, 1.1), cubic, 1)
	assertStatus(t, res, Intersecting)
	diff(t, 1.0, res.At(0).ArgumentB)
	res = IntersectPointCubic(Pt(-0.1, 0), cubic, 1)
	assertStatus(t, res, Intersecting)
	diff(t, 0.0, res.At(0).ArgumentB)

	for i := range 11 {
		ts := float64(i) / 10
		res := IntersectPointCubic(cubic.Eval(ts), cubic, 1e-6)
		assertStatus(t, res, Intersecting)
		diff(t, ts, res.At(0).ArgumentB, approx)
	}
}
