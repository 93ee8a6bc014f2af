package geom

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if d := l.Length() - math.Sqrt2; math.Abs(d) > 1e-12 {
		t.Errorf("got length %v, want %v", l.Length(), math.Sqrt2)
	}
	assertNear(t, l.Eval(0.5), Pt(0.5, 0.5), 1e-12)
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestRayNearest(t *testing.T) {
	r := NewRay(Pt(0, 0), Vec(1, 0))
	distSq, tt := r.Nearest(Pt(3, 4))
	diff(t, 16.0, distSq)
	diff(t, 3.0, tt)

	// Parameters are clamped to the ray.
	distSq, tt = r.Nearest(Pt(-3, 4))
	diff(t, 25.0, distSq)
	diff(t, 0.0, tt)

	distSq, tt = NewInfiniteLine(Pt(0, 0), Pt(1, 0)).Nearest(Pt(-3, 4))
	diff(t, 16.0, distSq)
	diff(t, -3.0, tt)
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	res := IntersectLineLine(hLine, vLine, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	want := []IntersectionPointEx{{
		IntersectionPoint: IntersectionPoint{Point: Pt(10, 0), ArgumentA: 0.1},
		ArgumentB:         0.5,
		TangentA:          Vec(100, 0),
		TangentB:          Vec(0, 20),
	}}
	diff(t, want, allPoints(res), approx)

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if res := IntersectLineLine(hLine, vLine, DefaultEpsilon); res.Len() != 0 {
		t.Errorf("expected no intersections, got %s", res)
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if res := IntersectLineLine(hLine, vLine, DefaultEpsilon); res.Len() != 0 {
		t.Errorf("expected no intersections, got %s", res)
	}
}

func TestIntersectLineLineStatus(t *testing.T) {
	seg := Line{Pt(0, 0), Pt(1, 0)}
	tests := []struct {
		name  string
		other Line
		want  Status
		n     int
	}{
		{"crossing", Line{Pt(0.5, -1), Pt(0.5, 1)}, Intersecting, 1},
		{"out of range", Line{Pt(5, -1), Pt(5, 1)}, NoIntersection, 0},
		{"parallel", Line{Pt(0, 1), Pt(1, 1)}, NoIntersectionParallel, 0},
		{"identical", seg, NoIntersectionCoincident, 2},
		{"overlapping", Line{Pt(0.5, 0), Pt(2, 0)}, NoIntersectionCoincident, 2},
		{"collinear disjoint", Line{Pt(2, 0), Pt(3, 0)}, NoIntersectionCoincident, 0},
		{"end to end", Line{Pt(1, 0), Pt(2, 0)}, Intersecting, 1},
		{"touching endpoint", Line{Pt(1, 0), Pt(1, 1)}, Intersecting, 1},
		{"degenerate on segment", Line{Pt(0.25, 0), Pt(0.25, 0)}, Intersecting, 1},
		{"degenerate off segment", Line{Pt(0.25, 1), Pt(0.25, 1)}, NoIntersection, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := IntersectLineLine(seg, tt.other, DefaultEpsilon)
			assertStatus(t, res, tt.want)
			if res.Len() != tt.n {
				t.Errorf("got %d points, want %d", res.Len(), tt.n)
			}
		})
	}
}

func TestIntersectLineLineCoincident(t *testing.T) {
	a := Line{Pt(0, 0), Pt(10, 0)}
	b := Line{Pt(15, 0), Pt(5, 0)}
	res := IntersectLineLine(a, b, DefaultEpsilon)
	assertStatus(t, res, NoIntersectionCoincident)
	diff(t, []Point{Pt(5, 0), Pt(10, 0)}, points(res), approx)
	diff(t, 0.5, res.At(0).ArgumentA, approx)
	diff(t, 1.0, res.At(0).ArgumentB, approx)
	diff(t, 1.0, res.At(1).ArgumentA, approx)
	diff(t, 0.5, res.At(1).ArgumentB, approx)
}

func TestIntersectLineRay(t *testing.T) {
	l := Line{Pt(5, 0), Pt(5, 10)}

	res := IntersectLineRay(l, NewRay(Pt(0, 0), Vec(1, 1)), DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, []Point{Pt(5, 5)}, points(res), approx)
	diff(t, 0.5, res.At(0).ArgumentA, approx)
	diff(t, 5.0, res.At(0).ArgumentB, approx)

	res = IntersectLineRay(l, NewRay(Pt(0, 0), Vec(-1, -1)), DefaultEpsilon)
	assertStatus(t, res, NoIntersection)

	res = IntersectLineRay(l, NewInfiniteLine(Pt(0, 0), Pt(-1, -1)), DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, -5.0, res.At(0).ArgumentB, approx)
}

func TestIntersectRayRay(t *testing.T) {
	a := NewRay(Pt(0, 0), Vec(1, 0))
	b := NewRay(Pt(3, -3), Vec(0, 1))
	res := IntersectRayRay(a, b, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, []Point{Pt(3, 0)}, points(res), approx)
	diff(t, 3.0, res.At(0).ArgumentA, approx)
	diff(t, 3.0, res.At(0).ArgumentB, approx)

	// Opposite rays on the same line overlap between their origins.
	res = IntersectRayRay(a, NewRay(Pt(4, 0), Vec(-1, 0)), DefaultEpsilon)
	assertStatus(t, res, NoIntersectionCoincident)
	diff(t, []Point{Pt(0, 0), Pt(4, 0)}, points(res), approx)

	// Rays pointing the same way share an unbounded part, and only the
	// finite end is reported.
	res = IntersectRayRay(a, NewRay(Pt(4, 0), Vec(2, 0)), DefaultEpsilon)
	assertStatus(t, res, NoIntersectionCoincident)
	diff(t, []Point{Pt(4, 0)}, points(res), approx)
}
