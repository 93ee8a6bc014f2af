package geom

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertStatus(t *testing.T, res ResultEx, want Status) {
	t.Helper()
	if got := res.Status(); got != want {
		t.Errorf("got status %s, want %s (result %s)", got, want, res)
	}
}

// approx compares floats with an absolute tolerance suitable for computed
// intersections.
var approx = cmpopts.EquateApprox(0, 1e-6)

func points(res ResultEx) []Point {
	var out []Point
	for p := range res.Points() {
		out = append(out, p.Point)
	}
	return out
}

func allPoints(res ResultEx) []IntersectionPointEx {
	return slices.Collect(res.Points())
}
