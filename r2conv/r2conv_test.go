package r2conv

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"honnef.co/go/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestPoint(t *testing.T) {
	diff(t, geom.Pt(1, 2), Point(r2.Point{X: 1, Y: 2}))
	diff(t, r2.Point{X: 1, Y: 2}, FromPoint(geom.Pt(1, 2)))
	diff(t, geom.Vec(3, -4), Vec(r2.Point{X: 3, Y: -4}))
}

func TestRect(t *testing.T) {
	r := r2.RectFromPoints(r2.Point{X: 2, Y: 3}, r2.Point{X: 0, Y: 1})
	diff(t, geom.Rect{X0: 0, Y0: 1, X1: 2, Y1: 3}, Rect(r))
	diff(t, geom.Rect{}, Rect(r2.EmptyRect()))
	diff(t, r, FromRect(geom.Rect{X0: 2, Y0: 3, X1: 0, Y1: 1}))
}

func TestArgumentRange(t *testing.T) {
	a := geom.Line{P0: geom.Pt(0, 0), P1: geom.Pt(10, 0)}
	b := geom.Line{P0: geom.Pt(5, 0), P1: geom.Pt(15, 0)}
	res := geom.IntersectLineLine(a, b, geom.DefaultEpsilon)
	if res.Status() != geom.NoIntersectionCoincident {
		t.Fatalf("got status %s, want %s", res.Status(), geom.NoIntersectionCoincident)
	}
	diff(t, r1.Interval{Lo: 0.5, Hi: 1}, ArgumentRange(res))
	diff(t, r2.Rect{X: r1.Interval{Lo: 5, Hi: 10}, Y: r1.Interval{Lo: 0, Hi: 0}}, Bound(res))

	c := geom.Line{P0: geom.Pt(0, 1), P1: geom.Pt(10, 1)}
	res = geom.IntersectLineLine(a, c, geom.DefaultEpsilon)
	if !ArgumentRange(res).IsEmpty() {
		t.Errorf("got %v for a result without points, want empty interval", ArgumentRange(res))
	}
	if !Bound(res).IsEmpty() {
		t.Errorf("got %v for a result without points, want empty rectangle", Bound(res))
	}
}
