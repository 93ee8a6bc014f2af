package geom

import (
	"testing"
)

func TestResultOrdering(t *testing.T) {
	pt := func(seg int, arg float64) IntersectionPointEx {
		return IntersectionPointEx{
			IntersectionPoint: IntersectionPoint{ArgumentA: arg},
			SegmentA:          seg,
		}
	}
	res := newResult(Intersecting, []IntersectionPointEx{pt(2, 0.1), pt(0, 0.9), pt(0, 0.2), pt(1, 0.5)})
	var got [][2]float64
	for p := range res.Points() {
		got = append(got, [2]float64{float64(p.SegmentA), p.ArgumentA})
	}
	want := [][2]float64{{0, 0.2}, {0, 0.9}, {1, 0.5}, {2, 0.1}}
	diff(t, want, got)
}

func TestResultSwap(t *testing.T) {
	res := IntersectLineLine(Line{Pt(0, 0), Pt(10, 0)}, Line{Pt(8, -2), Pt(8, 8)}, DefaultEpsilon)
	sw := res.Swap()
	diff(t, res.Status(), sw.Status())
	diff(t, 1, sw.Len())
	p, q := res.At(0), sw.At(0)
	diff(t, p.ArgumentA, q.ArgumentB)
	diff(t, p.ArgumentB, q.ArgumentA)
	diff(t, p.TangentA, q.TangentB)
	diff(t, p.TangentB, q.TangentA)
	diff(t, p.Point, q.Point)
	diff(t, p, q.Swap())
}

func TestResultSimple(t *testing.T) {
	res := IntersectLineLine(Line{Pt(0, 0), Pt(10, 0)}, Line{Pt(5, -5), Pt(5, 5)}, DefaultEpsilon)
	s := res.Simple()
	diff(t, Intersecting, s.Status())
	if !s.Intersects() {
		t.Error("expected intersection")
	}
	diff(t, 1, s.Len())
	diff(t, IntersectionPoint{Point: Pt(5, 0), ArgumentA: 0.5}, s.At(0))
	diff(t, "INTERSECTION (5, 0)@0.5", s.String())
	diff(t, s.String(), res.String())

	diff(t, "NO_INTERSECTION_PARALLEL", IntersectLineLine(Line{Pt(0, 0), Pt(1, 0)}, Line{Pt(0, 1), Pt(1, 1)}, DefaultEpsilon).String())
}
