package geom

import (
	"iter"
	"maps"
	"slices"
	"testing"
)

func TestElementsToSegmentsClosePathReferstoLastMove(t *testing.T) {
	last := func(seq iter.Seq[PathSegment]) PathSegment {
		var el PathSegment
		for el = range seq {
		}
		return el
	}
	var p BezPath
	p.MoveTo(Pt(5.0, 5.0))
	p.LineTo(Pt(15.0, 15.0))
	p.MoveTo(Pt(10.0, 10.0))
	p.LineTo(Pt(15.0, 15.0))
	p.ClosePath()

	want := Line{Pt(15, 15), Pt(10, 10)}.Seg()
	diff(t, want, last(p.Segments()))
}

func TestContains(t *testing.T) {
	var path BezPath
	path.MoveTo(Pt(0.0, 0.0))
	path.LineTo(Pt(1.0, 1.0))
	path.LineTo(Pt(2.0, 0.0))
	path.ClosePath()
	if w := path.Winding(Pt(1, 0.5)); w != -1 {
		t.Errorf("got winding %v, want -1", w)
	}
	if !path.Contains(Pt(1, 0.5)) || path.Contains(Pt(1, 2)) {
		t.Error("Contains disagrees with Winding")
	}

	var curved BezPath
	curved.MoveTo(Pt(0, 0))
	curved.QuadTo(Pt(1, 2), Pt(2, 0))
	curved.ClosePath()
	if w := curved.Winding(Pt(1, 0.5)); w != -1 {
		t.Errorf("got winding %v, want -1", w)
	}
	if w := curved.Winding(Pt(1, 1.5)); w != 0 {
		t.Errorf("got winding %v, want 0", w)
	}

	// Open subpaths are closed implicitly.
	open := path[:3]
	if w := open.Winding(Pt(1, 0.5)); w != -1 {
		t.Errorf("got winding %v, want -1", w)
	}
}

func TestPolygonPathWinding(t *testing.T) {
	poly := Polygon{Pt(0, 0), Pt(4, 0), Pt(4, 3), Pt(0, 3)}
	path := BezPath(slices.Collect(poly.PathElements()))
	r := Rect{0, 0, 4, 3}
	for _, pt := range []Point{Pt(1, 1), Pt(3.5, 2.5), Pt(5, 1), Pt(-1, 1), Pt(2, 4)} {
		if pw, gw, rw := poly.Winding(pt), path.Winding(pt), r.Winding(pt); pw != gw || pw != rw {
			t.Errorf("%s: got winding numbers %d, %d and %d, want them equal", pt, pw, gw, rw)
		}
	}
}

func TestControlBox(t *testing.T) {
	// a sort of map ping looking thing drawn with a single cubic
	// cbox is wildly different than tight box
	var p BezPath
	p.MoveTo(Pt(200, 300))
	p.CubicTo(Pt(50, 50), Pt(350, 50), Pt(200, 300))
	want := Rect{50, 50, 350, 300}
	diff(t, want, p.BoundingBox())

	p.LineTo(Pt(400, 0))
	diff(t, Rect{50, 0, 400, 300}, p.BoundingBox())
}

func TestGetSegment(t *testing.T) {
	// Segment(i) should produce the same results as IndexedSegments.
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.QuadTo(Pt(12, 5), Pt(10, 10))
	p.CubicTo(Pt(7, 12), Pt(3, 12), Pt(0, 10))
	p.ClosePath()
	p.MoveTo(Pt(20, 20))
	p.LineTo(Pt(30, 20))
	p.ClosePath()
	p.LineTo(Pt(20, 30))

	want := maps.Collect(IndexedSegments(p.Elements()))
	got := map[int]PathSegment{}
	for i := range p {
		if seg, ok := p.Segment(i); ok {
			got[i] = seg
		}
	}
	diff(t, want, got)
	diff(t, 7, len(got))

	// The LineTo after ClosePath starts at the start of the closed subpath.
	diff(t, Line{Pt(20, 20), Pt(20, 30)}.Seg(), got[8])
}

func TestSegmentsPanicsOnLeadingClosePath(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	for range Segments(BezPath{ClosePath(), LineTo(Pt(1, 1))}.Elements()) {
	}
}

func TestSubpaths(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.LineTo(Pt(0, 1))
	p.ClosePath()
	p.MoveTo(Pt(5, 5))
	p.MoveTo(Pt(6, 6))
	p.LineTo(Pt(7, 7))

	sps := subpaths(p.Elements())
	if len(sps) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(sps))
	}
	if !sps[0].closed() || sps[1].closed() {
		t.Errorf("got closed %t and %t, want true and false", sps[0].closed(), sps[1].closed())
	}
	if len(sps[0].segs) != 3 || len(sps[1].segs) != 1 {
		t.Errorf("got %d and %d segments, want 3 and 1", len(sps[0].segs), len(sps[1].segs))
	}
	if isClosedPath(p) {
		t.Error("path with an open subpath is not closed")
	}
	if !isClosedPath(p[:4]) {
		t.Error("expected path to be closed")
	}
}

func TestPathTransform(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1, 1))
	p.QuadTo(Pt(2, 2), Pt(3, 1))
	p.ClosePath()
	got := p.Transform(Translate(Vec(1, -1)))
	want := BezPath{MoveTo(Pt(2, 0)), QuadTo(Pt(3, 1), Pt(4, 0)), ClosePath()}
	diff(t, want, got)

	seg, _ := p.Segment(1)
	diff(t, QuadBez{Pt(2, 0), Pt(3, 1), Pt(4, 0)}, seg.Transform(Translate(Vec(1, -1))).Quad())
}

func TestIntersectPath(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	p.ClosePath()

	res := IntersectPathLine(p.Elements(), Line{Pt(5, -5), Pt(5, 20)}, DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, []Point{Pt(5, 0), Pt(5, 5)}, points(res), approx)
	diff(t, 1, res.At(0).SegmentA)
	diff(t, 0.5, res.At(0).ArgumentA, approx)
	diff(t, 0.2, res.At(0).ArgumentB, approx)
	diff(t, 3, res.At(1).SegmentA)
	diff(t, 0.5, res.At(1).ArgumentA, approx)
	diff(t, 0.4, res.At(1).ArgumentB, approx)

	// SegmentA maps back to the path.
	for pt := range res.Points() {
		seg, ok := p.Segment(pt.SegmentA)
		if !ok {
			t.Fatalf("no segment at %d", pt.SegmentA)
		}
		assertNear(t, seg.Eval(pt.ArgumentA), pt.Point, 1e-9)
	}

	assertStatus(t, IntersectPathPoint(p.Elements(), Pt(8, 2), 0.1), NoIntersectionInside)
	assertStatus(t, IntersectPathPoint(p.Elements(), Pt(2, 8), 0.1), NoIntersectionOutside)
	res = IntersectPathPoint(p.Elements(), Pt(5, 0.05), 0.1)
	assertStatus(t, res, Intersecting)
	diff(t, []Point{Pt(5, 0)}, points(res), approx)

	assertStatus(t, IntersectPathCircle(p.Elements(), Circle{Pt(7, 3), 1}, DefaultEpsilon), NoIntersectionInside)
	assertStatus(t, IntersectPathCircle(p.Elements(), Circle{Pt(5, 5), 20}, DefaultEpsilon), NoIntersectionInside)
	assertStatus(t, IntersectPathEllipse(p.Elements(), NewEllipse(Pt(30, 0), Vec(2, 1), 0), DefaultEpsilon), NoIntersectionOutside)

	res = IntersectPathRay(p.Elements(), NewRay(Pt(-5, 5), Vec(1, 0)), DefaultEpsilon)
	assertStatus(t, res, Intersecting)
	diff(t, []Point{Pt(10, 5), Pt(5, 5)}, points(res), approx)
}

func TestIntersectOpenPath(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))

	assertStatus(t, IntersectPathCircle(p.Elements(), Circle{Pt(0.5, 0), 5}, DefaultEpsilon), NoIntersectionInside)
	assertStatus(t, IntersectPathCircle(p.Elements(), Circle{Pt(20, 0), 5}, DefaultEpsilon), NoIntersectionOutside)
	assertStatus(t, IntersectPathLine(p.Elements(), Line{Pt(0, 1), Pt(1, 1)}, DefaultEpsilon), NoIntersectionParallel)
}
