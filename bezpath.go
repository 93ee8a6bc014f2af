package geom

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

// PathElement is an element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a Bézier path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type PathSegment struct {
	// We don't use an interface for PathSegment because we want {Line, Quad,
	// Cubic}.Transform to return their respective types, not PathSegment.
	//
	// This also avoids having to allocate for path segments.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

// Primitive returns the segment as a [Line], [QuadBez] or [CubicBez].
func (seg PathSegment) Primitive() Primitive {
	switch seg.Kind {
	case LineKind:
		return seg.Line()
	case QuadKind:
		return seg.Quad()
	case CubicKind:
		return seg.Cubic()
	default:
		panic(fmt.Sprintf("invalid path segment kind %d", seg.Kind))
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// Winding computes the winding number contribution of a single segment, by
// casting a ray from pt to the left and counting crossings.
func (seg PathSegment) Winding(pt Point) int {
	if seg.Kind == LineKind {
		return edgeWinding(seg.Line(), pt)
	}
	return seg.polys().winding(pt)
}

func (seg PathSegment) polys() curvePoly {
	switch seg.Kind {
	case LineKind:
		return seg.Line().polys()
	case QuadKind:
		return seg.Quad().polys()
	case CubicKind:
		return seg.Cubic().polys()
	default:
		return curvePoly{}
	}
}

// BezPath is a Bézier path.
//
// A path contains zero or more subpaths. Each subpath always begins with a
// MoveTo, then has zero or more LineTo, QuadTo, and CubicTo elements, and
// optionally ends with a ClosePath.
//
// A path can be represented in terms of either elements ([PathElement]) or
// segments ([PathSegment]). Elements are instructions for drawing the path,
// segments describe the path itself, with each segment being an independent
// line or curve. Intersections with paths identify segments by the index of
// the element that ends them; see [IndexedSegments].
type BezPath []PathElement

var _ Primitive = BezPath{}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
//
// If LineTo is called immediately after ClosePath then the current subpath
// starts at the initial point of the previous subpath.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(p.Elements()) }

// Transform returns a new path with an affine transformation applied.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Segment returns the segment at the given element index, if any.
//
// If you need to access all segments, [BezPath.Segments] provides a better
// API. This function is intended for random access of specific elements, for
// clients that map the SegmentA or SegmentB of an intersection back to the
// path.
//
// This returns the segment that ends at the provided element
// index. In effect this means it is 1-indexed: since no segment ends at
// the first element (which is presumed to be a [MoveTo]) Segment(0) will
// always return false.
func (p BezPath) Segment(idx int) (PathSegment, bool) {
	if idx == 0 || idx >= len(p) {
		return PathSegment{}, false
	}
	var last Point
	switch prev := p[idx-1]; prev.Kind {
	case ClosePathKind:
		// The current point is the start of the closed subpath.
		var ok bool
		last, ok = p.subpathStart(idx - 1)
		if !ok {
			return PathSegment{}, false
		}
	default:
		var ok bool
		last, ok = prev.EndPoint()
		if !ok {
			return PathSegment{}, false
		}
	}

	switch el := p[idx]; el.Kind {
	case LineToKind:
		return Line{last, el.P0}.Seg(), true
	case QuadToKind:
		return QuadBez{last, el.P0, el.P1}.Seg(), true
	case CubicToKind:
		return CubicBez{last, el.P0, el.P1, el.P2}.Seg(), true
	case ClosePathKind:
		start, ok := p.subpathStart(idx)
		if !ok || start == last {
			return PathSegment{}, false
		}
		return Line{last, start}.Seg(), true
	default:
		return PathSegment{}, false
	}
}

// subpathStart returns the start of the subpath containing the element at idx.
func (p BezPath) subpathStart(idx int) (Point, bool) {
	for i := idx; i >= 0; i-- {
		if p[i].Kind == MoveToKind {
			return p[i].P0, true
		}
	}
	return Point{}, false
}

// Winding returns the winding number of pt, with all subpaths implicitly
// closed.
func (p BezPath) Winding(pt Point) int {
	return ElementsWinding(p.Elements(), pt)
}

// Contains reports whether pt lies inside the path, by the nonzero winding
// rule.
func (p BezPath) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox returns a rectangle that encloses the path, computed from the
// control points.
func (p BezPath) BoundingBox() Rect {
	return ElementsBoundingBox(p.Elements())
}

func (p BezPath) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p BezPath) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

func (BezPath) primitive() {}

// Segments converts a sequence of path elements to a sequence of path segments.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		for _, seg := range IndexedSegments(seq) {
			if !yield(seg) {
				return
			}
		}
	}
}

// IndexedSegments converts a sequence of path elements to a sequence of path
// segments, each paired with the index of the element that ends it.
//
// ClosePath produces the line back to the start of the subpath, unless the
// subpath already ends there. IndexedSegments panics if the first element is
// a ClosePath.
func IndexedSegments(seq iter.Seq[PathElement]) iter.Seq2[int, PathSegment] {
	return func(yield func(int, PathSegment) bool) {
		first := true
		var start, last Point
		i := -1
		for el := range seq {
			i++
			if first {
				first = false
				if el.Kind == ClosePathKind {
					panic("first path element mustn't be ClosePath")
				}
				start, _ = el.EndPoint()
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(i, Line{p, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p := last
				last = el.P1
				if !yield(i, QuadBez{p, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(i, CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(i, Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// ElementsWinding returns the winding number of pt with respect to the path
// described by seq. Subpaths that aren't closed are treated as if they were.
func ElementsWinding(seq iter.Seq[PathElement], pt Point) int {
	var w int
	for _, sp := range subpaths(seq) {
		for _, seg := range sp.segs {
			w += seg.Winding(pt)
		}
		if !sp.closed() {
			w += edgeWinding(Line{sp.end, sp.start}, pt)
		}
	}
	return w
}

// ElementsBoundingBox returns the union of the control boxes of the segments
// in seq. It panics if the first element is a ClosePath.
func ElementsBoundingBox(seq iter.Seq[PathElement]) Rect {
	var bbox Rect
	first := true
	for seg := range Segments(seq) {
		if first {
			first = false
			bbox = seg.BoundingBox()
		} else {
			bbox = bbox.Union(seg.BoundingBox())
		}
	}
	return bbox
}

// subpath is a subpath split off a sequence of path elements.
type subpath struct {
	start Point
	end   Point
	segs  []PathSegment
}

func (sp subpath) closed() bool {
	return sp.start == sp.end
}

// subpaths splits seq into its subpaths. Subpaths without segments are
// skipped. Like [IndexedSegments], subpaths panics if the first element is a
// ClosePath.
func subpaths(seq iter.Seq[PathElement]) []subpath {
	var out []subpath
	var cur subpath
	flush := func(start Point) {
		if len(cur.segs) > 0 {
			out = append(out, cur)
		}
		cur = subpath{start: start, end: start}
	}
	push := func(seg PathSegment) {
		cur.segs = append(cur.segs, seg)
		cur.end = seg.End()
	}
	i := -1
	for el := range seq {
		i++
		if i == 0 {
			if el.Kind == ClosePathKind {
				panic("first path element mustn't be ClosePath")
			}
			pt, _ := el.EndPoint()
			cur = subpath{start: pt, end: pt}
		}
		switch el.Kind {
		case MoveToKind:
			flush(el.P0)
		case LineToKind:
			push(Line{cur.end, el.P0}.Seg())
		case QuadToKind:
			push(QuadBez{cur.end, el.P0, el.P1}.Seg())
		case CubicToKind:
			push(CubicBez{cur.end, el.P0, el.P1, el.P2}.Seg())
		case ClosePathKind:
			if cur.end != cur.start {
				push(Line{cur.end, cur.start}.Seg())
			}
			flush(cur.start)
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	flush(Point{})
	return out
}
