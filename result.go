package geom

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// IntersectionPoint is a point at which two primitives meet.
type IntersectionPoint struct {
	Point
	// ArgumentA is the parameter of the point on the first primitive, in that
	// primitive's natural domain: t ∈ [0, 1] for segments and Bézier curves,
	// t ∈ [MinT, MaxT] for rays and the angle in [0, 2π) for circles and
	// ellipses. For rectangles, polygons and paths it is the parameter on the
	// edge identified by [IntersectionPointEx.SegmentA].
	ArgumentA float64
}

// IntersectionPointEx extends IntersectionPoint with information about the
// second primitive and with tangents.
type IntersectionPointEx struct {
	IntersectionPoint
	// ArgumentB is the parameter of the point on the second primitive.
	ArgumentB float64
	// TangentA and TangentB are the derivatives of the two primitives at the
	// point. They are not normalized and are zero for points.
	TangentA Vec2
	TangentB Vec2
	// SegmentA and SegmentB are the indices of the edges or path elements
	// the point lies on, for rectangles, polygons and paths. They are zero for
	// other primitives.
	SegmentA int
	SegmentB int
}

// Swap returns the point with the roles of the two primitives exchanged.
func (p IntersectionPointEx) Swap() IntersectionPointEx {
	return IntersectionPointEx{
		IntersectionPoint: IntersectionPoint{Point: p.Point, ArgumentA: p.ArgumentB},
		ArgumentB:         p.ArgumentA,
		TangentA:          p.TangentB,
		TangentB:          p.TangentA,
		SegmentA:          p.SegmentB,
		SegmentB:          p.SegmentA,
	}
}

// Result is the outcome of intersecting two primitives: a status and the
// points the primitives meet at.
//
// A Result may contain points even if its status isn't [Intersecting], for
// example the touching point of a tangent or the bounds of a coincident
// overlap. Always consult [Result.Status].
type Result struct {
	status Status
	points []IntersectionPoint
}

func (r Result) Status() Status { return r.status }

// Intersects reports whether the primitives cross.
func (r Result) Intersects() bool { return r.status == Intersecting }

// Len returns the number of points.
func (r Result) Len() int { return len(r.points) }

// At returns the i'th point.
func (r Result) At(i int) IntersectionPoint { return r.points[i] }

// Points returns an iterator over the points, in order.
func (r Result) Points() iter.Seq[IntersectionPoint] {
	return func(yield func(IntersectionPoint) bool) {
		for _, p := range r.points {
			if !yield(p) {
				return
			}
		}
	}
}

func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(r.status.String())
	for i, p := range r.points {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s@%g", p.Point, p.ArgumentA)
	}
	return sb.String()
}

// ResultEx is like [Result] but holds [IntersectionPointEx] values.
//
// Points are ordered by SegmentA and then by ArgumentA.
type ResultEx struct {
	status Status
	points []IntersectionPointEx
}

func newResult(status Status, points []IntersectionPointEx) ResultEx {
	slices.SortStableFunc(points, func(a, b IntersectionPointEx) int {
		if c := cmp.Compare(a.SegmentA, b.SegmentA); c != 0 {
			return c
		}
		return cmp.Compare(a.ArgumentA, b.ArgumentA)
	})
	return ResultEx{status: status, points: points}
}

// statusOnly returns a result without points.
func statusOnly(status Status) ResultEx {
	return ResultEx{status: status}
}

func (r ResultEx) Status() Status { return r.status }

// Intersects reports whether the primitives cross.
func (r ResultEx) Intersects() bool { return r.status == Intersecting }

// Len returns the number of points.
func (r ResultEx) Len() int { return len(r.points) }

// At returns the i'th point.
func (r ResultEx) At(i int) IntersectionPointEx { return r.points[i] }

// Points returns an iterator over the points, in order.
func (r ResultEx) Points() iter.Seq[IntersectionPointEx] {
	return func(yield func(IntersectionPointEx) bool) {
		for _, p := range r.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Simple drops the information about the second primitive.
func (r ResultEx) Simple() Result {
	out := Result{status: r.status}
	if len(r.points) > 0 {
		out.points = make([]IntersectionPoint, len(r.points))
		for i, p := range r.points {
			out.points[i] = p.IntersectionPoint
		}
	}
	return out
}

// Swap returns the result with the roles of the two primitives exchanged,
// turning the result of intersecting a with b into the result of
// intersecting b with a.
//
// Inside means that one shape encloses the other and is kept as is.
func (r ResultEx) Swap() ResultEx {
	if len(r.points) == 0 {
		return r
	}
	points := make([]IntersectionPointEx, len(r.points))
	for i, p := range r.points {
		points[i] = p.Swap()
	}
	return newResult(r.status, points)
}

func (r ResultEx) String() string {
	return r.Simple().String()
}
