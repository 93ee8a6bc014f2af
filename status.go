package geom

// Status classifies the relationship between two primitives.
//
// Every [Result] carries exactly one Status. Only [Intersecting] denotes a
// true crossing; all other values describe why the primitives don't cross.
type Status uint8

const (
	// NoIntersection means that the primitives don't meet and that no more
	// specific classification applies.
	NoIntersection Status = iota
	// Intersecting means that the primitives cross or touch at the reported points.
	Intersecting
	// NoIntersectionInside means that one closed shape lies entirely within the other.
	NoIntersectionInside
	// NoIntersectionOutside means that the shapes are disjoint and neither encloses the other.
	NoIntersectionOutside
	// NoIntersectionTangent means that the primitives touch without crossing.
	// The touching points are reported.
	NoIntersectionTangent
	// NoIntersectionCoincident means that the primitives lie on the same
	// curve. For overlapping segments the bounds of the shared part are reported.
	NoIntersectionCoincident
	// NoIntersectionParallel means that two lines are parallel and distinct.
	NoIntersectionParallel
)

func (s Status) String() string {
	switch s {
	case NoIntersection:
		return "NO_INTERSECTION"
	case Intersecting:
		return "INTERSECTION"
	case NoIntersectionInside:
		return "NO_INTERSECTION_INSIDE"
	case NoIntersectionOutside:
		return "NO_INTERSECTION_OUTSIDE"
	case NoIntersectionTangent:
		return "NO_INTERSECTION_TANGENT"
	case NoIntersectionCoincident:
		return "NO_INTERSECTION_COINCIDENT"
	case NoIntersectionParallel:
		return "NO_INTERSECTION_PARALLEL"
	default:
		return "INVALID_STATUS"
	}
}

// Intersects reports whether s is [Intersecting].
func (s Status) Intersects() bool {
	return s == Intersecting
}

// rank orders statuses by specificity for MergeStatus.
func (s Status) rank() int {
	switch s {
	case Intersecting:
		return 6
	case NoIntersectionTangent:
		return 5
	case NoIntersectionCoincident:
		return 4
	case NoIntersectionInside:
		return 3
	case NoIntersectionOutside:
		return 2
	case NoIntersectionParallel:
		return 1
	default:
		return 0
	}
}

// MergeStatus combines the statuses of two partial results, such as the
// edges of a polygon, into the status of the whole.
//
// [Intersecting] wins over everything. Among the non-intersecting statuses
// the more specific one is kept, in the order tangent, coincident, inside,
// outside, parallel and plain [NoIntersection].
func MergeStatus(a, b Status) Status {
	if b.rank() > a.rank() {
		return b
	}
	return a
}
