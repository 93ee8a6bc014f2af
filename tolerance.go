package geom

const (
	// Epsilon is the magnitude at or below which polynomial coefficients,
	// discriminants and function values are treated as zero.
	Epsilon = 0x1p-33

	// DefaultEpsilon is a geometric tolerance suitable for coordinates of
	// moderate magnitude. It widens parameter ranges of segments so that
	// touching endpoints are reported, and decides when lines are parallel.
	DefaultEpsilon = 1e-9

	// ConicTolerance bounds how far, relative to the size of the ellipses, a
	// candidate point may be from both ellipses in ellipse intersections. It
	// is also the largest sine of the angle between two curves at which they
	// are considered to touch rather than cross.
	ConicTolerance = 1e-3

	// RootMatchTolerance is the largest difference between the parameters
	// recovered from the x and the y coordinate of a curve for them to be
	// considered the same root in curve intersections.
	RootMatchTolerance = 1e-4

	// BisectionAccuracy is the number of decimal digits of the interval width
	// that [Polynomial.Bisection] resolves.
	BisectionAccuracy = 6
)
