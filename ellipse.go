package geom

import "math"

// Ellipse is the image of the unit circle under an affine transformation.
//
// Like circles, points on an ellipse are parametrized by an angle in
// [0, 2π), which is the angle of the corresponding point on the unit circle.
type Ellipse struct {
	inner Affine
}

var _ Primitive = Ellipse{}

// NewEllipse returns the ellipse with the given center and radii, whose x
// radius is rotated from the x axis by xRotation radians.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// The unit circle is symmetric about both axes, so the signs of the radii
	// don't matter.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// NewEllipseFromAffine creates an ellipse from an affine transformation of the unit
// circle.
func NewEllipseFromAffine(aff Affine) Ellipse {
	return Ellipse{inner: aff}
}

// Affine returns the transformation that maps the unit circle to the ellipse.
func (e Ellipse) Affine() Affine {
	return e.inner
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// Radii returns the two radii of the ellipse, larger first.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the angle of the ellipse's major axis, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// RadiiRotation returns the radii and the rotation of this ellipse.
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	return e.Winding(pt) != 0
}

func (e Ellipse) Winding(pt Point) int {
	// Map the point back to the unit circle.
	inv := e.inner.Invert()
	if Vec2(pt.Transform(inv)).Hypot2() < 1.0 {
		return 1
	} else {
		return 0
	}
}

// BoundingBox implements Primitive.
func (e Ellipse) BoundingBox() Rect {
	// The images of ⟨1, 0⟩ and ⟨0, 1⟩ are the columns (a, b) and (c, d) of the
	// linear part. See https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
	aff := e.inner
	rangeX := math.Sqrt(aff.N0*aff.N0 + aff.N2*aff.N2)
	rangeY := math.Sqrt(aff.N1*aff.N1 + aff.N3*aff.N3)
	return Rect{
		X0: aff.N4 - rangeX,
		Y0: aff.N5 - rangeY,
		X1: aff.N4 + rangeX,
		Y1: aff.N5 + rangeY,
	}
}

// Eval returns the point at parametric angle th.
func (e Ellipse) Eval(th float64) Point {
	return Point(VecFromAngle(th)).Transform(e.inner)
}

// Tangent returns the derivative of [Ellipse.Eval] at th.
func (e Ellipse) Tangent(th float64) Vec2 {
	return e.inner.TransformVec(VecFromAngle(th).Perp())
}

// Angle returns the parametric angle of pt, in [0, 2π). For points not on
// the ellipse this is the angle of the ray from the center through pt in
// the ellipse's unit-circle space.
func (e Ellipse) Angle(pt Point) float64 {
	return normalizeAngle(Vec2(pt.Transform(e.inner.Invert())).Angle())
}

// Conic returns the implicit form of the ellipse, scaled so that it is
// |inv(p)|² − 1 for the inverse transform inv.
func (e Ellipse) Conic() Conic {
	inv := e.inner.Invert()
	return Conic{
		A: inv.N0*inv.N0 + inv.N1*inv.N1,
		B: 2 * (inv.N0*inv.N2 + inv.N1*inv.N3),
		C: inv.N2*inv.N2 + inv.N3*inv.N3,
		D: 2 * (inv.N0*inv.N4 + inv.N1*inv.N5),
		E: 2 * (inv.N2*inv.N4 + inv.N3*inv.N5),
		F: inv.N4*inv.N4 + inv.N5*inv.N5 - 1,
	}
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	return Ellipse{
		inner: Translate(v).Mul(e.inner),
	}
}

func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{
		inner: aff.Mul(e.inner),
	}
}

func (e Ellipse) IsInf() bool {
	return e.inner.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}

func (Ellipse) primitive() {}
