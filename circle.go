package geom

import "math"

// Circle is a circle given by its center and radius.
//
// Points on a circle are parametrized by their angle, measured from the
// positive x axis towards the positive y axis and normalized to [0, 2π).
type Circle struct {
	Center Point
	Radius float64
}

var _ Primitive = Circle{}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// BoundingBox implements Primitive.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}

// Eval returns the point at angle th.
func (c Circle) Eval(th float64) Point {
	return c.Center.Translate(VecFromAngle(th).Mul(c.Radius))
}

// Tangent returns the derivative of [Circle.Eval] at angle th.
func (c Circle) Tangent(th float64) Vec2 {
	return VecFromAngle(th).Perp().Mul(c.Radius)
}

// Angle returns the angle of pt as seen from the center, in [0, 2π).
func (c Circle) Angle(pt Point) float64 {
	return normalizeAngle(pt.Sub(c.Center).Angle())
}

// Conic returns the implicit form of the circle.
func (c Circle) Conic() Conic {
	x, y := c.Center.Splat()
	return Conic{
		A: 1,
		C: 1,
		D: -2 * x,
		E: -2 * y,
		F: x*x + y*y - c.Radius*c.Radius,
	}
}

// Ellipse returns the circle as an ellipse with equal radii.
func (c Circle) Ellipse() Ellipse {
	return NewEllipse(c.Center, Vec(c.Radius, c.Radius), 0)
}

func (c Circle) Transform(aff Affine) Ellipse {
	return c.Ellipse().Transform(aff)
}

func (Circle) primitive() {}

// normalizeAngle maps th to [0, 2π).
func normalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		th = 0
	}
	return th
}
