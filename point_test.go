package geom

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(2, 4)), Pt(1, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if !p3.ApproxEqual(p4, 5) || p3.ApproxEqual(p4, 4.9) {
		t.Errorf("ApproxEqual doesn't agree with Distance")
	}
}

func TestVecPerp(t *testing.T) {
	v := Vec(3, 4)
	if d := v.Dot(v.Perp()); d != 0 {
		t.Errorf("got dot product %v, want 0", d)
	}
	if c := v.Cross(v.Perp()); c != v.Hypot2() {
		t.Errorf("got cross product %v, want %v", c, v.Hypot2())
	}
}
