// Package r2conv converts between geom and the planar types of
// github.com/golang/geo.
package r2conv

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"honnef.co/go/geom"
)

func Point(p r2.Point) geom.Point {
	return geom.Pt(p.X, p.Y)
}

func FromPoint(p geom.Point) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func Vec(p r2.Point) geom.Vec2 {
	return geom.Vec(p.X, p.Y)
}

// Rect converts r to a rectangle. Empty rectangles convert to the zero
// rectangle.
func Rect(r r2.Rect) geom.Rect {
	if r.IsEmpty() {
		return geom.Rect{}
	}
	return geom.Rect{X0: r.X.Lo, Y0: r.Y.Lo, X1: r.X.Hi, Y1: r.Y.Hi}
}

func FromRect(r geom.Rect) r2.Rect {
	return r2.RectFromPoints(FromPoint(geom.Pt(r.X0, r.Y0)), FromPoint(geom.Pt(r.X1, r.Y1)))
}

// ArgumentRange returns the smallest interval that contains ArgumentA of
// every point of res. For a coincident overlap of two lines, this is the
// shared part of the first line. The interval is empty if res has no points.
func ArgumentRange(res geom.ResultEx) r1.Interval {
	iv := r1.EmptyInterval()
	for p := range res.Points() {
		iv = iv.AddPoint(p.ArgumentA)
	}
	return iv
}

// Bound returns the bounding rectangle of the points of res.
func Bound(res geom.ResultEx) r2.Rect {
	out := r2.EmptyRect()
	for p := range res.Points() {
		out = out.AddPoint(FromPoint(p.Point))
	}
	return out
}
