// Package orbconv converts between the geometry types of
// github.com/paulmach/orb and the primitives of package geom, so that
// GeoJSON-style data can be intersected directly.
//
// Rings are closed by orb's convention of repeating the first point at the
// end. geom's polygons are implicitly closed, so the repeated point is
// dropped.
package orbconv

import (
	"fmt"

	"github.com/paulmach/orb"
	"honnef.co/go/geom"
)

func Point(p orb.Point) geom.Point {
	return geom.Pt(p[0], p[1])
}

func FromPoint(p geom.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

// Bound converts an orb bound to a rectangle.
func Bound(b orb.Bound) geom.Rect {
	return geom.NewRectFromPoints(Point(b.Min), Point(b.Max))
}

// FromRect converts a rectangle to an orb bound.
func FromRect(r geom.Rect) orb.Bound {
	r = r.Abs()
	return orb.Bound{
		Min: orb.Point{r.X0, r.Y0},
		Max: orb.Point{r.X1, r.Y1},
	}
}

// Ring converts a ring to a polygon.
func Ring(r orb.Ring) geom.Polygon {
	if n := len(r); n > 1 && r[0] == r[n-1] {
		r = r[:n-1]
	}
	out := make(geom.Polygon, len(r))
	for i, p := range r {
		out[i] = Point(p)
	}
	return out
}

// LineString converts a line string to an open path.
func LineString(ls orb.LineString) geom.BezPath {
	var p geom.BezPath
	for i, pt := range ls {
		if i == 0 {
			p.MoveTo(Point(pt))
		} else {
			p.LineTo(Point(pt))
		}
	}
	return p
}

// Polygon converts a polygon to a path with one closed subpath per ring.
// Holes are expected to wind opposite to the outer ring, as in GeoJSON, so
// that the nonzero rule excludes them.
func Polygon(poly orb.Polygon) geom.BezPath {
	var p geom.BezPath
	for _, ring := range poly {
		appendRing(&p, ring)
	}
	return p
}

// MultiPolygon converts a multipolygon to a single path.
func MultiPolygon(mp orb.MultiPolygon) geom.BezPath {
	var p geom.BezPath
	for _, poly := range mp {
		for _, ring := range poly {
			appendRing(&p, ring)
		}
	}
	return p
}

func appendRing(p *geom.BezPath, ring orb.Ring) {
	poly := Ring(ring)
	if len(poly) == 0 {
		return
	}
	p.MoveTo(poly[0])
	for _, pt := range poly[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
}

// Geometry converts an orb geometry to a primitive. It supports points,
// bounds, line strings, rings, polygons and multipolygons.
func Geometry(g orb.Geometry) (geom.Primitive, error) {
	switch g := g.(type) {
	case orb.Point:
		return Point(g), nil
	case orb.Bound:
		return Bound(g), nil
	case orb.LineString:
		return LineString(g), nil
	case orb.Ring:
		return Ring(g), nil
	case orb.Polygon:
		return Polygon(g), nil
	case orb.MultiPolygon:
		return MultiPolygon(g), nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %T", g)
	}
}

// Intersect intersects two orb geometries. See [geom.Intersect].
func Intersect(a, b orb.Geometry, eps float64) (geom.ResultEx, error) {
	pa, err := Geometry(a)
	if err != nil {
		return geom.ResultEx{}, err
	}
	pb, err := Geometry(b)
	if err != nil {
		return geom.ResultEx{}, err
	}
	return geom.Intersect(pa, pb, eps), nil
}

// MultiPoint returns the points of an intersection.
func MultiPoint(res geom.ResultEx) orb.MultiPoint {
	out := make(orb.MultiPoint, 0, res.Len())
	for p := range res.Points() {
		out = append(out, FromPoint(p.Point))
	}
	return out
}
