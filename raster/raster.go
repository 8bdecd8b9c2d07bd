// Package raster turns geographic line strings and rings into screen
// polygons for the current viewport.
//
// Paths are optionally tessellated along great circles (or latitude
// circles), split where they cross the antimeridian of a flat map, clipped
// at the horizon of the globe and repeated for every copy of the flat map
// that is on screen. The output is plain screen geometry; drawing it is up
// to the caller.
package raster

import (
	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/viewport"
	"github.com/golang/geo/r2"
)

// Flags control how path segments are interpolated.
type Flags uint8

const (
	// Tessellate follows the great circle between vertices.
	Tessellate Flags = 1 << iota
	// RespectLatitudeCircle makes segments between vertices of equal
	// latitude follow the latitude circle instead. It only has an effect
	// together with Tessellate.
	RespectLatitudeCircle
)

// None connects vertices with straight screen lines.
const None Flags = 0

// Polygon is one connected screen-space sequence.
type Polygon []r2.Point

// Bounds returns the bounding rectangle of the polygon.
func (p Polygon) Bounds() r2.Rect {
	if len(p) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(p...)
}

// Closed reports whether the last point repeats the first.
func (p Polygon) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

type lonLat struct {
	lon, lat float64
}

// LineString returns the screen sequences of an open path. A path with
// fewer than two valid points, or lying entirely off screen, yields no
// sequences.
func LineString(vp *viewport.Viewport, points []geo.Point, flags Flags) []Polygon {
	pts := validPoints(points)
	if len(pts) < 2 {
		return nil
	}
	path := densify(vp, pts, flags, false)
	if vp.Projection().RepeatX() {
		return flatLineString(vp, path)
	}
	return sphericalLineString(vp, path)
}

// LinearRing returns the screen polygons of a closed ring. Every returned
// polygon is closed and has at least three distinct vertices. The ring
// may be given with or without its closing vertex.
func LinearRing(vp *viewport.Viewport, points []geo.Point, flags Flags) []Polygon {
	pts := validPoints(points)
	if len(pts) > 1 && samePosition(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if distinctPoints(pts) < 3 {
		return nil
	}
	path := densify(vp, pts, flags, true)
	if vp.Projection().RepeatX() {
		return flatRing(vp, path)
	}
	return sphericalRing(vp, path)
}

func validPoints(points []geo.Point) []geo.Point {
	out := make([]geo.Point, 0, len(points))
	for _, p := range points {
		if p.IsValid() {
			out = append(out, p)
		}
	}
	return out
}

func distinctPoints(points []geo.Point) int {
	n := 0
	for i, p := range points {
		dup := false
		for _, q := range points[:i] {
			if samePosition(p, q) {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

func samePosition(a, b geo.Point) bool {
	return a.Lon(geo.Radian) == b.Lon(geo.Radian) && a.Lat(geo.Radian) == b.Lat(geo.Radian)
}

// finishRing closes a screen ring and drops it when it has fewer than
// three distinct vertices.
func finishRing(p Polygon) (Polygon, bool) {
	if len(p) == 0 {
		return nil, false
	}
	if !p.Closed() {
		p = append(p, p[0])
	}
	distinct := 0
	for i, a := range p[:len(p)-1] {
		dup := false
		for _, b := range p[:i] {
			if a == b {
				dup = true
				break
			}
		}
		if !dup {
			distinct++
		}
	}
	return p, distinct >= 3
}

// onScreen reports whether the bounding box touches the viewport.
func onScreen(vp *viewport.Viewport, bb r2.Rect) bool {
	w, h := float64(vp.Width()), float64(vp.Height())
	return bb.X.Hi >= 0 && bb.X.Lo <= w && bb.Y.Hi >= 0 && bb.Y.Lo <= h
}

func wrapLon(lon float64) float64 {
	return geo.NormalizeLon(lon, geo.Radian)
}
