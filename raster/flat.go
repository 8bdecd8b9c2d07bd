package raster

import (
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/viewport"
	"github.com/golang/geo/r2"
)

// flatLineString projects an open path onto a flat map. The path is split
// wherever it crosses the antimeridian; the crossing point is inserted on
// both sides of the seam.
func flatLineString(vp *viewport.Viewport, path []lonLat) []Polygon {
	k, v := vp.Projection(), vp.View()
	point := func(lon, lat float64) r2.Point {
		p, _ := k.FlatPoint(v, lon, lat)
		return p
	}

	var pieces []Polygon
	cur := Polygon{point(wrapLon(path[0].lon), path[0].lat)}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		wa := wrapLon(a.lon)
		dLon := wrapLon(b.lon - a.lon)
		if end := wa + dLon; end > math.Pi || end <= -math.Pi {
			seam := math.Pi
			if dLon < 0 {
				seam = -math.Pi
			}
			t := (seam - wa) / dLon
			lat := a.lat + t*(b.lat-a.lat)
			cur = append(cur, point(seam, lat))
			pieces = append(pieces, cur)
			cur = Polygon{point(-seam, lat)}
		}
		cur = append(cur, point(wrapLon(b.lon), b.lat))
	}
	pieces = append(pieces, cur)

	var out []Polygon
	for _, p := range pieces {
		out = appendRepeats(out, vp, p)
	}
	return out
}

// flatRing projects a closed ring onto a flat map. The ring is unwrapped
// into one continuous polygon; a ring that winds once around the globe is
// closed along the nearer pole.
func flatRing(vp *viewport.Viewport, path []lonLat) []Polygon {
	k, v := vp.Projection(), vp.View()
	point := func(lon, lat float64) r2.Point {
		p, _ := k.FlatPoint(v, lon, lat)
		return p
	}

	lons := make([]float64, len(path))
	lons[0] = wrapLon(path[0].lon)
	meanLat := path[0].lat
	for i := 1; i < len(path); i++ {
		lons[i] = lons[i-1] + wrapLon(path[i].lon-path[i-1].lon)
		meanLat += path[i].lat
	}
	meanLat /= float64(len(path))

	ring := make(Polygon, 0, len(path)+4)
	for i, ll := range path {
		ring = append(ring, point(lons[i], ll.lat))
	}

	last := len(path) - 1
	net := lons[last] + wrapLon(path[0].lon-path[last].lon) - lons[0]
	if math.Abs(net) > math.Pi {
		pole := k.MaxValidLat()
		if meanLat < 0 {
			pole = k.MinValidLat()
		}
		end := lons[0] + net
		ring = append(ring,
			point(end, path[0].lat),
			point(end, pole),
			point(lons[0], pole),
		)
	}

	ring, ok := finishRing(ring)
	if !ok {
		return nil
	}
	return appendRepeats(nil, vp, ring)
}

// appendRepeats appends a copy of p for every map revolution in which it
// touches the viewport.
func appendRepeats(out []Polygon, vp *viewport.Viewport, p Polygon) []Polygon {
	if len(p) < 2 {
		return out
	}
	bb := p.Bounds()
	if bb.Y.Hi < 0 || bb.Y.Lo > float64(vp.Height()) {
		return out
	}
	rd := vp.View().RepeatDistance()
	first := math.Ceil(-bb.X.Hi / rd)
	last := math.Floor((float64(vp.Width()) - bb.X.Lo) / rd)
	for n := first; n <= last; n++ {
		shift := n * rd
		if shift == 0 {
			out = append(out, p)
			continue
		}
		cp := make(Polygon, len(p))
		for i, pt := range p {
			cp[i] = r2.Point{X: pt.X + shift, Y: pt.Y}
		}
		out = append(out, cp)
	}
	return out
}

// PointRepeats returns every screen x at which the position appears,
// left to right. The globe shows a visible point once; a flat map shows
// it once per revolution across the viewport width. The result is empty
// when the point is not on screen.
func PointRepeats(vp *viewport.Viewport, pos geo.Point) []float64 {
	if !pos.IsValid() {
		return nil
	}
	p := vp.ScreenCoordinatesOf(pos)
	if !p.Visible {
		return nil
	}
	if !vp.Projection().RepeatX() {
		return []float64{p.Point.X}
	}
	rd := vp.View().RepeatDistance()
	w := float64(vp.Width())
	x := math.Mod(p.Point.X, rd)
	if x < 0 {
		x += rd
	}
	var xs []float64
	for ; x < w; x += rd {
		xs = append(xs, x)
	}
	return xs
}
