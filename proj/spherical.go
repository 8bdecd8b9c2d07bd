package proj

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// sphericalScreen is an orthographic view of the globe. The point is
// rotated into view space by the inverse orientation and its x/y
// components are scaled onto a disk of radius R.
func sphericalScreen(v View, lon, lat float64) Projected {
	var pr Projected
	if math.Abs(lat) > math.Pi/2 {
		lat = clampLat(lat, math.Pi/2)
		pr.Clamped = true
	}
	p := v.orientation().Conjugate().Rotate(unitVector(lon, lat))
	pr.Point = r2.Point{
		X: v.halfWidth() + v.Radius*p.X,
		Y: v.halfHeight() - v.Radius*p.Y,
	}
	pr.Hidden = p.Z < 0
	pr.Visible = !pr.Hidden && !pr.Clamped &&
		pr.Point.X >= 0 && pr.Point.X < float64(v.Width) &&
		pr.Point.Y >= 0 && pr.Point.Y < float64(v.Height)
	return pr
}

// sphericalGeo fails for screen positions outside the globe disk.
func sphericalGeo(v View, x, y float64) (lon, lat float64, ok bool) {
	if v.Radius <= 0 {
		return 0, 0, false
	}
	px := (x - v.halfWidth()) / v.Radius
	py := (v.halfHeight() - y) / v.Radius
	d2 := px*px + py*py
	if d2 > 1 {
		return 0, 0, false
	}
	p := v.orientation().Rotate(r3.Vector{X: px, Y: py, Z: math.Sqrt(1 - d2)})
	lat = math.Asin(math.Max(-1, math.Min(1, p.Y)))
	lon = math.Atan2(p.X, p.Z)
	return lon, lat, true
}
