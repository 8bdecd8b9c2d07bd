package proj

import (
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/golang/geo/r2"
)

func equirectScreen(v View, lon, lat float64) Projected {
	var pr Projected
	if math.Abs(lat) > math.Pi/2 {
		lat = clampLat(lat, math.Pi/2)
		pr.Clamped = true
	}
	pr.Point = r2.Point{
		X: flatX(v, lon),
		Y: v.halfHeight() - v.Rad2Pixel()*(lat-v.CenterLat),
	}
	pr.Visible = !pr.Clamped && flatVisible(v, pr.Point)
	return pr
}

// equirectGeo inverts equirectScreen. The map is 2R pixels tall.
func equirectGeo(v View, x, y float64) (lon, lat float64, ok bool) {
	r2p := v.Rad2Pixel()
	yTop := v.halfHeight() - v.Radius + r2p*v.CenterLat
	if y < yTop || y >= yTop+2*v.Radius {
		return 0, 0, false
	}
	lat = v.CenterLat + (v.halfHeight()-y)/r2p
	return flatLon(v, x), lat, true
}

// flatX places a longitude horizontally. Both longitudes are wrapped into
// (-π, π] first, so the map seam sits on the antimeridian and points on
// the far side of it reach the screen through their ±4R repeat.
func flatX(v View, lon float64) float64 {
	dLon := wrap(lon) - wrap(v.CenterLon)
	return v.halfWidth() + v.Rad2Pixel()*dLon
}

func flatLon(v View, x float64) float64 {
	return wrap(v.CenterLon + (x-v.halfWidth())/v.Rad2Pixel())
}

// flatVisible applies the horizontal repeat rule: the point or its copy
// one revolution to either side must land inside the viewport.
func flatVisible(v View, p r2.Point) bool {
	if p.Y < 0 || p.Y >= float64(v.Height) {
		return false
	}
	w := float64(v.Width)
	rd := v.RepeatDistance()
	for _, x := range [3]float64{p.X, p.X - rd, p.X + rd} {
		if x >= 0 && x < w {
			return true
		}
	}
	return false
}

func wrap(lon float64) float64 {
	return geo.NormalizeLon(lon, geo.Radian)
}
