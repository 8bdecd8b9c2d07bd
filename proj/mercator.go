package proj

import (
	"math"

	"github.com/golang/geo/r2"
)

// MercatorMaxLatDegrees is the Mercator band limit in degrees. The square
// map edge gd(π) = 85.0511288° lies just inside it.
const MercatorMaxLatDegrees = 85.05113

const mercatorMaxLat = MercatorMaxLatDegrees * (math.Pi / 180)

// GDInv is the inverse Gudermannian function, asinh(tan φ). It maps a
// latitude to the Mercator y coordinate of a unit-radius map.
func GDInv(lat float64) float64 { return gdInv(lat) }

// GD is the Gudermannian function, atan(sinh x), the inverse of GDInv.
func GD(x float64) float64 { return gd(x) }

func gdInv(lat float64) float64 {
	return math.Asinh(math.Tan(lat))
}

func gd(x float64) float64 {
	return math.Atan(math.Sinh(x))
}

// mercatorScreen projects (lon, lat) with the Mercator projection.
//
// Parameters:
//   - v: the view; CenterLat is clamped into the Mercator band
//   - lon: longitude in radians, any value
//   - lat: latitude in radians; values beyond ±85.05113° are clamped
//
// Returns the screen position with Clamped set for out-of-band latitudes.
// A clamped point is never Visible.
func mercatorScreen(v View, lon, lat float64) Projected {
	var pr Projected
	if lat > mercatorMaxLat {
		lat = mercatorMaxLat
		pr.Clamped = true
	} else if lat < -mercatorMaxLat {
		lat = -mercatorMaxLat
		pr.Clamped = true
	}

	centerY := gdInv(clampLat(v.CenterLat, mercatorMaxLat))
	pr.Point = r2.Point{
		X: flatX(v, lon),
		Y: v.halfHeight() - v.Rad2Pixel()*(gdInv(lat)-centerY),
	}
	pr.Visible = !pr.Clamped && flatVisible(v, pr.Point)
	return pr
}

// mercatorGeo inverts mercatorScreen. The map is 4R pixels tall, so y
// must fall into [yTop, yTop+4R).
func mercatorGeo(v View, x, y float64) (lon, lat float64, ok bool) {
	r2p := v.Rad2Pixel()
	centerY := gdInv(clampLat(v.CenterLat, mercatorMaxLat))
	yTop := v.halfHeight() - 2*v.Radius + r2p*centerY
	if y < yTop || y >= yTop+4*v.Radius {
		return 0, 0, false
	}
	lat = gd(centerY + (v.halfHeight()-y)/r2p)
	return flatLon(v, x), lat, true
}
