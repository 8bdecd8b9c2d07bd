package geo

import "math"

// AngleUnit selects how angle arguments are interpreted.
type AngleUnit int

const (
	Radian AngleUnit = iota
	Degree
)

const (
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi
)

// halfCircle returns the size of half a revolution in the given unit.
func halfCircle(unit AngleUnit) float64 {
	if unit == Degree {
		return 180.0
	}
	return math.Pi
}

// modPositive reduces x into [0, m).
func modPositive(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

// NormalizeLon wraps a longitude into (-180°, 180°] (or (-π, π]).
func NormalizeLon(lon float64, unit AngleUnit) float64 {
	half := halfCircle(unit)
	if lon > -half && lon <= half {
		return lon
	}
	return half - modPositive(half-lon, 2*half)
}

// NormalizeLat folds a latitude into [-90°, 90°]. A latitude that runs over
// a pole comes back down on the other side, so 100° becomes 80° and
// shifting by half a revolution flips the sign.
func NormalizeLat(lat float64, unit AngleUnit) float64 {
	half := halfCircle(unit)
	if lat >= -half/2 && lat <= half/2 {
		return lat
	}
	t := modPositive(lat+half/2, 2*half)
	if t <= half {
		return t - half/2
	}
	return 3*half/2 - t
}

// NormalizeLonLat normalizes both angles. When the latitude crosses a pole
// the point continues on the opposite meridian, so the longitude is turned
// by half a revolution.
func NormalizeLonLat(lon, lat float64, unit AngleUnit) (float64, float64) {
	half := halfCircle(unit)
	if lat < -half/2 || lat > half/2 {
		t := modPositive(lat+half/2, 2*half)
		if t > half {
			lon += half
		}
		lat = NormalizeLat(lat, unit)
	}
	return NormalizeLon(lon, unit), lat
}
