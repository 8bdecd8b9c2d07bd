package geo

import "math"

// WGS84 reference ellipsoid and UTM constants.
const (
	wgs84A         = 6378137.0
	wgs84F         = 1 / 298.257223563
	utmScale       = 0.9996
	utmFalseEast   = 500000.0
	utmFalseNorth  = 10000000.0
	utmNorthLimit  = 84.0
	utmSouthLimit  = -80.0
	utmBandLetters = "CDEFGHJKLMNPQRSTUVWX"
)

// UTMZone returns the UTM zone (1-60) of a position given in degrees, or
// 0 in the polar regions north of 84°N and south of 80°S. -180° belongs to
// zone 1 and 180° to zone 60.
func UTMZone(lon, lat float64) int {
	if lat > utmNorthLimit || lat < utmSouthLimit {
		return 0
	}
	if lon < -180 || lon > 180 {
		lon = NormalizeLon(lon, Degree)
	}
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone > 60 {
		zone = 60
	}

	// Southwest Norway is widened into zone 32.
	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		return 32
	}
	// Svalbard only uses the odd zones 31-37.
	if lat >= 72 {
		switch {
		case lon >= 0 && lon < 9:
			return 31
		case lon >= 9 && lon < 21:
			return 33
		case lon >= 21 && lon < 33:
			return 35
		case lon >= 33 && lon < 42:
			return 37
		}
	}
	return zone
}

// UTMLatitudeBand returns the latitude band letter of a position given in
// degrees. Polar regions use A/B in the south and Y/Z in the north, split
// at the prime meridian.
func UTMLatitudeBand(lon, lat float64) string {
	lon = NormalizeLon(lon, Degree)
	switch {
	case lat < utmSouthLimit:
		if lon < 0 {
			return "A"
		}
		return "B"
	case lat > utmNorthLimit:
		if lon < 0 {
			return "Y"
		}
		return "Z"
	}
	i := int(math.Floor((lat - utmSouthLimit) / 8))
	if i > len(utmBandLetters)-1 {
		i = len(utmBandLetters) - 1
	}
	return utmBandLetters[i : i+1]
}

// UTMEasting returns the easting in meters of a position given in degrees,
// or 0 in the polar regions.
func UTMEasting(lon, lat float64) float64 {
	e, _, ok := utmProject(lon, lat)
	if !ok {
		return 0
	}
	return e
}

// UTMNorthing returns the northing in meters of a position given in
// degrees, or 0 in the polar regions.
func UTMNorthing(lon, lat float64) float64 {
	_, n, ok := utmProject(lon, lat)
	if !ok {
		return 0
	}
	return n
}

// utmProject evaluates the Transverse Mercator series (Snyder, USGS PP 1395,
// eq. 8-9 to 8-10) around the zone's central meridian.
func utmProject(lon, lat float64) (easting, northing float64, ok bool) {
	zone := UTMZone(lon, lat)
	if zone == 0 {
		return 0, 0, false
	}
	centralMeridian := float64((zone-1)*6-180+3) * DegToRad

	phi := lat * DegToRad
	dLambda := NormalizeLon(lon*DegToRad-centralMeridian, Radian)

	e2 := wgs84F * (2 - wgs84F)
	e4 := e2 * e2
	e6 := e4 * e2
	ep2 := e2 / (1 - e2)

	sinPhi, cosPhi := math.Sincos(phi)
	tanPhi := math.Tan(phi)

	n := wgs84A / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := ep2 * cosPhi * cosPhi
	a := cosPhi * dLambda

	m := wgs84A * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	easting = utmScale*n*(a+(1-t+c)*a3/6+(5-18*t+t*t+72*c-58*ep2)*a5/120) + utmFalseEast
	northing = utmScale * (m + n*tanPhi*(a2/2+(5-t+9*c+4*c*c)*a4/24+
		(61-58*t+t*t+600*c-330*ep2)*a6/720))
	if lat < 0 {
		northing += utmFalseNorth
	}
	return easting, northing, true
}
