// Package geo holds the geographic value types of the engine: points,
// lat/lon boxes, angle normalization and the textual coordinate notations.
//
// All angles are stored in radians. Functions that accept angles from
// callers take an AngleUnit so that degree values can be passed directly.
package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Pole selects which pole IsPole tests for.
type Pole int

const (
	AnyPole Pole = iota
	NorthPole
	SouthPole
)

// Point is a geographic position. The zero value is the invalid, unset
// point; use NewPoint to create a valid one.
//
// Construction does not normalize. Call Normalized (or the Normalize*
// functions) when the input may be outside the canonical ranges.
type Point struct {
	lon, lat float64
	alt      float64
	detail   int
	valid    bool
}

// NewPoint returns a valid point for the given longitude, latitude and
// altitude in meters.
func NewPoint(lon, lat, alt float64, unit AngleUnit) Point {
	if unit == Degree {
		lon *= DegToRad
		lat *= DegToRad
	}
	return Point{lon: lon, lat: lat, alt: alt, valid: true}
}

// Lon returns the longitude in the requested unit.
func (p Point) Lon(unit AngleUnit) float64 {
	if unit == Degree {
		return p.lon * RadToDeg
	}
	return p.lon
}

// Lat returns the latitude in the requested unit.
func (p Point) Lat(unit AngleUnit) float64 {
	if unit == Degree {
		return p.lat * RadToDeg
	}
	return p.lat
}

// Altitude returns the altitude in meters.
func (p Point) Altitude() float64 { return p.alt }

// Detail returns the level-of-detail hint.
func (p Point) Detail() int { return p.detail }

// IsValid reports whether the point was set.
func (p Point) IsValid() bool { return p.valid }

// WithDetail returns a copy of p carrying the given detail level.
func (p Point) WithDetail(detail int) Point {
	p.detail = detail
	return p
}

// WithAltitude returns a copy of p at the given altitude.
func (p Point) WithAltitude(alt float64) Point {
	p.alt = alt
	return p
}

// Normalized returns p with longitude and latitude in canonical range.
func (p Point) Normalized() Point {
	if !p.valid {
		return p
	}
	p.lon, p.lat = NormalizeLonLat(p.lon, p.lat, Radian)
	return p
}

// IsPole reports whether the point sits exactly on a pole.
func (p Point) IsPole(pole Pole) bool {
	switch pole {
	case NorthPole:
		return p.lat == math.Pi/2
	case SouthPole:
		return p.lat == -math.Pi/2
	default:
		return math.Abs(p.lat) == math.Pi/2
	}
}

// Equal reports whether both points are invalid, or both are valid with
// identical coordinates, altitude and detail.
func (p Point) Equal(o Point) bool {
	if !p.valid || !o.valid {
		return p.valid == o.valid
	}
	return p.lon == o.lon && p.lat == o.lat && p.alt == o.alt && p.detail == o.detail
}

// LatLng converts the point to an s2.LatLng.
func (p Point) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(p.lat), Lng: s1.Angle(p.lon)}
}

// S2Point returns the unit-sphere position of p.
func (p Point) S2Point() s2.Point {
	return s2.PointFromLatLng(p.LatLng())
}

// PointFromS2 converts a unit-sphere position back to a geographic point.
func PointFromS2(sp s2.Point, alt float64) Point {
	ll := s2.LatLngFromPoint(sp)
	return Point{lon: ll.Lng.Radians(), lat: ll.Lat.Radians(), alt: alt, valid: true}
}

// Distance returns the great-circle angle between two points in radians.
func Distance(a, b Point) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians()
}
