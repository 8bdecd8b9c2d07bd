package geo

import (
	"fmt"
	"math"
)

// Box is a lat/lon/alt bounding box. West may be greater than East, in
// which case the box crosses the antimeridian. West = -π with East = π
// covers every longitude.
type Box struct {
	North, South float64
	East, West   float64
	MinAltitude  float64
	MaxAltitude  float64
	// Rotation around the box center, radians.
	Rotation float64
}

// NewBox builds a box from its edges. Longitudes are normalized; latitudes
// are clamped to the poles.
func NewBox(north, south, east, west float64, unit AngleUnit) Box {
	if unit == Degree {
		north *= DegToRad
		south *= DegToRad
		east *= DegToRad
		west *= DegToRad
	}
	b := Box{
		North: clampLat(north),
		South: clampLat(south),
	}
	if east-west >= 2*math.Pi {
		b.West, b.East = -math.Pi, math.Pi
		return b
	}
	b.West = NormalizeLon(west, Radian)
	b.East = NormalizeLon(east, Radian)
	// (-π, π] has no -π, keep the full-world west edge on the left.
	if b.West == math.Pi && b.East != math.Pi {
		b.West = -math.Pi
	}
	return b
}

// FullBox returns the box covering the whole globe.
func FullBox() Box {
	return Box{North: math.Pi / 2, South: -math.Pi / 2, East: math.Pi, West: -math.Pi}
}

func clampLat(lat float64) float64 {
	return math.Max(-math.Pi/2, math.Min(math.Pi/2, lat))
}

// CrossesDateLine reports whether the box wraps over the antimeridian.
func (b Box) CrossesDateLine() bool {
	return b.West > b.East
}

// Width returns the longitude span in radians.
func (b Box) Width() float64 {
	if b.CrossesDateLine() {
		return 2*math.Pi - (b.West - b.East)
	}
	return b.East - b.West
}

// Height returns the latitude span in radians.
func (b Box) Height() float64 {
	return b.North - b.South
}

// IsFull reports whether the box spans every longitude.
func (b Box) IsFull() bool {
	return b.West == -math.Pi && b.East == math.Pi
}

// IsEmpty reports whether the box has no latitude extent and no longitude
// extent.
func (b Box) IsEmpty() bool {
	return b.North < b.South || (b.Height() == 0 && b.Width() == 0)
}

// Center returns the middle of the box.
func (b Box) Center() Point {
	lon := NormalizeLon(b.West+b.Width()/2, Radian)
	return Point{lon: lon, lat: (b.North + b.South) / 2, valid: true}
}

// ContainsLon reports whether the longitude lies within the box's span.
func (b Box) ContainsLon(lon float64) bool {
	if b.IsFull() {
		return true
	}
	lon = NormalizeLon(lon, Radian)
	if lon == math.Pi && b.West == -math.Pi {
		return true
	}
	if b.CrossesDateLine() {
		return lon >= b.West || lon <= b.East
	}
	return lon >= b.West && lon <= b.East
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	if !p.valid {
		return false
	}
	return p.lat <= b.North && p.lat >= b.South && b.ContainsLon(p.lon)
}

// Intersects reports whether the two boxes overlap.
func (b Box) Intersects(o Box) bool {
	if b.South > o.North || o.South > b.North {
		return false
	}
	if b.IsFull() || o.IsFull() {
		return true
	}
	return b.ContainsLon(o.West) || b.ContainsLon(o.East) ||
		o.ContainsLon(b.West) || o.ContainsLon(b.East)
}

// Split returns the box as one or two boxes that do not cross the
// antimeridian.
func (b Box) Split() []Box {
	if !b.CrossesDateLine() {
		return []Box{b}
	}
	west, east := b, b
	west.East = math.Pi
	east.West = -math.Pi
	return []Box{west, east}
}

func (b Box) String() string {
	return fmt.Sprintf("N %.6f° S %.6f° E %.6f° W %.6f°",
		b.North*RadToDeg, b.South*RadToDeg, b.East*RadToDeg, b.West*RadToDeg)
}
