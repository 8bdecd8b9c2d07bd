// Package proj implements the forward (geo to screen) and inverse (screen
// to geo) transforms of the supported map projections.
//
// A projection is a stateless Kind value. All state lives in the View that
// is passed to every call, so one Kind serves any number of viewports.
package proj

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Kind identifies a projection.
type Kind int

const (
	Spherical Kind = iota
	Mercator
	Equirectangular
)

func (k Kind) String() string {
	switch k {
	case Spherical:
		return "spherical"
	case Mercator:
		return "mercator"
	case Equirectangular:
		return "equirectangular"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a projection name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spherical", "globe", "orthographic":
		return Spherical, nil
	case "mercator":
		return Mercator, nil
	case "equirectangular", "equirect", "flat", "platecarree":
		return Equirectangular, nil
	}
	return Spherical, fmt.Errorf("unknown projection %q", s)
}

// RepeatX reports whether the map repeats horizontally every 4R pixels.
func (k Kind) RepeatX() bool {
	return k == Mercator || k == Equirectangular
}

// MaxValidLat returns the northernmost latitude the projection can show,
// in radians.
func (k Kind) MaxValidLat() float64 {
	if k == Mercator {
		return mercatorMaxLat
	}
	return math.Pi / 2
}

// MinValidLat returns the southernmost latitude the projection can show,
// in radians.
func (k Kind) MinValidLat() float64 {
	return -k.MaxValidLat()
}

// View is the viewport state a transform needs. Angles are radians.
type View struct {
	CenterLon, CenterLat float64
	// Radius is the globe radius in pixels.
	Radius        float64
	Width, Height int
	// Orientation rotates view space into globe space. Only Spherical
	// reads it; the zero value means "derive from the center".
	Orientation Quaternion
}

// NewView returns a view looking at (lon, lat) with the orientation that
// puts that point in the middle of the screen.
func NewView(lon, lat, radius float64, width, height int) View {
	return View{
		CenterLon:   lon,
		CenterLat:   lat,
		Radius:      radius,
		Width:       width,
		Height:      height,
		Orientation: OrientationFor(lon, lat),
	}
}

// Rad2Pixel returns the pixels per radian of the flat projections.
func (v View) Rad2Pixel() float64 {
	return 2 * v.Radius / math.Pi
}

// RepeatDistance returns the pixel width of one revolution on a flat map.
func (v View) RepeatDistance() float64 {
	return 4 * v.Radius
}

func (v View) halfWidth() float64  { return float64(v.Width) / 2 }
func (v View) halfHeight() float64 { return float64(v.Height) / 2 }

// Projected is the result of a forward transform.
type Projected struct {
	// Point is the screen position. It is set even when the point is
	// not visible, so that callers can draw edge markers.
	Point r2.Point
	// Visible reports that the point (or one of its horizontal repeats)
	// lies inside the viewport and was not clamped.
	Visible bool
	// Clamped reports that the latitude was outside the projection's
	// valid band and has been moved onto the edge.
	Clamped bool
	// Hidden reports that the globe hides the point (Spherical only).
	Hidden bool
}

// ScreenCoordinates projects a geographic position onto the screen.
func (k Kind) ScreenCoordinates(v View, lon, lat float64) Projected {
	switch k {
	case Mercator:
		return mercatorScreen(v, lon, lat)
	case Equirectangular:
		return equirectScreen(v, lon, lat)
	default:
		return sphericalScreen(v, lon, lat)
	}
}

// GeoCoordinates maps a screen position back to longitude and latitude.
// ok is false when the position is off the map or off the globe.
func (k Kind) GeoCoordinates(v View, x, y float64) (lon, lat float64, ok bool) {
	switch k {
	case Mercator:
		return mercatorGeo(v, x, y)
	case Equirectangular:
		return equirectGeo(v, x, y)
	default:
		return sphericalGeo(v, x, y)
	}
}

// FlatPoint projects without wrapping the longitude, so that a path whose
// longitudes run continuously past ±π stays continuous on screen. The
// latitude is clamped into the valid band. ok is false for Spherical.
func (k Kind) FlatPoint(v View, lon, lat float64) (r2.Point, bool) {
	switch k {
	case Mercator:
		lat = clampLat(lat, mercatorMaxLat)
		return r2.Point{
			X: v.halfWidth() + v.Rad2Pixel()*(lon-v.CenterLon),
			Y: v.halfHeight() - v.Rad2Pixel()*(gdInv(lat)-gdInv(clampLat(v.CenterLat, mercatorMaxLat))),
		}, true
	case Equirectangular:
		lat = clampLat(lat, math.Pi/2)
		return r2.Point{
			X: v.halfWidth() + v.Rad2Pixel()*(lon-v.CenterLon),
			Y: v.halfHeight() - v.Rad2Pixel()*(lat-v.CenterLat),
		}, true
	}
	return r2.Point{}, false
}

// ViewVector returns the unit vector of a geographic position in view
// space: x to the right, y up, z towards the viewer. A negative z means
// the globe hides the point.
func (k Kind) ViewVector(v View, lon, lat float64) r3.Vector {
	return v.orientation().Conjugate().Rotate(unitVector(lon, lat))
}

// ScreenFromViewVector places a view-space vector on the screen the way
// the spherical projection does.
func (k Kind) ScreenFromViewVector(v View, p r3.Vector) r2.Point {
	return r2.Point{
		X: v.halfWidth() + v.Radius*p.X,
		Y: v.halfHeight() - v.Radius*p.Y,
	}
}

func clampLat(lat, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, lat))
}
