// Package viewport holds the observer state of a map view: projection,
// center, radius, pixel size and focus point. It answers which geographic
// area is on screen and moves the view in response to pan and zoom input.
//
// A Viewport is owned by a single goroutine. It memoizes the visible box
// and drops that memo on every mutation.
package viewport

import (
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
	"github.com/golang/geo/r2"
)

const (
	// DefaultRadius is the globe radius in pixels of a new viewport.
	DefaultRadius = 2000
	// MinRadius and MaxRadius bound the zoom helpers. SetRadius itself
	// only rejects non-positive values.
	MinRadius = 50
	MaxRadius = 1 << 26
)

// Viewport manages the view state of a map.
type Viewport struct {
	kind      proj.Kind
	centerLon float64
	centerLat float64
	radius    float64
	width     int
	height    int

	orientation proj.Quaternion
	focus       geo.Point

	box      geo.Box
	boxValid bool
}

// New creates a viewport of the given pixel size looking at (0, 0).
func New(kind proj.Kind, width, height int) *Viewport {
	vp := &Viewport{
		kind:   kind,
		radius: DefaultRadius,
		width:  width,
		height: height,
	}
	vp.orientation = proj.OrientationFor(0, 0)
	return vp
}

// Projection returns the projection kind.
func (vp *Viewport) Projection() proj.Kind { return vp.kind }

// Radius returns the globe radius in pixels.
func (vp *Viewport) Radius() float64 { return vp.radius }

// Width returns the viewport width in pixels.
func (vp *Viewport) Width() int { return vp.width }

// Height returns the viewport height in pixels.
func (vp *Viewport) Height() int { return vp.height }

// CenterLon returns the center longitude in radians.
func (vp *Viewport) CenterLon() float64 { return vp.centerLon }

// CenterLat returns the center latitude in radians.
func (vp *Viewport) CenterLat() float64 { return vp.centerLat }

// Center returns the center as a point.
func (vp *Viewport) Center() geo.Point {
	return geo.NewPoint(vp.centerLon, vp.centerLat, 0, geo.Radian)
}

// Orientation returns the globe rotation used by the spherical projection.
func (vp *Viewport) Orientation() proj.Quaternion { return vp.orientation }

// Rad2Pixel returns the pixels per radian of the flat projections.
func (vp *Viewport) Rad2Pixel() float64 { return 2 * vp.radius / math.Pi }

// View returns the transform parameters for the proj package.
func (vp *Viewport) View() proj.View {
	return proj.View{
		CenterLon:   vp.centerLon,
		CenterLat:   vp.centerLat,
		Radius:      vp.radius,
		Width:       vp.width,
		Height:      vp.height,
		Orientation: vp.orientation,
	}
}

// CenterOn moves the center to (lon, lat) in radians. The longitude is
// normalized and the latitude clamped into the projection's valid band.
func (vp *Viewport) CenterOn(lon, lat float64) {
	vp.centerLon = geo.NormalizeLon(lon, geo.Radian)
	vp.centerLat = math.Max(vp.kind.MinValidLat(), math.Min(vp.kind.MaxValidLat(), lat))
	vp.orientation = proj.OrientationFor(vp.centerLon, vp.centerLat)
	vp.invalidate()
}

// SetRadius sets the globe radius in pixels. Non-positive values are
// ignored and the previous radius is kept.
func (vp *Viewport) SetRadius(r float64) {
	if r <= 0 || math.IsNaN(r) {
		return
	}
	vp.radius = r
	vp.invalidate()
}

// SetSize sets the pixel size of the viewport.
func (vp *Viewport) SetSize(width, height int) {
	vp.width = width
	vp.height = height
	vp.invalidate()
}

// SetProjection switches the projection and pulls the center back into
// the new projection's valid latitude band.
func (vp *Viewport) SetProjection(kind proj.Kind) {
	vp.kind = kind
	vp.CenterOn(vp.centerLon, vp.centerLat)
}

// SetFocusPoint fixes the anchor of ZoomIn and ZoomOut. An invalid point
// is the same as ResetFocusPoint.
func (vp *Viewport) SetFocusPoint(p geo.Point) {
	vp.focus = p
}

// ResetFocusPoint makes the focus follow the center again.
func (vp *Viewport) ResetFocusPoint() {
	vp.focus = geo.Point{}
}

// FocusPoint returns the explicit focus point, or the center if none is
// set.
func (vp *Viewport) FocusPoint() geo.Point {
	if vp.focus.IsValid() {
		return vp.focus
	}
	return vp.Center()
}

// ScreenCoordinates projects (lon, lat) in radians.
func (vp *Viewport) ScreenCoordinates(lon, lat float64) proj.Projected {
	return vp.kind.ScreenCoordinates(vp.View(), lon, lat)
}

// ScreenCoordinatesOf projects a point.
func (vp *Viewport) ScreenCoordinatesOf(p geo.Point) proj.Projected {
	return vp.ScreenCoordinates(p.Lon(geo.Radian), p.Lat(geo.Radian))
}

// GeoCoordinates returns the geographic position under a screen pixel.
func (vp *Viewport) GeoCoordinates(x, y float64) (geo.Point, bool) {
	lon, lat, ok := vp.kind.GeoCoordinates(vp.View(), x, y)
	if !ok {
		return geo.Point{}, false
	}
	return geo.NewPoint(lon, lat, 0, geo.Radian), true
}

// Rect returns the viewport as a screen rectangle.
func (vp *Viewport) Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: float64(vp.width), Y: float64(vp.height)})
}

func (vp *Viewport) invalidate() {
	vp.boxValid = false
}
