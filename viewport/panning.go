package viewport

import (
	"math"

	"github.com/KDE/marble-sub013/proj"
)

// PanDirection represents a direction to pan the map
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanSpeed in pixels per step
const PanSpeed = 50

// Pan moves the map center in the specified direction by a fixed number of pixels
func (vp *Viewport) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		vp.PanBy(PanSpeed, 0)
	case PanRight:
		vp.PanBy(-PanSpeed, 0)
	case PanUp:
		vp.PanBy(0, PanSpeed)
	case PanDown:
		vp.PanBy(0, -PanSpeed)
	}
}

// PanBy drags the map by pixel offsets.
// Positive dx moves the map east on screen (the view moves west), positive
// dy moves the map down (the view moves north). Longitude wraps freely;
// latitude stops at the projection's valid band.
func (vp *Viewport) PanBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}

	switch vp.kind {
	case proj.Spherical:
		// On the globe a pixel near the center is 1/R radians.
		vp.CenterOn(vp.centerLon-dx/vp.radius, vp.centerLat+dy/vp.radius)

	case proj.Mercator:
		r2p := vp.Rad2Pixel()
		limit := vp.kind.MaxValidLat()
		centerY := proj.GDInv(math.Max(-limit, math.Min(limit, vp.centerLat)))
		// CenterOn stops the drag at the band.
		vp.CenterOn(vp.centerLon-dx/r2p, proj.GD(centerY+dy/r2p))

	default:
		r2p := vp.Rad2Pixel()
		vp.CenterOn(vp.centerLon-dx/r2p, vp.centerLat+dy/r2p)
	}
}
