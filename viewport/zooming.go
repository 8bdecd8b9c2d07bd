package viewport

import (
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
)

// ZoomStep is the radius factor of one ZoomIn or ZoomOut.
const ZoomStep = 2.0

// ZoomIn doubles the radius, keeping the focus point fixed on screen.
func (vp *Viewport) ZoomIn() {
	vp.zoomAtFocus(ZoomStep)
}

// ZoomOut halves the radius, keeping the focus point fixed on screen.
func (vp *Viewport) ZoomOut() {
	vp.zoomAtFocus(1 / ZoomStep)
}

func (vp *Viewport) zoomAtFocus(factor float64) {
	if !vp.focus.IsValid() {
		vp.SetRadius(clampRadius(vp.radius * factor))
		return
	}
	pr := vp.ScreenCoordinatesOf(vp.focus)
	if pr.Hidden || pr.Clamped {
		vp.SetRadius(clampRadius(vp.radius * factor))
		return
	}
	vp.ZoomAt(pr.Point.X, pr.Point.Y, factor)
}

// ZoomAt scales the radius by factor while keeping the geographic point
// under the screen position (x, y) at the same screen location. Positions
// off the map are ignored.
func (vp *Viewport) ZoomAt(x, y, factor float64) {
	if factor <= 0 {
		return
	}
	newRadius := clampRadius(vp.radius * factor)
	if newRadius == vp.radius {
		return
	}

	// Get the position under the cursor before zoom
	anchor, ok := vp.GeoCoordinates(x, y)
	if !ok {
		return // Don't zoom if cursor is outside the map
	}
	lon, lat := anchor.Lon(geo.Radian), anchor.Lat(geo.Radian)

	vp.SetRadius(newRadius)

	hw, hh := float64(vp.width)/2, float64(vp.height)/2
	r2p := vp.Rad2Pixel()
	switch vp.kind {
	case proj.Mercator:
		vp.CenterOn(lon-(x-hw)/r2p, proj.GD(proj.GDInv(lat)-(hh-y)/r2p))

	case proj.Equirectangular:
		vp.CenterOn(lon-(x-hw)/r2p, lat-(hh-y)/r2p)

	default:
		// The globe has no closed form; shift the center by the drift of
		// the anchor and repeat until it settles.
		for i := 0; i < 32; i++ {
			now, ok := vp.GeoCoordinates(x, y)
			if !ok {
				return
			}
			dLon := geo.NormalizeLon(lon-now.Lon(geo.Radian), geo.Radian)
			dLat := lat - now.Lat(geo.Radian)
			if math.Abs(dLon) < 1e-12 && math.Abs(dLat) < 1e-12 {
				return
			}
			vp.CenterOn(vp.centerLon+dLon, vp.centerLat+dLat)
		}
	}
}

func clampRadius(r float64) float64 {
	return math.Max(MinRadius, math.Min(MaxRadius, r))
}
