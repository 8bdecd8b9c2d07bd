package viewport

import (
	"math"
	"sort"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
	"github.com/golang/geo/r2"
)

const (
	edgeSamples    = 32
	horizonSamples = 90
)

// ViewLatLonAltBox returns the geographic box of the whole viewport. The
// result is cached until the next mutation.
func (vp *Viewport) ViewLatLonAltBox() geo.Box {
	if !vp.boxValid {
		vp.box = vp.LatLonAltBox(vp.Rect())
		vp.boxValid = true
	}
	return vp.box
}

// LatLonAltBox returns the geographic box covering a screen rectangle.
// The box spans every longitude when the rectangle is at least one
// revolution wide or when a pole is inside it. A rectangle that misses
// the globe entirely yields the empty box.
func (vp *Viewport) LatLonAltBox(rect r2.Rect) geo.Box {
	if rect.IsEmpty() {
		return geo.Box{}
	}
	if vp.kind == proj.Spherical {
		return vp.sphericalBox(rect)
	}
	return vp.flatBox(rect)
}

func (vp *Viewport) flatBox(rect r2.Rect) geo.Box {
	r2p := vp.Rad2Pixel()
	hw := float64(vp.width) / 2
	north := vp.latAtY(rect.Y.Lo)
	south := vp.latAtY(rect.Y.Hi)

	var box geo.Box
	if rect.X.Length() >= 4*vp.radius {
		box = geo.NewBox(north, south, math.Pi, -math.Pi, geo.Radian)
	} else {
		west := vp.centerLon + (rect.X.Lo-hw)/r2p
		east := vp.centerLon + (rect.X.Hi-hw)/r2p
		box = geo.NewBox(north, south, east, west, geo.Radian)
	}

	// Every longitude meets at a pole, so a visible pole row widens the
	// box to the full range.
	for _, lat := range [2]float64{vp.kind.MaxValidLat(), vp.kind.MinValidLat()} {
		y := vp.ScreenCoordinates(vp.centerLon, lat).Point.Y
		if y >= rect.Y.Lo && y <= rect.Y.Hi {
			box.West, box.East = -math.Pi, math.Pi
		}
	}
	return box
}

// latAtY returns the latitude of a screen row, clamped to the map.
func (vp *Viewport) latAtY(y float64) float64 {
	r2p := vp.Rad2Pixel()
	dy := (float64(vp.height)/2 - y) / r2p
	switch vp.kind {
	case proj.Mercator:
		limit := vp.kind.MaxValidLat()
		c := proj.GDInv(math.Max(-limit, math.Min(limit, vp.centerLat)))
		return math.Max(-limit, math.Min(limit, proj.GD(c+dy)))
	default:
		return math.Max(-math.Pi/2, math.Min(math.Pi/2, vp.centerLat+dy))
	}
}

func (vp *Viewport) sphericalBox(rect r2.Rect) geo.Box {
	var lons []float64
	north, south := math.Inf(-1), math.Inf(1)
	add := func(x, y float64) {
		lon, lat, ok := vp.kind.GeoCoordinates(vp.View(), x, y)
		if !ok {
			return
		}
		lons = append(lons, lon)
		north = math.Max(north, lat)
		south = math.Min(south, lat)
	}

	lo, hi := rect.Lo(), rect.Hi()
	for i := 0; i <= edgeSamples; i++ {
		f := float64(i) / edgeSamples
		x := lo.X + f*(hi.X-lo.X)
		y := lo.Y + f*(hi.Y-lo.Y)
		add(x, lo.Y)
		add(x, hi.Y)
		add(lo.X, y)
		add(hi.X, y)
	}
	// The horizon bounds the visible area where it runs inside the rect.
	cx, cy := float64(vp.width)/2, float64(vp.height)/2
	r := vp.radius * (1 - 1e-9)
	for i := 0; i < horizonSamples; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / horizonSamples)
		p := r2.Point{X: cx + r*cos, Y: cy + r*sin}
		if rect.ContainsPoint(p) {
			add(p.X, p.Y)
		}
	}
	if len(lons) == 0 {
		return geo.Box{}
	}

	box := geo.Box{North: north, South: south}
	box.West, box.East = coveringInterval(lons)

	for _, lat := range [2]float64{math.Pi / 2, -math.Pi / 2} {
		pr := vp.ScreenCoordinates(0, lat)
		if pr.Hidden || !rect.ContainsPoint(pr.Point) {
			continue
		}
		if lat > 0 {
			box.North = lat
		} else {
			box.South = lat
		}
		box.West, box.East = -math.Pi, math.Pi
	}
	return box
}

// coveringInterval returns the smallest longitude interval, possibly
// crossing the antimeridian, that contains every sample. It is the
// complement of the largest gap between neighbouring samples.
func coveringInterval(lons []float64) (west, east float64) {
	sorted := append([]float64(nil), lons...)
	sort.Float64s(sorted)
	n := len(sorted)

	gap := sorted[0] + 2*math.Pi - sorted[n-1]
	west, east = sorted[0], sorted[n-1]
	for i := 0; i+1 < n; i++ {
		if g := sorted[i+1] - sorted[i]; g > gap {
			gap = g
			west, east = sorted[i+1], sorted[i]
		}
	}
	if west == -math.Pi && east == math.Pi {
		return west, east
	}
	return geo.NormalizeLon(west, geo.Radian), geo.NormalizeLon(east, geo.Radian)
}

// MapCoversViewport reports whether the map fills the whole viewport,
// leaving no background visible.
func (vp *Viewport) MapCoversViewport() bool {
	w, h := float64(vp.width), float64(vp.height)
	switch vp.kind {
	case proj.Spherical:
		return (w/2)*(w/2)+(h/2)*(h/2) <= vp.radius*vp.radius
	case proj.Mercator:
		limit := vp.kind.MaxValidLat()
		c := proj.GDInv(math.Max(-limit, math.Min(limit, vp.centerLat)))
		top := h/2 - 2*vp.radius + vp.Rad2Pixel()*c
		return top <= 0 && top+4*vp.radius >= h
	default:
		top := h/2 - vp.radius + vp.Rad2Pixel()*vp.centerLat
		return top <= 0 && top+2*vp.radius >= h
	}
}
