package raster

import (
	"math"

	"github.com/KDE/marble-sub013/viewport"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// arcStep is the angular step used to trace the horizon between the exit
// and re-entry of a ring.
const arcStep = 5 * math.Pi / 180

func viewVectors(vp *viewport.Viewport, path []lonLat) []r3.Vector {
	k, v := vp.Projection(), vp.View()
	vs := make([]r3.Vector, len(path))
	for i, ll := range path {
		vs[i] = k.ViewVector(v, ll.lon, ll.lat)
	}
	return vs
}

func visible(p r3.Vector) bool { return p.Z >= 0 }

// horizon returns where the chord a-b crosses the horizon, pushed out
// onto the rim of the disk.
func horizon(a, b r3.Vector) r3.Vector {
	t := a.Z / (a.Z - b.Z)
	h := a.Add(b.Sub(a).Mul(t))
	h.Z = 0
	if n := math.Hypot(h.X, h.Y); n > 0 {
		h.X /= n
		h.Y /= n
	}
	return h
}

// sphericalLineString projects an open path onto the globe. The path is
// broken where it passes behind the globe.
func sphericalLineString(vp *viewport.Viewport, path []lonLat) []Polygon {
	k, v := vp.Projection(), vp.View()
	screen := func(p r3.Vector) r2.Point { return k.ScreenFromViewVector(v, p) }

	var out []Polygon
	flush := func(p Polygon) {
		if len(p) >= 2 && onScreen(vp, p.Bounds()) {
			out = append(out, p)
		}
	}

	vs := viewVectors(vp, path)
	var cur Polygon
	if visible(vs[0]) {
		cur = Polygon{screen(vs[0])}
	}
	for i := 1; i < len(vs); i++ {
		prev, p := vs[i-1], vs[i]
		switch {
		case visible(prev) && visible(p):
			cur = append(cur, screen(p))
		case visible(prev):
			cur = append(cur, screen(horizon(prev, p)))
			flush(cur)
			cur = nil
		case visible(p):
			cur = Polygon{screen(horizon(prev, p)), screen(p)}
		}
	}
	flush(cur)
	return out
}

// sphericalRing projects a closed ring onto the globe. Hidden stretches
// are replaced by the horizon arc between the points where the ring
// leaves and re-enters the visible hemisphere. A ring with no visible
// vertex yields nothing.
func sphericalRing(vp *viewport.Viewport, path []lonLat) []Polygon {
	k, v := vp.Projection(), vp.View()
	screen := func(p r3.Vector) r2.Point { return k.ScreenFromViewVector(v, p) }

	vs := viewVectors(vp, path)
	start := -1
	for i, p := range vs {
		if visible(p) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	n := len(vs)
	ring := Polygon{screen(vs[start])}
	var exit r3.Vector
	for j := 1; j <= n; j++ {
		prev, p := vs[(start+j-1)%n], vs[(start+j)%n]
		switch {
		case visible(prev) && visible(p):
			ring = append(ring, screen(p))
		case visible(prev):
			exit = horizon(prev, p)
			ring = append(ring, screen(exit))
		case visible(p):
			entry := horizon(prev, p)
			for _, a := range horizonArc(exit, entry) {
				ring = append(ring, screen(a))
			}
			ring = append(ring, screen(entry), screen(p))
		}
	}

	ring, ok := finishRing(ring)
	if !ok || !onScreen(vp, ring.Bounds()) {
		return nil
	}
	return []Polygon{ring}
}

// horizonArc returns the rim points strictly between from and to, going
// the shorter way round.
func horizonArc(from, to r3.Vector) []r3.Vector {
	a0 := math.Atan2(from.Y, from.X)
	d := wrapLon(math.Atan2(to.Y, to.X) - a0)
	steps := int(math.Ceil(math.Abs(d) / arcStep))
	if steps < 2 {
		return nil
	}
	arc := make([]r3.Vector, 0, steps-1)
	for s := 1; s < steps; s++ {
		a := a0 + d*float64(s)/float64(steps)
		arc = append(arc, r3.Vector{X: math.Cos(a), Y: math.Sin(a)})
	}
	return arc
}
