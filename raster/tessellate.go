package raster

import (
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/viewport"
	"github.com/golang/geo/s2"
)

const (
	// tessellationPixels is the target screen length of one tessellated
	// step.
	tessellationPixels = 8.0
	// maxSegmentNodes caps the nodes inserted into a single segment.
	maxSegmentNodes = 200
)

// densify converts the points to radians and inserts the tessellation
// nodes. A closed path also gets the nodes of its closing segment, but
// not a second copy of the first vertex.
func densify(vp *viewport.Viewport, pts []geo.Point, flags Flags, closed bool) []lonLat {
	n := len(pts)
	segments := n - 1
	if closed {
		segments = n
	}

	out := make([]lonLat, 0, n)
	out = append(out, toLonLat(pts[0]))
	for i := 0; i < segments; i++ {
		a, b := pts[i], pts[(i+1)%n]
		if flags&Tessellate != 0 {
			out = tessellate(out, vp.Radius(), a, b, flags)
		}
		if i+1 < n {
			out = append(out, toLonLat(b))
		}
	}
	return out
}

func toLonLat(p geo.Point) lonLat {
	return lonLat{lon: p.Lon(geo.Radian), lat: p.Lat(geo.Radian)}
}

// tessellate appends the interior nodes of the segment a-b.
func tessellate(out []lonLat, radius float64, a, b geo.Point, flags Flags) []lonLat {
	alon, alat := a.Lon(geo.Radian), a.Lat(geo.Radian)
	blon, blat := b.Lon(geo.Radian), b.Lat(geo.Radian)

	if flags&RespectLatitudeCircle != 0 && alat == blat {
		dLon := geo.NormalizeLon(blon-alon, geo.Radian)
		nodes := segmentNodes(math.Abs(dLon)*math.Cos(alat), radius)
		for j := 1; j <= nodes; j++ {
			t := float64(j) / float64(nodes+1)
			out = append(out, lonLat{lon: alon + t*dLon, lat: alat})
		}
		return out
	}

	nodes := segmentNodes(geo.Distance(a, b), radius)
	if nodes == 0 {
		return out
	}
	sa, sb := a.S2Point(), b.S2Point()
	for j := 1; j <= nodes; j++ {
		t := float64(j) / float64(nodes+1)
		ll := s2.LatLngFromPoint(s2.Interpolate(t, sa, sb))
		out = append(out, lonLat{lon: ll.Lng.Radians(), lat: ll.Lat.Radians()})
	}
	return out
}

// segmentNodes returns how many nodes split an arc of the given angle into
// steps of about tessellationPixels on screen.
func segmentNodes(angle, radius float64) int {
	steps := math.Ceil(angle * radius / tessellationPixels)
	if math.IsNaN(steps) || steps <= 1 {
		return 0
	}
	return int(math.Min(steps-1, maxSegmentNodes))
}
