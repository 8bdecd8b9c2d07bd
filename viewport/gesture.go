package viewport

import (
	"math"

	"github.com/golang/geo/r2"
)

// PinchThreshold is the change in finger distance, in pixels, below which
// a pinch does not zoom.
const PinchThreshold = 2

// Drag moves the map so that the geographic point under from ends up
// under to, as far as the projection allows.
func (vp *Viewport) Drag(from, to r2.Point) {
	d := to.Sub(from)
	vp.PanBy(d.X, d.Y)
}

// Pinch applies one step of a two-finger gesture. prev and cur hold the
// finger positions of the previous and the current frame. The map follows
// the midpoint of the fingers and scales with their distance.
func (vp *Viewport) Pinch(prev, cur [2]r2.Point) {
	from := prev[0].Add(prev[1]).Mul(0.5)
	to := cur[0].Add(cur[1]).Mul(0.5)
	vp.Drag(from, to)

	before := prev[0].Sub(prev[1]).Norm()
	after := cur[0].Sub(cur[1]).Norm()
	if before > 0 && math.Abs(after-before) > PinchThreshold {
		vp.ZoomAt(to.X, to.Y, after/before)
	}
}
