package main

import (
	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
)

// touchTracker remembers where each finger was on the previous frame.
type touchTracker struct {
	last map[ebiten.TouchID]r2.Point
	ids  []ebiten.TouchID
}

func touchPoint(id ebiten.TouchID) r2.Point {
	x, y := ebiten.TouchPosition(id)
	return r2.Point{X: float64(x), Y: float64(y)}
}

// handleTouchEvents turns one finger into a drag and two into a pinch.
// Fingers that just landed only get recorded.
func (g *Viewer) handleTouchEvents() {
	tr := &g.touches
	tr.ids = ebiten.AppendTouchIDs(tr.ids[:0])

	cur := make(map[ebiten.TouchID]r2.Point, len(tr.ids))
	for _, id := range tr.ids {
		cur[id] = touchPoint(id)
	}
	prev := tr.last
	tr.last = cur

	switch len(tr.ids) {
	case 1:
		id := tr.ids[0]
		if p, ok := prev[id]; ok {
			g.vp.Drag(p, cur[id])
		}
	case 2:
		a, b := tr.ids[0], tr.ids[1]
		pa, okA := prev[a]
		pb, okB := prev[b]
		if okA && okB {
			g.vp.Pinch([2]r2.Point{pa, pb}, [2]r2.Point{cur[a], cur[b]})
		}
	}
}
