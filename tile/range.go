package tile

import (
	"fmt"
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
)

// Range is an inclusive block of tiles at one zoom level. When West is
// greater than East the block wraps around the antimeridian.
type Range struct {
	Zoom  int
	West  int
	North int
	East  int
	South int
	// Columns is the grid width, needed to walk a wrapping range.
	Columns int
}

func (r Range) String() string {
	return fmt.Sprintf("z%d x[%d..%d] y[%d..%d]", r.Zoom, r.West, r.East, r.North, r.South)
}

// Wraps reports whether the range crosses the antimeridian.
func (r Range) Wraps() bool {
	return r.West > r.East
}

// Width returns the number of columns in the range.
func (r Range) Width() int {
	if r.Wraps() {
		return r.Columns - r.West + r.East + 1
	}
	return r.East - r.West + 1
}

// Height returns the number of rows in the range.
func (r Range) Height() int {
	return r.South - r.North + 1
}

// Count returns the number of tiles in the range.
func (r Range) Count() int {
	return r.Width() * r.Height()
}

// Contains reports whether a tile lies inside the range.
func (r Range) Contains(a Address) bool {
	if a.Zoom != r.Zoom || a.Y < r.North || a.Y > r.South {
		return false
	}
	if r.Wraps() {
		return a.X >= r.West || a.X <= r.East
	}
	return a.X >= r.West && a.X <= r.East
}

// Addresses lists the tiles row by row from north to south, each row from
// west to east.
func (r Range) Addresses() []Address {
	out := make([]Address, 0, r.Count())
	for y := r.North; y <= r.South; y++ {
		for i := 0; i < r.Width(); i++ {
			x := r.West + i
			if r.Columns > 0 {
				x %= r.Columns
			}
			out = append(out, Address{Zoom: r.Zoom, X: x, Y: y})
		}
	}
	return out
}

// TileRange returns the tiles covering box at zoom. A tile is included
// only if the box reaches into its interior, so a box that ends exactly on
// a tile edge does not pull in the neighbour. A box with West > East wraps
// modulo the grid width. Levels outside [0, MaxZoomLevel] have no tiles.
// For Mercator, latitudes beyond the band are cut off and a box lying
// entirely outside the band has no tiles.
func (s Scheme) TileRange(box geo.Box, zoom int) (Range, bool) {
	if zoom < 0 || zoom > MaxZoomLevel || box.North < box.South {
		return Range{}, false
	}
	cols := s.Columns(zoom)
	rows := s.Rows(zoom)

	north, south := box.North, box.South
	if s.mercator() {
		limit := proj.Mercator.MaxValidLat()
		if south > limit || north < -limit {
			return Range{}, false
		}
	}

	r := Range{Zoom: zoom, Columns: cols}
	switch {
	case box.IsFull():
		r.West, r.East = 0, cols-1
	default:
		r.West = s.column(box.West, cols, false)
		r.East = s.column(box.East, cols, true)
		crossing := box.CrossesDateLine()
		if !crossing && (r.East < r.West || box.Width() == 0) {
			// Zero width, or an edge exactly on a tile boundary.
			r.East = r.West
		}
		if crossing && r.East >= r.West {
			// The wrapped box reaches back into its own first column.
			r.West, r.East = 0, cols-1
		}
	}

	fr := float64(rows)
	r.North = clampIndex(int(math.Floor(snap(s.rowCoord(north, fr)))), rows)
	r.South = clampIndex(int(math.Ceil(snap(s.rowCoord(south, fr))))-1, rows)
	if r.South < r.North {
		r.South = r.North
	}
	return r, true
}

// column quantizes a longitude. West edges round down; east edges use the
// lower bound so that a tile is not included for a box touching only its
// western edge.
func (s Scheme) column(lon float64, cols int, east bool) int {
	x := snap((lon + math.Pi) / (2 * math.Pi) * float64(cols))
	var i int
	if east {
		i = int(math.Ceil(x)) - 1
	} else {
		i = int(math.Floor(x))
	}
	return ((i % cols) + cols) % cols
}

func clampIndex(i, n int) int {
	return max(0, min(n-1, i))
}
