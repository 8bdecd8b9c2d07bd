// Package cull keeps the bounding boxes of map features in an R-tree so
// that a renderer only touches the features inside the current view.
package cull

import (
	"sort"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/viewport"
	"github.com/dhconnelly/rtreego"
)

// R-tree branching factors.
const (
	minChildren = 25
	maxChildren = 50
)

// R-tree rectangles must not be flat; this is about 0.6 m on the ground.
const epsilon = 1e-7

// Index is a spatial index of feature boxes keyed by id. Boxes crossing
// the antimeridian are stored as their two halves.
type Index struct {
	tree    *rtreego.Rtree
	entries map[string][]*indexedBox
}

// indexedBox wraps one non-crossing part of a feature box for R-tree
// storage.
type indexedBox struct {
	id  string
	box geo.Box
}

// Bounds implements rtreego.Spatial interface.
func (b *indexedBox) Bounds() rtreego.Rect {
	return boxRect(b.box)
}

func boxRect(box geo.Box) rtreego.Rect {
	point := rtreego.Point{box.West, box.South}
	lonLength := box.East - box.West
	latLength := box.North - box.South
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}
	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// New returns an empty index.
func New() *Index {
	return &Index{
		tree:    rtreego.NewTree(2, minChildren, maxChildren),
		entries: make(map[string][]*indexedBox),
	}
}

// Len returns the number of features in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Insert adds a feature box, replacing any box stored under the same id.
func (ix *Index) Insert(id string, box geo.Box) {
	ix.Delete(id)
	parts := box.Split()
	stored := make([]*indexedBox, 0, len(parts))
	for _, part := range parts {
		e := &indexedBox{id: id, box: part}
		ix.tree.Insert(e)
		stored = append(stored, e)
	}
	ix.entries[id] = stored
}

// Delete removes a feature. It reports whether the id was present.
func (ix *Index) Delete(id string) bool {
	stored, ok := ix.entries[id]
	if !ok {
		return false
	}
	for _, e := range stored {
		ix.tree.Delete(e)
	}
	delete(ix.entries, id)
	return true
}

// Box returns the box stored for id.
func (ix *Index) Box(id string) (geo.Box, bool) {
	stored, ok := ix.entries[id]
	if !ok || len(stored) == 0 {
		return geo.Box{}, false
	}
	box := stored[0].box
	if len(stored) == 2 {
		box.West, box.East = stored[0].box.West, stored[1].box.East
	}
	return box, true
}

// Query returns the ids of all features whose box intersects box, sorted.
func (ix *Index) Query(box geo.Box) []string {
	if box.North < box.South {
		return nil
	}
	seen := make(map[string]struct{})
	for _, part := range box.Split() {
		for _, obj := range ix.tree.SearchIntersect(boxRect(part)) {
			seen[obj.(*indexedBox).id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Visible returns the features inside the viewport's visible box.
func (ix *Index) Visible(vp *viewport.Viewport) []string {
	box := vp.ViewLatLonAltBox()
	if box.IsEmpty() {
		return nil
	}
	return ix.Query(box)
}
