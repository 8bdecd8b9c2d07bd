package raster

import (
	"errors"
	"fmt"

	"github.com/flywave/go-earcut"
)

// ErrDegenerate is returned for polygons that cannot be filled.
var ErrDegenerate = errors.New("raster: polygon has fewer than three vertices")

// Triangulate splits a screen polygon into triangles for filling. The
// result holds three vertex indices per triangle, indexing p. A closing
// vertex that repeats the first one is never referenced.
func Triangulate(p Polygon) ([]int, error) {
	if p.Closed() {
		p = p[:len(p)-1]
	}
	if len(p) < 3 {
		return nil, ErrDegenerate
	}
	data := make([]float64, 0, 2*len(p))
	for _, pt := range p {
		data = append(data, pt.X, pt.Y)
	}
	indices, err := earcut.Earcut(data, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate %d vertices: %w", len(p), err)
	}
	return indices, nil
}
