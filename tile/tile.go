// Package tile maps geographic boxes onto the tile pyramid of a map theme
// and back.
//
// A pyramid level z has LevelZeroColumns·2^z columns and
// LevelZeroRows·2^z rows. Column 0 starts at -180°, row 0 at the top of
// the projection's latitude band.
package tile

import (
	"fmt"
	"math"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
)

const (
	// TileSize is the default edge length of a tile in pixels
	TileSize = 256
	// MaxZoomLevel is the deepest level the indexer produces
	MaxZoomLevel = 30
)

// pow2 contains pre-calculated powers of 2 for zoom levels 0-21
var pow2 = [22]float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
	1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152,
}

func levelScale(zoom int) float64 {
	if zoom < len(pow2) {
		return pow2[zoom]
	}
	return math.Ldexp(1, zoom)
}

// Address identifies one tile.
type Address struct {
	Zoom int
	X    int
	Y    int
}

func (a Address) String() string {
	return fmt.Sprintf("%d/%d/%d", a.Zoom, a.X, a.Y)
}

// Parent returns the tile one level up that contains a. ok is false at
// level zero.
func (a Address) Parent() (Address, bool) {
	if a.Zoom == 0 {
		return a, false
	}
	return Address{Zoom: a.Zoom - 1, X: a.X >> 1, Y: a.Y >> 1}, true
}

// Children returns the four tiles one level down, row by row.
func (a Address) Children() [4]Address {
	z, x, y := a.Zoom+1, a.X<<1, a.Y<<1
	return [4]Address{
		{z, x, y}, {z, x + 1, y},
		{z, x, y + 1}, {z, x + 1, y + 1},
	}
}

// Scheme describes the tile grid of a map theme.
type Scheme struct {
	Projection       proj.Kind
	LevelZeroColumns int
	LevelZeroRows    int
}

// DefaultScheme returns the usual grid for a projection: one Mercator
// tile at level zero, or two side by side for the equirectangular
// themes the globe is textured from.
func DefaultScheme(kind proj.Kind) Scheme {
	if kind == proj.Mercator {
		return Scheme{Projection: kind, LevelZeroColumns: 1, LevelZeroRows: 1}
	}
	return Scheme{Projection: kind, LevelZeroColumns: 2, LevelZeroRows: 1}
}

// Columns returns the grid width at zoom.
func (s Scheme) Columns(zoom int) int {
	return int(float64(max(s.LevelZeroColumns, 1)) * levelScale(zoom))
}

// Rows returns the grid height at zoom.
func (s Scheme) Rows(zoom int) int {
	return int(float64(max(s.LevelZeroRows, 1)) * levelScale(zoom))
}

// mercator reports whether rows follow the Mercator latitude scale. The
// globe is textured from equirectangular tiles.
func (s Scheme) mercator() bool {
	return s.Projection == proj.Mercator
}

// Coords converts a position in radians to fractional tile coordinates at
// the specified zoom level.
//
// Parameters:
//   - lon: longitude in radians; values outside [-π, π] are wrapped
//   - lat: latitude in radians (clamped to the Mercator band where needed)
//   - zoom: zoom level
//
// Returns:
//   - x: tile X coordinate (fractional)
//   - y: tile Y coordinate (fractional)
func (s Scheme) Coords(lon, lat float64, zoom int) (x, y float64) {
	if lon < -math.Pi || lon > math.Pi {
		lon = geo.NormalizeLon(lon, geo.Radian)
	}
	x = (lon + math.Pi) / (2 * math.Pi) * float64(s.Columns(zoom))
	y = s.rowCoord(lat, float64(s.Rows(zoom)))
	return x, y
}

func (s Scheme) rowCoord(lat, rows float64) float64 {
	if !s.mercator() {
		lat = math.Max(-math.Pi/2, math.Min(math.Pi/2, lat))
		return (math.Pi/2 - lat) / math.Pi * rows
	}
	limit := proj.Mercator.MaxValidLat()
	// Handle the band edges first
	if lat >= limit {
		return 0
	}
	if lat <= -limit {
		return rows
	}
	// The grid ends at gd(π), a hair inside the band.
	y := 0.5 * (1 - proj.GDInv(lat)/math.Pi) * rows
	return math.Max(0, math.Min(rows, y))
}

// snap removes rounding noise at tile boundaries so that a box built
// from tile edges maps back onto the same tiles.
func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}

// TileBox returns the geographic edges of a tile.
func (s Scheme) TileBox(a Address) geo.Box {
	cols := float64(s.Columns(a.Zoom))
	rows := float64(s.Rows(a.Zoom))
	box := geo.Box{
		West: float64(a.X)/cols*2*math.Pi - math.Pi,
		East: float64(a.X+1)/cols*2*math.Pi - math.Pi,
	}
	box.North = s.latAtRow(float64(a.Y), rows)
	box.South = s.latAtRow(float64(a.Y+1), rows)
	return box
}

func (s Scheme) latAtRow(y, rows float64) float64 {
	if s.mercator() {
		return proj.GD(math.Pi * (1 - 2*y/rows))
	}
	return math.Pi/2 - y/rows*math.Pi
}

// LevelForRadius returns the shallowest level whose tiles are not
// magnified when the flat map is 4·radius pixels wide.
func (s Scheme) LevelForRadius(radius float64, tileSize int) int {
	if radius <= 0 || tileSize <= 0 {
		return 0
	}
	level0Width := float64(max(s.LevelZeroColumns, 1) * tileSize)
	z := int(math.Ceil(math.Log2(4 * radius / level0Width)))
	return max(0, min(MaxZoomLevel, z))
}
