package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
	"github.com/KDE/marble-sub013/raster"
	"github.com/KDE/marble-sub013/tile"
)

// maxDrawnTiles keeps the debug grid readable when zoomed far out of the
// configured level.
const maxDrawnTiles = 512

var (
	backgroundColor = color.RGBA{R: 16, G: 20, B: 32, A: 255}
	oceanColor      = color.RGBA{R: 40, G: 80, B: 140, A: 255}
	graticuleColor  = color.RGBA{R: 200, G: 200, B: 200, A: 120}
	tileColor       = color.RGBA{R: 255, G: 200, B: 0, A: 200}
	cursorTileColor = color.RGBA{R: 255, G: 200, B: 0, A: 60}
)

// whitePixel is the source image for filled triangles.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// graticule returns the meridians and parallels every step degrees.
func graticule(step float64) [][]geo.Point {
	var lines [][]geo.Point
	for lon := -180.0; lon < 180; lon += step {
		var m []geo.Point
		for lat := -90.0; lat <= 90; lat += 10 {
			m = append(m, geo.NewPoint(lon, lat, 0, geo.Degree))
		}
		lines = append(lines, m)
	}
	for lat := -90 + step; lat < 90; lat += step {
		var p []geo.Point
		for lon := -180.0; lon <= 180; lon += 30 {
			p = append(p, geo.NewPoint(lon, lat, 0, geo.Degree))
		}
		lines = append(lines, p)
	}
	return lines
}

// drawMap paints the background of the map and the graticule.
func (g *Viewer) drawMap(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := float32(g.vp.Width()), float32(g.vp.Height())
	switch {
	case g.vp.MapCoversViewport():
		screen.Fill(oceanColor)
	case g.vp.Projection() == proj.Spherical:
		vector.DrawFilledCircle(screen, w/2, h/2, float32(g.vp.Radius()), oceanColor, true)
	default:
		k, v := g.vp.Projection(), g.vp.View()
		top, _ := k.FlatPoint(v, v.CenterLon, k.MaxValidLat())
		bottom, _ := k.FlatPoint(v, v.CenterLon, k.MinValidLat())
		vector.DrawFilledRect(screen, 0, float32(top.Y), w, float32(bottom.Y-top.Y), oceanColor, false)
	}

	for _, line := range g.graticule {
		for _, poly := range raster.LineString(g.vp, line, raster.Tessellate|raster.RespectLatitudeCircle) {
			strokePolygon(screen, poly, 1, graticuleColor)
		}
	}
}

// drawTiles outlines the tiles covering the view when the grid is on.
func (g *Viewer) drawTiles(screen *ebiten.Image) (tile.Range, bool) {
	scheme := g.cfg.Scheme()
	scheme.Projection = g.vp.Projection()
	zoom := g.tileZoom(scheme)

	r, ok := scheme.TileRange(g.vp.ViewLatLonAltBox(), zoom)
	if !ok || !g.showGrid || r.Count() > maxDrawnTiles {
		return r, ok
	}

	for _, a := range r.Addresses() {
		ring := boxRing(scheme.TileBox(a))
		for _, poly := range raster.LinearRing(g.vp, ring, raster.Tessellate|raster.RespectLatitudeCircle) {
			strokePolygon(screen, poly, 1, tileColor)
		}
		c := scheme.TileBox(a).Center()
		for _, x := range raster.PointRepeats(g.vp, c) {
			y := g.vp.ScreenCoordinatesOf(c).Point.Y
			ebitenutil.DebugPrintAt(screen, a.String(), int(x), int(y))
		}
	}
	return r, true
}

// drawCursorTile fills the tile under the mouse cursor.
func (g *Viewer) drawCursorTile(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	p, ok := g.vp.GeoCoordinates(float64(cx), float64(cy))
	if !ok {
		return
	}
	scheme := g.cfg.Scheme()
	scheme.Projection = g.vp.Projection()
	zoom := g.tileZoom(scheme)

	x, y := scheme.Coords(p.Lon(geo.Radian), p.Lat(geo.Radian), zoom)
	a := tile.Address{
		Zoom: zoom,
		X:    min(int(math.Floor(x)), scheme.Columns(zoom)-1),
		Y:    max(0, min(int(math.Floor(y)), scheme.Rows(zoom)-1)),
	}
	for _, poly := range raster.LinearRing(g.vp, boxRing(scheme.TileBox(a)), raster.Tessellate|raster.RespectLatitudeCircle) {
		fillPolygon(screen, poly, cursorTileColor)
	}
}

// boxRing returns the outline of a box as a ring. The north and south
// edges get intermediate vertices so that a box spanning the whole globe
// still has a non-degenerate outline.
func boxRing(b geo.Box) []geo.Point {
	const steps = 4
	w := b.Width()
	ring := make([]geo.Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		ring = append(ring, geo.NewPoint(b.West+w*float64(i)/steps, b.North, 0, geo.Radian))
	}
	for i := steps; i >= 0; i-- {
		ring = append(ring, geo.NewPoint(b.West+w*float64(i)/steps, b.South, 0, geo.Radian))
	}
	return ring
}

func strokePolygon(screen *ebiten.Image, poly raster.Polygon, width float32, clr color.Color) {
	for i := 1; i < len(poly); i++ {
		vector.StrokeLine(screen,
			float32(poly[i-1].X), float32(poly[i-1].Y),
			float32(poly[i].X), float32(poly[i].Y),
			width, clr, true)
	}
}

func fillPolygon(screen *ebiten.Image, poly raster.Polygon, clr color.RGBA) {
	idx, err := raster.Triangulate(poly)
	if err != nil || len(poly) > math.MaxUint16 {
		return
	}

	r, gr, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vertices := make([]ebiten.Vertex, len(poly))
	for i, p := range poly {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
		}
	}
	indices := make([]uint16, len(idx))
	for i, v := range idx {
		indices[i] = uint16(v)
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{})
}
