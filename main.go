package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/internal/config"
	"github.com/KDE/marble-sub013/internal/logging"
	"github.com/KDE/marble-sub013/proj"
	"github.com/KDE/marble-sub013/tile"
	"github.com/KDE/marble-sub013/viewport"
)

// projections is the order in which the P key cycles through the
// projections.
var projections = []proj.Kind{proj.Spherical, proj.Mercator, proj.Equirectangular}

// Viewer implements ebiten.Game interface.
type Viewer struct {
	vp        *viewport.Viewport
	cfg       *config.Config
	graticule [][]geo.Point
	debugMode bool
	showGrid  bool

	// Mouse panning state
	isDragging bool
	lastMouseX int
	lastMouseY int

	lastZoomTime float64 // Track last zoom time

	touches touchTracker
}

func (g *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.nextProjection()
	}

	// Handle keyboard zooming
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || // = key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) { // numpad +
		g.vp.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || // - key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) { // numpad -
		g.vp.ZoomOut()
	}

	// Handle mouse wheel zooming with time-based throttling
	currentTime := float64(time.Now().UnixNano()) / 1e9 // Current time in seconds
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && (currentTime-g.lastZoomTime) > 0.1 { // 100ms between zooms
		x, y := ebiten.CursorPosition()
		factor := viewport.ZoomStep
		if wheelY < 0 {
			factor = 1 / viewport.ZoomStep
		}
		g.vp.ZoomAt(float64(x), float64(y), factor)
		g.lastZoomTime = currentTime
	}

	// Handle keyboard panning
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.vp.Pan(viewport.PanLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.vp.Pan(viewport.PanRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.vp.Pan(viewport.PanUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.vp.Pan(viewport.PanDown)
	}

	// Handle mouse panning
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastMouseX, g.lastMouseY = ebiten.CursorPosition()
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}

	if g.isDragging {
		currentX, currentY := ebiten.CursorPosition()
		dx := float64(currentX - g.lastMouseX)
		dy := float64(currentY - g.lastMouseY)
		if dx != 0 || dy != 0 {
			g.vp.PanBy(dx, dy)
		}
		g.lastMouseX = currentX
		g.lastMouseY = currentY
	}

	// The focus point follows the cursor so that keyboard zoom anchors
	// there as well.
	cx, cy := ebiten.CursorPosition()
	if p, ok := g.vp.GeoCoordinates(float64(cx), float64(cy)); ok {
		g.vp.SetFocusPoint(p)
	} else {
		g.vp.ResetFocusPoint()
	}

	g.handleTouchEvents()

	return nil
}

func (g *Viewer) nextProjection() {
	next := projections[0]
	for i, k := range projections {
		if k == g.vp.Projection() {
			next = projections[(i+1)%len(projections)]
		}
	}
	g.vp.SetProjection(next)
	slog.Info("projection changed", "projection", next.String())
}

// tileZoom returns the tile level matching the current radius.
func (g *Viewer) tileZoom(scheme tile.Scheme) int {
	return min(scheme.LevelForRadius(g.vp.Radius(), g.cfg.Tiles.Size), g.cfg.Tiles.MaxZoom)
}

func (g *Viewer) Draw(screen *ebiten.Image) {
	g.drawMap(screen)

	tileRange, haveTiles := g.drawTiles(screen)

	// Draw debug overlay if enabled
	if g.debugMode {
		redColor := color.RGBA{R: 255, A: 255}
		strokeWidth := float32(1.0)

		// Draw crosshair
		centerX := float32(g.vp.Width() / 2)
		centerY := float32(g.vp.Height() / 2)
		crosshairSize := float32(10.0)

		vector.StrokeLine(screen,
			centerX-crosshairSize, centerY,
			centerX+crosshairSize, centerY,
			strokeWidth, redColor, false)
		vector.StrokeLine(screen,
			centerX, centerY-crosshairSize,
			centerX, centerY+crosshairSize,
			strokeWidth, redColor, false)

		g.drawCursorTile(screen)

		tiles := "none"
		if haveTiles {
			tiles = tileRange.String()
		}
		debugText := fmt.Sprintf("Projection: %s\nCenter: %s\nRadius: %.0f\nBox: %s\nTiles: %s\nFocus: %s",
			g.vp.Projection(), g.vp.Center(), g.vp.Radius(),
			g.vp.ViewLatLonAltBox(), tiles, g.vp.FocusPoint())
		ebitenutil.DebugPrint(screen, debugText)
	}
}

func (g *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vp.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	cfg, err := config.Load(os.Getenv("GEOVIEW_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	app := &Viewer{
		vp:           cfg.NewViewport(),
		cfg:          cfg,
		graticule:    graticule(15),
		showGrid:     cfg.Tiles.ShowGrid,
		lastZoomTime: float64(time.Now().UnixNano()) / 1e9,
	}
	slog.Info("starting viewer",
		"projection", app.vp.Projection().String(),
		"radius", app.vp.Radius(),
		"center", app.vp.Center().String(),
	)

	ebiten.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("geoview")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		slog.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}
