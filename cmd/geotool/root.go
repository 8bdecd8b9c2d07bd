package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/internal/config"
	"github.com/KDE/marble-sub013/internal/logging"
	"github.com/KDE/marble-sub013/viewport"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// app is the state shared by all subcommands once the configuration is
// loaded.
type app struct {
	cfg *config.Config
	vp  *viewport.Viewport
	log *slog.Logger
}

// flagKeys maps global flags onto configuration keys so that flags
// override the config file and the environment.
var flagKeys = map[string]string{
	"projection": "viewport.projection",
	"width":      "viewport.width",
	"height":     "viewport.height",
	"radius":     "viewport.radius",
	"lon":        "viewport.center_lon",
	"lat":        "viewport.center_lat",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "geotool",
		Short: "Projection, viewport and tile addressing tool",
		Long: `geotool runs the map engine without a window.

It sets up a viewport from the configuration and answers questions about
it: where a coordinate lands on screen, which area is visible, which tiles
cover it and how a shapefile is rasterized.

Configuration is read from geoview.yaml (in . or ./configs), GEOVIEW_*
environment variables and the flags below, in increasing priority.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringP("config", "c", "", "Config file (default geoview.yaml)")
	f.StringP("projection", "p", "spherical", "Projection: spherical, mercator or equirectangular")
	f.Int("width", 1024, "Viewport width in pixels")
	f.Int("height", 768, "Viewport height in pixels")
	f.Float64P("radius", "r", viewport.DefaultRadius, "Globe radius in pixels")
	f.Float64("lon", 0, "Center longitude in degrees")
	f.Float64("lat", 0, "Center latitude in degrees")
	f.String("log-level", "info", "Log level: debug, info, warn or error")
	f.String("log-format", "text", "Log format: text or json")

	root.AddCommand(
		newProjectCmd(a),
		newUnprojectCmd(a),
		newBoxCmd(a),
		newTilesCmd(a),
		newFormatCmd(a),
		newUTMCmd(a),
		newShapeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("config")
	v, err := config.New(file)
	if err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.vp = cfg.NewViewport()
	a.log.Debug("viewport ready",
		"projection", a.vp.Projection(),
		"radius", a.vp.Radius(),
		"size", fmt.Sprintf("%dx%d", a.vp.Width(), a.vp.Height()),
		"center", a.vp.Center().String(),
	)
	return nil
}

// parseCoordinate joins the arguments so that "52.5N 13.4E" works with
// or without shell quoting.
func parseCoordinate(args []string) (geo.Point, error) {
	return parseCoordinateIn(args, language.English)
}

func parseCoordinateIn(args []string, tag language.Tag) (geo.Point, error) {
	text := strings.Join(args, " ")
	p, ok := geo.ParsePointIn(text, tag)
	if !ok {
		return geo.Point{}, fmt.Errorf("cannot parse coordinate %q", text)
	}
	return p, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}
