package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTilesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "List the tiles covering the viewport",
		Long: `List the tile range that covers the visible area of the viewport.

Without --zoom the level whose tiles best match the globe radius is used,
capped at tiles.max_zoom.

Examples:
  geotool tiles --projection mercator --radius 1000
  geotool tiles --zoom 3 --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme := a.cfg.Scheme()

			zoom := min(scheme.LevelForRadius(a.vp.Radius(), a.cfg.Tiles.Size), a.cfg.Tiles.MaxZoom)
			if cmd.Flags().Changed("zoom") {
				zoom, _ = cmd.Flags().GetInt("zoom")
			}

			box := a.vp.ViewLatLonAltBox()
			r, ok := scheme.TileRange(box, zoom)
			if !ok {
				return fmt.Errorf("no tiles cover %s at zoom %d", box, zoom)
			}
			a.log.Debug("tile range", "box", box.String(), "zoom", zoom, "range", r.String())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Zoom: %d\n", zoom)
			fmt.Fprintf(out, "Grid: %dx%d\n", scheme.Columns(zoom), scheme.Rows(zoom))
			fmt.Fprintf(out, "Range: %s\n", r)
			fmt.Fprintf(out, "Tiles: %d\n", r.Count())

			if list, _ := cmd.Flags().GetBool("list"); list {
				for _, t := range r.Addresses() {
					fmt.Fprintln(out, t)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntP("zoom", "z", 0, "Zoom level (default from the radius)")
	cmd.Flags().Bool("list", false, "Print every tile address")
	return cmd
}
