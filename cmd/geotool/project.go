package main

import (
	"fmt"
	"strings"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/raster"
	"github.com/golang/geo/r2"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project <coordinate>",
		Short: "Project a coordinate onto the screen",
		Long: `Project a geographic coordinate onto the configured viewport.

Examples:
  geotool project 52.5N 13.4E
  geotool project 33.9S 151.2E --projection mercator --radius 500`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseCoordinate(args)
			if err != nil {
				return err
			}
			pr := a.vp.ScreenCoordinatesOf(p)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Coordinate: %s\n", p.Text(geo.Decimal, 5))
			fmt.Fprintf(out, "Screen: %.2f, %.2f\n", pr.Point.X, pr.Point.Y)
			fmt.Fprintf(out, "Visible: %t\n", pr.Visible)
			if pr.Clamped {
				fmt.Fprintln(out, "Clamped: latitude outside the projection")
			}
			if pr.Hidden {
				fmt.Fprintln(out, "Hidden: behind the globe")
			}
			if xs := raster.PointRepeats(a.vp, p); len(xs) > 1 {
				parts := make([]string, len(xs))
				for i, x := range xs {
					parts[i] = fmt.Sprintf("%.2f", x)
				}
				fmt.Fprintf(out, "Repeats: %s\n", strings.Join(parts, ", "))
			}
			return nil
		},
	}
}

func newUnprojectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unproject <x> <y>",
		Short: "Find the coordinate under a screen position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseFloats(args)
			if err != nil {
				return err
			}
			p, ok := a.vp.GeoCoordinates(xy[0], xy[1])
			if !ok {
				return fmt.Errorf("position %g, %g is not on the map", xy[0], xy[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Coordinate: %s\n", p.Text(geo.Decimal, 5))
			return nil
		},
	}
}

func newBoxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "box [x0 y0 x1 y1]",
		Short: "Show the geographic area covered by the viewport or a screen rectangle",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf("expected no arguments or four corner values, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 4 {
				v, err := parseFloats(args)
				if err != nil {
					return err
				}
				rect := r2.RectFromPoints(r2.Point{X: v[0], Y: v[1]}, r2.Point{X: v[2], Y: v[3]})
				fmt.Fprintf(out, "Box: %s\n", a.vp.LatLonAltBox(rect))
				return nil
			}
			box := a.vp.ViewLatLonAltBox()
			fmt.Fprintf(out, "Box: %s\n", box)
			fmt.Fprintf(out, "Crosses date line: %t\n", box.CrossesDateLine())
			fmt.Fprintf(out, "Map covers viewport: %t\n", a.vp.MapCoversViewport())
			return nil
		},
	}
}
