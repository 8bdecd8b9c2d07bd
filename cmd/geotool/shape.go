package main

import (
	"fmt"
	"strconv"

	"github.com/KDE/marble-sub013/cull"
	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/raster"
	"github.com/jonas-p/go-shp"
	"github.com/spf13/cobra"
)

// feature is one shapefile record reduced to its parts in degrees.
type feature struct {
	parts  [][]geo.Point
	closed bool
}

func newShapeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape <file.shp>",
		Short: "Rasterize the visible features of a shapefile",
		Long: `Read the polylines and polygons of a shapefile, pick the features
inside the viewport and rasterize them to screen polygons. Polygons are
also triangulated for filling.

Examples:
  geotool shape coastline.shp --projection mercator --lon 10 --lat 50
  geotool shape borders.shp --tessellate --log-level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := readShapes(args[0])
			if err != nil {
				return err
			}

			ix := cull.New()
			for id, f := range features {
				ix.Insert(id, f.box())
			}
			visible := ix.Visible(a.vp)

			flags := raster.None
			if t, _ := cmd.Flags().GetBool("tessellate"); t {
				flags = raster.Tessellate
			}

			var polygons, triangles int
			for _, id := range visible {
				f := features[id]
				for _, part := range f.parts {
					if !f.closed {
						polygons += len(raster.LineString(a.vp, part, flags))
						continue
					}
					for _, poly := range raster.LinearRing(a.vp, part, flags) {
						polygons++
						idx, err := raster.Triangulate(poly)
						if err != nil {
							a.log.Warn("triangulation failed", "feature", id, "err", err)
							continue
						}
						triangles += len(idx) / 3
					}
				}
			}
			a.log.Debug("rasterized", "file", args[0], "visible", len(visible), "polygons", polygons)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Features: %d\n", len(features))
			fmt.Fprintf(out, "Visible: %d\n", len(visible))
			fmt.Fprintf(out, "Polygons: %d\n", polygons)
			fmt.Fprintf(out, "Triangles: %d\n", triangles)
			return nil
		},
	}

	cmd.Flags().Bool("tessellate", false, "Follow great circles between vertices")
	return cmd
}

// readShapes loads the polyline and polygon records of a shapefile keyed
// by record number. Other shape types are skipped.
func readShapes(path string) (map[string]feature, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	features := make(map[string]feature)
	for r.Next() {
		n, s := r.Shape()
		var f feature
		switch s := s.(type) {
		case *shp.PolyLine:
			f = feature{parts: shapeParts(s.Parts, s.Points)}
		case *shp.Polygon:
			f = feature{parts: shapeParts(s.Parts, s.Points), closed: true}
		default:
			continue
		}
		features[strconv.Itoa(n)] = f
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile: %w", err)
	}
	return features, nil
}

func shapeParts(parts []int32, points []shp.Point) [][]geo.Point {
	out := make([][]geo.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		part := make([]geo.Point, 0, end-start)
		for _, p := range points[start:end] {
			part = append(part, geo.NewPoint(p.X, p.Y, 0, geo.Degree))
		}
		out = append(out, part)
	}
	return out
}

// box returns the bounding box of all parts.
func (f feature) box() geo.Box {
	north, south := -90.0, 90.0
	east, west := -180.0, 180.0
	for _, part := range f.parts {
		for _, p := range part {
			lon, lat := p.Lon(geo.Degree), p.Lat(geo.Degree)
			north = max(north, lat)
			south = min(south, lat)
			east = max(east, lon)
			west = min(west, lon)
		}
	}
	if north < south {
		return geo.Box{}
	}
	return geo.NewBox(north, south, east, west, geo.Degree)
}
