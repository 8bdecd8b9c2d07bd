package main

import (
	"fmt"

	"github.com/KDE/marble-sub013/geo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newFormatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <coordinate>",
		Short: "Render a coordinate in another notation",
		Long: `Parse a coordinate and print it in decimal, dms, dm or utm notation.

Examples:
  geotool format 52.5N 13.4E --notation dms --precision 4
  geotool format "52,5 13,4" --lang de`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("notation")
			notation, err := geo.ParseNotation(name)
			if err != nil {
				return err
			}
			precision, _ := cmd.Flags().GetInt("precision")
			lang, _ := cmd.Flags().GetString("lang")
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language %q: %w", lang, err)
			}

			p, err := parseCoordinateIn(args, tag)
			if err != nil {
				return err
			}
			a.log.Debug("format", "notation", notation, "precision", precision, "lang", tag.String())
			fmt.Fprintln(cmd.OutOrStdout(), p.TextIn(notation, precision, tag))
			return nil
		},
	}

	cmd.Flags().StringP("notation", "n", "decimal", "Notation: decimal, dms, dm or utm")
	cmd.Flags().Int("precision", 5, "Number of digits")
	cmd.Flags().String("lang", "en", "Language deciding the decimal separator")
	return cmd
}

func newUTMCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "utm <coordinate>",
		Short: "Show the UTM zone, band, easting and northing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseCoordinate(args)
			if err != nil {
				return err
			}
			lon, lat := p.Lon(geo.Degree), p.Lat(geo.Degree)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Zone: %d\n", geo.UTMZone(lon, lat))
			fmt.Fprintf(out, "Band: %s\n", geo.UTMLatitudeBand(lon, lat))
			fmt.Fprintf(out, "Easting: %.2f\n", geo.UTMEasting(lon, lat))
			fmt.Fprintf(out, "Northing: %.2f\n", geo.UTMNorthing(lon, lat))
			return nil
		},
	}
}
