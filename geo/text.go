package geo

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Notation selects how coordinates are rendered as text.
type Notation int

const (
	Decimal Notation = iota // 52.51670°N
	DMS                     // 52° 31' 00"N
	DM                      // 52° 31.002'N
	UTM                     // 33U 391776 5820072
)

func (n Notation) String() string {
	switch n {
	case Decimal:
		return "decimal"
	case DMS:
		return "dms"
	case DM:
		return "dm"
	case UTM:
		return "utm"
	default:
		return "unknown"
	}
}

// ParseNotation maps a notation name back to its value.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decimal", "dec":
		return Decimal, nil
	case "dms":
		return DMS, nil
	case "dm":
		return DM, nil
	case "utm":
		return UTM, nil
	}
	return Decimal, fmt.Errorf("unknown notation %q", s)
}

// String renders the point in decimal notation with five digits.
func (p Point) String() string {
	return p.Text(Decimal, 5)
}

// Text renders longitude and latitude, in that order, separated by ", "
// (or "; " when the decimal separator is a comma).
// For DMS and DM the precision spreads over the fields: 0 shows degrees
// only, 1-2 adds minutes, 3-4 adds seconds (DMS) or minute decimals (DM),
// larger values add decimals to the last field. A negative precision
// means 5.
func (p Point) Text(notation Notation, precision int) string {
	return p.text(notation, precision, ".")
}

// TextIn is Text using the decimal separator of the given language.
func (p Point) TextIn(notation Notation, precision int, tag language.Tag) string {
	return p.text(notation, precision, decimalSeparator(tag))
}

func (p Point) text(notation Notation, precision int, sep string) string {
	if !p.valid {
		return "invalid"
	}
	if notation == UTM {
		return utmText(p)
	}
	lon := LonText(p.lon, notation, precision)
	lat := LatText(p.lat, notation, precision)
	pairSep := ", "
	if sep != "." {
		lon = strings.ReplaceAll(lon, ".", sep)
		lat = strings.ReplaceAll(lat, ".", sep)
		if sep == "," {
			pairSep = "; "
		}
	}
	return lon + pairSep + lat
}

// LonText renders a longitude in radians with a trailing E or W.
func LonText(lon float64, notation Notation, precision int) string {
	hemisphere := "E"
	if lon < 0 {
		hemisphere = "W"
	}
	return angleText(math.Abs(lon*RadToDeg), 3, notation, precision) + hemisphere
}

// LatText renders a latitude in radians with a trailing N or S.
func LatText(lat float64, notation Notation, precision int) string {
	hemisphere := "N"
	if lat < 0 {
		hemisphere = "S"
	}
	return angleText(math.Abs(lat*RadToDeg), 2, notation, precision) + hemisphere
}

func roundTo(v float64, decimals int) float64 {
	f := math.Pow(10, float64(decimals))
	return math.Round(v*f) / f
}

func angleText(deg float64, degWidth int, notation Notation, precision int) string {
	if precision < 0 {
		precision = 5
	}
	if notation != DMS && notation != DM {
		width := degWidth
		if precision > 0 {
			width += 1 + precision
		}
		return fmt.Sprintf("%*.*f°", width, precision, roundTo(deg, precision))
	}
	if precision == 0 {
		return fmt.Sprintf("%*d°", degWidth, int(math.Round(deg)))
	}

	d := math.Floor(deg)
	minutes := (deg - d) * 60

	if precision <= 2 {
		m := math.Round(minutes)
		if m >= 60 {
			m, d = 0, d+1
		}
		return fmt.Sprintf("%*d° %02d'", degWidth, int(d), int(m))
	}

	if notation == DM {
		decimals := precision - 2
		m := roundTo(minutes, decimals)
		if m >= 60 {
			m, d = 0, d+1
		}
		return fmt.Sprintf("%*d° %0*.*f'", degWidth, int(d), decimals+3, decimals, m)
	}

	m := math.Floor(minutes)
	seconds := (minutes - m) * 60
	decimals := 0
	if precision > 4 {
		decimals = precision - 4
	}
	s := roundTo(seconds, decimals)
	if s >= 60 {
		s, m = 0, m+1
	}
	if m >= 60 {
		m, d = 0, d+1
	}
	if decimals == 0 {
		return fmt.Sprintf("%*d° %02d' %02d\"", degWidth, int(d), int(m), int(s))
	}
	return fmt.Sprintf("%*d° %02d' %0*.*f\"", degWidth, int(d), int(m), decimals+3, decimals, s)
}

func utmText(p Point) string {
	lon, lat := p.Lon(Degree), p.Lat(Degree)
	zone := UTMZone(lon, lat)
	band := UTMLatitudeBand(lon, lat)
	if zone == 0 {
		return band
	}
	return fmt.Sprintf("%d%s %.0f %.0f", zone, band, UTMEasting(lon, lat), UTMNorthing(lon, lat))
}

// decimalSeparator asks the x/text printer how the language writes 1.5.
func decimalSeparator(tag language.Tag) string {
	s := message.NewPrinter(tag).Sprintf("%.1f", 1.5)
	sep := strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
	if sep == "" {
		return "."
	}
	return sep
}
