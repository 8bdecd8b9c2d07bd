package geo

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestPointText(t *testing.T) {
	berlin := NewPoint(13.4, 52.5, 0, Degree)
	london := NewPoint(-0.1278, 51.5074, 0, Degree)

	tests := []struct {
		name      string
		p         Point
		notation  Notation
		precision int
		want      string
	}{
		{"decimal", berlin, Decimal, 5, " 13.40000°E, 52.50000°N"},
		{"decimal no digits", berlin, Decimal, 0, " 13°E, 53°N"},
		{"decimal west", london, Decimal, 2, "  0.13°W, 51.51°N"},
		{"dms degrees only", berlin, DMS, 0, " 13°E, 53°N"},
		{"dms minutes", berlin, DMS, 2, " 13° 24'E, 52° 30'N"},
		{"dms seconds", berlin, DMS, 4, " 13° 24' 00\"E, 52° 30' 00\"N"},
		{"dms second decimals", berlin, DMS, 5, " 13° 24' 00.0\"E, 52° 30' 00.0\"N"},
		{"dms rounding", london, DMS, 4, "  0° 07' 40\"W, 51° 30' 27\"N"},
		{"dm minute decimals", berlin, DM, 3, " 13° 24.0'E, 52° 30.0'N"},
		{"utm", berlin, UTM, 0, "33U 391391 5817855"},
		{"utm polar", NewPoint(10, 85, 0, Degree), UTM, 0, "Z"},
		{"invalid", Point{}, Decimal, 5, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Text(tt.notation, tt.precision); got != tt.want {
				t.Errorf("Text(%v, %d) = %q; want %q", tt.notation, tt.precision, got, tt.want)
			}
		})
	}
}

func TestPointTextCarry(t *testing.T) {
	// 9.99999° rounds up through seconds and minutes into the degrees.
	p := NewPoint(9.99999, 0, 0, Degree)
	if got, want := LonText(p.Lon(Radian), DMS, 4), " 10° 00' 00\"E"; got != want {
		t.Errorf("LonText = %q; want %q", got, want)
	}
}

func TestTextRoundTrip(t *testing.T) {
	points := []Point{
		NewPoint(13.4, 52.5, 0, Degree),
		NewPoint(-74.006, 40.7128, 0, Degree),
		NewPoint(151.2093, -33.8688, 0, Degree),
		NewPoint(-179.999, -89.5, 0, Degree),
		NewPoint(0, 0, 0, Degree),
	}

	for _, p := range points {
		for _, n := range []Notation{Decimal, DMS, DM} {
			s := p.Text(n, 10)
			q, ok := ParsePoint(s)
			if !ok {
				t.Errorf("ParsePoint(%q) failed", s)
				continue
			}
			tol := 1e-6 * DegToRad
			if n == Decimal {
				tol = 1e-9
			}
			if math.Abs(q.Lon(Radian)-p.Lon(Radian)) > tol || math.Abs(q.Lat(Radian)-p.Lat(Radian)) > tol {
				t.Errorf("%v round trip via %q = %v", n, s, q)
			}
		}
	}
}

func TestTextInLanguage(t *testing.T) {
	p := NewPoint(13.4, 52.5, 0, Degree)

	got := p.TextIn(Decimal, 2, language.German)
	if want := " 13,40°E; 52,50°N"; got != want {
		t.Errorf("TextIn(German) = %q; want %q", got, want)
	}
	q, ok := ParsePointIn(got, language.German)
	if !ok || !q.Equal(NewPoint(13.4, 52.5, 0, Degree)) {
		t.Errorf("ParsePointIn(%q) = %v, %v", got, q, ok)
	}

	if got := p.TextIn(Decimal, 2, language.English); got != " 13.40°E, 52.50°N" {
		t.Errorf("TextIn(English) = %q", got)
	}
}

func TestParseNotation(t *testing.T) {
	for _, n := range []Notation{Decimal, DMS, DM, UTM} {
		got, err := ParseNotation(n.String())
		if err != nil || got != n {
			t.Errorf("ParseNotation(%q) = %v, %v", n.String(), got, err)
		}
	}
	if _, err := ParseNotation("mgrs"); err == nil {
		t.Error("expected error for unknown notation")
	}
}
