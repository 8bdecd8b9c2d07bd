package geo

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input    string
		lon, lat float64
	}{
		{"52.5°N, 13.4°E", 13.4, 52.5},
		{"13.4°E, 52.5°N", 13.4, 52.5},
		{"52.5 13.4", 13.4, 52.5},
		{"52.5, 13.4", 13.4, 52.5},
		{"52.5; 13.4", 13.4, 52.5},
		{"-33.8688 151.2093", 151.2093, -33.8688},
		{"+33.8688 -151.2093", -151.2093, 33.8688},
		{"S 33.8688, E 151.2093", 151.2093, -33.8688},
		{"33.8688S 151.2093E", 151.2093, -33.8688},
		{"W 0.5, N 51.5", -0.5, 51.5},
		{"52.5 E13.4", 13.4, 52.5},
		{"10 S20", 10, -20},
		{"13.4 N52.5", 13.4, 52.5},
		{"52.5  W13.4", -13.4, 52.5},
		{"n 52° 30' 0\" e 13° 24'", 13.4, 52.5},
		{"52° 30′ 00″ N 13° 24′ E", 13.4, 52.5},
		{"52°30'N 13°24'E", 13.4, 52.5},
		{"52º N, 13º E", 13, 52},
		{"5.25e1 1.34e1", 13.4, 52.5},
		{"90 180", 180, 90},
		{"-90 -180", -180, -90},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := ParsePoint(tt.input)
			if !ok {
				t.Fatalf("ParsePoint(%q) failed", tt.input)
			}
			if math.Abs(p.Lon(Degree)-tt.lon) > 1e-9 || math.Abs(p.Lat(Degree)-tt.lat) > 1e-9 {
				t.Errorf("ParsePoint(%q) = (%v, %v); want (%v, %v)",
					tt.input, p.Lon(Degree), p.Lat(Degree), tt.lon, tt.lat)
			}
		})
	}
}

func TestParsePointRejects(t *testing.T) {
	inputs := []string{
		"",
		"52.5",
		"abc def",
		"52.5N 13.4N",
		"13.4E 52.5W",
		"-52.5N 13.4E",
		"95 13",
		"52 181",
		"52° 75' N 13 E",
		"52° 30' 75\" N 13 E",
		"52.5° 30' N 13 E",
		"52.5 13.4 7",
		"5e1° 13",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p, ok := ParsePoint(in)
			if ok {
				t.Errorf("ParsePoint(%q) = %v; want failure", in, p)
			}
			if p.IsValid() {
				t.Errorf("ParsePoint(%q) returned a valid point on failure", in)
			}
		})
	}
}

func TestParsePointInLanguage(t *testing.T) {
	p, ok := ParsePointIn("52,5; 13,4", language.German)
	if !ok || math.Abs(p.Lat(Degree)-52.5) > 1e-9 || math.Abs(p.Lon(Degree)-13.4) > 1e-9 {
		t.Errorf("ParsePointIn(German) = %v, %v", p, ok)
	}

	p, ok = ParsePointIn("52,5 N 13,4 E", language.German)
	if !ok || math.Abs(p.Lat(Degree)-52.5) > 1e-9 {
		t.Errorf("ParsePointIn(German, letters) = %v, %v", p, ok)
	}
}
