package geo

import (
	"math"
	"testing"
)

func TestUTMZone(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     int
	}{
		{"origin", 0, 0, 31},
		{"berlin", 13.4, 52.5, 33},
		{"new york", -74.006, 40.7128, 18},
		{"stavanger", 5.73, 58.97, 32},
		{"stavanger longitude at equator", 5.73, 0, 31},
		{"wrapped longitude", 13.4 + 360, 52.5, 33},
		{"west edge", -180, 0, 1},
		{"east edge", 180, 0, 60},
		{"just east of west edge", -179.9, 0, 1},
		{"norway widened", 5, 60, 32},
		{"norway south of exception", 5, 55, 31},
		{"svalbard 31", 8, 78, 31},
		{"svalbard 33", 15, 78, 33},
		{"svalbard 35", 25, 78, 35},
		{"svalbard 37", 40, 78, 37},
		{"north polar", 10, 85, 0},
		{"south polar", 10, -81, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTMZone(tt.lon, tt.lat); got != tt.want {
				t.Errorf("UTMZone(%v, %v) = %d; want %d", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestUTMLatitudeBand(t *testing.T) {
	tests := []struct {
		lon, lat float64
		want     string
	}{
		{0, 0, "N"},
		{13.4, 52.5, "U"},
		{5.73, 58.97, "V"},
		{151.2, -33.87, "H"},
		{-74, 40.71, "T"},
		{0, -80, "C"},
		{0, 84, "X"},
		{10, 85, "Z"},
		{-10, 85, "Y"},
		{10, -85, "B"},
		{-10, -85, "A"},
	}

	for _, tt := range tests {
		if got := UTMLatitudeBand(tt.lon, tt.lat); got != tt.want {
			t.Errorf("UTMLatitudeBand(%v, %v) = %q; want %q", tt.lon, tt.lat, got, tt.want)
		}
	}
}

func TestUTMEastingNorthing(t *testing.T) {
	tests := []struct {
		name              string
		lon, lat          float64
		easting, northing float64
	}{
		{"origin", 0, 0, 166021.443, 0},
		{"stavanger", 5.73, 58.97, 312015.378, 6541310.126},
		{"berlin", 13.4, 52.5, 391390.73, 5817855.24},
		{"new york", -74.006, 40.7128, 583959.372, 4507350.998},
		{"sydney", 151.2093, -33.8688, 334368.634, 6250948.345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := UTMEasting(tt.lon, tt.lat)
			n := UTMNorthing(tt.lon, tt.lat)
			if math.Abs(e-tt.easting) > 0.01 || math.Abs(n-tt.northing) > 0.01 {
				t.Errorf("UTM(%v, %v) = (%.3f, %.3f); want (%.3f, %.3f)",
					tt.lon, tt.lat, e, n, tt.easting, tt.northing)
			}
		})
	}

	if e, n := UTMEasting(0, 88), UTMNorthing(0, 88); e != 0 || n != 0 {
		t.Errorf("polar UTM = (%v, %v); want zeros", e, n)
	}
}
