package geo

import (
	"math"
	"testing"
)

func TestPointUnits(t *testing.T) {
	p := NewPoint(13.4, 52.5, 34, Degree)
	if !p.IsValid() {
		t.Fatal("NewPoint returned an invalid point")
	}
	if math.Abs(p.Lon(Radian)-13.4*DegToRad) > 1e-12 || math.Abs(p.Lat(Degree)-52.5) > 1e-12 {
		t.Errorf("got (%v, %v); want (13.4°, 52.5°)", p.Lon(Degree), p.Lat(Degree))
	}
	if p.Altitude() != 34 {
		t.Errorf("Altitude() = %v; want 34", p.Altitude())
	}
	if (Point{}).IsValid() {
		t.Error("zero Point reports valid")
	}
}

func TestPointIsPole(t *testing.T) {
	north := NewPoint(1, math.Pi/2, 0, Radian)
	south := NewPoint(-2, -math.Pi/2, 0, Radian)
	near := NewPoint(0, math.Pi/2-1e-12, 0, Radian)

	tests := []struct {
		name string
		p    Point
		pole Pole
		want bool
	}{
		{"north any", north, AnyPole, true},
		{"north north", north, NorthPole, true},
		{"north south", north, SouthPole, false},
		{"south any", south, AnyPole, true},
		{"south south", south, SouthPole, true},
		{"almost north", near, AnyPole, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsPole(tt.pole); got != tt.want {
				t.Errorf("IsPole(%v) = %v; want %v", tt.pole, got, tt.want)
			}
		})
	}
}

func TestPointNormalized(t *testing.T) {
	p := NewPoint(0, 100, 0, Degree).Normalized()
	if math.Abs(p.Lat(Degree)-80) > 1e-9 || math.Abs(math.Abs(p.Lon(Degree))-180) > 1e-9 {
		t.Errorf("Normalized() = (%v, %v); want (180, 80)", p.Lon(Degree), p.Lat(Degree))
	}
	if (Point{}).Normalized().IsValid() {
		t.Error("normalizing the zero Point made it valid")
	}
}

func TestPointEqual(t *testing.T) {
	a := NewPoint(1, 2, 3, Radian)
	if !a.Equal(a) {
		t.Error("point not equal to itself")
	}
	if a.Equal(a.WithDetail(5)) {
		t.Error("points with different detail compare equal")
	}
	if a.Equal(a.WithAltitude(4)) {
		t.Error("points with different altitude compare equal")
	}
	if !(Point{}).Equal(Point{}) {
		t.Error("two zero points differ")
	}
	if a.Equal(Point{}) {
		t.Error("valid point equals the zero point")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same", NewPoint(0.3, 0.2, 0, Radian), NewPoint(0.3, 0.2, 0, Radian), 0},
		{"quarter equator", NewPoint(0, 0, 0, Radian), NewPoint(math.Pi/2, 0, 0, Radian), math.Pi / 2},
		{"across date line", NewPoint(math.Pi-0.1, 0, 0, Radian), NewPoint(-math.Pi+0.1, 0, 0, Radian), 0.2},
		{"pole to equator", NewPoint(0, math.Pi/2, 0, Radian), NewPoint(2, 0, 0, Radian), math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestS2RoundTrip(t *testing.T) {
	p := NewPoint(-2.5, 0.7, 12, Radian)
	q := PointFromS2(p.S2Point(), p.Altitude())
	if math.Abs(q.Lon(Radian)-p.Lon(Radian)) > 1e-12 || math.Abs(q.Lat(Radian)-p.Lat(Radian)) > 1e-12 {
		t.Errorf("round trip = (%v, %v); want (%v, %v)", q.Lon(Radian), q.Lat(Radian), p.Lon(Radian), p.Lat(Radian))
	}
}
