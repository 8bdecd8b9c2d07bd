package proj

import (
	"math"
	"testing"

	"github.com/KDE/marble-sub013/geo"
	"github.com/golang/geo/r3"
)

func TestSphericalScreenCoordinates(t *testing.T) {
	tests := []struct {
		name                 string
		centerLon, centerLat float64
		lon, lat             float64
		wantX, wantY         float64
		wantHidden           bool
	}{
		{"center", 0, 0, 0, 0, 150, 150, false},
		{"east limb", 0, 0, 90, 0, 250, 150, false},
		{"north pole", 0, 0, 0, 90, 150, 50, false},
		{"far side", 0, 0, 180, 0, 150, 150, true},
		{"rotated center", 90, 0, 90, 0, 150, 150, false},
		{"rotated east", 90, 0, 135, 0, 150 + 100*math.Sqrt2/2, 150, false},
		{"rotated west", 90, 0, 45, 0, 150 - 100*math.Sqrt2/2, 150, false},
		{"tilted center", -30, 60, -30, 60, 150, 150, false},
		{"tilted pole", 0, 60, 0, 90, 150, 150 - 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(tt.centerLon*geo.DegToRad, tt.centerLat*geo.DegToRad, 100, 300, 300)
			pr := Spherical.ScreenCoordinates(v, tt.lon*geo.DegToRad, tt.lat*geo.DegToRad)
			if math.Abs(pr.Point.X-tt.wantX) > 1e-9 || math.Abs(pr.Point.Y-tt.wantY) > 1e-9 {
				t.Errorf("got (%f, %f); want (%f, %f)", pr.Point.X, pr.Point.Y, tt.wantX, tt.wantY)
			}
			if pr.Hidden != tt.wantHidden {
				t.Errorf("Hidden = %v; want %v", pr.Hidden, tt.wantHidden)
			}
			if pr.Visible == tt.wantHidden {
				t.Errorf("Visible = %v with Hidden = %v", pr.Visible, pr.Hidden)
			}
		})
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	v := NewView(30*geo.DegToRad, 40*geo.DegToRad, 200, 600, 600)

	for _, p := range [][2]float64{{30, 40}, {45, 50}, {10, 20}, {30, 89}, {80, 40}} {
		pr := Spherical.ScreenCoordinates(v, p[0]*geo.DegToRad, p[1]*geo.DegToRad)
		if pr.Hidden {
			t.Fatalf("%v unexpectedly hidden", p)
		}
		lon, lat, ok := Spherical.GeoCoordinates(v, pr.Point.X, pr.Point.Y)
		if !ok {
			t.Fatalf("GeoCoordinates(%v) failed", pr.Point)
		}
		if math.Abs(lon*geo.RadToDeg-p[0]) > 1e-7 || math.Abs(lat*geo.RadToDeg-p[1]) > 1e-7 {
			t.Errorf("round trip %v = (%f, %f)", p, lon*geo.RadToDeg, lat*geo.RadToDeg)
		}
	}
}

func TestSphericalGeoCoordinatesOutsideDisk(t *testing.T) {
	v := NewView(0, 0, 100, 300, 300)
	if _, _, ok := Spherical.GeoCoordinates(v, 251, 150); ok {
		t.Error("position right of the disk should fail")
	}
	if _, _, ok := Spherical.GeoCoordinates(v, 150+71, 150+71); ok {
		t.Error("position beyond the disk diagonal should fail")
	}
	if _, _, ok := Spherical.GeoCoordinates(v, 250, 150); !ok {
		t.Error("position on the limb should succeed")
	}
}

func TestSphericalZeroOrientation(t *testing.T) {
	v := View{CenterLon: 90 * geo.DegToRad, Radius: 100, Width: 300, Height: 300}
	pr := Spherical.ScreenCoordinates(v, 90*geo.DegToRad, 0)
	if math.Abs(pr.Point.X-150) > 1e-9 || math.Abs(pr.Point.Y-150) > 1e-9 {
		t.Errorf("zero orientation should follow the center, got %v", pr.Point)
	}
}

func TestViewVector(t *testing.T) {
	v := NewView(0, 0, 100, 300, 300)
	p := Spherical.ViewVector(v, 90*geo.DegToRad, 0)
	if !near(p, r3.Vector{X: 1}) {
		t.Errorf("ViewVector = %v; want +x", p)
	}
	s := Spherical.ScreenFromViewVector(v, p)
	if math.Abs(s.X-250) > 1e-9 || math.Abs(s.Y-150) > 1e-9 {
		t.Errorf("ScreenFromViewVector = %v; want (250, 150)", s)
	}
}

func TestQuaternion(t *testing.T) {
	z := r3.Vector{Z: 1}
	q := FromAxisAngle(z, math.Pi/2)
	if got := q.Rotate(r3.Vector{X: 1}); !near(got, r3.Vector{Y: 1}) {
		t.Errorf("Rotate = %v; want +y", got)
	}
	if got := q.Conjugate().Rotate(r3.Vector{Y: 1}); !near(got, r3.Vector{X: 1}) {
		t.Errorf("Conjugate().Rotate = %v; want +x", got)
	}

	// Mul applies the right operand first.
	qx := FromAxisAngle(r3.Vector{X: 1}, math.Pi/2)
	got := q.Mul(qx).Rotate(r3.Vector{Y: 1})
	if !near(got, r3.Vector{Z: 1}) {
		t.Errorf("q·qx rotates +y to %v; want +z", got)
	}

	if n := IdentityQuaternion().Mul(q).Norm(); math.Abs(n-1) > 1e-12 {
		t.Errorf("Norm = %v; want 1", n)
	}
	if got := (Quaternion{}).Normalize(); got != IdentityQuaternion() {
		t.Errorf("Normalize(zero) = %v; want identity", got)
	}
}

func near(a, b r3.Vector) bool {
	return a.Sub(b).Norm() < 1e-12
}
