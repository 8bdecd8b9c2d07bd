package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	small := []string{"--projection", "equirectangular", "--width", "300", "--height", "300", "--radius", "100"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "project center",
			args: append([]string{"project", "0", "0"}, small...),
			want: []string{"Screen: 150.00, 150.00", "Visible: true"},
		},
		{
			name: "project repeats",
			args: []string{"project", "0", "0", "--projection", "equirectangular", "--width", "1000", "--height", "300", "--radius", "100"},
			want: []string{"Repeats: 100.00, 500.00, 900.00"},
		},
		{
			name: "project behind the globe",
			args: []string{"project", "0", "180"},
			want: []string{"Visible: false", "Hidden: behind the globe"},
		},
		{
			name: "unproject",
			args: append([]string{"unproject", "150", "150"}, small...),
			want: []string{"Coordinate:", "0.00000°"},
		},
		{
			name: "box",
			args: []string{"box", "--projection", "mercator", "--width", "256", "--height", "256", "--radius", "64"},
			want: []string{"Map covers viewport: true"},
		},
		{
			name: "tiles",
			args: []string{"tiles", "--list", "--projection", "mercator", "--width", "256", "--height", "256", "--radius", "64"},
			want: []string{"Zoom: 0", "Tiles: 1", "0/0/0"},
		},
		{
			name: "utm",
			args: []string{"utm", "52.5", "13.4"},
			want: []string{"Zone: 33", "Band: U"},
		},
		{
			name: "format utm",
			args: []string{"format", "--notation", "utm", "52.5N", "13.4E"},
			want: []string{"33U"},
		},
		{
			name: "format german",
			args: []string{"format", "--lang", "de", "52,5", "13,4"},
			want: []string{"52,50000°N", "; "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad projection", []string{"project", "0", "0", "--projection", "gnomonic"}, "viewport.projection"},
		{"bad coordinate", []string{"project", "north"}, "cannot parse"},
		{"off the globe", []string{"unproject", "0", "0", "--width", "300", "--height", "300", "--radius", "100"}, "not on the map"},
		{"bad notation", []string{"format", "--notation", "mgrs", "0", "0"}, "unknown notation"},
		{"missing shapefile", []string{"shape", "nope.shp"}, "open shapefile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v; want mention of %q", err, tt.want)
			}
		})
	}
}

func TestShape(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lines.shp")
	w, err := shp.Create(file, shp.POLYLINE)
	if err != nil {
		t.Fatal(err)
	}
	w.Write(shp.NewPolyLine([][]shp.Point{{{X: 5, Y: 45}, {X: 15, Y: 55}}}))
	w.Write(shp.NewPolyLine([][]shp.Point{{{X: 140, Y: -30}, {X: 150, Y: -20}}}))
	w.Close()

	out, err := run(t, "shape", file,
		"--projection", "mercator", "--lon", "10", "--lat", "50",
		"--width", "800", "--height", "600", "--radius", "1000")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"Features: 2", "Visible: 1", "Polygons: 1", "Triangles: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
