package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KDE/marble-sub013/proj"
)

func valid() Config {
	return Config{
		Viewport: ViewportConfig{Projection: "mercator", Width: 800, Height: 600, Radius: 1000, CenterLon: 13.4, CenterLat: 52.5},
		Tiles:    TilesConfig{Size: 256, MaxZoom: 19},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Projection() != proj.Spherical {
		t.Errorf("projection = %v; want spherical", cfg.Projection())
	}
	if cfg.Viewport.Width != 1024 || cfg.Viewport.Height != 768 || cfg.Viewport.Radius != 2000 {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	if cfg.Tiles.Size != 256 || cfg.Log.Level != "info" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "view.yaml")
	yaml := `viewport:
  projection: equirectangular
  radius: 500
  center_lon: 10
tiles:
  level_zero_columns: 4
  level_zero_rows: 2
`
	if err := os.WriteFile(file, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEOVIEW_VIEWPORT_CENTER_LAT", "45")
	t.Setenv("GEOVIEW_LOG_FORMAT", "json")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Projection() != proj.Equirectangular || cfg.Viewport.Radius != 500 {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	if cfg.Viewport.CenterLon != 10 || cfg.Viewport.CenterLat != 45 {
		t.Errorf("center = %v, %v; want 10, 45", cfg.Viewport.CenterLon, cfg.Viewport.CenterLat)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q; want json from the environment", cfg.Log.Format)
	}

	s := cfg.Scheme()
	if s.LevelZeroColumns != 4 || s.LevelZeroRows != 2 || s.Projection != proj.Equirectangular {
		t.Errorf("Scheme = %+v", s)
	}

	vp := cfg.NewViewport()
	if vp.Radius() != 500 || math.Abs(vp.CenterLat()-math.Pi/4) > 1e-12 {
		t.Errorf("viewport radius %v center lat %v", vp.Radius(), vp.CenterLat())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing file must fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"valid", func(*Config) {}, ""},
		{"projection", func(c *Config) { c.Viewport.Projection = "gnomonic" }, "viewport.projection"},
		{"size", func(c *Config) { c.Viewport.Width = 0 }, "viewport size"},
		{"radius", func(c *Config) { c.Viewport.Radius = -1 }, "viewport.radius"},
		{"nan radius", func(c *Config) { c.Viewport.Radius = math.NaN() }, "viewport.radius"},
		{"latitude", func(c *Config) { c.Viewport.CenterLat = 91 }, "center_lat"},
		{"longitude", func(c *Config) { c.Viewport.CenterLon = -181 }, "center_lon"},
		{"tile size", func(c *Config) { c.Tiles.Size = 0 }, "tiles.size"},
		{"max zoom", func(c *Config) { c.Tiles.MaxZoom = 31 }, "tiles.max_zoom"},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate = %v; want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := valid()
	cfg.Viewport.Radius = 0
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	if err == nil || strings.Count(err.Error(), "\n  - ") != 2 {
		t.Errorf("Validate = %v; want two problems", err)
	}
}
