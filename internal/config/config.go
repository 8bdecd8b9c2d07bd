package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/internal/logging"
	"github.com/KDE/marble-sub013/proj"
	"github.com/KDE/marble-sub013/tile"
	"github.com/KDE/marble-sub013/viewport"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Viewport ViewportConfig `mapstructure:"viewport"`
	Tiles    TilesConfig    `mapstructure:"tiles"`
	Log      LogConfig      `mapstructure:"log"`
}

// ViewportConfig is the initial view. Angles are degrees.
type ViewportConfig struct {
	Projection string  `mapstructure:"projection"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Radius     float64 `mapstructure:"radius"`
	CenterLon  float64 `mapstructure:"center_lon"`
	CenterLat  float64 `mapstructure:"center_lat"`
}

// TilesConfig describes the tile grid. Zero level-zero dimensions select
// the projection's default layout.
type TilesConfig struct {
	Size             int  `mapstructure:"size"`
	LevelZeroColumns int  `mapstructure:"level_zero_columns"`
	LevelZeroRows    int  `mapstructure:"level_zero_rows"`
	MaxZoom          int  `mapstructure:"max_zoom"`
	ShowGrid         bool `mapstructure:"show_grid"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("viewport.projection", "spherical")
	v.SetDefault("viewport.width", 1024)
	v.SetDefault("viewport.height", 768)
	v.SetDefault("viewport.radius", float64(viewport.DefaultRadius))
	v.SetDefault("viewport.center_lon", 0.0)
	v.SetDefault("viewport.center_lat", 0.0)
	v.SetDefault("tiles.size", tile.TileSize)
	v.SetDefault("tiles.level_zero_columns", 0)
	v.SetDefault("tiles.level_zero_rows", 0)
	v.SetDefault("tiles.max_zoom", 19)
	v.SetDefault("tiles.show_grid", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// New returns a viper instance with defaults, the config file and the
// environment applied. An empty file searches for geoview.yaml in the
// working directory and ./configs; a missing file is not an error then.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("geoview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: GEOVIEW_VIEWPORT_RADIUS → viewport.radius
	v.SetEnvPrefix("GEOVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads configuration from file and environment variables.
func Load(file string) (*Config, error) {
	v, err := New(file)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// Validate checks that the configuration is complete and sane.
func (c *Config) Validate() error {
	var errs []string

	if _, err := proj.ParseKind(c.Viewport.Projection); err != nil {
		errs = append(errs, fmt.Sprintf("viewport.projection: %v", err))
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Sprintf("viewport size must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if !(c.Viewport.Radius > 0) || math.IsInf(c.Viewport.Radius, 0) {
		errs = append(errs, fmt.Sprintf("viewport.radius must be positive, got %v", c.Viewport.Radius))
	}
	if math.Abs(c.Viewport.CenterLon) > 180 {
		errs = append(errs, fmt.Sprintf("viewport.center_lon must be within ±180, got %v", c.Viewport.CenterLon))
	}
	if math.Abs(c.Viewport.CenterLat) > 90 {
		errs = append(errs, fmt.Sprintf("viewport.center_lat must be within ±90, got %v", c.Viewport.CenterLat))
	}
	if c.Tiles.Size <= 0 {
		errs = append(errs, fmt.Sprintf("tiles.size must be positive, got %d", c.Tiles.Size))
	}
	if c.Tiles.LevelZeroColumns < 0 || c.Tiles.LevelZeroRows < 0 {
		errs = append(errs, "tiles level zero dimensions must not be negative")
	}
	if c.Tiles.MaxZoom < 0 || c.Tiles.MaxZoom > tile.MaxZoomLevel {
		errs = append(errs, fmt.Sprintf("tiles.max_zoom must be 0-%d, got %d", tile.MaxZoomLevel, c.Tiles.MaxZoom))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Projection returns the configured projection. It must only be called on
// a validated configuration.
func (c *Config) Projection() proj.Kind {
	k, _ := proj.ParseKind(c.Viewport.Projection)
	return k
}

// Scheme returns the tile scheme for the configured projection.
func (c *Config) Scheme() tile.Scheme {
	s := tile.DefaultScheme(c.Projection())
	if c.Tiles.LevelZeroColumns > 0 {
		s.LevelZeroColumns = c.Tiles.LevelZeroColumns
	}
	if c.Tiles.LevelZeroRows > 0 {
		s.LevelZeroRows = c.Tiles.LevelZeroRows
	}
	return s
}

// NewViewport returns a viewport in the configured initial state.
func (c *Config) NewViewport() *viewport.Viewport {
	vp := viewport.New(c.Projection(), c.Viewport.Width, c.Viewport.Height)
	vp.SetRadius(c.Viewport.Radius)
	vp.CenterOn(c.Viewport.CenterLon*geo.DegToRad, c.Viewport.CenterLat*geo.DegToRad)
	return vp
}
