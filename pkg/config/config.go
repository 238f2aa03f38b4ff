// Package config loads the optional graphdraw configuration file.
//
// The file is TOML with four tables. Every key is optional; command-line
// flags given explicitly take precedence over values read here.
//
//	[plot]
//	title = "Network"
//	width = 20
//	height = 20
//	axis = true
//	grid = true
//	circle_size = 30
//	components = true
//	canvas_width = 800
//	canvas_height = 800
//	seed = 42
//	backend = "echarts"
//
//	[cache]
//	enabled = true
//	dir = "/var/cache/graphdraw"
//	redis_url = "redis://localhost:6379/0"
//	prefix = "graphdraw:"
//	ttl = "24h"
//
//	[metrics]
//	textfile = "/var/lib/node_exporter/graphdraw.prom"
//
//	[log]
//	level = "debug"
//	format = "logfmt"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
)

const (
	appName  = "graphdraw"
	fileName = "config.toml"
)

// Config is the decoded configuration file.
type Config struct {
	Plot    Plot    `toml:"plot"`
	Cache   Cache   `toml:"cache"`
	Metrics Metrics `toml:"metrics"`
	Log     Log     `toml:"log"`
}

// Plot holds defaults for the draw command. Zero values mean "not set".
type Plot struct {
	Title        string  `toml:"title" validate:"max=256"`
	Width        float64 `toml:"width" validate:"omitempty,gt=2"`
	Height       float64 `toml:"height" validate:"omitempty,gt=2"`
	Axis         bool    `toml:"axis"`
	Grid         bool    `toml:"grid"`
	CircleSize   float64 `toml:"circle_size" validate:"omitempty,gt=0"`
	Components   bool    `toml:"components"`
	CanvasWidth  int     `toml:"canvas_width" validate:"omitempty,gt=0,lte=20000"`
	CanvasHeight int     `toml:"canvas_height" validate:"omitempty,gt=0,lte=20000"`
	Seed         uint64  `toml:"seed"`
	Backend      string  `toml:"backend" validate:"omitempty,oneof=html echarts dot"`
}

// Cache configures the artifact cache. A RedisURL selects the shared Redis
// cache; otherwise entries are stored under Dir.
type Cache struct {
	Enabled  *bool    `toml:"enabled"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url" validate:"omitempty,url"`
	Prefix   string   `toml:"prefix" validate:"max=64"`
	TTL      Duration `toml:"ttl"`
}

// IsEnabled reports whether caching is on. Caching is on unless disabled
// explicitly.
func (c Cache) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Metrics configures metric export.
type Metrics struct {
	Textfile string `toml:"textfile"`
}

// Log configures the CLI logger. --verbose overrides Level.
type Log struct {
	Level  string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `toml:"format" validate:"omitempty,oneof=text json logfmt"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

var validate = validator.New()

// DefaultPath returns $XDG_CONFIG_HOME/graphdraw/config.toml, falling back
// to the platform's user configuration directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, fileName), nil
}

// Load reads the configuration at path. With an empty path the default
// location is tried and a missing file yields an empty Config. An explicit
// path that does not exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, gderrors.Wrap(gderrors.ErrCodeFileNotFound, err, "config file not found: %s", path)
			}
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML configuration data. Unknown keys are
// rejected so that typos do not pass silently.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, gderrors.Wrap(gderrors.ErrCodeInvalidConfig, err, "invalid TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, gderrors.New(gderrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failing field by its TOML key.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return gderrors.Wrap(gderrors.ErrCodeInvalidConfig, err, "invalid config")
	}

	e := verrs[0]
	field := tomlKey(e.StructNamespace())
	switch e.Tag() {
	case "gt":
		return gderrors.New(gderrors.ErrCodeInvalidConfig, "%s: must be greater than %s", field, e.Param())
	case "lte", "max":
		return gderrors.New(gderrors.ErrCodeInvalidConfig, "%s: must not exceed %s", field, e.Param())
	case "oneof":
		return gderrors.New(gderrors.ErrCodeInvalidConfig, "%s: must be one of [%s]", field, e.Param())
	case "url":
		return gderrors.New(gderrors.ErrCodeInvalidConfig, "%s: must be a URL", field)
	default:
		return gderrors.New(gderrors.ErrCodeInvalidConfig, "%s: validation failed (%s)", field, e.Tag())
	}
}

// tomlKey turns "Config.Plot.CanvasWidth" into "plot.canvas_width".
func tomlKey(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	switch s {
	case "RedisURL":
		return "redis_url"
	case "TTL":
		return "ttl"
	}
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
