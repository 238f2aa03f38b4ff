package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
)

const full = `
[plot]
title = "Network"
width = 20
height = 15.5
axis = true
grid = true
circle_size = 30
components = true
canvas_width = 800
canvas_height = 640
seed = 42
backend = "echarts"

[cache]
enabled = false
dir = "/tmp/gd"
redis_url = "redis://localhost:6379/0"
prefix = "gd:"
ttl = "36h"

[metrics]
textfile = "/tmp/graphdraw.prom"

[log]
level = "warn"
format = "json"
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(full))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p := cfg.Plot
	if p.Title != "Network" || p.Width != 20 || p.Height != 15.5 {
		t.Errorf("plot = %+v", p)
	}
	if !p.Axis || !p.Grid || !p.Components {
		t.Errorf("plot flags = %+v", p)
	}
	if p.CircleSize != 30 || p.CanvasWidth != 800 || p.CanvasHeight != 640 || p.Seed != 42 || p.Backend != "echarts" {
		t.Errorf("plot = %+v", p)
	}

	c := cfg.Cache
	if c.IsEnabled() {
		t.Error("cache should be disabled")
	}
	if c.Dir != "/tmp/gd" || c.RedisURL != "redis://localhost:6379/0" || c.Prefix != "gd:" {
		t.Errorf("cache = %+v", c)
	}
	if c.TTL.Duration != 36*time.Hour {
		t.Errorf("ttl = %v", c.TTL)
	}
	if cfg.Metrics.Textfile != "/tmp/graphdraw.prom" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Cache.IsEnabled() {
		t.Error("cache should default to enabled")
	}
	if cfg.Plot != (Plot{}) {
		t.Errorf("plot = %+v, want zero", cfg.Plot)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"syntax", "[plot\n", "invalid TOML"},
		{"unknown key", "[plot]\ncolour = 1\n", "plot.colour"},
		{"width", "[plot]\nwidth = 2\n", "plot.width: must be greater than 2"},
		{"circle", "[plot]\ncircle_size = -1\n", "plot.circle_size"},
		{"canvas", "[plot]\ncanvas_width = 50000\n", "plot.canvas_width: must not exceed"},
		{"backend", "[plot]\nbackend = \"png\"\n", "plot.backend: must be one of"},
		{"redis", "[cache]\nredis_url = \"localhost\"\n", "cache.redis_url"},
		{"ttl", "[cache]\nttl = \"soon\"\n", "invalid TOML"},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n", "invalid TOML"},
		{"log level", "[log]\nlevel = \"trace\"\n", "log.level: must be one of"},
		{"log format", "[log]\nformat = \"xml\"\n", "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !gderrors.Is(err, gderrors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want INVALID_CONFIG", gderrors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphdraw.toml")
	if err := os.WriteFile(path, []byte("[plot]\ntitle = \"From file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Plot.Title != "From file" {
		t.Errorf("title = %q", cfg.Plot.Title)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !gderrors.Is(err, gderrors.ErrCodeFileNotFound) {
		t.Errorf("missing explicit file: %v", err)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Plot.Title != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "graphdraw", "config.toml"); path != want {
		t.Errorf("DefaultPath = %s, want %s", path, want)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[metrics]\ntextfile = \"m.prom\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Metrics.Textfile != "m.prom" {
		t.Errorf("textfile = %q", cfg.Metrics.Textfile)
	}
}

func TestTOMLKey(t *testing.T) {
	tests := map[string]string{
		"Config.Plot.CanvasWidth": "plot.canvas_width",
		"Config.Cache.RedisURL":   "cache.redis_url",
		"Config.Plot.Title":       "plot.title",
	}
	for in, want := range tests {
		if got := tomlKey(in); got != want {
			t.Errorf("tomlKey(%q) = %q, want %q", in, got, want)
		}
	}
}
