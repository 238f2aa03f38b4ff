// Package cli implements the graphdraw command-line interface.
//
// # Commands
//
// The main commands are:
//   - draw: Plot a graph document and open it in the browser
//   - inspect: Browse vertex positions and colors in the terminal
//   - cache: Manage the rendered page cache
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Settings are read from an optional TOML file (--config, or
// $XDG_CONFIG_HOME/graphdraw/config.toml). Flags given on the command line
// take precedence over the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The [log]
// config table sets the default level and the output format (text, json or
// logfmt).
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphdraw/pkg/cache"
	"github.com/matzehuels/graphdraw/pkg/config"
	"github.com/matzehuels/graphdraw/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphdraw"

	// cacheKeyType labels artifact cache events in metrics.
	cacheKeyType = "artifact"
)

// LogInfo is the default log level.
const LogInfo = log.InfoLevel

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: &config.Config{},
	}
}

// loadConfig reads the configuration file named by --config, or the
// default one if it exists, and applies its [log] table.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return configureLogger(c.Logger, cfg.Log, c.verbose)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if prefix := c.Config.Cache.Prefix; prefix != "" {
		keyer = cache.NewScopedKeyer(nil, prefix)
	}
	return pipeline.NewRunner(cache.NewInstrumented(store, cacheKeyType), keyer, c.Logger), nil
}

// newCache selects the cache backend: none when disabled, Redis when a URL
// is configured, otherwise the local file cache. An unreachable Redis
// server falls back to the file cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || !cfg.IsEnabled() {
		return cache.NewNullCache(), nil
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err == nil {
			c.Logger.Debug("using redis cache")
			return rc, nil
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "error", err)
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config != nil && c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/graphdraw/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
