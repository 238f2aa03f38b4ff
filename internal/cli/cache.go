package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphdraw/pkg/cache"
)

// cacheCommand groups the cache maintenance subcommands. They act on the
// local file cache; Redis entries expire on their own TTL.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered page cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show where pages are cached and how much space they use",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.runCacheInfo() },
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached pages",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.runCacheClear() },
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := c.cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

// openFileCache returns the file cache, or nil when its directory does not
// exist yet.
func (c *CLI) openFileCache() (*cache.FileCache, string, error) {
	dir, err := c.cacheDir()
	if err != nil {
		return nil, "", fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, dir, nil
	}
	fc, err := cache.NewFileCache(dir)
	return fc, dir, err
}

func (c *CLI) runCacheInfo() error {
	fc, dir, err := c.openFileCache()
	if err != nil {
		return err
	}
	var usage cache.Usage
	if fc != nil {
		if usage, err = fc.Usage(); err != nil {
			return fmt.Errorf("scan cache: %w", err)
		}
	}

	printInfo("%s, %s", plural(usage.Entries, "cached page", "cached pages"), humanize.Bytes(uint64(usage.Bytes)))
	printDetail("Directory: %s", dir)
	switch cfg := c.Config.Cache; {
	case !cfg.IsEnabled():
		printDetail("Caching is disabled in the config file")
	case cfg.RedisURL != "":
		printDetail("Draws use Redis at %s", cfg.RedisURL)
	}
	return nil
}

func (c *CLI) runCacheClear() error {
	fc, dir, err := c.openFileCache()
	if err != nil {
		return err
	}
	if fc == nil {
		printInfo("Cache is empty")
		return nil
	}

	n, err := fc.Clear()
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	printSuccess("Cleared %s", plural(n, "cached page", "cached pages"))
	printDetail("Directory: %s", dir)
	if c.Config.Cache.RedisURL != "" {
		printDetail("Redis entries expire on their own TTL")
	}
	return nil
}
