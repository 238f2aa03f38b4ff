// Package cache stores rendered artifacts so that repeated draws of the same
// graph with the same seed and options skip rendering.
//
// # Backends
//
//   - [FileCache]: snappy-compressed entries under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// A [Keyer] derives keys from the content hash of the graph file and every
// option that affects the output. [ScopedKeyer] adds a prefix so several
// tools can share one Redis database.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long artifacts stay cached when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts lists every setting that changes rendered output.
type ArtifactKeyOpts struct {
	Backend      string  `json:"backend"`
	Title        string  `json:"title"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	ShowAxis     bool    `json:"axis"`
	ShowGrid     bool    `json:"grid"`
	CircleSize   float64 `json:"circle_size"`
	Components   bool    `json:"components"`
	CanvasWidth  int     `json:"canvas_width"`
	CanvasHeight int     `json:"canvas_height"`
	Seed         uint64  `json:"seed"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered page of the graph whose
	// source file hashes to graphHash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// artifactFormat is bumped whenever rendered output changes shape, so stale
// entries are never served.
const artifactFormat = 1

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", artifactFormat, graphHash, opts)
}
