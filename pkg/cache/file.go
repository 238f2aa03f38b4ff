package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/snappy"
)

// FileCache stores entries as snappy-compressed files under a directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// fileEntry wraps cached data with its expiry.
type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get implements Cache. Corrupt or expired entries are removed and
// reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	entry, ok := decodeEntry(raw)
	if !ok {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set implements Cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Write to a temp file first so readers never see a partial entry.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(snappy.Encode(nil, encoded)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete implements Cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Usage summarizes the entries on disk.
type Usage struct {
	Entries int
	Bytes   int64
}

// Usage totals the entry files in the cache's shard directories. A missing
// directory is an empty cache.
func (c *FileCache) Usage() (Usage, error) {
	var u Usage
	err := c.walkShards(func(path string, d fs.DirEntry) error {
		if filepath.Ext(path) != ".sz" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		u.Entries++
		u.Bytes += info.Size()
		return nil
	})
	return u, err
}

// Clear removes every entry and leftover temp file, prunes shards left
// empty, and returns how many entries were removed. Files the cache did not
// write are left alone.
func (c *FileCache) Clear() (int, error) {
	count := 0
	err := c.walkShards(func(path string, d fs.DirEntry) error {
		isEntry := filepath.Ext(path) == ".sz"
		if !isEntry && !strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if isEntry {
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	shards, _ := os.ReadDir(c.dir)
	for _, shard := range shards {
		if isShard(shard) {
			// Remove fails on shards that still hold foreign files.
			_ = os.Remove(filepath.Join(c.dir, shard.Name()))
		}
	}
	return count, nil
}

// walkShards calls fn for every regular file directly inside a shard
// directory. A missing cache directory yields no files.
func (c *FileCache) walkShards(fn func(path string, d fs.DirEntry) error) error {
	shards, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, shard := range shards {
		if !isShard(shard) {
			continue
		}
		dir := filepath.Join(c.dir, shard.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			if !f.Type().IsRegular() {
				continue
			}
			if err := fn(filepath.Join(dir, f.Name()), f); err != nil {
				return err
			}
		}
	}
	return nil
}

// isShard reports whether d is one of the two-hex-digit directories
// created by path.
func isShard(d fs.DirEntry) bool {
	name := d.Name()
	if !d.IsDir() || len(name) != 2 {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Close implements Cache.
func (c *FileCache) Close() error {
	return nil
}

// path shards entries into 256 subdirectories by key hash.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".sz")
}

func decodeEntry(raw []byte) (fileEntry, bool) {
	decoded, err := snappy.Decode(nil, raw)
	if err != nil {
		return fileEntry{}, false
	}
	var entry fileEntry
	if err := json.Unmarshal(decoded, &entry); err != nil {
		return fileEntry{}, false
	}
	return entry, true
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
