// Package cache keeps metadata API responses on disk for a bounded time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/miru-cli/miru/filesystem"
)

// Cache stores one JSON document per key in dir.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New returns a cache rooted at dir whose entries expire after ttl.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl, now: time.Now}
}

// Key hashes the parts into a file-safe identifier.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Read decodes a fresh entry into target and reports whether one was found.
func (c *Cache) Read(key string, target any) bool {
	path := c.path(key)

	info, err := filesystem.API().Stat(path)
	if err != nil || c.now().Sub(info.ModTime()) > c.ttl {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores value under key.
func (c *Cache) Write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := filesystem.API().MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	return filesystem.WriteAtomic(c.path(key), data, 0o644)
}

// Prune removes expired entries and returns how many were deleted.
func (c *Cache) Prune() (removed int, err error) {
	err = filesystem.API().Walk(c.dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if c.now().Sub(info.ModTime()) > c.ttl {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})
	return
}
