// Purpose: Persist per-repository color assignments with LRU eviction.
// Exports: ColorCache, OpenColorCache.
// Role: Storage layer feeding history to the color allocator.
// Invariants: each entry file holds one decimal palette index on a single
// line; the order file lists entry keys most-recent-first and never grows
// past historyCap entries; corrupt or missing files read as absent.
package glint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const orderFileName = "order"

// ColorCache stores one palette index per repository root under a cache
// directory ($XDG_CACHE_HOME/glint, falling back to ~/.cache/glint).
type ColorCache struct {
	dir string
}

// OpenColorCache resolves the cache directory, creating it if needed.
// GLINT_CACHE_DIR overrides the location (tests rely on this).
func OpenColorCache() (*ColorCache, error) {
	dir := os.Getenv("GLINT_CACHE_DIR")
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "glint")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &ColorCache{dir: dir}, nil
}

// Dir returns the cache directory path.
func (c *ColorCache) Dir() string {
	return c.dir
}

// EntryPath returns the file that holds (or would hold) root's index.
func (c *ColorCache) EntryPath(root string) string {
	return filepath.Join(c.dir, cacheKey(root))
}

// cacheKey derives a filename from a repository root path.
func cacheKey(root string) string {
	sum := sha256.Sum256([]byte(root))
	return hex.EncodeToString(sum[:8])
}

// Lookup returns the cached index for root, if one exists and is valid.
func (c *ColorCache) Lookup(root string) (int, bool) {
	idx, ok := c.readEntry(cacheKey(root))
	return idx, ok
}

// Assign returns root's palette index, allocating and persisting a new one
// if this root has never been seen. Known roots keep their index forever;
// assignment only ever consults the allocator once per root.
func (c *ColorCache) Assign(root string) (int, error) {
	key := cacheKey(root)
	order := c.readOrder()

	if idx, ok := c.readEntry(key); ok {
		// LRU touch: this root is now the most recent.
		if err := c.writeOrder(promote(order, key)); err != nil {
			return 0, err
		}
		return idx, nil
	}

	// History for the allocator: other roots' indices, most-recent-first.
	var history []int
	for _, k := range order {
		if k == key {
			continue
		}
		if idx, ok := c.readEntry(k); ok {
			history = append(history, idx)
		}
	}

	idx := PickColor(history)
	if err := os.WriteFile(filepath.Join(c.dir, key), []byte(strconv.Itoa(idx)+"\n"), 0644); err != nil {
		return 0, err
	}
	order = promote(order, key)
	for len(order) > historyCap {
		evicted := order[len(order)-1]
		order = order[:len(order)-1]
		_ = os.Remove(filepath.Join(c.dir, evicted))
	}
	if err := c.writeOrder(order); err != nil {
		return 0, err
	}
	return idx, nil
}

func (c *ColorCache) readEntry(key string) (int, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || idx < 0 || idx >= len(Palette) {
		return 0, false
	}
	return idx, true
}

// readOrder loads the recency list; unreadable files mean an empty list.
func (c *ColorCache) readOrder() []string {
	data, err := os.ReadFile(filepath.Join(c.dir, orderFileName))
	if err != nil {
		return nil
	}
	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			keys = append(keys, line)
		}
	}
	return keys
}

func (c *ColorCache) writeOrder(keys []string) error {
	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('\n')
	}
	return os.WriteFile(filepath.Join(c.dir, orderFileName), []byte(b.String()), 0644)
}

// promote moves key to the front of the recency list.
func promote(keys []string, key string) []string {
	out := []string{key}
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
