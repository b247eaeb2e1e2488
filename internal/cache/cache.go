package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const cacheFileName = "cache.json"

// entry is a single cached value with its fetch time (unix seconds).
type entry struct {
	Value     json.RawMessage `json:"value"`
	Timestamp float64         `json:"timestamp"`
}

// Cache is a JSON file backed key-value store with per-entry timestamps.
// The file is read fully into memory at construction and rewritten in full
// on every write. There is no eviction beyond overwrite-on-refresh.
type Cache struct {
	path    string
	entries map[string]entry
	log     zerolog.Logger
	now     func() time.Time
}

// New opens (or creates) the cache file under dir. A missing or corrupt
// file degrades to an empty cache rather than failing.
func New(dir string, log zerolog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	c := &Cache{
		path:    filepath.Join(dir, cacheFileName),
		entries: make(map[string]entry),
		log:     log.With().Str("component", "cache").Logger(),
		now:     time.Now,
	}
	c.load()
	return c, nil
}

func (c *Cache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn().Err(err).Str("path", c.path).Msg("Failed to read cache file, starting empty")
		}
		return
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.log.Warn().Err(err).Str("path", c.path).Msg("Corrupt cache file, starting empty")
		c.entries = make(map[string]entry)
	}
}

func (c *Cache) save() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Get returns the cached value for key if its age is within ttl. A ttl of
// zero means every entry is treated as expired.
func (c *Cache) Get(key string, ttl time.Duration) (json.RawMessage, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	age := c.now().Sub(time.Unix(0, int64(e.Timestamp*float64(time.Second))))
	if age >= ttl {
		return nil, false
	}
	return e.Value, true
}

// GetStale returns the cached value for key regardless of age. Used as the
// fallback when a provider fetch fails.
func (c *Cache) GetStale(key string) (json.RawMessage, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.Value, true
}

// Set stores value under key with the current timestamp and rewrites the
// cache file.
func (c *Cache) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	c.entries[key] = entry{
		Value:     data,
		Timestamp: float64(c.now().UnixNano()) / float64(time.Second),
	}
	return c.save()
}

// Clear removes every entry and rewrites the cache file.
func (c *Cache) Clear() error {
	c.entries = make(map[string]entry)
	return c.save()
}

// Unmarshal decodes a cached raw value into out.
func Unmarshal(raw json.RawMessage, out any) error {
	return json.Unmarshal(raw, out)
}
