package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestCacheSetAndGet(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.Set("test_key", map[string]float64{"value": 123}))

	raw, ok := c.Get("test_key", time.Hour)
	require.True(t, ok)

	var decoded map[string]float64
	require.NoError(t, Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]float64{"value": 123}, decoded)
}

func TestCacheExpiry(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.Set("test_key", "test_value"))

	// Zero TTL means immediately expired.
	_, ok := c.Get("test_key", 0)
	assert.False(t, ok)

	// Advance the clock past a one-hour TTL.
	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, ok = c.Get("test_key", time.Hour)
	assert.False(t, ok)
}

func TestCacheStaleFallback(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.Set("test_key", 42.0))
	c.now = func() time.Time { return time.Now().Add(48 * time.Hour) }

	_, ok := c.Get("test_key", time.Hour)
	require.False(t, ok)

	raw, ok := c.GetStale("test_key")
	require.True(t, ok)

	var v float64
	require.NoError(t, Unmarshal(raw, &v))
	assert.Equal(t, 42.0, v)
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.Set("key1", "value1"))
	require.NoError(t, c.Set("key2", "value2"))

	require.NoError(t, c.Clear())

	_, ok := c.Get("key1", time.Hour)
	assert.False(t, ok)
	_, ok = c.Get("key2", time.Hour)
	assert.False(t, ok)
	_, ok = c.GetStale("key1")
	assert.False(t, ok)
}

func TestCachePersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()

	c1, err := New(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c1.Set("key", "persisted"))

	c2, err := New(dir, zerolog.Nop())
	require.NoError(t, err)

	raw, ok := c2.Get("key", time.Hour)
	require.True(t, ok)

	var v string
	require.NoError(t, Unmarshal(raw, &v))
	assert.Equal(t, "persisted", v)
}

func TestCacheCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cache.json"), []byte("{not json"), 0644))

	c, err := New(dir, zerolog.Nop())
	require.NoError(t, err)

	_, ok := c.GetStale("anything")
	assert.False(t, ok)

	// Writes still work after recovery.
	require.NoError(t, c.Set("key", 1.0))
	_, ok = c.Get("key", time.Hour)
	assert.True(t, ok)
}

func TestCacheMissingKey(t *testing.T) {
	c := newTestCache(t)

	_, ok := c.Get("absent", time.Hour)
	assert.False(t, ok)
	_, ok = c.GetStale("absent")
	assert.False(t, ok)
}
