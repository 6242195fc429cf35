package providers

import (
	"callguard/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cacheConfig(enabled bool, size, ttl int) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
			TTL:     ttl,
		},
	}
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 10, 5), &testLogger{})
	_, seen := c.GetOrSet("any", []byte("1"))
	assert.False(t, seen)
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0, 5), &testLogger{})
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_EnabledReturnsCacheProvider(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5), &testLogger{})
	assert.IsType(t, &CacheProvider{}, c)
}

func TestCacheProvider_GetOrSetKeysAreIndependent(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5), &testLogger{})

	_, seen := c.GetOrSet("call-1", []byte("1"))
	assert.False(t, seen)
	_, seen = c.GetOrSet("call-2", []byte("1"))
	assert.False(t, seen)
}

func TestCacheProvider_GetOrSet(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5), &testLogger{})

	_, seen := c.GetOrSet("call-1", []byte("1"))
	assert.False(t, seen, "first delivery must not be reported as seen")

	prev, seen := c.GetOrSet("call-1", []byte("2"))
	assert.True(t, seen)
	assert.Equal(t, []byte("1"), prev)
}

func TestCacheProvider_TTLFloor(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 0), &testLogger{}).(*CacheProvider)
	assert.Equal(t, 1, c.ttl)
}

func TestNoopCache_GetOrSetNeverSeen(t *testing.T) {
	c := &noopCache{}
	_, seen := c.GetOrSet("call-1", []byte("1"))
	assert.False(t, seen)
	_, seen = c.GetOrSet("call-1", []byte("1"))
	assert.False(t, seen)
}
