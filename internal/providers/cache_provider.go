package providers

import (
	"callguard/internal/structures"
	"github.com/coocood/freecache"
	"unsafe"
)

const minCacheSizeMB = 1

// CacheProviderInterface backs the duplicate call-event guard. Entries are
// short-lived markers keyed by call event id and never hold lookup results.
type CacheProviderInterface interface {
	// GetOrSet stores value when key is absent. It reports whether key was already present.
	GetOrSet(key string, value []byte) ([]byte, bool)
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Dedupe cache disabled")
		return &noopCache{}
	}

	sizeBytes := max(conf.Cache.Size, minCacheSizeMB) * 1024 * 1024
	ttl := max(conf.Cache.TTL, 1)

	logger.Infof(TypeApp, "Dedupe cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache, which copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) GetOrSet(key string, value []byte) ([]byte, bool) {
	prev, err := c.cache.GetOrSet(unsafeStringToBytes(key), value, c.ttl)
	if err != nil || prev == nil {
		return nil, false
	}
	return prev, true
}

type noopCache struct{}

func (n *noopCache) GetOrSet(_ string, _ []byte) ([]byte, bool) { return nil, false }
