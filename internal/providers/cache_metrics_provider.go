package providers

import "callguard/internal/structures"

// MetricsCacheProvider wraps a CacheProviderInterface and counts dedupe
// hits and misses on every guard check.
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *MetricsCacheProvider) GetOrSet(key string, value []byte) ([]byte, bool) {
	val, ok := c.inner.GetOrSet(key, value)
	c.count(ok)
	return val, ok
}

func (c *MetricsCacheProvider) count(hit bool) {
	if hit {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
}

// NewInstrumentedCacheProvider creates a cache provider wrapped with metrics instrumentation.
// When cache is disabled, returns the plain noopCache without metrics wrapping
// to avoid counting phantom cache misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
	}
}
