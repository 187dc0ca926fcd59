package providers

import "readtrack/internal/structures"

// countingCache reports chapter cache lookups as hit or miss counters.
type countingCache struct {
	CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *countingCache) Get(key string) ([]byte, bool) {
	payload, found := c.CacheProviderInterface.Get(key)
	if !found {
		c.metrics.IncCacheMisses()
		return nil, false
	}
	c.metrics.IncCacheHits()
	return payload, true
}

// NewInstrumentedCacheProvider is the chapter cache the Bible client uses.
// A disabled cache is returned bare so it does not report a miss per search.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &countingCache{CacheProviderInterface: inner, metrics: metrics}
}
