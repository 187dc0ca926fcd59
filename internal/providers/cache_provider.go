package providers

import (
	"github.com/coocood/freecache"
	"readtrack/internal/structures"
	"strconv"
	"strings"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CacheProvider keeps fetched chapter payloads in an off-heap freecache.
type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Chapter cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := max(int(conf.Cache.TTL.Seconds()), 1)

	logger.Infof(TypeApp, "Chapter cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// ChapterCacheKey builds a case-insensitive key so "João 3" and "joão 3"
// share one entry.
func ChapterCacheKey(translation, book string, chapter int) string {
	var b strings.Builder
	b.WriteString("chapter:")
	b.WriteString(strings.ToLower(translation))
	b.WriteByte(':')
	b.WriteString(strings.ToLower(strings.Join(strings.Fields(book), " ")))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(chapter))
	return b.String()
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set([]byte(key), value, c.ttl)
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
