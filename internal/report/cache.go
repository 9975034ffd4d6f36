package report

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// DefaultCacheSize is the number of forests kept when no size is configured.
const DefaultCacheSize = 64

// Cache memoizes Build results per (data revision, query).
// Forests returned from the cache are shared and must be treated as read-only.
type Cache struct {
	builder *Builder
	forests *lru.Cache[string, Forest]
}

// NewCache wraps b with an LRU of the given size.
func NewCache(b *Builder, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	forests, err := lru.New[string, Forest](size)
	if err != nil {
		return nil, fmt.Errorf("creating forest cache: %w", err)
	}
	return &Cache{builder: b, forests: forests}, nil
}

// Build returns the cached forest for (revision, q), building it on a miss.
// Callers bump revision whenever items, departments or presets change.
func (c *Cache) Build(revision uint64, items []*model.LineItem, q Query) Forest {
	key := cacheKey(revision, q)
	if f, ok := c.forests.Get(key); ok {
		return f
	}
	f := c.builder.Build(items, q)
	c.forests.Add(key, f)
	return f
}

// Len returns the number of cached forests.
func (c *Cache) Len() int {
	return c.forests.Len()
}

// Purge drops every cached forest.
func (c *Cache) Purge() {
	c.forests.Purge()
}

func cacheKey(revision uint64, q Query) string {
	return fmt.Sprintf("%d|%q|%q|%q|%q|%t|%s",
		revision, q.Company, q.Year, q.Legend, q.HistoryYear, q.EditMode, q.Order.Fingerprint())
}
