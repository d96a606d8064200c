package memory

import (
	"time"

	"ai-assistant-be/pkg/assistant"

	gocache "github.com/patrickmn/go-cache"
)

// ClassificationCache memoizes classifier output per message. Classification
// runs at temperature zero, so identical messages always resolve identically.
type ClassificationCache struct {
	cache *gocache.Cache
}

func NewClassificationCache(ttl time.Duration) *ClassificationCache {
	return &ClassificationCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *ClassificationCache) Get(key string) (assistant.ClassifiedIntent, bool) {
	v, found := c.cache.Get(key)
	if !found {
		return assistant.ClassifiedIntent{}, false
	}
	ci, ok := v.(assistant.ClassifiedIntent)
	return ci, ok
}

func (c *ClassificationCache) Set(key string, value assistant.ClassifiedIntent) {
	c.cache.SetDefault(key, value)
}
