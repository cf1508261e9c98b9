package style

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"resume-renderer/internal/model"
	"resume-renderer/internal/typography"
)

type cacheKey struct {
	theme uint64
	lang  model.Language
}

// Cache memoizes sheets by (theme, language). Cached sheets are never
// mutated, so concurrent renders may share them.
type Cache struct {
	lru *lru.Cache[cacheKey, *Sheet]
}

func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = 64
	}
	c, err := lru.New[cacheKey, *Sheet](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Fingerprint hashes the normalized theme.
func Fingerprint(t model.Theme) uint64 {
	b, _ := json.Marshal(t.Normalized())
	return xxhash.Sum64(b)
}

// Sheet returns the cached sheet for (theme, bundle), building it on a miss.
// A nil cache always builds.
func (c *Cache) Sheet(t model.Theme, b typography.Bundle) *Sheet {
	if c == nil {
		return Build(t, b)
	}
	k := cacheKey{theme: Fingerprint(t), lang: b.Lang}
	if s, ok := c.lru.Get(k); ok {
		return s
	}
	s := Build(t, b)
	c.lru.Add(k, s)
	return s
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
