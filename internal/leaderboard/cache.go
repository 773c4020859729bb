package leaderboard

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// CacheSchemaVersion invalidates cached pages when LeaderboardPage changes shape
const CacheSchemaVersion = "1.0"

type cachedPage struct {
	Version  string
	Page     *domain.LeaderboardPage
	CachedAt time.Time
}

// pageCache keeps recently served leaderboard pages. Recompute purges it, so
// the TTL only bounds staleness for writes made by other instances.
type pageCache struct {
	lru *expirable.LRU[string, *cachedPage]
}

func newPageCache(size int, ttl time.Duration) *pageCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &pageCache{lru: expirable.NewLRU[string, *cachedPage](size, nil, ttl)}
}

func pageKey(scope domain.Scope, page domain.Page) string {
	return fmt.Sprintf("%s|%d|%d", scope, page.Limit, page.Offset)
}

func (c *pageCache) Get(scope domain.Scope, page domain.Page) (*domain.LeaderboardPage, bool) {
	key := pageKey(scope, page)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Page, true
}

func (c *pageCache) Set(scope domain.Scope, page domain.Page, p *domain.LeaderboardPage) {
	c.lru.Add(pageKey(scope, page), &cachedPage{
		Version:  CacheSchemaVersion,
		Page:     p,
		CachedAt: time.Now(),
	})
}

func (c *pageCache) Clear() {
	c.lru.Purge()
}

func (c *pageCache) Len() int {
	return c.lru.Len()
}
