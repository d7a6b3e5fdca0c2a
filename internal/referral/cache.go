package referral

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// cachedStats is the outcome of the last fetch for one user.
// Failed fetches are cached too so the panel shows placeholders until the next poll.
type cachedStats struct {
	Version   string
	Stats     domain.ReferralStats
	Available bool
	FetchedAt time.Time
}

// statsCache is an in-memory LRU of referral stats with time-based expiration
type statsCache struct {
	lru *expirable.LRU[int64, *cachedStats]
}

func newStatsCache(size int, ttl time.Duration) *statsCache {
	return &statsCache{
		lru: expirable.NewLRU[int64, *cachedStats](size, nil, ttl),
	}
}

// Get returns the cached outcome, dropping entries from an older schema
func (c *statsCache) Get(userID int64) (*cachedStats, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}
	return entry, true
}

func (c *statsCache) Set(userID int64, stats domain.ReferralStats, available bool, at time.Time) *cachedStats {
	entry := &cachedStats{
		Version:   CacheSchemaVersion,
		Stats:     stats,
		Available: available,
		FetchedAt: at,
	}
	c.lru.Add(userID, entry)
	return entry
}

func (c *statsCache) Clear() {
	c.lru.Purge()
}
