package referral

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

func TestStatsCache(t *testing.T) {
	c := newStatsCache(2, time.Minute)
	now := time.Now()

	c.Set(1, domain.ReferralStats{Count: 1}, true, now)
	entry, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, entry.Stats.Count)

	// schema mismatch invalidates
	entry.Version = "0.9"
	_, ok = c.Get(1)
	assert.False(t, ok)

	c.Set(2, domain.ReferralStats{}, false, now)
	c.Clear()
	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestStatsCache_Expires(t *testing.T) {
	c := newStatsCache(2, 20*time.Millisecond)
	c.Set(1, domain.ReferralStats{Count: 1}, true, time.Now())

	assert.Eventually(t, func() bool {
		_, ok := c.Get(1)
		return !ok
	}, time.Second, 10*time.Millisecond)
}
