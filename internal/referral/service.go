package referral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/logger"
)

// StatsFetcher fetches referral stats for a user
type StatsFetcher interface {
	FetchStats(ctx context.Context, userID int64) (domain.ReferralStats, error)
}

// Panel is what the referral section of the UI shows
type Panel struct {
	Enabled        bool      `json:"enabled"`
	Link           string    `json:"link,omitempty"`
	DisabledReason string    `json:"disabled_reason,omitempty"`
	UserID         int64     `json:"user_id,omitempty"`
	Count          string    `json:"count"`
	Bonus          string    `json:"bonus"`
	Available      bool      `json:"available"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// RefreshResult is the outcome of one poll
type RefreshResult struct {
	UserID    int64
	Stats     domain.ReferralStats
	Available bool
	FetchedAt time.Time
}

// Service defines the interface for referral operations
type Service interface {
	// Panel returns the panel, fetching stats once if nothing is cached
	Panel(ctx context.Context) Panel
	// Refresh fetches fresh stats. It returns domain.ErrMissingIdentity when
	// there is no user and wraps domain.ErrRemoteServiceUnavailable on fetch failure.
	Refresh(ctx context.Context) (RefreshResult, error)
}

type service struct {
	identity    IdentityProvider
	fetcher     StatsFetcher
	botUsername string
	cache       *statsCache
	now         func() time.Time
}

// NewService creates a new referral service. cacheTTL should be at least the
// poll interval so the panel always has the latest poll result.
func NewService(identity IdentityProvider, fetcher StatsFetcher, botUsername string, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		identity:    identity,
		fetcher:     fetcher,
		botUsername: botUsername,
		cache:       newStatsCache(DefaultCacheSize, cacheTTL),
		now:         time.Now,
	}
}

func (s *service) Panel(ctx context.Context) Panel {
	id, err := s.identity.Identity(ctx)
	if err != nil {
		return disabledPanel(err)
	}

	panel := Panel{
		Enabled: true,
		Link:    BuildLink(s.botUsername, id.UserID),
		UserID:  id.UserID,
	}

	entry, ok := s.cache.Get(id.UserID)
	if !ok {
		entry = s.fetch(ctx, id.UserID)
	}
	applyStats(&panel, entry)
	return panel
}

func (s *service) Refresh(ctx context.Context) (RefreshResult, error) {
	id, err := s.identity.Identity(ctx)
	if err != nil {
		return RefreshResult{}, err
	}

	entry := s.fetch(ctx, id.UserID)
	res := RefreshResult{
		UserID:    id.UserID,
		Stats:     entry.Stats,
		Available: entry.Available,
		FetchedAt: entry.FetchedAt,
	}
	if !entry.Available {
		return res, fmt.Errorf("%w: user %d", domain.ErrRemoteServiceUnavailable, id.UserID)
	}
	return res, nil
}

func (s *service) fetch(ctx context.Context, userID int64) *cachedStats {
	stats, err := s.fetcher.FetchStats(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgStatsUnavailable, "user_id", userID, "error", err)
		return s.cache.Set(userID, domain.ReferralStats{}, false, s.now())
	}
	return s.cache.Set(userID, stats, true, s.now())
}

func disabledPanel(err error) Panel {
	reason := ReasonNotInHost
	var idErr *IdentityError
	if errors.As(err, &idErr) {
		reason = idErr.Reason
	}
	return Panel{
		Enabled:        false,
		DisabledReason: reason,
		Count:          PlaceholderNoIdentity,
		Bonus:          PlaceholderNoIdentity,
	}
}

func applyStats(p *Panel, entry *cachedStats) {
	p.UpdatedAt = entry.FetchedAt
	p.Available = entry.Available
	if !entry.Available {
		p.Count = PlaceholderUnavailable
		p.Bonus = PlaceholderBonusUnavailable
		return
	}
	p.Count = fmt.Sprintf("%d", entry.Stats.Count)
	p.Bonus = FormatBonus(entry.Stats.Bonus)
}

// FormatBonus renders a bonus amount with two decimals
func FormatBonus(bonus float64) string {
	return fmt.Sprintf(BonusFormat, bonus)
}
