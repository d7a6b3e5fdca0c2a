package referral

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/logger"
)

// Client fetches referral stats from the remote referral service
type Client struct {
	BaseURL    string
	HTTP       *http.Client
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient creates a client with default timeout and retry settings
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: DefaultTimeout,
		},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// FetchStats performs GET {base}/api/referrals/{userID}, retrying network
// errors and 5xx responses with exponential backoff. Every failure wraps
// domain.ErrRemoteServiceUnavailable.
func (c *Client) FetchStats(ctx context.Context, userID int64) (domain.ReferralStats, error) {
	log := logger.FromContext(ctx)

	if c.BaseURL == "" {
		return domain.ReferralStats{}, fmt.Errorf("%w: %s", domain.ErrRemoteServiceUnavailable, ErrMsgEmptyBaseURL)
	}
	url := c.BaseURL + fmt.Sprintf(StatsPath, userID)

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetryingRequest, "attempt", attempt, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return domain.ReferralStats{}, fmt.Errorf("%w: %v", domain.ErrRemoteServiceUnavailable, ctx.Err())
			}
		}

		stats, retry, err := c.do(ctx, url)
		if err == nil {
			log.Debug(LogMsgStatsFetched, "user_id", userID, "count", stats.Count)
			return stats, nil
		}
		lastErr = err
		if !retry {
			return domain.ReferralStats{}, err
		}
	}

	return domain.ReferralStats{}, fmt.Errorf(ErrMsgMaxRetriesExceeded, domain.ErrRemoteServiceUnavailable, lastErr)
}

// do performs one attempt and reports whether a failure is worth retrying
func (c *Client) do(ctx context.Context, url string) (domain.ReferralStats, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ReferralStats{}, false, fmt.Errorf("%w: %v", domain.ErrRemoteServiceUnavailable, fmt.Errorf(ErrMsgCreateRequestFailed, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRequestFailed, "error", err)
		retry := !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		return domain.ReferralStats{}, retry, fmt.Errorf("%w: %v", domain.ErrRemoteServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		logger.FromContext(ctx).Warn(LogMsgServerError, "status", resp.StatusCode)
		return domain.ReferralStats{}, true, fmt.Errorf(ErrMsgUnexpectedStatus, domain.ErrRemoteServiceUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ReferralStats{}, false, fmt.Errorf(ErrMsgUnexpectedStatus, domain.ErrRemoteServiceUnavailable, resp.StatusCode)
	}

	var stats domain.ReferralStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return domain.ReferralStats{}, false, fmt.Errorf(ErrMsgDecodeFailed, domain.ErrRemoteServiceUnavailable, err)
	}
	return stats, false, nil
}
