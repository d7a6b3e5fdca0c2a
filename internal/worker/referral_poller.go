package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/metrics"
	"github.com/osse101/MinerTapper_Go/internal/referral"
)

// ReferralRefresher fetches fresh referral stats
type ReferralRefresher interface {
	Refresh(ctx context.Context) (referral.RefreshResult, error)
}

// ReferralPoller refreshes referral stats on a fixed interval and publishes
// a referral.stats event after every attempt. It stops polling once the
// refresher reports that there is no host identity.
type ReferralPoller struct {
	refresher ReferralRefresher
	bus       event.Bus
	interval  time.Duration
	timer     *time.Timer
	shutdown  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// NewReferralPoller creates a new ReferralPoller
func NewReferralPoller(refresher ReferralRefresher, bus event.Bus, interval time.Duration) *ReferralPoller {
	if interval <= 0 {
		interval = DefaultReferralPollerInterval * time.Second
	}
	return &ReferralPoller{
		refresher: refresher,
		bus:       bus,
		interval:  interval,
		shutdown:  make(chan struct{}),
	}
}

// Start runs the first poll right away
func (p *ReferralPoller) Start() {
	logger.FromContext(context.Background()).Info(LogMsgReferralPollerStarting, "interval", p.interval)
	p.schedule(0)
}

func (p *ReferralPoller) schedule(after time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.shutdown:
		return
	default:
	}

	if p.timer != nil {
		p.timer.Stop()
	}
	p.wg.Add(1)
	p.timer = time.AfterFunc(after, func() {
		defer p.wg.Done()
		select {
		case <-p.shutdown:
			return
		default:
		}
		if p.poll() {
			p.schedule(p.interval)
		}
	})
}

// poll runs one refresh and reports whether polling should continue
func (p *ReferralPoller) poll() bool {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	res, err := p.refresher.Refresh(ctx)
	if errors.Is(err, domain.ErrMissingIdentity) {
		log.Info(LogMsgReferralPollerDisabled, "error", err)
		return false
	}

	if err != nil {
		metrics.ReferralFetchesTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Warn(LogMsgReferralPollFailed, "user_id", res.UserID, "error", err)
	} else {
		metrics.ReferralFetchesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
		log.Debug(LogMsgReferralPollCompleted, "user_id", res.UserID, "count", res.Stats.Count)
	}

	at := res.FetchedAt
	if at.IsZero() {
		at = time.Now()
	}
	if p.bus != nil {
		evt := event.NewReferralStatsEvent(res.UserID, res.Stats, res.Available, at)
		if err := p.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgReferralPublishFailed, "error", err)
		}
	}
	return true
}

// Shutdown cancels the pending poll and waits for an in-flight one to finish
func (p *ReferralPoller) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReferralPollerStopping)

	p.mu.Lock()
	select {
	case <-p.shutdown:
	default:
		close(p.shutdown)
	}
	if p.timer != nil && p.timer.Stop() {
		// the callback will never run, release its slot
		p.wg.Done()
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgReferralPollerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgReferralPollerTimedOut)
		return ctx.Err()
	}
}
