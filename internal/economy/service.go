package economy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/achievement"
	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/clock"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/metrics"
)

// Persister stores economy snapshots. Save must not block the caller.
type Persister interface {
	Save(ctx context.Context, st *domain.EconomyState)
	SaveNow(ctx context.Context, st *domain.EconomyState) error
}

// TickResult reports what one tick did
type TickResult struct {
	Accrual  Accrual
	Unlocked []domain.AchievementDefinition
	Animated bool
}

// Service defines the interface for economy operations
type Service interface {
	Tick(ctx context.Context) TickResult
	BuyUnit(ctx context.Context, unitID int) (*domain.EconomyState, error)
	UpgradeUnit(ctx context.Context, unitID int) (*domain.EconomyState, error)
	Snapshot() *domain.EconomyState
	Prices() []UnitPrice
	Catalog() *catalog.Catalog
	Shutdown(ctx context.Context) error
}

type service struct {
	cat       *catalog.Catalog
	clock     clock.Clock
	persister Persister
	bus       event.Bus

	// mu serialises every mutation of st: ticks, purchases, upgrades and unlocks
	mu sync.Mutex
	st *domain.EconomyState
}

// NewService creates a new economy service owning st.
// persister and bus may be nil.
func NewService(cat *catalog.Catalog, st *domain.EconomyState, clk clock.Clock, persister Persister, bus event.Bus) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if st == nil {
		st = cat.NewState(clk.Now())
	}
	return &service{
		cat:       cat,
		clock:     clk,
		persister: persister,
		bus:       bus,
		st:        st,
	}
}

// Tick runs one accrual step: accrue, refresh presentation, evaluate
// achievements, persist. The cosmetic coin animation fires when its cooldown
// has elapsed, before the save so lastCoinAnimation is persisted with the tick.
// Downstream failures are logged and counted.
func (s *service) Tick(ctx context.Context) TickResult {
	start := time.Now()
	defer func() {
		metrics.TickDuration.Observe(time.Since(start).Seconds())
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var res TickResult

	res.Accrual = Accrue(s.st, now)
	if res.Accrual.Clamped {
		logger.FromContext(ctx).Warn(LogMsgClockRegression)
	}

	s.publish(ctx, event.NewTickEvent(s.st.Clone(), res.Accrual.Mined, res.Accrual.DeltaSeconds))
	res.Unlocked = s.evaluateAchievements(ctx, now)

	if TriggerAnimation(s.st, now, s.cat.AnimationCooldown()) {
		res.Animated = true
		s.publish(ctx, event.NewCoinAnimationEvent(now))
	}

	s.persist(ctx)
	return res
}

// BuyUnit purchases one unit. It returns the state after the purchase.
func (s *service) BuyUnit(ctx context.Context, unitID int) (*domain.EconomyState, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBuyUnitCalled, "unit_id", unitID)

	return s.transition(ctx, OperationBuy, unitID, BuyUnit, event.NewUnitPurchasedEvent, LogMsgUnitPurchased)
}

// UpgradeUnit raises one unit's level. It returns the state after the upgrade.
func (s *service) UpgradeUnit(ctx context.Context, unitID int) (*domain.EconomyState, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgUpgradeUnitCalled, "unit_id", unitID)

	return s.transition(ctx, OperationUpgrade, unitID, UpgradeUnit, event.NewUnitUpgradedEvent, LogMsgUnitUpgraded)
}

type transitionFunc func(*catalog.Catalog, *domain.EconomyState, int) (Receipt, error)

type transitionEventFunc func(*domain.EconomyState, domain.UnitDefinition, float64, time.Time) event.Event

func (s *service) transition(ctx context.Context, op string, unitID int, apply transitionFunc, newEvent transitionEventFunc, logMsg string) (*domain.EconomyState, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := apply(s.cat, s.st, unitID)
	if err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(op, rejectReason(err)).Inc()
		log.Info(LogMsgTransitionRejected, "operation", op, "unit_id", unitID, "error", err)
		return nil, err
	}

	log.Info(logMsg,
		"unit_id", receipt.Unit.ID,
		"price", receipt.Price,
		"count", receipt.After.Count,
		"level", receipt.After.Level,
		"mining_power", s.st.MiningPower)

	now := s.clock.Now()
	s.publish(ctx, newEvent(s.st.Clone(), receipt.Unit, receipt.Price, now))
	s.evaluateAchievements(ctx, now)
	s.persist(ctx)

	return s.st.Clone(), nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrUnknownUnit):
		return "unknown_unit"
	default:
		return "other"
	}
}

// evaluateAchievements must be called with mu held
func (s *service) evaluateAchievements(ctx context.Context, now time.Time) []domain.AchievementDefinition {
	unlocked := achievement.Evaluate(s.cat.Achievements, s.st)
	for _, def := range unlocked {
		logger.FromContext(ctx).Info(LogMsgAchievementUnlocked, "achievement", def.ID)
		s.publish(ctx, event.NewAchievementUnlockedEvent(s.st.Clone(), def, now))
	}
	return unlocked
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.DownstreamFailuresTotal.WithLabelValues(StagePublish).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.persister.Save(ctx, s.st.Clone())
}

// Snapshot returns a deep copy of the live state
func (s *service) Snapshot() *domain.EconomyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Clone()
}

func (s *service) Prices() []UnitPrice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Prices(s.cat, s.st)
}

func (s *service) Catalog() *catalog.Catalog {
	return s.cat
}

// Shutdown writes the final state synchronously
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if s.persister == nil {
		return nil
	}

	st := s.Snapshot()
	done := make(chan error, 1)
	go func() {
		done <- s.persister.SaveNow(ctx, st)
	}()

	select {
	case err := <-done:
		if err != nil {
			metrics.DownstreamFailuresTotal.WithLabelValues(StagePersist).Inc()
			return fmt.Errorf(ErrMsgFinalSaveFailed, err)
		}
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}

// TickJob adapts a Service to the scheduler's job interface
type TickJob struct {
	Service Service
}

// Process runs one tick. It never fails.
func (j TickJob) Process(ctx context.Context) error {
	j.Service.Tick(ctx)
	return nil
}
