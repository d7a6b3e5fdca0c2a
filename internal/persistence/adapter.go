package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/metrics"
	"github.com/osse101/MinerTapper_Go/internal/repository"
	"github.com/osse101/MinerTapper_Go/internal/worker"
)

// Adapter loads and saves the economy state under domain.StateKey
type Adapter struct {
	store  repository.StateStore
	pool   *worker.Pool
	driver string
	key    string
}

// NewAdapter creates an adapter. Background saves go through pool; pass a
// single-worker pool so writes land in order. A nil pool makes Save synchronous.
func NewAdapter(store repository.StateStore, pool *worker.Pool, driver string) *Adapter {
	return &Adapter{
		store:  store,
		pool:   pool,
		driver: driver,
		key:    domain.StateKey,
	}
}

// Load restores the saved state for cat.
//
// Absent or malformed data yields a fresh state. A restored state gets
// missing catalog entries filled in, LastUpdate reset to now so time spent
// offline is not credited, and MiningPower recomputed. Only store failures
// are returned as errors.
func (a *Adapter) Load(ctx context.Context, cat *catalog.Catalog, now time.Time) (*domain.EconomyState, error) {
	log := logger.FromContext(ctx)

	data, err := a.store.Get(ctx, a.key)
	if errors.Is(err, domain.ErrStateNotFound) {
		log.Info(LogMsgNoSavedState, "driver", a.driver)
		return cat.NewState(now), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFailed, err)
	}

	st, err := Decode(data)
	if err != nil {
		log.Warn(LogMsgMalformedState, "driver", a.driver, "error", err)
		return cat.NewState(now), nil
	}

	Reconcile(cat, st, now)
	log.Info(LogMsgStateRestored,
		"driver", a.driver,
		"balance", st.Balance,
		"mining_power", st.MiningPower,
		"achievements", st.UnlockedCount())
	return st, nil
}

// Reconcile fills in catalog units and achievements missing from st, moves
// LastUpdate to now and recomputes MiningPower.
func Reconcile(cat *catalog.Catalog, st *domain.EconomyState, now time.Time) {
	if st.Units == nil {
		st.Units = make(map[int]domain.UnitState, len(cat.Units))
	}
	for _, def := range cat.Units {
		if _, ok := st.Units[def.ID]; !ok {
			st.Units[def.ID] = domain.NewUnitState()
		}
	}

	if st.Achievements == nil {
		st.Achievements = make(map[string]bool, len(cat.Achievements))
	}
	for _, def := range cat.Achievements {
		if _, ok := st.Achievements[def.ID]; !ok {
			st.Achievements[def.ID] = false
		}
	}

	st.LastUpdate = now
	if st.LastCoinAnimation.IsZero() || st.LastCoinAnimation.After(now) {
		st.LastCoinAnimation = now
	}
	st.MiningPower = economy.RecomputeMiningPower(cat, st)
}

// Save schedules a write of st and returns immediately. When the queue is
// full the write is dropped; a later save carries the newer state anyway.
func (a *Adapter) Save(ctx context.Context, st *domain.EconomyState) {
	log := logger.FromContext(ctx)

	data, err := Encode(st)
	if err != nil {
		metrics.PersistenceWritesTotal.WithLabelValues(a.driver, metrics.ResultFailure).Inc()
		log.Error(LogMsgStateEncodeFailed, "error", err)
		return
	}

	if a.pool == nil {
		if err := a.put(context.WithoutCancel(ctx), data); err != nil {
			log.Warn(LogMsgSaveFailed, "driver", a.driver, "error", err)
		}
		return
	}

	job := worker.JobFunc(func(jobCtx context.Context) error {
		return a.put(jobCtx, data)
	})
	if !a.pool.TryEnqueue(job) {
		metrics.PersistenceWritesTotal.WithLabelValues(a.driver, metrics.ResultDropped).Inc()
		log.Warn(LogMsgSaveDropped, "driver", a.driver)
	}
}

// SaveNow writes st synchronously
func (a *Adapter) SaveNow(ctx context.Context, st *domain.EconomyState) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := a.put(ctx, data); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgStateSavedSync, "driver", a.driver)
	return nil
}

// Reset removes the saved state
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.key); err != nil {
		return fmt.Errorf(ErrMsgResetFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgStateResetComplete, "driver", a.driver)
	return nil
}

// Ping reports whether the underlying store is reachable
func (a *Adapter) Ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}

func (a *Adapter) put(ctx context.Context, data []byte) error {
	start := time.Now()
	err := a.store.Put(ctx, a.key, data)
	metrics.PersistenceWriteDuration.WithLabelValues(a.driver).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PersistenceWritesTotal.WithLabelValues(a.driver, metrics.ResultFailure).Inc()
		metrics.DownstreamFailuresTotal.WithLabelValues(economy.StagePersist).Inc()
		return fmt.Errorf(ErrMsgSaveFailed, err)
	}
	metrics.PersistenceWritesTotal.WithLabelValues(a.driver, metrics.ResultSuccess).Inc()
	return nil
}

var _ economy.Persister = (*Adapter)(nil)
