// Package scheduler drives fixed-interval jobs such as the accrual tick.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
	skipped    atomic.Int64
}

// New creates a new scheduler. Jobs are handed to pool on each tick.
// A nil pool runs each job inline on its ticker goroutine.
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval.
//
// A run never overlaps the previous run of the same job: inline jobs block
// their own ticker and pooled jobs are offered with TryEnqueue, so a tick
// that finds the queue full is skipped rather than queued behind.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.dispatch(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) dispatch(job worker.Job) {
	ctx := context.Background()
	if s.workerPool == nil {
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgScheduledJobFailed, "error", err)
		}
		return
	}
	if !s.workerPool.TryEnqueue(job) {
		s.skipped.Add(1)
		logger.FromContext(ctx).Warn(LogMsgScheduledJobSkipped)
	}
}

// Skipped returns how many ticks were dropped because the pool was busy
func (s *Scheduler) Skipped() int64 {
	return s.skipped.Load()
}

// Stop stops all scheduled jobs and waits for inline runs to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
