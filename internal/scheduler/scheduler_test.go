package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinerTapper_Go/internal/testing/leaktest"
	"github.com/osse101/MinerTapper_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func waitRuns(t *testing.T, job *MockJob, n int) {
	t.Helper()
	timeout := time.After(500 * time.Millisecond)
	runCount := 0
	for runCount < n {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
}

func TestScheduler(t *testing.T) {
	// Create worker pool
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	// Create scheduler
	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}

	// Schedule job every 10ms
	sched.Schedule(10*time.Millisecond, job)

	waitRuns(t, job, 2)
	assert.GreaterOrEqual(t, job.RunCount.Load(), int32(2))
}

func TestScheduler_Inline(t *testing.T) {
	sched := New(nil)
	job := &MockJob{Done: make(chan struct{}, 10)}

	sched.Schedule(5*time.Millisecond, job)
	waitRuns(t, job, 3)
	sched.Stop()

	after := job.RunCount.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, job.RunCount.Load(), "no runs after Stop")
}

type blockingJob struct {
	running atomic.Int32
	maxSeen atomic.Int32
	release chan struct{}
}

func (b *blockingJob) Process(ctx context.Context) error {
	n := b.running.Add(1)
	defer b.running.Add(-1)
	if n > b.maxSeen.Load() {
		b.maxSeen.Store(n)
	}
	<-b.release
	return nil
}

func TestScheduler_NoOverlap(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start()

	sched := New(pool)
	job := &blockingJob{release: make(chan struct{})}
	sched.Schedule(2*time.Millisecond, job)

	time.Sleep(30 * time.Millisecond)
	sched.Stop()
	close(job.release)
	pool.Stop()

	assert.Equal(t, int32(1), job.maxSeen.Load())
	assert.Positive(t, sched.Skipped())
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(1, 10)
		pool.Start()

		sched := New(pool)
		job := &MockJob{Done: make(chan struct{}, 10)}
		sched.Schedule(5*time.Millisecond, job)
		sched.Schedule(7*time.Millisecond, job)
		waitRuns(t, job, 2)

		sched.Stop()
		pool.Stop()
	})
}
