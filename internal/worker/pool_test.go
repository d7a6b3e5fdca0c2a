package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinerTapper_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	// Not started: the single slot fills and the next one is rejected
	var executed int32
	job := &testJob{executed: &executed}

	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job))
	assert.Equal(t, 1, pool.Pending())

	pool.Start()
	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	for i := 0; i < 5; i++ {
		pool.Enqueue(&testJob{executed: &executed})
	}

	pool.Start()
	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}), "stopped pool must reject jobs")
}

func TestPool_FailingJobsDoNotKillWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error { panic("kaboom") }))
	pool.Enqueue(&testJob{executed: &executed})

	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(4, TestQueueSize)
		pool.Start()
		for i := 0; i < 8; i++ {
			pool.Enqueue(&testJob{executed: &executed})
		}
		pool.Stop()
		assert.Equal(t, int32(8), atomic.LoadInt32(&executed))
	})
}
