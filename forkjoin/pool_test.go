package forkjoin

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Run("explicit size", func(t *testing.T) {
		pool, err := NewPool(4)
		require.NoError(t, err)
		defer pool.Release()
		assert.Equal(t, 4, pool.Cap())
	})

	t.Run("size below one falls back to NumCPU", func(t *testing.T) {
		pool, err := NewPool(0)
		require.NoError(t, err)
		defer pool.Release()
		assert.GreaterOrEqual(t, pool.Cap(), 1)
	})
}

func TestForkJoin(t *testing.T) {
	pool, err := NewPool(4)
	require.NoError(t, err)
	defer pool.Release()

	t.Run("join observes completed work", func(t *testing.T) {
		var value atomic.Int64
		task := pool.Fork(func(workerID int64) {
			value.Store(42)
		})
		task.Join()
		assert.Equal(t, int64(42), value.Load())
	})

	t.Run("join after completion returns immediately", func(t *testing.T) {
		task := pool.Fork(func(workerID int64) {})
		time.Sleep(10 * time.Millisecond)
		task.Join()
		task.Join() // joining twice is harmless
	})

	t.Run("concurrent forks all complete", func(t *testing.T) {
		const n = 64
		var counter atomic.Int64
		tasks := make([]*Task, n)
		for i := 0; i < n; i++ {
			tasks[i] = pool.Fork(func(workerID int64) {
				counter.Add(1)
			})
		}
		for _, task := range tasks {
			task.Join()
		}
		assert.Equal(t, int64(n), counter.Load())
	})
}

func TestForkInlineFallback(t *testing.T) {
	// A single-worker pool that is held busy forces subsequent forks to
	// run inline, identified by workerID 0.
	pool, err := NewPool(1)
	require.NoError(t, err)
	defer pool.Release()

	release := make(chan struct{})
	blocker := pool.Fork(func(workerID int64) {
		<-release
	})

	// Give the blocker time to occupy the only worker.
	time.Sleep(20 * time.Millisecond)

	var inlineID int64 = -1
	done := make(chan struct{})
	go func() {
		defer close(done)
		task := pool.Fork(func(workerID int64) {
			inlineID = workerID
		})
		task.Join()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fork blocked instead of running inline")
	}
	assert.Equal(t, int64(0), inlineID)

	close(release)
	blocker.Join()
}

func TestJoinRepanics(t *testing.T) {
	pool, err := NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	task := pool.Fork(func(workerID int64) {
		panic("boom")
	})

	assert.PanicsWithValue(t, "boom", func() {
		task.Join()
	})
}

func TestForkAfterRelease(t *testing.T) {
	pool, err := NewPool(2)
	require.NoError(t, err)
	pool.Release()

	// A released pool still makes progress: the task runs inline.
	var ran bool
	task := pool.Fork(func(workerID int64) {
		ran = true
		assert.Equal(t, int64(0), workerID)
	})
	task.Join()
	assert.True(t, ran)
}
