package forkjoin

import (
	"runtime"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// Pool is a shared worker pool with fork/join semantics. All recursive
// tasks of one search draw workers from the same Pool.
type Pool struct {
	pool      *ants.Pool
	workerSeq atomic.Int64
}

// NewPool creates a pool with the given number of workers.
// Sizes below 1 fall back to runtime.NumCPU().
func NewPool(size int) (*Pool, error) {
	if size < 1 {
		size = runtime.NumCPU()
	}

	// Non-blocking: a saturated pool rejects the submit and the task runs
	// inline on the forking goroutine instead.
	inner, err := ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}

	return &Pool{pool: inner}, nil
}

// Task is a handle to one forked unit of work. It is resolved exactly once,
// when the unit's function returns.
type Task struct {
	done     chan struct{}
	panicked any
}

// Fork schedules fn for asynchronous execution and returns a handle to join
// on. fn receives the identifier of the worker executing it; 0 means it ran
// inline on the forking goroutine. Fork never waits for a free worker: with
// all workers busy, fn runs inline before Fork returns.
func (p *Pool) Fork(fn func(workerID int64)) *Task {
	t := &Task{done: make(chan struct{})}

	submitErr := p.pool.Submit(func() {
		t.run(fn, p.workerSeq.Add(1))
	})
	if submitErr != nil {
		// Saturated or released pool: run inline so the eventual Join
		// cannot wait on work nobody will execute.
		t.run(fn, 0)
	}

	return t
}

func (t *Task) run(fn func(workerID int64), workerID int64) {
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			t.panicked = r
		}
	}()
	fn(workerID)
}

// Join blocks until the forked unit has completed. If the unit panicked,
// the panic is re-raised on the joining goroutine.
func (t *Task) Join() {
	<-t.done
	if t.panicked != nil {
		panic(t.panicked)
	}
}

// Cap returns the worker capacity of the pool.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// Release releases the pool's workers. In-flight forks still complete,
// either on their worker or inline; the pool should not be used after
// calling Release.
func (p *Pool) Release() {
	p.pool.Release()
}
