// Package parallel provides the goroutine pool used to run coefficient
// computations off the animation loop and to split large transforms into
// frequency bands.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from one shared queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// jobs is the shared work queue.
	jobs chan func()

	// done signals workers to stop.
	done chan struct{}

	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case fn := <-p.jobs:
			fn()
		}
	}
}

// drain runs whatever is still queued at shutdown.
func (p *Pool) drain() {
	for {
		select {
		case fn := <-p.jobs:
			fn()
		default:
			return
		}
	}
}

// Go queues fn for asynchronous execution. It blocks while the queue is
// full and reports false if the pool is closed.
func (p *Pool) Go(fn func()) bool {
	if fn == nil || !p.running.Load() {
		return false
	}
	select {
	case p.jobs <- fn:
		return true
	case <-p.done:
		return false
	}
}

// trySubmit queues fn without blocking.
func (p *Pool) trySubmit(fn func()) {
	if !p.running.Load() {
		return
	}
	select {
	case p.jobs <- fn:
	default:
	}
}

// Range calls fn(i) for every i in [0, n) using up to Workers goroutines
// and returns once all calls have completed. The calling goroutine takes
// part in the work, so Range never deadlocks when invoked from a job that
// already occupies a worker. Once ctx is done the remaining indices are
// skipped and ctx.Err() is returned.
func (p *Pool) Range(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	var next atomic.Int64
	var pending sync.WaitGroup
	pending.Add(n)

	run := func() {
		for {
			i := int(next.Add(1) - 1)
			if i >= n {
				return
			}
			if ctx.Err() == nil {
				fn(i)
			}
			pending.Done()
		}
	}

	for range min(p.workers, n) - 1 {
		p.trySubmit(run)
	}
	run()

	pending.Wait()
	return ctx.Err()
}

// Close stops accepting work, runs what is already queued and waits for
// the workers to exit. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
