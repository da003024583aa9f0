// Package worker provides a worker pool for replaying puzzle solutions in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// WorkItem is one puzzle solution to replay.
type WorkItem struct {
	Index    int // Position in the input list
	ID       string
	Position string
	Solution []string
}

// ProcessResult is the outcome of replaying one solution.
type ProcessResult struct {
	Index int
	ID    string
	// Final is the position after the last ply that was applied.
	Final string
	// Applied counts the plies the rules engine accepted.
	Applied int
	Error   error
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a set of workers running a ProcessFunc.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full. It returns
// the context error if ctx ends first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
