package analyzer

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolClosed is returned when work is offered to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// WorkerPool runs analysis jobs on a fixed set of goroutines
type WorkerPool struct {
	workers  int
	jobQueue chan func()
	wg       sync.WaitGroup
	start    sync.Once
	stop     sync.Once
	mu       sync.RWMutex
	closed   bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// Start initializes and starts all workers in the pool
func (wp *WorkerPool) Start() {
	wp.start.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
	}
}

// Submit queues a job; Wait blocks until every submitted job has finished
func (wp *WorkerPool) Submit(job func()) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	wp.wg.Add(1)
	wp.jobQueue <- func() {
		defer wp.wg.Done()
		job()
	}
	return nil
}

// Do runs job on the pool and waits for it. If ctx ends first Do returns
// ctx.Err(); a job already queued still runs, so it must not write to
// anything the caller reads after an error.
func (wp *WorkerPool) Do(ctx context.Context, job func()) error {
	wp.mu.RLock()
	if wp.closed {
		wp.mu.RUnlock()
		return ErrPoolClosed
	}

	done := make(chan struct{})
	wp.wg.Add(1)
	task := func() {
		defer wp.wg.Done()
		defer close(done)
		job()
	}

	select {
	case wp.jobQueue <- task:
		wp.mu.RUnlock()
	case <-ctx.Done():
		wp.mu.RUnlock()
		wp.wg.Done()
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait waits for all submitted jobs to complete
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close stops accepting work and lets the workers drain the queue
func (wp *WorkerPool) Close() {
	wp.stop.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.jobQueue)
		wp.mu.Unlock()
	})
}
