package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution.
type Result interface {
	GetError() error
}

// Pool manages a pool of workers that execute jobs concurrently.
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	queueOnce  sync.Once
	closeOnce  sync.Once
}

// NewPool creates a worker pool with the specified number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2), // Buffered to prevent blocking
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Close stops accepting jobs. The results channel closes once every
// in-flight job has finished.
func (p *Pool) Close() {
	p.queueOnce.Do(func() {
		close(p.jobQueue)
		go func() {
			p.wg.Wait()
			p.closeResults()
		}()
	})
}

// Results exposes the results channel. Callers submitting more jobs
// than the channel buffer holds must drain it concurrently.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Wait waits for all submitted jobs to complete and returns the results.
func (p *Pool) Wait() []Result {
	p.Close()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown stops the pool immediately, abandoning queued jobs.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
