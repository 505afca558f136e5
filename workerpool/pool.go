package workerpool

import (
	"sync"
)

// Job is a unit of work submitted to a Pool.
type Job func() error

// Pool runs jobs on a fixed number of workers.
type Pool struct {
	jobs chan Job
	stop chan struct{}

	wg       sync.WaitGroup
	stopOnce sync.Once

	mu  sync.Mutex
	err error
}

// New creates a pool with the provided number of workers.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		jobs: make(chan Job),
		stop: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for job := range p.jobs {
		select {
		case <-p.stop:
			// drain without running, Stop was requested
			p.wg.Done()
			continue
		default:
		}
		if err := job(); err != nil {
			p.mu.Lock()
			if p.err == nil {
				p.err = err
			}
			p.mu.Unlock()
		}
		p.wg.Done()
	}
}

// Add queues jobs without blocking the caller.
func (p *Pool) Add(jobs []Job) {
	p.wg.Add(len(jobs))
	go func() {
		for _, job := range jobs {
			p.jobs <- job
		}
	}()
}

// AddBlocking queues jobs, blocking until every job has been handed to a
// worker.
func (p *Pool) AddBlocking(jobs []Job) {
	p.wg.Add(len(jobs))
	for _, job := range jobs {
		p.jobs <- job
	}
}

// Stop discards queued jobs that have not started yet. Jobs already running
// are allowed to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

// Wait blocks until all queued jobs have finished and returns the first job
// error observed, if any.
func (p *Pool) Wait() error {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
