package worker

import (
	"sync"

	"github.com/kmagpayo/yieldtrack-backend/internal/metrics"
)

// Pool is a fixed-size goroutine pool with a bounded queue. Propagation
// jobs run here so rate upserts return without waiting on the fan-out.
// Submit takes a plain func() so the pool satisfies rates.Scheduler.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan func()
}

func NewPool(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{jobs: make(chan func(), 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
				metrics.WorkerQueueDepth.Dec()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f func()) {
	metrics.WorkerQueueDepth.Inc()
	p.jobs <- f
}

// Stop closes the queue and waits for in-flight jobs to drain.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
