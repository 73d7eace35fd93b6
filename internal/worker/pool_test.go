package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := NewPool(2)

	var ran int64
	for i := 0; i < 50; i++ {
		p.Submit(func() { atomic.AddInt64(&ran, 1) })
	}

	// Stop drains the queue before returning.
	p.Stop()
	assert.Equal(t, int64(50), atomic.LoadInt64(&ran))
}

func TestPool_ZeroWorkersStillRuns(t *testing.T) {
	p := NewPool(0)

	done := make(chan struct{})
	p.Submit(func() { close(done) })
	p.Stop()

	select {
	case <-done:
	default:
		t.Fatal("job never ran")
	}
}
