package throughput

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/prngbench/counter"
)

var _ counter.Counter = &throughputCounter{}

// throughputCounter measures how many values were produced since it was created.
type throughputCounter struct {
	value      int64
	epoch      time.Time
	ratePerSec int64

	elapsed time.Duration
	now     func() time.Time
	mut     sync.Mutex
}

// NewCounter starts the clock.
func NewCounter() counter.Counter {
	return newCounter(time.Now)
}

func newCounter(now func() time.Time) *throughputCounter {
	return &throughputCounter{
		epoch: now(),
		now:   now,
	}
}

// Value implements Counter.
func (c *throughputCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *throughputCounter) RatePerSec() int64 {
	return atomic.LoadInt64(&c.ratePerSec)
}

// Elapsed implements Counter. It is the time between creation and the last Add.
func (c *throughputCounter) Elapsed() time.Duration {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.elapsed
}

// Add implements Counter.
func (c *throughputCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.check()
}

func (c *throughputCounter) check() {
	c.mut.Lock()
	defer c.mut.Unlock()

	c.elapsed = c.now().Sub(c.epoch)
	if c.elapsed <= 0 {
		return
	}
	atomic.StoreInt64(&c.ratePerSec, int64(float64(c.Value())/c.elapsed.Seconds()))
}
