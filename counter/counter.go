package counter

import "time"

// Counter is a cumulative metric
type Counter interface {
	Value() int64
	RatePerSec() int64
	Elapsed() time.Duration

	Add(n int64)
}
