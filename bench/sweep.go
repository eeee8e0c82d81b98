package bench

import (
	"go.uber.org/zap"

	"github.com/tutils/prngbench/counter/throughput"
)

// Sweep times one Generate call per size on a single fresh generator. Only the
// generation is measured; the sample is discarded.
func Sweep(kind Kind, seed uint32, sizes []int) ([]Timing, error) {
	gen, err := NewGenerator(kind, seed)
	if err != nil {
		return nil, err
	}

	log := zap.L().Named("sweep")
	timings := make([]Timing, 0, len(sizes))
	for _, size := range sizes {
		c := throughput.NewCounter()
		gen.Generate(size)
		c.Add(int64(size))

		t := Timing{
			Kind:       kind,
			Generator:  gen.Name(),
			Size:       size,
			Elapsed:    c.Elapsed(),
			RatePerSec: c.RatePerSec(),
		}
		log.Debug("timed generation",
			zap.String("generator", t.Generator),
			zap.Int("size", t.Size),
			zap.Duration("elapsed", t.Elapsed),
			zap.Int64("rate_per_sec", t.RatePerSec),
		)
		timings = append(timings, t)
	}
	return timings, nil
}
