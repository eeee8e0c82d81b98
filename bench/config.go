package bench

import (
	"github.com/pkg/errors"

	"github.com/tutils/prngbench/randtest"
)

// MinSampleSize is the shortest sample every test can run on: one poker hand.
const MinSampleSize = 5

// default config values
var (
	DefaultSeed       = uint32(42)
	DefaultSampleSize = 100000
	DefaultAlpha      = 0.01
	DefaultSweepSizes = []int{100, 1000, 10000, 100000, 1000000}
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config of a benchmark run.
type Config struct {
	Seed       uint32
	SampleSize int
	Bins       int
	// Alpha is the significance level used to mark tests as passed.
	Alpha      float64
	Generators []Kind
	// SweepSizes are the sample sizes timed per generator. Empty skips the sweep.
	SweepSizes []int
}

// DefaultConfig returns the configuration of the reference run.
func DefaultConfig() Config {
	return Config{
		Seed:       DefaultSeed,
		SampleSize: DefaultSampleSize,
		Bins:       randtest.DefaultBins,
		Alpha:      DefaultAlpha,
		Generators: append([]Kind(nil), Kinds...),
		SweepSizes: append([]int(nil), DefaultSweepSizes...),
	}
}

// Validate checks the config before anything is generated.
func (c Config) Validate() error {
	if c.SampleSize < MinSampleSize {
		return errors.Wrapf(randtest.ErrInsufficientSampleSize, "sample size %d, need at least %d", c.SampleSize, MinSampleSize)
	}
	if c.Bins < 2 {
		return errors.Wrapf(randtest.ErrInvalidBins, "bins %d", c.Bins)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return errors.Wrapf(ErrInvalidConfig, "alpha %v not in (0,1)", c.Alpha)
	}
	if len(c.Generators) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no generators selected")
	}
	for _, k := range c.Generators {
		if _, err := NewGenerator(k, c.Seed); err != nil {
			return err
		}
	}
	for _, size := range c.SweepSizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "sweep size %d is not positive", size)
		}
	}
	return nil
}
