// Package bench wires generators, summary statistics and randomness tests into
// a single run: Config in, Results out. Printing and plotting are left to the
// consumers of Results.
package bench

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tutils/prngbench/randtest"
	"github.com/tutils/prngbench/summary"
)

// Results of a run.
type Results struct {
	RunID      string             `json:"run_id"`
	Seed       uint32             `json:"seed"`
	SampleSize int                `json:"sample_size"`
	Bins       int                `json:"bins"`
	Alpha      float64            `json:"alpha"`
	Generators []GeneratorResults `json:"generators"`
	Sweep      []Timing           `json:"sweep,omitempty"`
}

// GeneratorResults holds everything computed from one generator's sample.
type GeneratorResults struct {
	Kind      Kind      `json:"kind"`
	Generator string    `json:"generator"`
	Sample    []float64 `json:"-"`

	Summary summary.Summary `json:"summary"`
	// Degenerate is set when the coefficient of variation is undefined.
	Degenerate bool `json:"degenerate,omitempty"`

	ChiSquare randtest.Result     `json:"chi_square"`
	Monobit   randtest.Result     `json:"monobit"`
	Poker     randtest.Result     `json:"poker"`
	Runs      randtest.RunsResult `json:"runs"`
}

// Tests returns the randomness test results in report order.
func (g *GeneratorResults) Tests() []randtest.Result {
	return []randtest.Result{g.ChiSquare, g.Monobit, g.Poker, g.Runs.Result}
}

// Timing of one generation call.
type Timing struct {
	Kind       Kind          `json:"kind"`
	Generator  string        `json:"generator"`
	Size       int           `json:"size"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	RatePerSec int64         `json:"rate_per_sec"`
}

// Run validates cfg, analyses a fresh sample from every configured generator
// and times the sweep sizes.
func Run(cfg Config) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Results{
		RunID:      uuid.NewString(),
		Seed:       cfg.Seed,
		SampleSize: cfg.SampleSize,
		Bins:       cfg.Bins,
		Alpha:      cfg.Alpha,
	}
	log := zap.L().Named("bench").With(zap.String("run", res.RunID))
	log.Info("run started",
		zap.Uint32("seed", cfg.Seed),
		zap.Int("sample_size", cfg.SampleSize),
		zap.Int("generators", len(cfg.Generators)),
	)

	for _, kind := range cfg.Generators {
		gr, err := Analyze(kind, cfg.Seed, cfg.SampleSize, cfg.Bins)
		if err != nil {
			return nil, err
		}
		for _, r := range gr.Tests() {
			log.Debug("test finished",
				zap.String("generator", gr.Generator),
				zap.String("test", r.Name),
				zap.Float64("statistic", r.Statistic),
				zap.Float64("p_value", r.PValue),
				zap.Bool("passed", r.Passed(cfg.Alpha)),
			)
		}
		res.Generators = append(res.Generators, *gr)
	}

	for _, kind := range cfg.Generators {
		timings, err := Sweep(kind, cfg.Seed, cfg.SweepSizes)
		if err != nil {
			return nil, err
		}
		res.Sweep = append(res.Sweep, timings...)
	}

	log.Info("run finished")
	return res, nil
}

// Analyze draws size values from a fresh generator seeded with seed and runs
// the summary and all randomness tests on them.
func Analyze(kind Kind, seed uint32, size, bins int) (*GeneratorResults, error) {
	gen, err := NewGenerator(kind, seed)
	if err != nil {
		return nil, err
	}
	gr := &GeneratorResults{
		Kind:      kind,
		Generator: gen.Name(),
		Sample:    gen.Generate(size),
	}

	gr.Summary, err = summary.Calculate(gr.Sample)
	switch {
	case errors.Is(err, summary.ErrDegenerateStatistic):
		gr.Degenerate = true
		zap.L().Named("bench").Warn("summary is degenerate", zap.String("generator", gr.Generator), zap.Error(err))
	case err != nil:
		return nil, errors.Wrapf(err, "%s summary", gr.Generator)
	}

	if gr.ChiSquare, err = randtest.ChiSquare(gr.Sample, bins); err != nil {
		return nil, errors.Wrapf(err, "%s", gr.Generator)
	}
	if gr.Monobit, err = randtest.Monobit(gr.Sample); err != nil {
		return nil, errors.Wrapf(err, "%s", gr.Generator)
	}
	if gr.Poker, err = randtest.Poker(gr.Sample); err != nil {
		return nil, errors.Wrapf(err, "%s", gr.Generator)
	}
	if gr.Runs, err = randtest.Runs(gr.Sample); err != nil {
		return nil, errors.Wrapf(err, "%s", gr.Generator)
	}
	return gr, nil
}
