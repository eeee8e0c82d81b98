package bench

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tutils/prngbench/randtest"
	"github.com/tutils/prngbench/rng/lcg"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.SampleSize = 5000
	cfg.SweepSizes = []int{10, 100}
	return cfg
}

func TestRun(t *testing.T) {
	res, err := Run(smallConfig())
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, uint32(42), res.Seed)
	require.Len(t, res.Generators, 2)
	assert.Equal(t, LCG, res.Generators[0].Kind)
	assert.Equal(t, "LCG", res.Generators[0].Generator)
	assert.Equal(t, MersenneTwister, res.Generators[1].Kind)
	assert.Equal(t, "Mersenne Twister", res.Generators[1].Generator)

	for _, g := range res.Generators {
		assert.Len(t, g.Sample, 5000)
		assert.InDelta(t, 0.5, g.Summary.Mean, 0.05)
		assert.False(t, g.Degenerate)
		for _, r := range g.Tests() {
			assert.True(t, r.PValue >= 0 && r.PValue <= 1, "%s/%s p-value %v", g.Generator, r.Name, r.PValue)
		}
		assert.Equal(t, randtest.ChiSquareName, g.ChiSquare.Name)
		assert.Equal(t, 9, g.ChiSquare.DegreesOfFreedom)
	}

	require.Len(t, res.Sweep, 4)
	assert.Equal(t, 10, res.Sweep[0].Size)
	assert.Equal(t, 100, res.Sweep[1].Size)
	assert.Equal(t, MersenneTwister, res.Sweep[2].Kind)
}

func TestRunDeterministic(t *testing.T) {
	cfg := smallConfig()
	cfg.SweepSizes = nil
	a, err := Run(cfg)
	require.NoError(t, err)
	b, err := Run(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	opts := []cmp.Option{
		cmpopts.IgnoreFields(Results{}, "RunID"),
		cmpopts.EquateNaNs(),
	}
	if diff := cmp.Diff(a, b, opts...); diff != "" {
		t.Fatalf("runs with the same seed differ (-a +b):\n%s", diff)
	}
	assert.Empty(t, a.Sweep)
}

func TestAnalyzeMatchesGenerator(t *testing.T) {
	gr, err := Analyze(LCG, 42, 100, randtest.DefaultBins)
	require.NoError(t, err)
	assert.Equal(t, lcg.New(42).Generate(100), gr.Sample)
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	_, err := Run(smallConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("run started").Len())
	assert.Equal(t, 8, logs.FilterMessage("test finished").Len())
	assert.Equal(t, 4, logs.FilterMessage("timed generation").Len())
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"short sample", func(c *Config) { c.SampleSize = 4 }, randtest.ErrInsufficientSampleSize},
		{"one bin", func(c *Config) { c.Bins = 1 }, randtest.ErrInvalidBins},
		{"alpha", func(c *Config) { c.Alpha = 1 }, ErrInvalidConfig},
		{"no generators", func(c *Config) { c.Generators = nil }, ErrInvalidConfig},
		{"unknown generator", func(c *Config) { c.Generators = []Kind{"xorshift"} }, ErrUnknownGenerator},
		{"sweep size", func(c *Config) { c.SweepSizes = []int{100, 0} }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)

			_, err := Run(cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds([]string{"LCG", " mt ", "mersenne", "mt19937"})
	require.NoError(t, err)
	assert.Equal(t, []Kind{LCG, MersenneTwister}, kinds)

	_, err = ParseKinds([]string{"lcg", "pcg"})
	assert.ErrorIs(t, err, ErrUnknownGenerator)
}

func TestSweep(t *testing.T) {
	timings, err := Sweep(MersenneTwister, 1, []int{1, 624, 10000})
	require.NoError(t, err)
	require.Len(t, timings, 3)
	for i, size := range []int{1, 624, 10000} {
		assert.Equal(t, size, timings[i].Size)
		assert.GreaterOrEqual(t, int64(timings[i].Elapsed), int64(0))
	}

	_, err = Sweep("nope", 1, []int{1})
	assert.ErrorIs(t, err, ErrUnknownGenerator)
}
