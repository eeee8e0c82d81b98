package randtest

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// ChiSquareName is the Result name of the goodness of fit test.
	ChiSquareName = "chi-square"
	// DefaultBins is the histogram size used when none is configured.
	DefaultBins = 10
)

// ChiSquare buckets the sample into bins equal-width bins spanning its observed
// range and compares the counts with a uniform expectation of len/bins per bin,
// against bins-1 degrees of freedom. The last bin is closed so the maximum is
// counted. A constant sample is bucketed over [v-0.5, v+0.5].
func ChiSquare(sample []float64, bins int) (Result, error) {
	if bins < 2 {
		return Result{}, errors.Wrapf(ErrInvalidBins, "chi-square test needs at least 2 bins, got %d", bins)
	}
	if err := requireLen(ChiSquareName, sample, 1); err != nil {
		return Result{}, err
	}

	observed := Histogram(sample, bins)
	expected := float64(len(sample)) / float64(bins)
	var chi float64
	for _, count := range observed {
		d := count - expected
		chi += d * d / expected
	}

	dof := bins - 1
	dist := distuv.ChiSquared{K: float64(dof)}
	return Result{
		Name:             ChiSquareName,
		Statistic:        chi,
		PValue:           clamp(dist.Survival(chi)),
		DegreesOfFreedom: dof,
	}, nil
}

// Histogram counts sample values into bins equal-width bins over the sample's
// range. The sample is not modified.
func Histogram(sample []float64, bins int) []float64 {
	if len(sample) == 0 || bins < 1 {
		return make([]float64, max(bins, 0))
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	return stat.Histogram(nil, dividers, sorted, nil)
}
