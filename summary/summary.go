// Package summary computes descriptive statistics over a sample.
package summary

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptySample is returned for a sample without values.
	ErrEmptySample = errors.New("empty sample")
	// ErrDegenerateStatistic is returned when the mean is exactly zero and the
	// coefficient of variation is undefined.
	ErrDegenerateStatistic = errors.New("degenerate statistic")
)

// Summary of a sample. StdDev is the population standard deviation.
type Summary struct {
	Mean                   float64 `json:"mean"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
}

// Calculate returns mean, standard deviation and coefficient of variation.
// With a zero mean the returned Summary still carries Mean and StdDev, its
// CoefficientOfVariation is NaN and the error is ErrDegenerateStatistic.
func Calculate(sample []float64) (Summary, error) {
	if len(sample) == 0 {
		return Summary{}, ErrEmptySample
	}

	mean, std := stat.PopMeanStdDev(sample, nil)
	s := Summary{Mean: mean, StdDev: std}
	if mean == 0 {
		s.CoefficientOfVariation = math.NaN()
		return s, errors.Wrapf(ErrDegenerateStatistic, "coefficient of variation with zero mean over %d values", len(sample))
	}
	s.CoefficientOfVariation = std / mean
	return s, nil
}
