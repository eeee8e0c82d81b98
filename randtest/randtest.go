// Package randtest implements the randomness checks run against generated
// samples: monobit, poker, runs and a chi-square goodness of fit.
//
// All tests take a sample of floats in [0,1) and never modify it.
package randtest

import (
	"github.com/pkg/errors"
)

var (
	// ErrInsufficientSampleSize is returned when a sample is too short for a test.
	ErrInsufficientSampleSize = errors.New("insufficient sample size")
	// ErrInvalidBins is returned for a chi-square histogram with fewer than two bins.
	ErrInvalidBins = errors.New("invalid number of bins")
)

// Result of a single test.
type Result struct {
	Name             string  `json:"name"`
	Statistic        float64 `json:"statistic"`
	PValue           float64 `json:"p_value"`
	DegreesOfFreedom int     `json:"degrees_of_freedom,omitempty"`
}

// Passed reports whether the null hypothesis of randomness survives at level alpha.
func (r Result) Passed(alpha float64) bool {
	return r.PValue >= alpha
}

func requireLen(name string, sample []float64, min int) error {
	if len(sample) < min {
		return errors.Wrapf(ErrInsufficientSampleSize, "%s test needs at least %d values, got %d", name, min, len(sample))
	}
	return nil
}

// clamp keeps p-values inside [0,1] against rounding in the tails.
func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
