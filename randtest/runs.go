package randtest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// RunsName is the Result name of the runs test.
const RunsName = "runs"

// RunsResult extends Result with the run count and the share of values equal
// to exactly 1.
type RunsResult struct {
	Result
	Runs int     `json:"runs"`
	Pi   float64 `json:"pi"`
}

// Runs counts maximal runs of equal values in the raw sample. Any two distinct
// floats end a run, so a continuous sample has close to one run per value.
// The count is compared with mean (2n-1)/3 and variance (16n-29)/90 and the
// upper tail of the standard normal gives the p-value.
//
// Pi is reported for reference only. Values in [0,1) never equal 1, so it is
// zero for generated samples.
func Runs(sample []float64) (RunsResult, error) {
	if err := requireLen(RunsName, sample, 2); err != nil {
		return RunsResult{}, err
	}

	n := len(sample)
	runs := 1
	ones := 0
	for i, v := range sample {
		if v == 1 {
			ones++
		}
		if i > 0 && v != sample[i-1] {
			runs++
		}
	}

	fn := float64(n)
	mean := (2*fn - 1) / 3
	stdDev := math.Sqrt((16*fn - 29) / 90)
	z := (float64(runs) - mean) / stdDev

	return RunsResult{
		Result: Result{
			Name:      RunsName,
			Statistic: z,
			PValue:    clamp(distuv.UnitNormal.Survival(z)),
		},
		Runs: runs,
		Pi:   float64(ones) / fn,
	}, nil
}
