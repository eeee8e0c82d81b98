package randtest

import (
	"math"
	"math/bits"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tutils/prngbench/rng"
)

// MonobitName is the Result name of the monobit test.
const MonobitName = "monobit"

// Monobit checks the balance of ones and zeros. Each value is turned back into
// its 32-bit word, ones count +1 and zeros -1, and the sum is normalised by the
// square root of the number of bits. The p-value is the standard normal CDF at
// the normalised sum.
func Monobit(sample []float64) (Result, error) {
	if err := requireLen(MonobitName, sample, 1); err != nil {
		return Result{}, err
	}

	var sum int64
	for _, v := range sample {
		ones := bits.OnesCount32(rng.ToUint32(v))
		sum += int64(2*ones - 32)
	}
	total := float64(32 * len(sample))
	s := float64(sum) / math.Sqrt(total)

	return Result{
		Name:      MonobitName,
		Statistic: s,
		PValue:    clamp(distuv.UnitNormal.CDF(s)),
	}, nil
}
