package randtest

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tutils/prngbench/rng"
)

const (
	// PokerName is the Result name of the poker test.
	PokerName = "poker"

	handSize = 5
	// hands is the number of possible five digit hands
	hands = 100000
	// pokerDegreesOfFreedom and pokerExpectedShare assume 1000 equally likely
	// hands. Both are fixed and do not depend on the hands observed.
	pokerDegreesOfFreedom = 999
	pokerExpectedShare    = 0.01
)

// Poker splits the sample into hands of five consecutive values, maps every
// value to the last decimal digit of its 32-bit word and counts the distinct
// five digit hands. The chi-square statistic is taken over the observed hands
// only, each expected to appear in 1% of the groups, and compared against 999
// degrees of freedom. Trailing values that do not fill a hand are ignored.
func Poker(sample []float64) (Result, error) {
	if err := requireLen(PokerName, sample, handSize); err != nil {
		return Result{}, err
	}

	groups := len(sample) / handSize
	observed := countHands(sample)

	expected := float64(groups) * pokerExpectedShare
	var chi float64
	for _, count := range observed {
		if count == 0 {
			continue
		}
		d := float64(count) - expected
		chi += d * d / expected
	}

	dist := distuv.ChiSquared{K: pokerDegreesOfFreedom}
	return Result{
		Name:             PokerName,
		Statistic:        chi,
		PValue:           clamp(dist.Survival(chi)),
		DegreesOfFreedom: pokerDegreesOfFreedom,
	}, nil
}

// PokerHands returns the number of distinct hands in sample.
func PokerHands(sample []float64) int {
	distinct := 0
	for _, count := range countHands(sample) {
		if count > 0 {
			distinct++
		}
	}
	return distinct
}

// countHands indexes every hand by its digits read as a five digit number.
// Callers walk the counts in hand order, so sums over them are reproducible.
func countHands(sample []float64) []int {
	counts := make([]int, hands)
	for i := 0; i+handSize <= len(sample); i += handSize {
		hand := 0
		for _, v := range sample[i : i+handSize] {
			hand = hand*10 + int(rng.ToUint32(v)%10)
		}
		counts[hand]++
	}
	return counts
}
