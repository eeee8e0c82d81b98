package report

import (
	"sort"
	"strconv"

	"github.com/tutils/prngbench/bench"
)

// Series is one line of the size vs generation time chart.
type Series struct {
	Generator string    `json:"generator"`
	Sizes     []int     `json:"sizes"`
	Seconds   []float64 `json:"seconds"`
}

// Plot groups the sweep by generator, preserving first appearance order.
func Plot(res *bench.Results) []Series {
	var series []Series
	index := make(map[string]int)
	for _, t := range res.Sweep {
		i, ok := index[t.Generator]
		if !ok {
			i = len(series)
			index[t.Generator] = i
			series = append(series, Series{Generator: t.Generator})
		}
		series[i].Sizes = append(series[i].Sizes, t.Size)
		series[i].Seconds = append(series[i].Seconds, t.Elapsed.Seconds())
	}
	return series
}

func (s Series) secondsAt(size int) string {
	for i, sz := range s.Sizes {
		if sz == size {
			return strconv.FormatFloat(s.Seconds[i], 'f', 6, 64)
		}
	}
	return "-"
}

func sweepSizes(series []Series) []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, s := range series {
		for _, size := range s.Sizes {
			if !seen[size] {
				seen[size] = true
				sizes = append(sizes, size)
			}
		}
	}
	sort.Ints(sizes)
	return sizes
}
