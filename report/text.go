// Package report renders bench.Results for people and for plotting tools.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/logrusorgru/aurora"

	"github.com/tutils/prngbench/bench"
	"github.com/tutils/prngbench/randtest"
)

// Text writes the human readable report: summary statistics, chi-square and
// the monobit, poker and runs p-values per generator, then the timing sweep.
func Text(w io.Writer, res *bench.Results, opts ...Option) error {
	opt := newOptions(opts...)
	au := aurora.NewAurora(opt.colors)
	marker := func(r randtest.Result) aurora.Value {
		if r.Passed(res.Alpha) {
			return au.Bold(au.Green("[ OK ]"))
		}
		return au.Bold(au.Red("[FAIL]"))
	}

	ew := &errWriter{w: w}
	ew.printf("run %s, seed %d, %d values per generator, alpha %v\n", res.RunID, res.Seed, res.SampleSize, res.Alpha)
	for i := range res.Generators {
		g := &res.Generators[i]
		ew.printf("\n%s:\n", au.Bold(g.Generator))
		s := g.Summary
		ew.printf("  Mean: %.4f, Std dev: %.4f, Coefficient of variation: %.4f", s.Mean, s.StdDev, s.CoefficientOfVariation)
		if g.Degenerate {
			ew.printf(" %s", au.Bold(au.Yellow("[WARN]")))
		}
		ew.printf("\n")
		ew.printf("  Chi-square statistic: %.4f, p-value: %.4f %s\n", g.ChiSquare.Statistic, g.ChiSquare.PValue, marker(g.ChiSquare))
		for _, r := range []randtest.Result{g.Monobit, g.Poker, g.Runs.Result} {
			ew.printf("  %-8s test p-value: %-22s %s\n", r.Name, strconv.FormatFloat(r.PValue, 'g', -1, 64), marker(r))
		}
	}

	if opt.sweep && len(res.Sweep) > 0 {
		ew.printf("\nGeneration time (seconds):\n")
		if ew.err == nil {
			ew.err = Timings(w, res)
		}
	}
	return ew.err
}

// Timings writes the sweep as a table, one row per size and one column per
// generator.
func Timings(w io.Writer, res *bench.Results) error {
	series := Plot(res)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	ew := &errWriter{w: tw}

	ew.printf("size")
	for _, s := range series {
		ew.printf("\t%s", s.Generator)
	}
	ew.printf("\n")
	for _, size := range sweepSizes(series) {
		ew.printf("%d", size)
		for _, s := range series {
			ew.printf("\t%s", s.secondsAt(size))
		}
		ew.printf("\n")
	}
	if ew.err != nil {
		return ew.err
	}
	return tw.Flush()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
