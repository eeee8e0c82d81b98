package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/tutils/prngbench/bench"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type document struct {
	*bench.Results
	Plot []Series `json:"plot"`
}

// JSON writes the results and the plot series as an indented document.
// An undefined coefficient of variation is written as 0; such generators carry
// "degenerate": true.
func JSON(w io.Writer, res *bench.Results) error {
	doc := document{Results: res, Plot: Plot(res)}
	if hasDegenerate(res) {
		cp := *res
		cp.Generators = append([]bench.GeneratorResults(nil), res.Generators...)
		for i := range cp.Generators {
			if cp.Generators[i].Degenerate {
				cp.Generators[i].Summary.CoefficientOfVariation = 0
			}
		}
		doc.Results = &cp
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func hasDegenerate(res *bench.Results) bool {
	for _, g := range res.Generators {
		if g.Degenerate {
			return true
		}
	}
	return false
}
