package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prngbench/bench"
	"github.com/tutils/prngbench/randtest"
	"github.com/tutils/prngbench/report"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate, test and time both generators",
	Long: `Generate a sample with every selected generator, print summary statistics
and randomness test results, then time generation for each sweep size. For example:
  prngbench run --seed=42 --size=100000 --bins=10
  prngbench run --generators=mt --no-sweep --format=json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		cfg, err := configFromViper()
		if err != nil {
			return err
		}
		if viper.GetBool("no-sweep") {
			cfg.SweepSizes = nil
		}

		res, err := bench.Run(cfg)
		if err != nil {
			return err
		}
		return writeResults(cmd, res, viper.GetString("format"))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.IntP("size", "n", bench.DefaultSampleSize, "sample size analysed per generator")
	flags.IntP("bins", "b", randtest.DefaultBins, "chi-square histogram bins")
	flags.Float64P("alpha", "a", bench.DefaultAlpha, "significance level for pass/fail markers")
	flags.StringP("generators", "g", kindNames(bench.Kinds), "comma separated generators to run (lcg, mt)")
	flags.String("sweep", joinInts(bench.DefaultSweepSizes), "comma separated sample sizes to time")
	flags.Bool("no-sweep", false, "skip the timing sweep")
	flags.StringP("format", "f", "text", "output format: text or json")
}

func configFromViper() (bench.Config, error) {
	kinds, err := bench.ParseKinds(stringList("generators"))
	if err != nil {
		return bench.Config{}, err
	}
	sizes, err := intList("sweep")
	if err != nil {
		return bench.Config{}, err
	}
	return bench.Config{
		Seed:       viper.GetUint32("seed"),
		SampleSize: viper.GetInt("size"),
		Bins:       viper.GetInt("bins"),
		Alpha:      viper.GetFloat64("alpha"),
		Generators: kinds,
		SweepSizes: sizes,
	}, nil
}

func writeResults(cmd *cobra.Command, res *bench.Results, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "text":
		return report.Text(out, res, report.WithColors(colorOutput(cmd)))
	case "json":
		return report.JSON(out, res)
	}
	return fmt.Errorf("unknown format %q, want text or json", format)
}

func kindNames(kinds []bench.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}
