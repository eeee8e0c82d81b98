package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prngbench/bench"
	"github.com/tutils/prngbench/report"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Time generation for growing sample sizes",
	Long: `Time one generation call per sample size and generator. For example:
  prngbench sweep --sizes=100,1000,10000,100000,1000000
  prngbench sweep --generators=lcg --format=json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		kinds, err := bench.ParseKinds(stringList("generators"))
		if err != nil {
			return err
		}
		sizes, err := intList("sizes")
		if err != nil {
			return err
		}
		cfg := bench.DefaultConfig()
		cfg.Seed = viper.GetUint32("seed")
		cfg.Generators = kinds
		cfg.SweepSizes = sizes
		if err := cfg.Validate(); err != nil {
			return err
		}

		res := &bench.Results{RunID: uuid.NewString(), Seed: cfg.Seed, Alpha: cfg.Alpha}
		for _, kind := range kinds {
			timings, err := bench.Sweep(kind, cfg.Seed, cfg.SweepSizes)
			if err != nil {
				return err
			}
			res.Sweep = append(res.Sweep, timings...)
		}

		if viper.GetString("format") == "json" {
			return report.JSON(cmd.OutOrStdout(), res)
		}
		return report.Timings(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	flags := sweepCmd.Flags()
	flags.StringP("generators", "g", kindNames(bench.Kinds), "comma separated generators to time (lcg, mt)")
	flags.String("sizes", joinInts(bench.DefaultSweepSizes), "comma separated sample sizes to time")
	flags.StringP("format", "f", "text", "output format: text or json")
}
