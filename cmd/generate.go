package cmd

import (
	"bufio"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prngbench/bench"
	"github.com/tutils/prngbench/rng"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated values",
	Long: `Print values from one generator, one per line. For example:
  prngbench generate --generator=lcg --seed=42 --count=5
  prngbench generate --generator=mt --count=20 --intn=6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		kind, err := bench.ParseKind(viper.GetString("generator"))
		if err != nil {
			return err
		}
		gen, err := bench.NewGenerator(kind, viper.GetUint32("seed"))
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		count := viper.GetInt("count")
		if n := viper.GetInt("intn"); n > 0 {
			r := rand.New(rng.NewSource(gen))
			for i := 0; i < count; i++ {
				w.WriteString(strconv.Itoa(r.Intn(n)))
				w.WriteByte('\n')
			}
			return w.Flush()
		}

		for _, v := range gen.Generate(count) {
			w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			w.WriteByte('\n')
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringP("generator", "g", string(bench.LCG), "generator (lcg, mt)")
	flags.IntP("count", "c", 10, "number of values")
	flags.Int("intn", 0, "print integers in [0,intn) instead of floats")
}
