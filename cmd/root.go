package cmd

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tutils/prngbench/bench"
)

var (
	cfgFile   string
	verbose   bool
	pprofAddr string

	// Shared flags
	seed uint32
)

const envPrefix = "PRNGBENCH"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prngbench",
	Short: "Pseudo-random generator benchmark.",
	Long: `Pseudo-random generator benchmark.
Generates samples with a linear congruential generator and a Mersenne Twister,
checks them with the chi-square, monobit, poker and runs tests and times
generation for growing sample sizes. For example:
  prngbench run --seed=42 --size=100000
  prngbench generate --generator=mt --count=10
  prngbench sweep --sizes=100,1000,10000`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(verbose)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		if pprofAddr != "" {
			go func() {
				if err := http.ListenAndServe(pprofAddr, nil); err != nil {
					logger.Warn("pprof listener stopped", zap.Error(err))
				}
			}()
		}
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("file", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.prngbench.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&pprofAddr, "pprof", "", "serve net/http/pprof on this address while running")
	flags.Uint32VarP(&seed, "seed", "s", bench.DefaultSeed, "generator seed")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err == nil {
			// Search config in home directory with name ".prngbench" (without extension).
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".prngbench")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine, defaults and flags apply.
	_ = viper.ReadInConfig()
}

// bindFlags makes viper resolve the command's flags, so a flag set on the
// command line wins over the environment and the config file. Binding happens
// per invocation because several commands share flag names.
func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}
