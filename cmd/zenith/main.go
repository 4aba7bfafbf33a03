package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "zenith [files...]",
	Short: "Tokenize Zenith source code",
	Long: `Tokenize Zenith source code and print the resulting tokens.

Source is read from the files given as arguments, from --code, or from
standard input with --stdin. Whitespace tokens are hidden unless
--whitespace is set.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
	},
	RunE: lexHandler,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  versionHandler,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.zenith.yaml)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("no-color", pf.Lookup("no-color"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))

	// Root command flags
	addInputFlags(rootCmd)
	f := rootCmd.Flags()
	f.StringP("output", "o", "text", "Output format (text, json)")
	f.Bool("timing", true, "Print the time spent lexing")
	f.BoolP("whitespace", "w", false, "Print whitespace tokens")
	f.Bool("keep-trailing-whitespace", false, "Keep the final whitespace token")
	f.Bool("strict-strings", false, "Treat unterminated strings as errors")
	f.String("cpu-profile", "", "Capture CPU profile")
	viper.BindPFlags(f)

	rootCmd.RegisterFlagCompletionFunc("output",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp
		})

	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".zenith")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("zenith")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine, an explicit one is not.
		if cfgFile != "" {
			fatal(fmt.Errorf("reading config: %w", err))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errorText(err))
		os.Exit(1)
	}
}
