package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// ErrIssuesFound is returned by validator commands running in strict mode
// when at least one defect was reported. It carries no message of its own;
// the transcript already said everything.
var ErrIssuesFound = errors.New("validation issues found")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pdxlint",
	Short: "pdxlint - cross-reference linter for Paradox mod scripts",
	Long: `pdxlint statically cross-references the script assets of a Paradox-style
mod. It scans the mod tree for flags (country/state/global), event targets
and scripted localisations, and reports symbols that are used but never
set or defined, set or defined but never used, and cleared without ever
having been set.

pdxlint never parses the script into a syntax tree; it works on the same
textual patterns the game engine's own syntax uses, which keeps it fast
enough to run as a pre-commit hook over the whole mod.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pdxlint v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.pdxlint/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.pdxlint")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match PDXLINT_*
	viper.SetEnvPrefix("PDXLINT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
