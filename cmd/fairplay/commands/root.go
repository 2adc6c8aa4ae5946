package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fairplay",
	Short: "FairPlay - athlete valuation and campaign matchmaking engine",
	Long: `FairPlay Unified CLI

Fair-market-value scoring and brand campaign matchmaking for
student athletes.

Usage:
  go run ./cmd/fairplay [command]

Examples:
  go run ./cmd/fairplay api
  go run ./cmd/fairplay valuate ath_123
  go run ./cmd/fairplay match cmp_456 --max-results 10
  go run ./cmd/fairplay scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
