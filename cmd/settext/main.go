// Package main provides the settext CLI application.
//
// settext lints structured-text set documents, reporting indentation
// and syntax anomalies, and can watch directories for changes and
// re-lint files as they are saved.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set during build time.
var version = "dev"

var (
	flagConfig  string
	flagLenient bool
	flagFormat  string
	flagColor   string
	flagCompact bool
)

var rootCmd = &cobra.Command{
	Use:   "settext",
	Short: "settext checks structured-text set documents",
	Long: "settext reads the tab-indented key/value format used by set documents\n" +
		"and reports warnings and parse errors. It can lint individual files or\n" +
		"watch directories and re-lint on every save.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the settext version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("settext %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&flagLenient, "lenient", false, "suppress recoverable warnings")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format (table, simple, json)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "color output (auto, always, never)")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
