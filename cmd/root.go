// Package cmd implements the tyrefit command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"

// exitFunc is swapped out by tests to observe exit codes.
var exitFunc = os.Exit

var (
	profileName string
	profileFile string
	format      string
	outputFile  string
	minScore    int
	vehicle     string
	quiet       bool
	verbose     bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "tyrefit [size]",
	Short: "Evaluate replacement tyre sizes against an OEM size",
	Long: `tyrefit checks whether a replacement tyre size is a geometrically safe
substitute for a vehicle's original-equipment (OEM) size.

Given an OEM size like "205/55 R16", tyrefit derives the realistic retail
size steps around it, rejects anything outside the hard safety limits
(overall diameter, rim, width), scores the survivors 0-100, and prints the
ranked alternatives with the measured deltas behind each score.

The check is geometry only: load index, speed rating, pricing, and
availability are out of scope.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runFit(args[0])
	},
	Version: Version,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "standard", "Built-in limit profile (standard|strict)")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile-file", "", "Custom limit profile YAML file (overrides --profile)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for json and markdown reports")
	rootCmd.PersistentFlags().IntVar(&minScore, "min-score", 0, "Minimum surfaced score, 0 uses the profile value")
	rootCmd.PersistentFlags().StringVar(&vehicle, "vehicle", "", "Vehicle label for the report")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Explain rejected candidates too")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("profile-file", rootCmd.PersistentFlags().Lookup("profile-file"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("min-score", rootCmd.PersistentFlags().Lookup("min-score"))
	viper.BindPFlag("vehicle", rootCmd.PersistentFlags().Lookup("vehicle"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
}
