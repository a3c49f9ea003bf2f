package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tyrefit/internal/config"
	"github.com/dotcommander/tyrefit/internal/fitment"
	"github.com/dotcommander/tyrefit/internal/output"
	"github.com/dotcommander/tyrefit/internal/profile"
)

var fitCmd = &cobra.Command{
	Use:   "fit <size>",
	Short: "Evaluate alternatives for one OEM tyre size",
	Long: `Evaluate every candidate size the step policy derives from the given
OEM size and print the ranked safe alternatives.

Examples:

  tyrefit fit "265/30 R20"
  tyrefit fit 265/30R20 --vehicle "M4 Competition"
  tyrefit fit 265/30R20 --profile strict --format json -o report.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFit(args[0])
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)
}

// evalSetup is everything a fit or batch run needs: the resolved config, the
// engine built from the selected profile, and the formatter.
type evalSetup struct {
	cfg       *config.Config
	engine    *fitment.Engine
	formatter output.Formatter
}

// setupEvaluation loads config, resolves the limit profile, and builds the
// engine and formatter. Shared by fit and batch.
func setupEvaluation() (*evalSetup, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	limits, name, err := resolveLimits(cfg)
	if err != nil {
		return nil, err
	}

	formatter, err := output.New(cfg.Format, output.Options{
		Quiet:       cfg.Quiet,
		Verbose:     cfg.Verbose,
		NoColor:     cfg.NoColor,
		OutputFile:  cfg.Output,
		ProfileName: name,
		Version:     Version,
	})
	if err != nil {
		return nil, err
	}

	return &evalSetup{
		cfg:       cfg,
		engine:    fitment.NewEngine(limits, nil),
		formatter: formatter,
	}, nil
}

// resolveLimits selects the safety envelope: a custom profile file when
// given, a built-in profile otherwise, with --min-score overriding the
// profile's surfacing floor.
func resolveLimits(cfg *config.Config) (fitment.Limits, string, error) {
	var (
		p    *profile.Profile
		err  error
		name string
	)
	if cfg.ProfileFile != "" {
		p, err = profile.LoadFile(cfg.ProfileFile)
		name = cfg.ProfileFile
	} else {
		p, err = profile.Load(cfg.Profile)
		name = cfg.Profile
	}
	if err != nil {
		return fitment.Limits{}, "", err
	}

	limits := p.Limits
	if cfg.MinScore > 0 {
		limits.MinScoreShown = cfg.MinScore
	}
	if err := limits.Validate(); err != nil {
		return fitment.Limits{}, "", fmt.Errorf("profile %s: %w", name, err)
	}
	return limits, name, nil
}

func runFit(sizeText string) error {
	setup, err := setupEvaluation()
	if err != nil {
		return err
	}

	report, err := setup.engine.Evaluate(sizeText, setup.cfg.Vehicle)
	if err != nil {
		return err
	}

	return setup.formatter.Format(report)
}
