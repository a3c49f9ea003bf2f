package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tyrefit/internal/fitment"
	"github.com/dotcommander/tyrefit/internal/fleet"
)

var (
	batchRoot    string
	batchPattern string
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Evaluate every vehicle in one or more fleet files",
	Long: `Evaluate the OEM size of every vehicle listed in the given fleet YAML
files and print one report per vehicle.

A fleet file lists vehicles under a top-level "vehicles:" key:

  vehicles:
    - vehicle: Golf Mk7
      oem: 205/55 R16
    - vehicle: Model 3 Performance
      oem: 235-35-20

With no file arguments, --root discovers fleet files by glob
(default pattern **/*.{yaml,yml}). Files that fail to load are reported and
skipped; the command exits non-zero if any file failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchRoot, "root", "", "Directory to discover fleet files in when no files are given")
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "", "Discovery glob pattern (default **/*.{yaml,yml})")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(files []string) error {
	setup, err := setupEvaluation()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		if batchRoot == "" {
			return fmt.Errorf("no fleet files given and no --root to discover them in")
		}
		files, err = fleet.Discover(batchRoot, batchPattern)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no fleet files found under %s", batchRoot)
		}
	}

	var reports []*fitment.Report
	failed := 0
	for _, path := range files {
		f, err := fleet.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}
		for _, entry := range f.Vehicles {
			oem, err := entry.Size()
			if err != nil {
				// LoadFile already validated every entry.
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
				failed++
				continue
			}
			reports = append(reports, setup.engine.EvaluateSize(oem, entry.Vehicle))
		}
	}

	if len(reports) > 0 {
		if err := setup.formatter.FormatAll(reports); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d fleet file(s) failed", failed)
	}
	return nil
}
