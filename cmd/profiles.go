package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tyrefit/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the built-in limit profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfiles()
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles() error {
	names, err := profile.List()
	if err != nil {
		return fmt.Errorf("error listing profiles: %w", err)
	}

	for _, name := range names {
		p, err := profile.Load(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", p.Name)
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
		fmt.Printf("    diameter ±%.1f%%, width ±%dmm, aspect penalty saturates at %d, minimum score %d\n",
			p.Limits.DiameterPctMax, p.Limits.WidthDeltaMaxMm, p.Limits.AspectDeltaMax, p.Limits.MinScoreShown)
	}
	return nil
}
