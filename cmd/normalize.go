package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tyrefit/internal/size"
)

var normalizeSlug bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize <size>",
	Short: "Parse a tyre size and print its canonical form",
	Long: `Parse a tyre size in canonical ("205/55 R16", "205/55r16") or slug
("205-55-16") notation and print the canonical form, or the retailer URL
slug with --slug.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(args[0])
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeSlug, "slug", false, "Print the URL slug form instead")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(text string) error {
	t, err := size.Parse(text)
	if err != nil {
		if slugSize, slugErr := size.ParseSlug(text); slugErr == nil {
			t = slugSize
		} else {
			return err
		}
	}

	if normalizeSlug {
		fmt.Println(t.Slug())
	} else {
		fmt.Println(t.String())
	}
	return nil
}
