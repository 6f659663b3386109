package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "csim",
	Short: "Structural similarity screening for source submissions",
	Long: `csim estimates the structural similarity of two source files for
plagiarism screening. Each input is scanned into a normalized token
sequence, parsed into a structure-preserving tree, flattened to a label
sequence, and the two sequences are scored with edit distance.

Renamed identifiers and changed literal values do not lower the score;
only genuinely restructured code does.

Exit codes:
  0  comparison succeeded
  1  comparison failed (unreadable input, zero tokens, bad configuration)
  2  similarity reached the --fail-above gate`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewGenCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var gateErr *domain.GateError
		if errors.As(err, &gateErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
