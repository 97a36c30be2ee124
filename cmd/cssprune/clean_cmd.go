package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove unused CSS rules from the stylesheet",
	Long: `Recompute the unused set with comment scanning enabled, delete the
matching rule blocks, and rewrite the stylesheet in place. Removal is a
single-level brace eraser: it drops ".name { ... }" blocks but never an
enclosing at-rule wrapper.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runClean()
	},
}

func init() {
	cleanCmd.Flags().Bool("dry-run", false, "Show what would be removed without rewriting the stylesheet")
}

func runClean() error {
	config := buildConfig()

	result, err := cssprune.RemoveUnused(config)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		useColors := cssprune.ShouldUseColors(getBoolWithFallback("color", "color", false))
		reporter := cssprune.NewReporter(os.Stdout, useColors)
		reporter.PrintClean(result, config.StylesheetPath)
	}

	return nil
}
