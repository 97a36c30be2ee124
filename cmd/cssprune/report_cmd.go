package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report unused CSS classes",
	Long: `Extract class selectors from the stylesheet, scan the search paths
for class references, and print the selectors nothing uses, grouped into
categories.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runReport()
	},
}

func init() {
	f := reportCmd.Flags()
	f.String("output-format", "", "Output format: text|json")
	f.Bool("strict", false, "Exit 1 when unused classes exist (CI mode)")
	f.Bool("scan-comments", false, "Also count selectors that only appear inside stylesheet comments")
}

// runReport is shared between `cssprune report` and the bare `cssprune`.
func runReport() error {
	config := buildConfig()

	analysis, err := cssprune.FindUnused(config)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		requested := getStringWithFallback("output-format", "report.output-format", "")
		switch cssprune.DetermineOutputFormat(requested) {
		case cssprune.OutputJSON:
			if err := cssprune.WriteJSON(os.Stdout, analysis); err != nil {
				return fmt.Errorf("writing JSON: %w", err)
			}
		default:
			useColors := cssprune.ShouldUseColors(getBoolWithFallback("color", "color", false))
			reporter := cssprune.NewReporter(os.Stdout, useColors)
			reporter.PrintAnalysis(analysis, config.Verbose)
		}
	}

	// Soft gate: unused classes only fail the run in strict mode
	strict := getBoolWithFallback("strict", "report.strict", false)
	if strict && len(analysis.Unused) > 0 {
		os.Exit(1)
	}

	return nil
}
