package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssprune",
	Short: "Find and remove unused CSS classes",
	Long: `Scan a stylesheet and your markup/script files, report class
selectors that are never referenced, and optionally delete their rules.`,
	// Default behavior: run report when no subcommand is given.
	// loadConfig must be called here because PreRunE of reportCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runReport()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssprune.yaml", "Config file path")
	rootCmd.PersistentFlags().String("stylesheet", "src/input.css", "Stylesheet to analyze")
	rootCmd.PersistentFlags().StringSlice("paths", nil,
		"Files, directories, or glob patterns to scan for class usage")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
