package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssprune.yaml config file",
	Long:  `Create a .cssprune.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssprune.yaml"); err == nil && !force {
			return fmt.Errorf(".cssprune.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssprune.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssprune.yaml")
		return nil
	},
}

const defaultConfig = `# cssprune configuration
# Docs: https://github.com/yacobolo/cssprune

# Stylesheet to analyze
stylesheet: src/input.css

# Files, directories, or glob patterns scanned for class usage.
# When omitted, the defaults are derived from the stylesheet's directory.
paths:
  - "src/*.html"
  - src/partials
  - src/common.js

verbose: false

# Reporting settings
report:
  output-format: text   # text | json
  strict: false         # exit 1 when unused classes exist
  scan-comments: false  # count selectors that only appear in comments

# Clean settings
clean:
  dry-run: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
