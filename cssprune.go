// Package cssprune finds and removes unused CSS class rules.
//
// cssprune extracts the class selectors defined in a stylesheet, scans a set
// of markup and script files for class references, and reports (or deletes)
// the selectors that are never used.
//
// # Finding unused classes
//
//	config := cssprune.Config{
//		StylesheetPath: "src/input.css",
//		SearchPaths:    []string{"src/*.html", "src/partials", "src/common.js"},
//	}
//	analysis, err := cssprune.FindUnused(config)
//
// # Removing unused rules
//
//	result, err := cssprune.RemoveUnused(config)
//
// RemoveUnused rewrites the stylesheet in place. It intentionally recomputes
// the unused set with comment scanning enabled, so a class name that appears
// only inside stylesheet comments still counts as defined; see RemoveUnused
// for details.
//
// # CLI Tool
//
// cssprune also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssprune/cmd/cssprune@latest
package cssprune
