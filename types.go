package cssprune

import "path/filepath"

// Config holds analysis configuration.
type Config struct {
	StylesheetPath string   // "src/input.css"
	SearchPaths    []string // Files, directories, or glob patterns to scan for usage
	IgnoreComments bool     // Skip selectors that only appear inside stylesheet comments
	DryRun         bool     // RemoveUnused computes but never writes
	Verbose        bool     // Include stylesheet stats and scan stats in reports
}

// DefaultSearchPaths returns the usage-scanning universe used when the
// caller supplies no explicit search paths: the stylesheet's sibling HTML
// files, a sibling partials directory, and one named script file.
func DefaultSearchPaths(stylesheetDir string) []string {
	return []string{
		filepath.Join(stylesheetDir, "*.html"),
		filepath.Join(stylesheetDir, "partials"),
		filepath.Join(stylesheetDir, "common.js"),
	}
}

// Analysis contains the result of an unused-class analysis.
type Analysis struct {
	Unused       []string        // Sorted unused class names
	DefinedCount int             // Distinct class selectors in the stylesheet
	UsedCount    int             // Distinct class names referenced by scanned files
	Stats        ScanStats       // File discovery statistics
	Stylesheet   StylesheetStats // Lexer-derived stylesheet statistics
}

// CleanResult contains the result of a removal run.
type CleanResult struct {
	Removed      []string // Sorted class names whose rules were removed
	RulesBefore  int      // Rule blocks in the stylesheet before removal
	RulesAfter   int      // Rule blocks after removal
	BytesWritten int      // Size of the rewritten stylesheet
	DryRun       bool     // True if the stylesheet was left untouched
}

// ScanStats tracks usage-scan file statistics.
type ScanStats struct {
	FilesDiscovered int // Files found after glob expansion and directory walks
	FilesScanned    int // Files actually read
	FilesSkipped    int // Files skipped (wrong extension, gitignored, vanished)
}

// OutputFormat selects the report rendering.
type OutputFormat string

const (
	// OutputText prints the categorized human-readable report.
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data for tooling integration.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps a requested format string to an OutputFormat,
// falling back to text for unknown values.
func DetermineOutputFormat(requested string) OutputFormat {
	switch requested {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}
