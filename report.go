package cssprune

import (
	"fmt"
	"io"
	"os"
)

// Reporter renders analysis and clean results for humans.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines whether color output is enabled: an explicit
// flag wins, then CI color hints, then TTY detection.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if info, _ := os.Stdout.Stat(); info != nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintAnalysis writes the categorized unused-class report. An empty unused
// set is a success state with its own message, not an error.
func (r *Reporter) PrintAnalysis(a *Analysis, verbose bool) {
	if len(a.Unused) == 0 {
		fmt.Fprintln(r.w, render(styleSuccess, "All styles are in use.", r.useColors))
		r.printVerbose(a, verbose)
		return
	}

	header := fmt.Sprintf("Found %d unused %s:", len(a.Unused), pluralize(len(a.Unused), "class", "classes"))
	fmt.Fprintln(r.w, render(styleHeader, header, r.useColors))
	fmt.Fprintln(r.w, "==================================================")

	for _, category := range Categorize(a.Unused) {
		fmt.Fprintln(r.w, "")
		fmt.Fprintf(r.w, "%s:\n", render(styleHeader, category.Name, r.useColors))
		for _, name := range category.Classes {
			fmt.Fprintf(r.w, "  %s\n", render(styleUnused, "."+name, r.useColors))
		}
	}

	fmt.Fprintln(r.w, "")
	total := fmt.Sprintf("Total: %d unused %s", len(a.Unused), pluralize(len(a.Unused), "class", "classes"))
	fmt.Fprintln(r.w, render(styleDim, total, r.useColors))

	r.printVerbose(a, verbose)
}

// printVerbose appends scan and stylesheet statistics.
func (r *Reporter) printVerbose(a *Analysis, verbose bool) {
	if !verbose {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, render(styleHeader, "Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------")
	fmt.Fprintf(r.w, "Selectors defined:   %d\n", a.DefinedCount)
	fmt.Fprintf(r.w, "Classes referenced:  %d\n", a.UsedCount)
	fmt.Fprintf(r.w, "Files scanned:       %d\n", a.Stats.FilesScanned)
	fmt.Fprintf(r.w, "Files skipped:       %d\n", a.Stats.FilesSkipped)
	fmt.Fprintf(r.w, "Stylesheet rules:    %d\n", a.Stylesheet.Rules)
	fmt.Fprintf(r.w, "Declarations:        %d\n", a.Stylesheet.Declarations)
	fmt.Fprintf(r.w, "Class selectors:     %d\n", a.Stylesheet.ClassSelectors)
}

// PrintClean writes the removal summary. Names are listed so the log shows
// what was removed even after the file changed.
func (r *Reporter) PrintClean(result *CleanResult, stylesheetPath string) {
	if len(result.Removed) == 0 {
		fmt.Fprintln(r.w, render(styleSuccess, "No unused styles found.", r.useColors))
		return
	}

	header := fmt.Sprintf("Found %d unused %s:", len(result.Removed), pluralize(len(result.Removed), "class", "classes"))
	fmt.Fprintln(r.w, render(styleHeader, header, r.useColors))
	for _, name := range result.Removed {
		fmt.Fprintf(r.w, "  %s\n", render(styleUnused, "."+name, r.useColors))
	}

	fmt.Fprintln(r.w, "")
	if result.DryRun {
		fmt.Fprintf(r.w, "Dry run: %d %s would be removed from %s (%d rules -> %d)\n",
			len(result.Removed), pluralize(len(result.Removed), "rule", "rules"),
			stylesheetPath, result.RulesBefore, result.RulesAfter)
		return
	}

	fmt.Fprintf(r.w, "Removed %d unused %s from %s (%d rules -> %d)\n",
		len(result.Removed), pluralize(len(result.Removed), "style", "styles"),
		stylesheetPath, result.RulesBefore, result.RulesAfter)
}

// pluralize picks the singular or plural form for a count.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
