package cssprune

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// FindUnused computes the sorted set of class selectors defined in the
// stylesheet but referenced by none of the scanned files.
//
// When cfg.SearchPaths is empty, the default universe relative to the
// stylesheet's directory is used (sibling *.html files, a partials
// directory, and common.js).
func FindUnused(cfg Config) (*Analysis, error) {
	searchPaths := cfg.SearchPaths
	if len(searchPaths) == 0 {
		searchPaths = DefaultSearchPaths(stylesheetDir(cfg.StylesheetPath))
	}

	defined, err := SelectorsFromFile(cfg.StylesheetPath, cfg.IgnoreComments)
	if err != nil {
		return nil, err
	}

	used, stats, err := ScanUsage(searchPaths)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Unused:       defined.Diff(used).Sorted(),
		DefinedCount: defined.Len(),
		UsedCount:    used.Len(),
		Stats:        stats,
	}

	if cfg.Verbose {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(cfg.StylesheetPath)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		analysis.Stylesheet = Stats(string(content))
	}

	return analysis, nil
}

// RemoveUnused removes the rule blocks of unused classes from the
// stylesheet and rewrites it in place.
//
// The unused set is recomputed with comment scanning enabled (IgnoreComments
// forced to false), so a class name appearing only inside stylesheet
// comments still counts as defined and its commented-out rule survives
// unless the name is also absent from all usage files. Removal is therefore
// more conservative than FindUnused's default report.
//
// Removal erases every occurrence of ".name { ... }" with single-level
// braces only; rules nested inside media queries keep their outer block.
func RemoveUnused(cfg Config) (*CleanResult, error) {
	looseCfg := cfg
	looseCfg.IgnoreComments = false
	looseCfg.Verbose = false

	analysis, err := FindUnused(looseCfg)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(cfg.StylesheetPath)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	result := &CleanResult{
		Removed:     analysis.Unused,
		RulesBefore: Stats(string(content)).Rules,
		DryRun:      cfg.DryRun,
	}

	if len(analysis.Unused) == 0 {
		result.RulesAfter = result.RulesBefore
		result.BytesWritten = len(content)
		return result, nil
	}

	text := string(content)
	for _, name := range analysis.Unused {
		text = ruleRemovalPattern(name).ReplaceAllString(text, "")
	}

	result.RulesAfter = Stats(text).Rules
	result.BytesWritten = len(text)

	if cfg.DryRun {
		return result, nil
	}

	if err := os.WriteFile(cfg.StylesheetPath, []byte(text), fileMode(cfg.StylesheetPath)); err != nil {
		return nil, fmt.Errorf("rewrite stylesheet: %w", err)
	}

	return result, nil
}

// ruleRemovalPattern builds the single-level rule eraser for a class name.
// It cannot match nested braces, so a removed rule inside an at-rule leaves
// the wrapper block behind.
func ruleRemovalPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?ms)\s*\.` + regexp.QuoteMeta(name) + `\s*\{[^}]*\}`)
}

// fileMode returns the stylesheet's current mode so the rewrite preserves
// permissions, falling back to 0644.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// stylesheetDir returns the directory holding the stylesheet, for deriving
// the default search paths.
func stylesheetDir(stylesheetPath string) string {
	if stylesheetPath == "" {
		return "."
	}
	return filepath.Dir(stylesheetPath)
}
