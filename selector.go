package cssprune

import (
	"fmt"
	"os"
	"regexp"
)

var (
	// Comment stripping for the strict extraction mode
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//.*`)

	// Strict mode: a class selector heading a rule or part of a
	// comma-separated selector list (.name{ or .name,). The trailing
	// character requirement avoids false positives from decimal numbers
	// and unrelated dotted tokens.
	classRuleRe = regexp.MustCompile(`\.([a-zA-Z][a-zA-Z0-9_-]*)\s*[,{]`)

	// Loose mode: any dot-prefixed identifier, comments included.
	// Over-matches, acceptable for the pre-scan used by RemoveUnused.
	classTokenRe = regexp.MustCompile(`\.([a-zA-Z][a-zA-Z0-9_-]*)`)
)

// ExtractSelectors returns the set of class selectors defined in stylesheet
// content.
//
// With ignoreComments true, /* ... */ blocks and // line comments are
// stripped first and only selectors that actually head a rule (followed by
// '{' or ',') are matched. With ignoreComments false, every dot-prefixed
// identifier counts, including those inside comments.
//
// Malformed CSS never produces an error; the regexes simply yield fewer or
// more matches.
func ExtractSelectors(content string, ignoreComments bool) ClassSet {
	classes := make(ClassSet)

	if ignoreComments {
		content = blockCommentRe.ReplaceAllString(content, "")
		content = lineCommentRe.ReplaceAllString(content, "")
		for _, m := range classRuleRe.FindAllStringSubmatch(content, -1) {
			classes.Add(m[1])
		}
		return classes
	}

	for _, m := range classTokenRe.FindAllStringSubmatch(content, -1) {
		classes.Add(m[1])
	}
	return classes
}

// SelectorsFromFile reads a stylesheet and extracts its class selectors.
// A missing or unreadable stylesheet is an error; the caller aborts the run.
func SelectorsFromFile(path string, ignoreComments bool) (ClassSet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ExtractSelectors(string(content), ignoreComments), nil
}
