package cssprune

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAnalysis_AllUsed(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintAnalysis(&Analysis{DefinedCount: 3, UsedCount: 3}, false)

	assert.Contains(t, buf.String(), "All styles are in use.")
	assert.NotContains(t, buf.String(), "Total:")
}

func TestPrintAnalysis_Categorized(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintAnalysis(&Analysis{
		Unused:       []string{"btn-ghost", "hero-title"},
		DefinedCount: 5,
		UsedCount:    3,
	}, false)

	out := buf.String()
	assert.Contains(t, out, "Found 2 unused classes:")
	assert.Contains(t, out, "Buttons:")
	assert.Contains(t, out, "  .btn-ghost")
	assert.Contains(t, out, "Other:")
	assert.Contains(t, out, "  .hero-title")
	assert.Contains(t, out, "Total: 2 unused classes")

	// Buckets print in fixed order
	assert.Less(t, strings.Index(out, "Buttons:"), strings.Index(out, "Other:"))
}

func TestPrintAnalysis_SingularHeader(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintAnalysis(&Analysis{Unused: []string{"lonely"}}, false)

	assert.Contains(t, buf.String(), "Found 1 unused class:")
}

func TestPrintAnalysis_Verbose(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintAnalysis(&Analysis{
		Unused:       []string{"stale"},
		DefinedCount: 2,
		UsedCount:    1,
		Stats:        ScanStats{FilesScanned: 4, FilesSkipped: 1},
		Stylesheet:   StylesheetStats{Rules: 7, Declarations: 19, ClassSelectors: 6},
	}, true)

	out := buf.String()
	assert.Contains(t, out, "Statistics")
	assert.Contains(t, out, "Files scanned:       4")
	assert.Contains(t, out, "Stylesheet rules:    7")
}

func TestPrintClean(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintClean(&CleanResult{
		Removed:     []string{"unused-box"},
		RulesBefore: 2,
		RulesAfter:  1,
	}, "src/input.css")

	out := buf.String()
	assert.Contains(t, out, "Found 1 unused class:")
	assert.Contains(t, out, "  .unused-box")
	assert.Contains(t, out, "Removed 1 unused style from src/input.css (2 rules -> 1)")
}

func TestPrintClean_DryRun(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintClean(&CleanResult{
		Removed:     []string{"a", "b"},
		RulesBefore: 3,
		RulesAfter:  1,
		DryRun:      true,
	}, "src/input.css")

	out := buf.String()
	assert.Contains(t, out, "Dry run: 2 rules would be removed from src/input.css (3 rules -> 1)")
}

func TestPrintClean_NothingToRemove(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintClean(&CleanResult{RulesBefore: 2, RulesAfter: 2}, "src/input.css")

	assert.Contains(t, buf.String(), "No unused styles found.")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	analysis := &Analysis{
		Unused:       []string{"btn-ghost", "fade-out"},
		DefinedCount: 10,
		UsedCount:    8,
		Stats:        ScanStats{FilesScanned: 3},
	}

	require.NoError(t, WriteJSON(&buf, analysis))

	var report JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "1.0", report.Version)
	assert.NotEmpty(t, report.Timestamp)
	assert.Equal(t, 10, report.Summary.SelectorsDefined)
	assert.Equal(t, 8, report.Summary.ClassesUsed)
	assert.Equal(t, 2, report.Summary.Unused)
	assert.Equal(t, 3, report.Summary.FilesScanned)
	assert.Equal(t, []string{"btn-ghost", "fade-out"}, report.Unused)

	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Buttons", report.Categories[0].Name)
	assert.Equal(t, "Animations", report.Categories[1].Name)
}

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json"))
	assert.Equal(t, OutputText, DetermineOutputFormat("text"))
	assert.Equal(t, OutputText, DetermineOutputFormat(""))
	assert.Equal(t, OutputText, DetermineOutputFormat("bogus"))
}
