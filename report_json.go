package cssprune

import (
	"encoding/json"
	"io"
	"time"
)

// JSONReport is the structured export schema for the report command.
type JSONReport struct {
	Version    string         `json:"version"`
	Timestamp  string         `json:"timestamp"`
	Summary    JSONSummary    `json:"summary"`
	Categories []JSONCategory `json:"categories"`
	Unused     []string       `json:"unused"`
}

// JSONSummary contains high-level analysis counts.
type JSONSummary struct {
	SelectorsDefined int `json:"selectors_defined"`
	ClassesUsed      int `json:"classes_used"`
	Unused           int `json:"unused"`
	FilesScanned     int `json:"files_scanned"`
}

// JSONCategory is one report bucket.
type JSONCategory struct {
	Name    string   `json:"name"`
	Classes []string `json:"classes"`
}

// WriteJSON writes the analysis as indented JSON.
func WriteJSON(w io.Writer, a *Analysis) error {
	categories := Categorize(a.Unused)
	jsonCategories := make([]JSONCategory, len(categories))
	for i, c := range categories {
		jsonCategories[i] = JSONCategory{Name: c.Name, Classes: c.Classes}
	}

	report := JSONReport{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			SelectorsDefined: a.DefinedCount,
			ClassesUsed:      a.UsedCount,
			Unused:           len(a.Unused),
			FilesScanned:     a.Stats.FilesScanned,
		},
		Categories: jsonCategories,
		Unused:     a.Unused,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
