package cssprune

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var (
	// Patterns for finding class references in markup and scripts
	classAttrRe = regexp.MustCompile(`class="([^"]*)"`)
	classListRe = regexp.MustCompile(`classList\.(?:add|remove|toggle|contains)\(\s*['"]([^'"]+)['"]`)
	classNameRe = regexp.MustCompile(`className="([^"]*)"`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// usageExtensions marks the file types scanned during directory walks.
var usageExtensions = map[string]bool{
	".html": true,
	".js":   true,
}

// ScanUsage scans the given files, directories, and glob patterns and
// returns the set of class names referenced anywhere in them.
//
// Entries containing a wildcard are expanded against the filesystem first.
// Expanded entries that are files are scanned directly; directories are
// walked recursively, keeping only .html and .js files. A file that
// disappears between discovery and read is silently skipped.
func ScanUsage(searchPaths []string) (ClassSet, ScanStats, error) {
	stats := ScanStats{}

	expanded, err := expandSearchPaths(searchPaths)
	if err != nil {
		return nil, stats, err
	}

	files := collectFiles(expanded, &stats)

	used := make(ClassSet)
	for _, path := range files {
		// Existence re-check: discovery and read are separate passes
		if _, err := os.Stat(path); err != nil {
			stats.FilesSkipped++
			continue
		}

		// #nosec G304 - paths come from configured search roots
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, stats, fmt.Errorf("read %s: %w", path, err)
		}
		stats.FilesScanned++

		extractUsage(string(content), used)
	}

	return used, stats, nil
}

// expandSearchPaths expands glob patterns to concrete paths. Entries without
// wildcard characters pass through unchanged.
func expandSearchPaths(paths []string) ([]string, error) {
	var expanded []string

	for _, path := range paths {
		if !strings.ContainsAny(path, "*?[") {
			expanded = append(expanded, path)
			continue
		}

		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %s: %w", path, err)
		}
		expanded = append(expanded, matches...)
	}

	return expanded, nil
}

// collectFiles resolves expanded paths to the list of files to scan.
// Explicit files are used as-is; directories are walked recursively and
// filtered by extension and gitignore.
func collectFiles(expanded []string, stats *ScanStats) []string {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
			stats.FilesDiscovered++
		}
	}

	for _, path := range expanded {
		info, err := os.Stat(path)
		if err != nil {
			// Missing entries are not an error; they are skipped later anyway
			continue
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if !usageExtensions[strings.ToLower(filepath.Ext(p))] {
				stats.FilesSkipped++
				return nil
			}
			if shouldSkipFile(p) {
				stats.FilesSkipped++
				return nil
			}
			add(p)
			return nil
		})
	}

	return files
}

// extractUsage applies the three usage patterns to file content, unioning
// all matches into used.
func extractUsage(content string, used ClassSet) {
	// class="a b c" splits into individual tokens
	for _, m := range classAttrRe.FindAllStringSubmatch(content, -1) {
		for _, name := range strings.Fields(m[1]) {
			used.Add(name)
		}
	}

	// classList.add/remove/toggle/contains('name') takes the first
	// string-literal argument only
	for _, m := range classListRe.FindAllStringSubmatch(content, -1) {
		used.Add(m[1])
	}

	// className="a b c" (framework convention) splits like class=
	for _, m := range classNameRe.FindAllStringSubmatch(content, -1) {
		for _, name := range strings.Fields(m[1]) {
			used.Add(name)
		}
	}
}

// loadGitIgnore loads the .gitignore file once.
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile checks a walked file against .gitignore. Only relative
// paths are checked; absolute paths (like /tmp/...) are outside the project
// and not affected by its gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}
