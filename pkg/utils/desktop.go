package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"
)

// DesktopFileExt is the extension of files considered by DesktopFiles
const DesktopFileExt = ".desktop"

// DefaultDesktopDirs returns the search path in priority order: system-wide
// directories first and the user directory last, so later entries win.
func DefaultDesktopDirs() []string {
	return []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
		"/var/lib/flatpak/exports/share/applications",
		filepath.Join(GetDataDir(), "flatpak", "exports", "share", "applications"),
		filepath.Join(GetDataDir(), "applications"),
	}
}

// Excluder filters desktop files by name
type Excluder struct {
	pm *patternmatcher.PatternMatcher
}

// NewExcluder compiles patterns. A nil Excluder or one built from no
// patterns excludes nothing.
func NewExcluder(patterns []string) (*Excluder, error) {
	if len(patterns) == 0 {
		return &Excluder{}, nil
	}

	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern: %w", err)
	}

	return &Excluder{pm: pm}, nil
}

// Excluded reports whether the file name of path matches an exclude pattern
func (e *Excluder) Excluded(path string) bool {
	if e == nil || e.pm == nil {
		return false
	}

	matched, err := e.pm.MatchesOrParentMatches(filepath.Base(path))
	return err == nil && matched
}

// DesktopFiles lists the .desktop files directly inside dir in name order.
// A missing or unreadable directory yields no files and no error.
func DesktopFiles(dir string, exclude *Excluder) []string {
	dir = ExpandHomeDir(dir)
	if !IsDirectory(dir) {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DesktopFileExt) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if exclude.Excluded(path) {
			continue
		}

		files = append(files, path)
	}

	return files
}
