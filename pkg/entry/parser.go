// Package entry turns .desktop files into launchable entries.
// Only the first Name= and Exec= lines of a file are significant;
// everything else in the file is ignored.
package entry

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	namePrefix = "Name="
	execPrefix = "Exec="
)

// DesktopEntry is a parsed desktop file
type DesktopEntry struct {
	Name string
	Exec string
	Path string
}

// ParseFile reads and parses the desktop file at path.
func ParseFile(path string) (DesktopEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return DesktopEntry{}, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	e, err := Parse(f)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return DesktopEntry{}, parseErr
		}
		return DesktopEntry{}, &ParseError{Path: path, Err: err}
	}

	e.Path = path
	return e, nil
}

// Parse scans r line by line until both Name= and Exec= have been seen.
// Values are trimmed; an empty value does not count as seen.
func Parse(r io.Reader) (DesktopEntry, error) {
	var (
		e       DesktopEntry
		hasName bool
		hasExec bool
	)

	reader := bufio.NewReader(r)
	for !hasName || !hasExec {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return DesktopEntry{}, &ParseError{Err: err}
		}

		if !hasName {
			if value, ok := field(line, namePrefix); ok {
				e.Name = value
				hasName = true
			}
		}
		if !hasExec {
			if value, ok := field(line, execPrefix); ok {
				e.Exec = value
				hasExec = true
			}
		}

		if err != nil {
			break
		}
	}

	if !hasName {
		return DesktopEntry{}, &ParseError{Err: ErrMissingName}
	}
	if !hasExec {
		return DesktopEntry{}, &ParseError{Err: ErrMissingExec}
	}

	return e, nil
}

func field(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	value := strings.TrimSpace(line[len(prefix):])
	return value, value != ""
}
