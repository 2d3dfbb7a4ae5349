package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// ErrDirectoryNotFound is returned when the scan path does not exist or is
// not a directory. It is surfaced before any file is parsed.
var ErrDirectoryNotFound = errors.New("log directory not found")

// logNamePattern matches the daily log naming scheme exactly:
// renders_YYYY-MM-DD.csv with a literal underscore, dashes, and extension.
var logNamePattern = regexp.MustCompile(`^renders_\d{4}-\d{2}-\d{2}\.csv$`)

// SelectFiles returns the full paths of day-log files directly inside dir
// (non-recursive). Non-matching names and subdirectories are silently
// ignored. The result is in lexical name order so a run is deterministic.
func SelectFiles(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	// ReadDir returns entries sorted by name, which fixes the scan order.
	var files []string
	for _, e := range entries {
		if e.IsDir() || !logNamePattern.MatchString(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
