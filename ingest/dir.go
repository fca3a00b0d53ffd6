package ingest

import (
	"os"
	"path/filepath"
	"strings"
)

// Walk lists files directly inside dir.Path matching dir.Extensions and
// not containing any dir.Exclude substring, the local-filesystem
// analogue of extractor.py's DataExtractor.gen_files. It does not
// recurse into subdirectories, matching the original's os.listdir-based
// traversal.
func Walk(dir Dir) ([]string, error) {
	entries, err := os.ReadDir(dir.Path)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matchesExtensions(name, dir.Extensions) {
			continue
		}
		if matchesExclude(name, dir.Exclude) {
			continue
		}
		matches = append(matches, filepath.Join(dir.Path, name))
	}

	if len(matches) == 0 {
		return nil, ErrNoMatchingFiles
	}

	return matches, nil
}

func matchesExtensions(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

func matchesExclude(name string, exclude []string) bool {
	for _, substr := range exclude {
		if strings.Contains(name, substr) {
			return true
		}
	}

	return false
}
