package spectrum

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandGlobs expands a list of file paths and glob patterns into a
// deduplicated list of matching file paths. Patterns that don't match
// any files are returned as-is (the caller should handle file-not-found
// errors).
//
// The result follows the pattern list's order: supplied order seeds the
// join and fixes column order downstream. Matches within a single
// pattern come back in Glob's lexical order.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			// Pattern didn't match anything - include it as literal path
			// so LoadUploads can report a proper error for it.
			if !seen[pattern] {
				seen[pattern] = true
				result = append(result, pattern)
			}
			continue
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	return result, nil
}

// LoadUploads reads each file into an Upload. The upload name is the
// file's base name; the full path only matters for reading.
func LoadUploads(paths []string) ([]Upload, error) {
	uploads := make([]Upload, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return nil, fmt.Errorf("reading spectrum file: %w", err)
		}
		uploads = append(uploads, Upload{Name: filepath.Base(path), Data: data})
	}

	return uploads, nil
}
