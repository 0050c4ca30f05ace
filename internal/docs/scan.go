package docs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanDir walks root for files whose root-relative path matches any of the
// doublestar patterns, extracts their sections, and returns an Assembler
// holding them. Files are processed in lexicographic path order so the
// assembled document set is reproducible across runs.
func ScanDir(root string, patterns []string) (*Assembler, error) {
	files, err := matchFiles(root, patterns)
	if err != nil {
		return nil, err
	}

	assembler := NewAssembler()
	extractor := &Extractor{}
	for _, path := range files {
		sections, err := extractor.ExtractFile(path)
		if err != nil {
			return nil, err
		}
		for _, s := range sections {
			assembler.AddSection(s)
		}
	}
	return assembler, nil
}

// matchFiles returns the sorted list of files under root matching any
// pattern. Patterns match against slash-separated paths relative to root.
func matchFiles(root string, patterns []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if matchesAny(filepath.ToSlash(rel), patterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether rel matches at least one doublestar pattern.
// Malformed patterns never match.
func matchesAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
