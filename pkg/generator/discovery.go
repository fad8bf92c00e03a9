package generator

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks rootDir and returns the source files selected by the
// configured include and exclude globs. Paths are absolute and sorted so
// descriptor building and page output are deterministic across runs.
func Discover(rootDir string, cfg Config) ([]string, error) {
	if err := checkPatterns("include", cfg.Include); err != nil {
		return nil, err
	}
	if err := checkPatterns("exclude", cfg.Exclude); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", rootDir, err)
	}

	var files []string
	walk := func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		rel := relSlash(absRoot, path)
		if matchAny(cfg.Exclude, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if len(cfg.Include) > 0 && !matchAny(cfg.Include, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	}
	if err := filepath.WalkDir(absRoot, walk); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func checkPatterns(kind string, patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid %s pattern %q", kind, p)
		}
	}
	return nil
}

// relSlash is the walk path relative to root, slash-separated so globs
// written with forward slashes match on every platform.
func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.PathMatch(p, rel); ok {
			return true
		}
	}
	return false
}
