package source

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// systemComponentRE matches component-like entry names: an uppercase letter
// followed by letters only.
var systemComponentRE = regexp.MustCompile(`^[A-Z][a-zA-Z]+$`)

// SystemComponents lists the component names exported by the system layout
// package at dir. The caller loads this once and injects the list into the
// generator configuration; there is no process-wide cache.
func SystemComponents(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read system package dir %q: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() {
			if i := strings.IndexByte(name, '.'); i >= 0 {
				name = name[:i]
			}
		}
		if systemComponentRE.MatchString(name) {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}
