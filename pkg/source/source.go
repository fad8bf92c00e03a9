// Package source reads component source files and derives the metadata the
// page generator needs before any AST work: skip markers, prop spreading,
// line-ending convention and inheritance annotations.
package source

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Marker comments that exclude a file from the generated reference.
var ignoreMarkers = []string{
	"@ignore - internal component.",
	"@ignore - internal hook.",
	"@ignore - do not document.",
}

// inheritedComponentRE captures the annotated parent component name.
var inheritedComponentRE = regexp.MustCompile(`// @inheritedComponent (.+)`)

// ParsedFile holds the metadata derived from one source file.
type ParsedFile struct {
	// Src is the raw file content.
	Src string
	// ShouldSkip reports whether the file is excluded from documentation.
	ShouldSkip bool
	// Spread reports whether the component forwards unknown props onto its
	// root element. False when the component pins its props with exactProp.
	Spread bool
	// EOL is the file's line-ending convention ("\n" or "\r\n").
	EOL string
	// InheritedComponent is the annotated parent component name, or "".
	InheritedComponent string
}

// ParseFile reads filename and derives its documentation metadata. The file
// is re-read on every call; nothing is cached.
func ParseFile(filename string) (ParsedFile, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return ParsedFile{}, fmt.Errorf("read %q: %w", filename, err)
	}
	src := string(raw)

	shouldSkip := strings.Contains(filename, "internal")
	if !shouldSkip {
		for _, marker := range ignoreMarkers {
			if strings.Contains(src, marker) {
				shouldSkip = true
				break
			}
		}
	}

	inherited := ""
	if m := inheritedComponentRE.FindStringSubmatch(src); m != nil {
		inherited = strings.TrimRight(m[1], "\r")
	}

	return ParsedFile{
		Src:                src,
		ShouldSkip:         shouldSkip,
		Spread:             !strings.Contains(src, " = exactProp("),
		EOL:                DetectEOL(src),
		InheritedComponent: inherited,
	}, nil
}

// DetectEOL returns the dominant line-ending convention of src: "\r\n" when
// CRLF terminators outnumber bare LF ones, otherwise "\n".
func DetectEOL(src string) string {
	crlf := strings.Count(src, "\r\n")
	lf := strings.Count(src, "\n") - crlf
	if crlf > lf {
		return "\r\n"
	}
	return "\n"
}
