package generator

import (
	"github.com/gnana997/apidocs/pkg/paths"
	"github.com/gnana997/apidocs/pkg/source"
)

// Config controls a generation run.
type Config struct {
	// Include/Exclude are doublestar globs evaluated against paths
	// relative to the scanned root.
	Include []string
	Exclude []string

	// OutputDir is where API pages and pages.json are written.
	// Empty means build in memory only (inspect mode, tests).
	OutputDir string

	// FormatConfigPath locates the JSON formatter settings. Resolution
	// failure is fatal when pages are written.
	FormatConfigPath string

	// Library names the generated reference (pages.json "library").
	Library string

	// SystemComponents lists component names documented by the system
	// package. Callers load it with source.SystemComponents and inject
	// it here; the generator never guesses.
	SystemComponents []string

	// Demos maps a component or hook name to its documentation demos,
	// used to derive the back-link from demo pages to the API page.
	Demos map[string][]paths.DemoLink

	// Workers overrides the extraction worker count. Zero or negative
	// uses the CPU-derived default.
	Workers int
}

// DefaultConfig returns a Config with the standard include/exclude globs.
func DefaultConfig() Config {
	return Config{
		Include: []string{"**/*.{js,jsx,ts,tsx}"},
		Exclude: []string{
			"**/node_modules/**",
			"**/*.test.*",
			"**/*.spec.*",
			"**/*.d.ts",
		},
		Library: "unknown",
	}
}

// ComponentDescriptor carries everything known about a component file
// before symbol extraction.
type ComponentDescriptor struct {
	Filename          string
	DisplayName       string
	PrefixedName      string
	ApiPathname       string
	ApiPagesDirectory string
	PageFile          string
	Package           string
	Skipped           bool
	SystemComponent   bool
	Source            source.ParsedFile
}

// HookDescriptor is the hook-file counterpart of ComponentDescriptor.
type HookDescriptor struct {
	Filename          string
	Name              string
	ApiPathname       string
	ApiPagesDirectory string
	PageFile          string
	Package           string
	Skipped           bool
	Source            source.ParsedFile
}

// BuildStats records per-phase counters and timings for one build.
type BuildStats struct {
	FilesDiscovered  int
	ComponentsBuilt  int
	HooksBuilt       int
	FilesSkipped     int
	FilesFailed      int
	DiscoveryTimeMs  int64
	DescriptorTimeMs int64
	ExtractionTimeMs int64
	AssemblyTimeMs   int64
	WriteTimeMs      int64
	TotalTimeMs      int64
}
