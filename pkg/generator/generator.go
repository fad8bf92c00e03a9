// Package generator orchestrates the API reference build: discover
// component sources, parse and extract their documented symbols, assemble
// per-component and per-hook pages, and write prettified JSON output plus
// the pages.json index.
package generator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gnana997/apidocs/pkg/extractor"
	"github.com/gnana997/apidocs/pkg/parser"
	"github.com/gnana997/apidocs/pkg/reference"
	"github.com/gnana997/apidocs/pkg/typefmt"
	"github.com/gnana997/apidocs/pkg/util"
)

// Generator runs the build pipeline.
type Generator struct {
	pm    *parser.Manager
	ext   *extractor.Extractor
	fmtr  *typefmt.Formatter
	cache *util.SourceCache
	cfg   Config
	log   *slog.Logger
}

// New creates a generator with all required dependencies.
func New(cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	pm := parser.NewManager(logger)
	cacheCfg := util.DefaultSourceCacheConfig()
	cacheCfg.Logger = logger
	return &Generator{
		pm:    pm,
		ext:   extractor.NewExtractor(pm, logger),
		fmtr:  typefmt.NewFormatter(pm),
		cache: util.NewSourceCache(cacheCfg),
		cfg:   cfg,
		log:   logger,
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Build runs all phases over rootDir and returns the assembled reference.
// When cfg.OutputDir is set, pages and the pages.json index are written.
func (g *Generator) Build(rootDir string) (*reference.Reference, *BuildStats, error) {
	totalStart := time.Now()
	stats := BuildStats{}

	// Phase 1: File Discovery
	discoveryStart := time.Now()
	files, err := Discover(rootDir, g.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("discovery failed: %w", err)
	}
	stats.FilesDiscovered = len(files)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	g.log.Info("discovery complete", "files", len(files), "ms", stats.DiscoveryTimeMs)

	// Phase 2: Descriptor Building
	descriptorStart := time.Now()
	components, hooks, failed := BuildDescriptors(files, g.cfg, g.log)
	stats.FilesFailed += failed
	stats.DescriptorTimeMs = time.Since(descriptorStart).Milliseconds()

	g.log.Info("descriptors built",
		"components", len(components), "hooks", len(hooks), "ms", stats.DescriptorTimeMs)

	// Phase 3: Symbol Extraction (skipped files excluded)
	extractionStart := time.Now()
	var extractFiles []string
	for i := range components {
		if !components[i].Skipped {
			extractFiles = append(extractFiles, components[i].Filename)
		}
	}
	for i := range hooks {
		if !hooks[i].Skipped {
			extractFiles = append(extractFiles, hooks[i].Filename)
		}
	}
	symbols, failed := extractAll(extractFiles, g.ext, g.cache, g.cfg.Workers, g.log)
	stats.FilesFailed += failed
	stats.ExtractionTimeMs = time.Since(extractionStart).Milliseconds()

	g.log.Info("extraction complete",
		"extracted", len(symbols), "failed", failed, "ms", stats.ExtractionTimeMs)

	// Phase 4: Page Assembly
	assemblyStart := time.Now()
	ref := &reference.Reference{
		SchemaVersion: reference.CurrentSchemaVersion,
		Library:       g.cfg.Library,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	for i := range components {
		desc := &components[i]
		if desc.Skipped {
			stats.FilesSkipped++
			continue
		}
		page, err := g.buildComponentPage(desc, symbols[desc.Filename])
		if err != nil {
			g.log.Warn("page assembly failed", "file", desc.Filename, "error", err)
			stats.FilesFailed++
			continue
		}
		ref.Components = append(ref.Components, *page)
		stats.ComponentsBuilt++
	}
	for i := range hooks {
		desc := &hooks[i]
		if desc.Skipped {
			stats.FilesSkipped++
			continue
		}
		page, err := g.buildHookPage(desc, symbols[desc.Filename])
		if err != nil {
			g.log.Warn("page assembly failed", "file", desc.Filename, "error", err)
			stats.FilesFailed++
			continue
		}
		ref.Hooks = append(ref.Hooks, *page)
		stats.HooksBuilt++
	}
	stats.AssemblyTimeMs = time.Since(assemblyStart).Milliseconds()

	g.log.Info("assembly complete",
		"components", stats.ComponentsBuilt, "hooks", stats.HooksBuilt,
		"skipped", stats.FilesSkipped, "ms", stats.AssemblyTimeMs)

	// Phase 5: Output
	if g.cfg.OutputDir != "" {
		writeStart := time.Now()
		if err := g.writeOutput(ref); err != nil {
			return nil, &stats, err
		}
		stats.WriteTimeMs = time.Since(writeStart).Milliseconds()

		g.log.Info("write complete", "dir", g.cfg.OutputDir, "ms", stats.WriteTimeMs)
	}

	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
	return ref, &stats, nil
}

// writeOutput writes every page file plus the pages.json index. Page
// file locations mirror the API pathname under the output directory, so
// /material/api/button/ lands at <out>/material/api/button.json.
func (g *Generator) writeOutput(ref *reference.Reference) error {
	pagesPath := filepath.Join(g.cfg.OutputDir, "pages.json")
	fmtCfg, err := ResolveFormatConfig(pagesPath, g.cfg.FormatConfigPath)
	if err != nil {
		return err
	}

	for i := range ref.Components {
		page := &ref.Components[i]
		if err := writePageFile(g.pageFilePath(page.Pathname), page, fmtCfg); err != nil {
			return err
		}
	}
	for i := range ref.Hooks {
		page := &ref.Hooks[i]
		if err := writePageFile(g.pageFilePath(page.Pathname), page, fmtCfg); err != nil {
			return err
		}
	}

	data, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to encode pages index: %w", err)
	}
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	return WritePrettifiedFile(pagesPath, data, fmtCfg, nil)
}

// pageFilePath maps an API pathname to its JSON file under the output
// directory.
func (g *Generator) pageFilePath(pathname string) string {
	trimmed := strings.Trim(pathname, "/")
	return filepath.Join(g.cfg.OutputDir, filepath.FromSlash(trimmed)+".json")
}

// writePageFile encodes one page to its target path.
func writePageFile(path string, page any, cfg *FormatConfig) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create page dir: %w", err)
	}
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to encode page %s: %w", path, err)
	}
	return WritePrettifiedFile(path, data, cfg, nil)
}

// BuiltPage is one assembled page; exactly one of Component and Hook is
// set. Used by watch mode to rebuild single files.
type BuiltPage struct {
	Component *reference.ComponentPage
	Hook      *reference.HookPage
}

// BuildFile rebuilds the page for a single source file. Returns nil for
// files outside the package layout and for skipped files.
func (g *Generator) BuildFile(path string) (*BuiltPage, error) {
	g.cache.Invalidate(path)

	components, hooks, failed := BuildDescriptors([]string{path}, g.cfg, g.log)
	if failed > 0 {
		return nil, fmt.Errorf("failed to parse %s", path)
	}

	symbols, failed := extractAll([]string{path}, g.ext, g.cache, g.cfg.Workers, g.log)
	if failed > 0 {
		return nil, fmt.Errorf("failed to extract %s", path)
	}

	if len(components) == 1 && !components[0].Skipped {
		page, err := g.buildComponentPage(&components[0], symbols[path])
		if err != nil {
			return nil, err
		}
		return &BuiltPage{Component: page}, nil
	}
	if len(hooks) == 1 && !hooks[0].Skipped {
		page, err := g.buildHookPage(&hooks[0], symbols[path])
		if err != nil {
			return nil, err
		}
		return &BuiltPage{Hook: page}, nil
	}
	return nil, nil
}

// WriteReference writes ref (typically reassembled by watch mode) to the
// output directory as page files plus pages.json, sorted for stable diffs.
func (g *Generator) WriteReference(ref *reference.Reference) error {
	sort.Slice(ref.Components, func(i, j int) bool { return ref.Components[i].Name < ref.Components[j].Name })
	sort.Slice(ref.Hooks, func(i, j int) bool { return ref.Hooks[i].Name < ref.Hooks[j].Name })
	return g.writeOutput(ref)
}

// Close releases parser and source cache resources.
func (g *Generator) Close() {
	g.pm.Close()
	g.cache.Close()
}
