package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/apidocs/pkg/parser"
	"github.com/gnana997/apidocs/pkg/reference"
)

// WatchOptions configures watch mode.
type WatchOptions struct {
	// DebounceMs groups rapid changes to the same file; 0 means 200.
	DebounceMs int

	// PageCacheSize bounds the built-page cache; 0 means 1024.
	PageCacheSize int

	// IgnorePatterns are filepath.Match patterns applied to base names.
	IgnorePatterns []string
}

// DefaultWatchOptions returns the standard watch settings.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200, PageCacheSize: 1024}
}

// Watcher keeps the generated reference in sync with source changes.
// A change rebuilds only the touched file; pages for untouched siblings
// come out of an LRU cache populated by the initial full build.
type Watcher struct {
	gen     *Generator
	fsw     *fsnotify.Watcher
	pages   *lru.Cache[string, *BuiltPage]
	rootDir string
	options WatchOptions
	log     *slog.Logger

	// Debouncing
	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	// Lifecycle
	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher around an existing generator.
func NewWatcher(gen *Generator, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if options.PageCacheSize == 0 {
		options.PageCacheSize = 1024
	}
	pages, err := lru.New[string, *BuiltPage](options.PageCacheSize)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	return &Watcher{
		gen:            gen,
		fsw:            fsw,
		pages:          pages,
		options:        options,
		log:            logger,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start runs a full build, seeds the page cache from it, and begins
// watching rootDir in a background goroutine.
func (w *Watcher) Start(rootDir string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.rootDir = rootDir
	w.mu.Unlock()

	ref, _, err := w.gen.Build(rootDir)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	for i := range ref.Components {
		page := ref.Components[i]
		w.pages.Add(page.Filename, &BuiltPage{Component: &page})
	}
	for i := range ref.Hooks {
		page := ref.Hooks[i]
		w.pages.Add(page.Filename, &BuiltPage{Hook: &page})
	}

	// Watch the whole tree; fsnotify is not recursive on its own.
	err = filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Continue on error.
		}
		if info.IsDir() {
			if w.shouldIgnore(path) {
				return filepath.SkipDir
			}
			if err := w.fsw.Add(path); err != nil {
				w.log.Warn("failed to watch directory", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to setup watches: %w", err)
	}

	w.log.Info("watch started", "root", rootDir, "pages", w.pages.Len())

	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.fsw.Close()
	w.log.Info("watch stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.shouldIgnore(path) {
		return
	}
	if parser.DetectLanguage(path) == parser.LanguageUnknown {
		return
	}

	w.log.Debug("file event", "op", event.Op.String(), "file", path)

	switch {
	case event.Op&fsnotify.Write == fsnotify.Write,
		event.Op&fsnotify.Create == fsnotify.Create:
		w.debounceRebuild(path)

	case event.Op&fsnotify.Remove == fsnotify.Remove,
		event.Op&fsnotify.Rename == fsnotify.Rename:
		w.removePage(path)
	}
}

// debounceRebuild schedules a rebuild after the debounce delay. Rapid
// successive events for the same file collapse into one rebuild.
func (w *Watcher) debounceRebuild(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}

	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.rebuildFile(path)

			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

// rebuildFile regenerates a single page and rewrites the output.
func (w *Watcher) rebuildFile(path string) {
	page, err := w.gen.BuildFile(path)
	if err != nil {
		w.log.Warn("rebuild failed", "file", path, "error", err)
		return
	}
	if page == nil {
		// Outside the package layout, or now marked ignored.
		w.pages.Remove(path)
		w.flush()
		return
	}

	w.pages.Add(path, page)
	w.flush()
	w.log.Debug("page rebuilt", "file", path)
}

// removePage drops a deleted file's page.
func (w *Watcher) removePage(path string) {
	if w.pages.Remove(path) {
		w.flush()
	}
}

// flush recomposes the reference from cached pages and rewrites output.
func (w *Watcher) flush() {
	cfg := w.gen.Config()
	if cfg.OutputDir == "" {
		return
	}

	ref := &reference.Reference{
		SchemaVersion: reference.CurrentSchemaVersion,
		Library:       cfg.Library,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	for _, key := range w.pages.Keys() {
		page, ok := w.pages.Peek(key)
		if !ok {
			continue
		}
		switch {
		case page.Component != nil:
			ref.Components = append(ref.Components, *page.Component)
		case page.Hook != nil:
			ref.Hooks = append(ref.Hooks, *page.Hook)
		}
	}

	if err := w.gen.WriteReference(ref); err != nil {
		w.log.Error("failed to write reference", "error", err)
	}
}

// shouldIgnore checks a path against ignore patterns and the standard
// build directories.
func (w *Watcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)

	for _, pattern := range w.options.IgnorePatterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	switch base {
	case "node_modules", ".git", "dist", "build", ".next":
		return true
	}
	return false
}

// WatcherStats reports watcher state.
type WatcherStats struct {
	PendingRebuilds int
	CachedPages     int
	IsRunning       bool
}

// GetStats returns watcher statistics.
func (w *Watcher) GetStats() WatcherStats {
	w.debounceMu.Lock()
	pending := len(w.debounceTimers)
	w.debounceMu.Unlock()

	w.mu.Lock()
	running := !w.stopped
	w.mu.Unlock()

	return WatcherStats{
		PendingRebuilds: pending,
		CachedPages:     w.pages.Len(),
		IsRunning:       running,
	}
}
