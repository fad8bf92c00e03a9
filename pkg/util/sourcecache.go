// SourceCache provides repeated reads of component source files through
// memory-mapped regions.
//
// The generator reads every component file at least twice (metadata parse,
// symbol extraction) and watch mode re-reads siblings on each rebuild. Each
// file is mapped once and sliced on later reads; only accessed pages are
// paged into RAM.
//
// Files that cannot be mapped fall back to a plain read, cached alongside
// the mapped entries. Limits on file count and mapped virtual memory guard
// against descriptor and address-space exhaustion on large monorepos.
package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// SourceCacheConfig controls SourceCache behavior.
type SourceCacheConfig struct {
	// MaxFiles is the maximum number of cached files. 0 means unlimited.
	MaxFiles int

	// MaxMemoryMB limits total mapped virtual memory in MB. 0 means
	// unlimited. This bounds address space, not physical RAM.
	MaxMemoryMB int

	// Logger for mmap fallback warnings. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultSourceCacheConfig covers component libraries up to a few thousand
// source files.
func DefaultSourceCacheConfig() *SourceCacheConfig {
	return &SourceCacheConfig{
		MaxFiles:    10000,
		MaxMemoryMB: 1024,
	}
}

// SourceCacheStats reports cache behavior for the build summary log line.
type SourceCacheStats struct {
	FilesCached  int
	CacheHits    int64
	CacheMisses  int64
	MmapFailures int64
	MappedBytes  int64
}

// SourceCache caches file contents via mmap with a ReadFile fallback.
//
// Thread-safe: reads take an RLock, loads take the write lock with a
// double-check after upgrade.
type SourceCache struct {
	config *SourceCacheConfig
	logger *slog.Logger

	mu       sync.RWMutex
	mapped   map[string]mmap.MMap
	files    map[string]*os.File
	fallback map[string][]byte

	statsMu sync.Mutex
	stats   SourceCacheStats
}

// NewSourceCache creates a SourceCache. A nil config uses defaults.
func NewSourceCache(config *SourceCacheConfig) *SourceCache {
	if config == nil {
		config = DefaultSourceCacheConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceCache{
		config:   config,
		logger:   logger,
		mapped:   make(map[string]mmap.MMap),
		files:    make(map[string]*os.File),
		fallback: make(map[string][]byte),
	}
}

// Get returns the file's contents, mapping it on first access.
//
// The returned slice aliases the mapped region and must not be modified or
// retained past Close.
func (sc *SourceCache) Get(filePath string) ([]byte, error) {
	sc.mu.RLock()
	if data, ok := sc.mapped[filePath]; ok {
		sc.mu.RUnlock()
		sc.recordHit()
		return data, nil
	}
	if data, ok := sc.fallback[filePath]; ok {
		sc.mu.RUnlock()
		sc.recordHit()
		return data, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Another goroutine may have loaded it while we waited.
	if data, ok := sc.mapped[filePath]; ok {
		sc.recordHit()
		return data, nil
	}
	if data, ok := sc.fallback[filePath]; ok {
		sc.recordHit()
		return data, nil
	}

	sc.recordMiss()

	if err := sc.checkLimitsLocked(filePath); err != nil {
		return nil, err
	}
	return sc.loadLocked(filePath)
}

// Invalidate drops a single cached file, unmapping it if needed.
// Watch mode calls this when fsnotify reports a write.
func (sc *SourceCache) Invalidate(filePath string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if data, ok := sc.mapped[filePath]; ok {
		if err := data.Unmap(); err != nil {
			sc.logger.Warn("unmap failed", "file", filePath, "error", err)
		}
		delete(sc.mapped, filePath)
	}
	if f, ok := sc.files[filePath]; ok {
		f.Close()
		delete(sc.files, filePath)
	}
	delete(sc.fallback, filePath)
}

// Size returns the number of currently cached files.
func (sc *SourceCache) Size() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.mapped) + len(sc.fallback)
}

// Stats returns a snapshot of cache metrics.
func (sc *SourceCache) Stats() SourceCacheStats {
	sc.mu.RLock()
	cached := len(sc.mapped) + len(sc.fallback)
	var mappedBytes int64
	for _, data := range sc.mapped {
		mappedBytes += int64(len(data))
	}
	sc.mu.RUnlock()

	sc.statsMu.Lock()
	defer sc.statsMu.Unlock()
	s := sc.stats
	s.FilesCached = cached
	s.MappedBytes = mappedBytes
	return s
}

// Close unmaps every cached file and releases descriptors.
func (sc *SourceCache) Close() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var firstErr error
	for path, data := range sc.mapped {
		if err := data.Unmap(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("unmap %q: %w", path, err)
		}
	}
	for _, f := range sc.files {
		f.Close()
	}
	sc.mapped = make(map[string]mmap.MMap)
	sc.files = make(map[string]*os.File)
	sc.fallback = make(map[string][]byte)
	return firstErr
}

// checkLimitsLocked verifies limits before loading filePath. Caller holds mu.
func (sc *SourceCache) checkLimitsLocked(filePath string) error {
	if sc.config.MaxFiles > 0 {
		current := len(sc.mapped) + len(sc.fallback)
		if current >= sc.config.MaxFiles {
			return fmt.Errorf("source cache file limit reached: %d files (limit %d)", current, sc.config.MaxFiles)
		}
	}

	if sc.config.MaxMemoryMB > 0 {
		stat, err := os.Stat(filePath)
		if err != nil {
			return fmt.Errorf("stat %q: %w", filePath, err)
		}
		var mappedBytes int64
		for _, data := range sc.mapped {
			mappedBytes += int64(len(data))
		}
		limit := int64(sc.config.MaxMemoryMB) * 1024 * 1024
		if mappedBytes+stat.Size() > limit {
			return fmt.Errorf("source cache memory limit reached: %d MB mapped (limit %d MB)",
				mappedBytes/(1024*1024), sc.config.MaxMemoryMB)
		}
	}

	return nil
}

// loadLocked opens and maps filePath, falling back to a plain read when the
// map fails. Caller holds mu.
func (sc *SourceCache) loadLocked(filePath string) ([]byte, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", filePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %q: %w", filePath, err)
	}

	// mmap cannot map zero bytes.
	if stat.Size() == 0 {
		f.Close()
		sc.fallback[filePath] = []byte{}
		return []byte{}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		sc.logger.Warn("mmap failed, using plain read", "file", filePath, "size", stat.Size(), "error", err)
		sc.recordMmapFailure()
		f.Close()

		raw, readErr := os.ReadFile(filePath)
		if readErr != nil {
			return nil, fmt.Errorf("read %q: %w", filePath, readErr)
		}
		sc.fallback[filePath] = raw
		return raw, nil
	}

	sc.mapped[filePath] = data
	sc.files[filePath] = f
	return data, nil
}

func (sc *SourceCache) recordHit() {
	sc.statsMu.Lock()
	sc.stats.CacheHits++
	sc.statsMu.Unlock()
}

func (sc *SourceCache) recordMiss() {
	sc.statsMu.Lock()
	sc.stats.CacheMisses++
	sc.statsMu.Unlock()
}

func (sc *SourceCache) recordMmapFailure() {
	sc.statsMu.Lock()
	sc.stats.MmapFailures++
	sc.statsMu.Unlock()
}
