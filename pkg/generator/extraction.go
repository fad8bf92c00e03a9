package generator

import (
	"log/slog"
	"sync"

	"github.com/gnana997/apidocs/pkg/extractor"
	"github.com/gnana997/apidocs/pkg/util"
)

type extractResult struct {
	file    string
	symbols *extractor.FileSymbols
	err     error
}

// extractAll runs symbol extraction over files with a worker pool, reading
// sources through the mmap-backed cache so watch-mode rebuilds skip disk for
// unchanged files. A positive poolSize overrides the CPU-derived worker
// count. Per-file errors are logged and counted, not fatal.
func extractAll(
	files []string,
	ext *extractor.Extractor,
	cache *util.SourceCache,
	poolSize int,
	logger *slog.Logger,
) (map[string]*extractor.FileSymbols, int) {
	if len(files) == 0 {
		return nil, 0
	}
	if logger == nil {
		logger = slog.Default()
	}

	workers := min(util.PoolSizeWithOverride(poolSize), len(files))
	jobs := make(chan string)
	out := make(chan extractResult, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				out <- extractOne(path, ext, cache)
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	extracted := make(map[string]*extractor.FileSymbols, len(files))
	failed := 0
	for r := range out {
		if r.err != nil {
			logger.Warn("extraction failed", "file", r.file, "error", r.err)
			failed++
			continue
		}
		extracted[r.file] = r.symbols
	}
	return extracted, failed
}

func extractOne(path string, ext *extractor.Extractor, cache *util.SourceCache) extractResult {
	src, err := cache.Get(path)
	if err != nil {
		return extractResult{file: path, err: err}
	}
	symbols, err := ext.ExtractFile(path, src)
	return extractResult{file: path, symbols: symbols, err: err}
}
