// Tests for SourceCache mmap-backed reads.
package util

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture writes content to a temp file and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSourceCache_GetCachesContent(t *testing.T) {
	path := writeFixture(t, "button.tsx", "export const Button = () => null;\n")

	cache := NewSourceCache(nil)
	defer cache.Close()

	assert.Equal(t, 0, cache.Size())

	data, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "export const Button = () => null;\n", string(data))
	assert.Equal(t, 1, cache.Size())

	// Second read is a hit.
	again, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, int64(1), stats.CacheMisses)
}

func TestSourceCache_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.ts", "")

	cache := NewSourceCache(nil)
	defer cache.Close()

	data, err := cache.Get(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t, 1, cache.Size())
}

func TestSourceCache_MissingFile(t *testing.T) {
	cache := NewSourceCache(nil)
	defer cache.Close()

	_, err := cache.Get(filepath.Join(t.TempDir(), "nope.tsx"))
	assert.Error(t, err)
}

func TestSourceCache_MaxFilesLimit(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.ts", "b.ts", "c.ts"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("export {}\n"), 0o644))
		paths = append(paths, p)
	}

	cache := NewSourceCache(&SourceCacheConfig{MaxFiles: 2})
	defer cache.Close()

	_, err := cache.Get(paths[0])
	require.NoError(t, err)
	_, err = cache.Get(paths[1])
	require.NoError(t, err)

	_, err = cache.Get(paths[2])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file limit")
}

func TestSourceCache_Invalidate(t *testing.T) {
	path := writeFixture(t, "input.tsx", "old\n")

	cache := NewSourceCache(nil)
	defer cache.Close()

	data, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))

	require.NoError(t, os.WriteFile(path, []byte("new\n"), 0o644))
	cache.Invalidate(path)

	data, err = cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
	assert.Equal(t, 1, cache.Size())
}

func TestSourceCache_ConcurrentGet(t *testing.T) {
	path := writeFixture(t, "shared.tsx", "export const Shared = 1;\n")

	cache := NewSourceCache(nil)
	defer cache.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := cache.Get(path)
			assert.NoError(t, err)
			assert.Equal(t, "export const Shared = 1;\n", string(data))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cache.Size())
}

func TestOptimalPoolSize_Bounds(t *testing.T) {
	size := OptimalPoolSize()
	assert.GreaterOrEqual(t, size, 4)
	assert.LessOrEqual(t, size, 32)

	assert.Equal(t, 7, PoolSizeWithOverride(7))
	assert.Equal(t, size, PoolSizeWithOverride(0))
}
