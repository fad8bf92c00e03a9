package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureButton = `export interface ButtonProps {
  /**
   * The variant to use.
   * @default 'text'
   */
  variant?: 'text' | 'outlined';
}

/**
 * Buttons let users take actions.
 */
export function Button(props: ButtonProps) {
  return null;
}
`

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "flag", resolve("flag", "config", "default"))
	assert.Equal(t, "config", resolve("", "config", "default"))
	assert.Equal(t, "default", resolve("", "", "default"))
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// Absent file is not an error.
	cfg, err := loadProjectConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg)

	writeFixture(t, dir, ".apidocs/config.yaml", `
library: acme-ui
output_dir: build/api
pages_path: build/api/pages.json
log_level: debug
include:
  - "**/*.tsx"
`)

	cfg, err = loadProjectConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "acme-ui", cfg.Library)
	assert.Equal(t, "build/api", cfg.OutputDir)
	assert.Equal(t, []string{"**/*.tsx"}, cfg.Include)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadProjectConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFixture(t, dir, ".apidocs/config.yaml", "library: [unclosed")

	_, err := loadProjectConfig()
	require.Error(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Equal(t, 1, run([]string{"bogus"}))
}

func TestRun_Version(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
}

func TestRun_BuildEndToEnd(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)

	writeFixture(t, work, "src/packages/mui-material/src/Button/Button.tsx", fixtureButton)
	writeFixture(t, work, ".apidocsrc.json", `{"indentWidth": 2, "endOfLine": "lf"}`)

	code := run([]string{"build",
		"--root", "src",
		"--out", "out",
		"--library", "acme-ui",
	})
	require.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(work, "out", "pages.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"library": "acme-ui"`)
	assert.Contains(t, string(data), `"name": "Button"`)

	_, err = os.Stat(filepath.Join(work, "out", "material", "api", "button.json"))
	assert.NoError(t, err)
}

func TestRun_BuildMissingFormatConfig(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)

	writeFixture(t, work, "src/packages/mui-material/src/Button/Button.tsx", fixtureButton)

	code := run([]string{"build", "--root", "src", "--out", "out"})
	assert.Equal(t, 1, code)
}

func TestRun_ServeMissingPages(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)

	assert.Equal(t, 1, run([]string{"serve", "--pages", "missing/pages.json"}))
}
