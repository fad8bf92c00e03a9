package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/apidocs/pkg/paths"
)

const buttonSrc = `import * as React from 'react';

export interface ButtonProps {
  /**
   * The variant to use.
   * @default 'text'
   */
  variant?: 'text' | 'outlined';
  /**
   * @ignore
   */
  internalFlag?: boolean;
  /**
   * If true, the button is disabled.
   */
  disabled: boolean;
}

/**
 * Buttons let users take actions.
 */
export function Button(props: ButtonProps) {
  return <button />;
}
`

const useButtonSrc = `export interface UseButtonParameters {
  /** If true, the component is disabled. */
  disabled?: boolean;
}

export interface UseButtonReturnValue {
  /** Resolver for the root slot's props. */
  getRootProps: () => Record<string, any>;
}

/**
 * Manages button state.
 */
export function useButton(parameters: UseButtonParameters): UseButtonReturnValue {
  return {} as UseButtonReturnValue;
}
`

const rippleSrc = `/**
 * @ignore - internal component.
 */
export function Ripple() {
  return null;
}
`

// writeSource creates a file under root at the given relative path.
func writeSource(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newFixtureTree writes the standard component/hook fixture layout.
func newFixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSource(t, root, "packages/mui-material/src/Button/Button.tsx", buttonSrc)
	writeSource(t, root, "packages/mui-material/src/ButtonBase/Ripple.tsx", rippleSrc)
	writeSource(t, root, "packages/mui-base/src/useButton/useButton.ts", useButtonSrc)
	return root
}

func newTestGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**/*.{ts,tsx}"}
	}
	gen := New(cfg, slog.Default())
	t.Cleanup(gen.Close)
	return gen
}

func TestIsHookName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"useButton", true},
		{"useAutocomplete", true},
		{"Button", false},
		{"user", false},
		{"use", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHookName(tt.name), tt.name)
	}
}

func TestDiscover(t *testing.T) {
	root := newFixtureTree(t)
	writeSource(t, root, "packages/mui-material/node_modules/dep/index.ts", "export {};")
	writeSource(t, root, "packages/mui-material/src/Button/Button.test.tsx", "export {};")

	cfg := DefaultConfig()
	cfg.Include = []string{"**/*.{ts,tsx}"}

	files, err := Discover(root, cfg)
	require.NoError(t, err)
	require.Len(t, files, 3)
	// Sorted, excluded dirs and test files absent.
	assert.Contains(t, files[0], "useButton.ts")
	assert.Contains(t, files[1], "Button.tsx")
	assert.Contains(t, files[2], "Ripple.tsx")
}

func TestDiscover_InvalidPattern(t *testing.T) {
	cfg := Config{Include: []string{"[!"}}
	_, err := Discover(t.TempDir(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid include pattern")
}

func TestBuildDescriptors(t *testing.T) {
	root := newFixtureTree(t)
	cfg := Config{SystemComponents: []string{"Button"}}

	files, err := Discover(root, Config{Include: []string{"**/*.{ts,tsx}"}})
	require.NoError(t, err)

	components, hooks, failed := BuildDescriptors(files, cfg, slog.Default())
	assert.Zero(t, failed)
	require.Len(t, components, 2)
	require.Len(t, hooks, 1)

	var button, ripple *ComponentDescriptor
	for i := range components {
		switch components[i].DisplayName {
		case "Button":
			button = &components[i]
		case "Ripple":
			ripple = &components[i]
		}
	}
	require.NotNil(t, button)
	require.NotNil(t, ripple)

	assert.Equal(t, "MuiButton", button.PrefixedName)
	assert.Equal(t, "/material/api/button/", button.ApiPathname)
	assert.Equal(t, "mui-material", button.Package)
	assert.True(t, button.SystemComponent)
	assert.False(t, button.Skipped)

	assert.True(t, ripple.Skipped)

	assert.Equal(t, "useButton", hooks[0].Name)
	assert.Equal(t, "/base/api/use-button/", hooks[0].ApiPathname)
	assert.Equal(t, "mui-base", hooks[0].Package)
}

func TestBuild_InMemory(t *testing.T) {
	root := newFixtureTree(t)
	cfg := DefaultConfig()
	cfg.Include = []string{"**/*.{ts,tsx}"}
	cfg.Library = "acme-ui"
	cfg.Demos = map[string][]paths.DemoLink{
		"Button": {{DemoPathname: "/docs/button/#section", DemoPageTitle: "Button"}},
	}
	gen := newTestGenerator(t, cfg)

	ref, stats, err := gen.Build(root)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.ComponentsBuilt)
	assert.Equal(t, 1, stats.HooksBuilt)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Zero(t, stats.FilesFailed)

	require.Len(t, ref.Components, 1)
	button := ref.Components[0]
	assert.Equal(t, "Button", button.Name)
	assert.Equal(t, "MuiButton", button.PrefixedName)
	assert.Equal(t, "Buttons let users take actions.", button.Description)
	assert.Equal(t, "/docs/button/components-api/#button", button.DemoApiLink)

	// @ignore prop dropped, remainder sorted by name.
	require.Len(t, button.Props, 2)
	assert.Equal(t, "disabled", button.Props[0].Name)
	assert.True(t, button.Props[0].Required)
	assert.Equal(t, "boolean", button.Props[0].Type)

	assert.Equal(t, "variant", button.Props[1].Name)
	assert.False(t, button.Props[1].Required)
	assert.Equal(t, "'text' | 'outlined'", button.Props[1].Type)
	assert.Equal(t, "'text'", button.Props[1].Default)

	require.Len(t, ref.Hooks, 1)
	hook := ref.Hooks[0]
	assert.Equal(t, "useButton", hook.Name)
	assert.Equal(t, "Manages button state.", hook.Description)
	require.Len(t, hook.Parameters, 1)
	assert.Equal(t, "disabled", hook.Parameters[0].Name)
	require.Len(t, hook.ReturnValue, 1)
	assert.Equal(t, "() => Record<string, any>", hook.ReturnValue[0].Type)
}

func TestBuild_SingleWorker(t *testing.T) {
	root := newFixtureTree(t)
	cfg := DefaultConfig()
	cfg.Include = []string{"**/*.{ts,tsx}"}
	cfg.Workers = 1
	gen := newTestGenerator(t, cfg)

	ref, stats, err := gen.Build(root)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ComponentsBuilt)
	assert.Equal(t, 1, stats.HooksBuilt)
	assert.Zero(t, stats.FilesFailed)
	require.Len(t, ref.Components, 1)
	require.Len(t, ref.Hooks, 1)
}

func TestBuild_WritesOutput(t *testing.T) {
	root := newFixtureTree(t)
	outDir := t.TempDir()
	fmtPath := filepath.Join(outDir, "format.json")
	require.NoError(t, os.WriteFile(fmtPath, []byte(`{"indentWidth": 2, "endOfLine": "lf"}`), 0o644))

	cfg := DefaultConfig()
	cfg.Include = []string{"**/*.{ts,tsx}"}
	cfg.Library = "acme-ui"
	cfg.OutputDir = outDir
	cfg.FormatConfigPath = fmtPath
	gen := newTestGenerator(t, cfg)

	_, _, err := gen.Build(root)
	require.NoError(t, err)

	pageData, err := os.ReadFile(filepath.Join(outDir, "material", "api", "button.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pageData), `"name": "Button"`)
	assert.Equal(t, byte('\n'), pageData[len(pageData)-1])

	indexData, err := os.ReadFile(filepath.Join(outDir, "pages.json"))
	require.NoError(t, err)
	assert.Contains(t, string(indexData), `"library": "acme-ui"`)
	assert.Contains(t, string(indexData), `"useButton"`)
}

func TestBuild_MissingFormatConfig(t *testing.T) {
	root := newFixtureTree(t)
	outDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Include = []string{"**/*.{ts,tsx}"}
	cfg.OutputDir = outDir
	cfg.FormatConfigPath = filepath.Join(outDir, "absent.json")
	gen := newTestGenerator(t, cfg)

	_, _, err := gen.Build(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format config")
	assert.Contains(t, err.Error(), "absent.json")
}

func TestBuildFile(t *testing.T) {
	root := newFixtureTree(t)
	gen := newTestGenerator(t, DefaultConfig())

	page, err := gen.BuildFile(filepath.Join(root, "packages", "mui-material", "src", "Button", "Button.tsx"))
	require.NoError(t, err)
	require.NotNil(t, page)
	require.NotNil(t, page.Component)
	assert.Equal(t, "Button", page.Component.Name)

	// Skipped files build no page.
	page, err = gen.BuildFile(filepath.Join(root, "packages", "mui-material", "src", "ButtonBase", "Ripple.tsx"))
	require.NoError(t, err)
	assert.Nil(t, page)

	// Outside the package layout.
	outside := writeSource(t, root, "scripts/helper.ts", "export {};")
	page, err = gen.BuildFile(outside)
	require.NoError(t, err)
	assert.Nil(t, page)
}
