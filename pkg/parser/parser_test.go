package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"src/Button/Button.tsx", LanguageTypeScript},
		{"src/useButton/useButton.ts", LanguageTypeScript},
		{"src/legacy/index.js", LanguageJavaScript},
		{"src/legacy/Menu.jsx", LanguageJavaScript},
		{"src/mod.mts", LanguageTypeScript},
		{"README.md", LanguageUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.path), tt.path)
	}
}

func TestIsTSXFile(t *testing.T) {
	assert.True(t, IsTSXFile("Button.tsx"))
	assert.True(t, IsTSXFile("Button.TSX"))
	assert.False(t, IsTSXFile("useButton.ts"))
}

func TestManager_ParseTypeScript(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.Parse([]byte("type Variant = 'outlined' | 'contained'"), LanguageTypeScript, false)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.False(t, root.HasError())
	assert.Equal(t, "program", root.Kind())
}

func TestManager_ParseFileDetectsTSX(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	src := []byte("export const Chip = () => <div>chip</div>;\n")
	tree, err := m.ParseFile(src, "src/Chip/Chip.tsx")
	require.NoError(t, err)
	defer tree.Close()

	assert.False(t, tree.RootNode().HasError())
}

func TestManager_ParseUnknownLanguage(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	_, err := m.ParseFile([]byte("hello"), "notes.txt")
	assert.Error(t, err)
}

func TestManager_ConcurrentParse(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	src := []byte("interface ButtonProps { disabled?: boolean }")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := m.Parse(src, LanguageTypeScript, false)
			if assert.NoError(t, err) {
				assert.False(t, tree.RootNode().HasError())
				tree.Close()
			}
		}()
	}
	wg.Wait()
}
