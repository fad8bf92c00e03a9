package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/gnana997/apidocs/pkg/util"
)

// poolKey uniquely identifies a parser pool (language + TSX variant).
type poolKey struct {
	lang  Language
	isTSX bool
}

// Manager hands out tree-sitter parsers per language with lazy pool
// initialization.
//
// Pools are created on first use per (language, TSX) pair and sized by
// util.OptimalPoolSize so concurrent extraction workers never starve.
// The Manager owns the pools and must be closed via Close(); callers own
// returned Tree instances and must call tree.Close() after use.
type Manager struct {
	pools  map[poolKey]*parserPool
	mutex  sync.RWMutex
	logger *slog.Logger

	parsesCalled int
}

// NewManager creates a parser Manager. Close() releases its pools.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		pools:  make(map[poolKey]*parserPool),
		logger: logger,
	}
}

// Parse parses source with the given language grammar. isTSX selects the
// TSX grammar variant and is only meaningful for TypeScript.
//
// A tree with syntax errors is still returned; callers that need a clean
// parse check RootNode().HasError() themselves. The returned tree must be
// closed by the caller.
func (m *Manager) Parse(source []byte, lang Language, isTSX bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("cannot parse unknown language")
	}

	m.mutex.Lock()
	m.parsesCalled++
	m.mutex.Unlock()

	pool, err := m.getOrCreatePool(lang, isTSX)
	if err != nil {
		return nil, fmt.Errorf("get pool for %s: %w", lang, err)
	}

	p, err := pool.acquire()
	if err != nil {
		return nil, fmt.Errorf("acquire parser: %w", err)
	}
	tree := p.Parse(source, nil)
	pool.release(p)

	if tree == nil {
		return nil, fmt.Errorf("parser returned nil tree")
	}

	if tree.RootNode().HasError() {
		m.logger.Debug("parse tree contains errors", "language", lang.String())
	}

	return tree, nil
}

// ParseFile parses source, detecting the grammar from the file path.
func (m *Manager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}
	return m.Parse(source, lang, IsTSXFile(filePath))
}

// Close releases all parser pools. The Manager is unusable afterwards.
func (m *Manager) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, pool := range m.pools {
		pool.close()
	}
	m.pools = make(map[poolKey]*parserPool)

	m.logger.Debug("closed parser manager", "parses_called", m.parsesCalled)
	return nil
}

// getOrCreatePool returns an existing pool or creates one, with a
// double-check after upgrading to the write lock.
func (m *Manager) getOrCreatePool(lang Language, isTSX bool) (*parserPool, error) {
	key := poolKey{lang: lang, isTSX: isTSX}

	m.mutex.RLock()
	pool, exists := m.pools[key]
	m.mutex.RUnlock()
	if exists {
		return pool, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if pool, exists = m.pools[key]; exists {
		return pool, nil
	}

	langPtr, err := m.LanguagePointer(lang, isTSX)
	if err != nil {
		return nil, err
	}

	pool = newParserPool(lang, langPtr, isTSX, util.OptimalPoolSize(), m.logger)
	m.pools[key] = pool

	m.logger.Debug("created parser pool", "language", lang.String(), "isTSX", isTSX)
	return pool, nil
}

// LanguagePointer returns the tree-sitter grammar pointer for a language.
// isTSX selects the TSX grammar for TypeScript.
func (m *Manager) LanguagePointer(lang Language, isTSX bool) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		if isTSX {
			return ts_typescript.LanguageTSX(), nil
		}
		return ts_typescript.LanguageTypescript(), nil
	case LanguageJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang.String())
	}
}
