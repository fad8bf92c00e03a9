// Package parser manages tree-sitter parsers for the TypeScript and
// JavaScript grammars used across extraction and type formatting.
package parser

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported source grammar.
type Language int

const (
	LanguageTypeScript Language = iota
	LanguageJavaScript
	LanguageUnknown
)

var languageNames = map[Language]string{
	LanguageTypeScript: "typescript",
	LanguageJavaScript: "javascript",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unknown"
}

// extLanguages maps lowercased file extensions to their grammar. TSX shares
// the TypeScript entry; the dialect split happens in IsTSXFile.
var extLanguages = map[string]Language{
	".ts":  LanguageTypeScript,
	".mts": LanguageTypeScript,
	".cts": LanguageTypeScript,
	".tsx": LanguageTypeScript,
	".js":  LanguageJavaScript,
	".jsx": LanguageJavaScript,
	".mjs": LanguageJavaScript,
	".cjs": LanguageJavaScript,
}

// DetectLanguage picks the grammar for filePath by extension.
func DetectLanguage(filePath string) Language {
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(filePath))]; ok {
		return lang
	}
	return LanguageUnknown
}

// IsTSXFile reports whether filePath needs the TSX grammar variant.
func IsTSXFile(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".tsx")
}
