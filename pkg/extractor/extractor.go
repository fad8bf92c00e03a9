package extractor

import (
	"fmt"
	"log/slog"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/gnana997/apidocs/pkg/parser"
)

// Extractor parses a source file once and walks the AST collecting
// documented symbols. Member lookups for prop interfaces reuse the same
// tree, so each file costs a single parse.
type Extractor struct {
	pm     *parser.Manager
	logger *slog.Logger
}

// NewExtractor creates an extractor backed by the given parser manager.
func NewExtractor(pm *parser.Manager, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{pm: pm, logger: logger}
}

// ExtractFile parses source and returns the file's documented symbols:
// top-level declarations plus the members of every interface and object
// type alias.
func (e *Extractor) ExtractFile(filePath string, source []byte) (*FileSymbols, error) {
	tree, err := e.pm.ParseFile(source, filePath)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	defer tree.Close()

	fs := &FileSymbols{
		FilePath:   filePath,
		Interfaces: make(map[string][]Symbol),
	}

	root := tree.RootNode()
	var pending []string

	for i := uint(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(i)
		if node == nil {
			continue
		}

		if node.Kind() == "comment" {
			pending = append(pending, string(node.Utf8Text(source)))
			continue
		}

		exported := false
		decl := node
		if node.Kind() == "export_statement" {
			exported = true
			inner := node.ChildByFieldName("declaration")
			if inner == nil {
				// Bare export clause (export { Button }) declares nothing.
				pending = nil
				continue
			}
			decl = inner
		}

		e.collectDeclaration(fs, decl, exported, pending, source, filePath)
		pending = nil
	}

	e.logger.Debug("extracted file",
		"file", filePath,
		"exports", len(fs.Exports),
		"interfaces", len(fs.Interfaces))

	return fs, nil
}

// collectDeclaration appends symbols for one top-level declaration node.
func (e *Extractor) collectDeclaration(fs *FileSymbols, decl *ts.Node, exported bool, comments []string, source []byte, filePath string) {
	switch decl.Kind() {
	case "interface_declaration":
		name := fieldText(decl, "name", source)
		if name == "" {
			return
		}
		if body := decl.ChildByFieldName("body"); body != nil {
			fs.Interfaces[name] = e.memberSymbols(body, source, filePath)
		}
		fs.Exports = append(fs.Exports, e.newSymbol(name, decl, "", exported, comments, source, filePath))

	case "type_alias_declaration":
		name := fieldText(decl, "name", source)
		if name == "" {
			return
		}
		typeText := ""
		if value := decl.ChildByFieldName("value"); value != nil {
			typeText = string(value.Utf8Text(source))
			if value.Kind() == "object_type" {
				fs.Interfaces[name] = e.memberSymbols(value, source, filePath)
			}
		}
		fs.Exports = append(fs.Exports, e.newSymbol(name, decl, typeText, exported, comments, source, filePath))

	case "function_declaration", "function_signature":
		name := fieldText(decl, "name", source)
		if name == "" {
			return
		}
		typeText := annotatedType(decl.ChildByFieldName("return_type"), source)
		fs.Exports = append(fs.Exports, e.newSymbol(name, decl, typeText, exported, comments, source, filePath))

	case "lexical_declaration", "variable_declaration":
		for i := uint(0); i < decl.NamedChildCount(); i++ {
			declarator := decl.NamedChild(i)
			if declarator == nil || declarator.Kind() != "variable_declarator" {
				continue
			}
			name := fieldText(declarator, "name", source)
			if name == "" {
				continue
			}
			typeText := annotatedType(declarator.ChildByFieldName("type"), source)
			fs.Exports = append(fs.Exports, e.newSymbol(name, decl, typeText, exported, comments, source, filePath))
		}
	}
}

// memberSymbols walks an interface_body or object_type node collecting
// property signatures with their leading doc comments.
func (e *Extractor) memberSymbols(body *ts.Node, source []byte, filePath string) []Symbol {
	var members []Symbol
	var pending []string

	for i := uint(0); i < body.NamedChildCount(); i++ {
		node := body.NamedChild(i)
		if node == nil {
			continue
		}

		switch node.Kind() {
		case "comment":
			pending = append(pending, string(node.Utf8Text(source)))
			continue

		case "property_signature", "method_signature":
			name := fieldText(node, "name", source)
			if name == "" {
				pending = nil
				continue
			}
			name = strings.Trim(name, `'"`)

			typeText := annotatedType(node.ChildByFieldName("type"), source)
			sym := e.newSymbol(name, node, typeText, false, pending, source, filePath)
			sym.Declarations = []Declaration{{Kind: node.Kind(), TypeText: typeText}}
			sym.Optional = hasQuestionToken(node)
			members = append(members, sym)
		}

		pending = nil
	}

	return members
}

// newSymbol builds a Symbol with parsed doc comments attached.
func (e *Extractor) newSymbol(name string, decl *ts.Node, typeText string, exported bool, comments []string, source []byte, filePath string) Symbol {
	sym := Symbol{
		Name:         name,
		ResolvedType: typeText,
		IsExported:   exported,
		Declarations: []Declaration{{Kind: decl.Kind(), TypeText: typeText}},
		Location: Location{
			FilePath:  filePath,
			StartLine: uint32(decl.StartPosition().Row + 1),
			EndLine:   uint32(decl.EndPosition().Row + 1),
		},
	}

	for _, comment := range comments {
		fragment, tags := parseDocComment(comment)
		if fragment != "" {
			sym.DocComments = append(sym.DocComments, fragment)
		}
		sym.Tags = append(sym.Tags, tags...)
	}

	return sym
}

// fieldText returns the text of a named field child, or "".
func fieldText(node *ts.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return string(child.Utf8Text(source))
}

// annotatedType strips the leading ":" from a type_annotation node's text,
// preserving the type expression exactly as written.
func annotatedType(node *ts.Node, source []byte) string {
	if node == nil {
		return ""
	}
	text := string(node.Utf8Text(source))
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), ":"))
	return text
}

// hasQuestionToken reports whether a property signature carries the "?"
// optional modifier.
func hasQuestionToken(node *ts.Node) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == "?" {
			return true
		}
	}
	return false
}
