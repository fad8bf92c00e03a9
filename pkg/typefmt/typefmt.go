// Package typefmt normalizes TypeScript type expressions for display on
// generated reference pages.
//
// A raw type string is wrapped in a synthetic alias declaration, parsed
// with the TypeScript grammar, and reprinted from the alias value node with
// a fixed style: single quotes, single spaces, no trailing separators, one
// line regardless of input layout. Reprinting from the parse tree makes the
// result a fixed point: formatting formatted output changes nothing.
package typefmt

import (
	"fmt"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/gnana997/apidocs/pkg/extractor"
	"github.com/gnana997/apidocs/pkg/parser"
)

// Formatter formats type expressions using a shared parser manager.
type Formatter struct {
	pm *parser.Manager
}

// NewFormatter creates a Formatter backed by pm.
func NewFormatter(pm *parser.Manager) *Formatter {
	return &Formatter{pm: pm}
}

// FormatType normalizes a raw type expression. Empty input formats to the
// empty string. A syntactically invalid type expression is an error,
// propagated to the caller unrecovered.
func (f *Formatter) FormatType(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	src := []byte("type __Formatted = " + raw)
	tree, err := f.pm.Parse(src, parser.LanguageTypeScript, false)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return "", fmt.Errorf("invalid type expression %q", raw)
	}

	value := aliasValue(root)
	if value == nil {
		return "", fmt.Errorf("invalid type expression %q", raw)
	}

	var tokens []token
	collectTokens(value, "", src, &tokens)
	return joinTokens(tokens), nil
}

// Stringify resolves a symbol's display type and formats it. A symbol
// whose first declaration is a property signature uses that declaration's
// literal type text (preserving aliases as written); anything else falls
// back to the symbol's resolved type string.
func (f *Formatter) Stringify(sym *extractor.Symbol) (string, error) {
	raw := sym.ResolvedType
	if len(sym.Declarations) > 0 && sym.Declarations[0].Kind == "property_signature" {
		raw = sym.Declarations[0].TypeText
	}
	return f.FormatType(raw)
}

// aliasValue finds the synthetic alias declaration's value node.
func aliasValue(root *ts.Node) *ts.Node {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(i)
		if node != nil && node.Kind() == "type_alias_declaration" {
			return node.ChildByFieldName("value")
		}
	}
	return nil
}

// token is a printable leaf with the kind of the node that contains it,
// which drives the spacing rules.
type token struct {
	text   string
	parent string
}

// collectTokens flattens a type node into printable tokens. String
// literals are re-quoted to single quotes and template literal types kept
// verbatim; comments are dropped.
func collectTokens(node *ts.Node, parentKind string, source []byte, out *[]token) {
	kind := node.Kind()

	switch {
	case kind == "comment":
		return
	case kind == "string" && node.IsNamed():
		// The predefined-type keyword shares the "string" kind but is an
		// anonymous token; only named nodes are quoted literals.
		*out = append(*out, token{text: requote(string(node.Utf8Text(source))), parent: parentKind})
		return
	case kind == "template_literal_type" || kind == "template_string":
		*out = append(*out, token{text: string(node.Utf8Text(source)), parent: parentKind})
		return
	}

	if node.ChildCount() == 0 {
		text := string(node.Utf8Text(source))
		if text != "" {
			*out = append(*out, token{text: text, parent: parentKind})
		}
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			collectTokens(child, kind, source, out)
		}
	}
}

// requote converts a string literal to single quotes.
func requote(lit string) string {
	if len(lit) < 2 {
		return lit
	}
	body := lit[1 : len(lit)-1]
	if lit[0] == '"' {
		body = strings.ReplaceAll(body, `\"`, `"`)
		body = strings.ReplaceAll(body, `'`, `\'`)
	}
	return "'" + body + "'"
}

// Tokens that attach to the preceding token.
var noSpaceBefore = map[string]bool{
	")": true, "]": true, ">": true, ",": true, ";": true, ".": true,
}

// Tokens the following token attaches to.
var noSpaceAfter = map[string]bool{
	"(": true, "[": true, "<": true, ".": true, "...": true,
}

// Parents whose "?" is the optional-member modifier rather than the
// conditional-type operator.
var optionalModifierParents = map[string]bool{
	"property_signature": true,
	"method_signature":   true,
	"optional_parameter": true,
	"optional_type":      true,
	"tuple_type":         true,
}

// joinTokens renders tokens single-line with normalized spacing and
// trailing separators removed.
func joinTokens(tokens []token) string {
	// A leading union pipe is syntax noise on one line.
	if len(tokens) > 0 && tokens[0].text == "|" && tokens[0].parent == "union_type" {
		tokens = tokens[1:]
	}

	var b strings.Builder
	var prev *token

	for i := range tokens {
		tok := &tokens[i]

		// Trailing member separators before a closing brace or bracket.
		if tok.text == ";" || tok.text == "," {
			if i+1 >= len(tokens) {
				continue
			}
			next := tokens[i+1].text
			if next == "}" || next == "]" {
				continue
			}
		}

		if prev != nil && needsSpace(prev, tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
		prev = tok
	}

	return b.String()
}

// needsSpace decides whether a single space separates prev and cur.
func needsSpace(prev, cur *token) bool {
	if noSpaceAfter[prev.text] {
		return false
	}
	if noSpaceBefore[cur.text] {
		return false
	}

	switch cur.text {
	case "?":
		if optionalModifierParents[cur.parent] {
			return false
		}
	case ":":
		// Attached in annotations (foo?: string), spaced in conditional
		// types (A extends B ? C : D).
		if cur.parent == "type_annotation" || cur.parent == "index_signature" {
			return false
		}
	case "[":
		// string[] and T['key'] attach; tuple types stand alone.
		if cur.parent == "array_type" || cur.parent == "lookup_type" || cur.parent == "indexed_access_type" {
			return false
		}
	case "<":
		// Generic instantiations attach the angle bracket to the name.
		if cur.parent == "type_arguments" || cur.parent == "type_parameters" {
			return false
		}
	case "}":
		if prev.text == "{" {
			return false
		}
	}

	// Negative numeric literal types.
	if prev.text == "-" && (prev.parent == "literal_type" || prev.parent == "unary_expression") {
		return false
	}

	return true
}
