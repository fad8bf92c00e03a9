// Package extractor derives documentation symbols from TypeScript and
// JavaScript component sources: exported declarations, prop interface
// members, their doc comments and JSDoc tags, and the literal type text
// needed by the type formatter.
package extractor

// JSDocTag is a single @tag attached to a symbol's doc comment.
type JSDocTag struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// Declaration records one declaration site of a symbol. Kind is the
// tree-sitter node kind (property_signature, function_declaration, ...);
// TypeText is the type expression exactly as written in the source,
// preserving aliases and formatting.
type Declaration struct {
	Kind     string `json:"kind"`
	TypeText string `json:"type_text,omitempty"`
}

// Location is a line range within a source file (1-based, inclusive).
type Location struct {
	FilePath  string `json:"file_path"`
	StartLine uint32 `json:"start_line"`
	EndLine   uint32 `json:"end_line"`
}

// Symbol is a documented code symbol: an exported declaration or a prop
// interface member.
type Symbol struct {
	Name string `json:"name"`

	// DocComments holds the description fragments of the symbol's doc
	// comments, one entry per comment block, markers stripped, inner
	// newlines preserved.
	DocComments []string `json:"doc_comments,omitempty"`

	// Tags holds the @tags of the doc comments in source order.
	Tags []JSDocTag `json:"tags,omitempty"`

	// Declarations lists the symbol's declaration sites in source order.
	Declarations []Declaration `json:"declarations,omitempty"`

	// ResolvedType is the declared or annotated type as a string, "" when
	// the source carries no annotation.
	ResolvedType string `json:"resolved_type,omitempty"`

	// Optional marks interface members declared with a "?" modifier.
	Optional bool `json:"optional,omitempty"`

	IsExported bool     `json:"is_exported"`
	Location   Location `json:"location"`
}

// FileSymbols is the extraction result for one source file.
type FileSymbols struct {
	FilePath string `json:"file_path"`

	// Exports are the file's top-level documented declarations.
	Exports []Symbol `json:"exports,omitempty"`

	// Interfaces maps an interface or object type-alias name to its member
	// symbols in declaration order.
	Interfaces map[string][]Symbol `json:"interfaces,omitempty"`
}

// Interface returns the members of the named interface, or nil.
func (fs *FileSymbols) Interface(name string) []Symbol {
	if fs == nil {
		return nil
	}
	return fs.Interfaces[name]
}

// Export returns the named top-level symbol, or nil.
func (fs *FileSymbols) Export(name string) *Symbol {
	if fs == nil {
		return nil
	}
	for i := range fs.Exports {
		if fs.Exports[i].Name == name {
			return &fs.Exports[i]
		}
	}
	return nil
}
