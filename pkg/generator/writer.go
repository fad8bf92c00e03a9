package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FormatConfig holds the output formatting settings shared by every
// generated file, loaded from a JSON config next to the project.
type FormatConfig struct {
	IndentWidth int    `json:"indentWidth"`
	EndOfLine   string `json:"endOfLine"`
}

// DefaultFormatConfig is used for fields the config file leaves unset.
func DefaultFormatConfig() *FormatConfig {
	return &FormatConfig{IndentWidth: 2, EndOfLine: "lf"}
}

// ResolveFormatConfig loads the format config governing filename. A
// missing or unreadable config is fatal: generated output must never
// silently fall back to ad-hoc formatting.
func ResolveFormatConfig(filename, configPath string) (*FormatConfig, error) {
	if configPath == "" {
		return nil, fmt.Errorf("no format config configured for %s", filename)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve format config for %s at %s: %w", filename, configPath, err)
	}

	cfg := DefaultFormatConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid format config %s: %w", configPath, err)
	}
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 2
	}
	switch cfg.EndOfLine {
	case "lf", "crlf":
	case "":
		cfg.EndOfLine = "lf"
	default:
		return nil, fmt.Errorf("invalid format config %s: endOfLine must be \"lf\" or \"crlf\", got %q", configPath, cfg.EndOfLine)
	}

	return cfg, nil
}

// WriteOptions overrides write behavior for a single file.
type WriteOptions struct {
	// Mode is the file permission; zero means 0o644.
	Mode fs.FileMode
}

// WritePrettifiedFile formats data according to cfg and the target file's
// extension, then writes it. JSON files are re-indented; everything else
// is EOL-normalized with exactly one trailing newline.
func WritePrettifiedFile(filename string, data []byte, cfg *FormatConfig, opts *WriteOptions) error {
	if cfg == nil {
		cfg = DefaultFormatConfig()
	}

	var formatted []byte
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", strings.Repeat(" ", cfg.IndentWidth)); err != nil {
			return fmt.Errorf("failed to format %s: %w", filename, err)
		}
		formatted = buf.Bytes()
	default:
		formatted = data
	}

	formatted = normalizeEOL(formatted, cfg.EndOfLine)

	mode := fs.FileMode(0o644)
	if opts != nil && opts.Mode != 0 {
		mode = opts.Mode
	}

	if err := os.WriteFile(filename, formatted, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// normalizeEOL converts line endings and guarantees a single trailing
// newline.
func normalizeEOL(data []byte, eol string) []byte {
	normalized := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	normalized = bytes.TrimRight(normalized, "\n")
	normalized = append(normalized, '\n')
	if eol == "crlf" {
		normalized = bytes.ReplaceAll(normalized, []byte("\n"), []byte("\r\n"))
	}
	return normalized
}
