// Doc-comment parsing: descriptions and JSDoc tags.
package extractor

import "strings"

// parseDocComment splits a raw comment into its description fragment and
// JSDoc tags. Block markers (/**, *, */) and line markers (//) are
// stripped; description newlines are preserved. Lines following a @tag
// line extend that tag's text.
func parseDocComment(comment string) (string, []JSDocTag) {
	comment = strings.TrimSpace(comment)

	if strings.HasPrefix(comment, "//") {
		line := strings.TrimSpace(strings.TrimPrefix(comment, "//"))
		if tag, ok := parseTagLine(line); ok {
			return "", []JSDocTag{tag}
		}
		return line, nil
	}

	comment = strings.TrimPrefix(comment, "/**")
	comment = strings.TrimPrefix(comment, "/*")
	comment = strings.TrimSuffix(comment, "*/")

	var descLines []string
	var tags []JSDocTag

	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		if strings.HasPrefix(line, " ") {
			line = line[1:]
		}

		if tag, ok := parseTagLine(strings.TrimSpace(line)); ok {
			tags = append(tags, tag)
			continue
		}

		if len(tags) > 0 {
			// Continuation of the previous tag's text.
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				last := &tags[len(tags)-1]
				if last.Text == "" {
					last.Text = trimmed
				} else {
					last.Text += " " + trimmed
				}
			}
			continue
		}

		descLines = append(descLines, line)
	}

	// Trim blank edges but keep interior blank lines.
	for len(descLines) > 0 && strings.TrimSpace(descLines[0]) == "" {
		descLines = descLines[1:]
	}
	for len(descLines) > 0 && strings.TrimSpace(descLines[len(descLines)-1]) == "" {
		descLines = descLines[:len(descLines)-1]
	}

	return strings.Join(descLines, "\n"), tags
}

// parseTagLine parses "@name rest" into a tag.
func parseTagLine(line string) (JSDocTag, bool) {
	if !strings.HasPrefix(line, "@") {
		return JSDocTag{}, false
	}
	name, text, _ := strings.Cut(line[1:], " ")
	if name == "" {
		return JSDocTag{}, false
	}
	return JSDocTag{Name: name, Text: strings.TrimSpace(text)}, true
}

// Description joins a symbol's doc-comment fragments into the page
// description. Each fragment is split on newlines, lines starting with
// "TODO" are dropped, and the survivors are joined with newlines.
func Description(sym *Symbol) string {
	var lines []string
	for _, fragment := range sym.DocComments {
		for _, line := range strings.Split(fragment, "\n") {
			if strings.HasPrefix(line, "TODO") {
				continue
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// TagMap converts a symbol's tag list into a name-to-tag mapping. When a
// tag name repeats, the later occurrence wins.
func TagMap(sym *Symbol) map[string]JSDocTag {
	tags := make(map[string]JSDocTag, len(sym.Tags))
	for _, tag := range sym.Tags {
		tags[tag.Name] = tag
	}
	return tags
}
