package paths

import (
	"regexp"
	"strings"
	"unicode"
)

// PackageFile identifies which monorepo package a source file belongs to
// and the component name derived from its base name.
type PackageFile struct {
	// PackagePath is the package directory under packages/, e.g. "x-data-grid".
	PackagePath string
	// Name is the file base name under src/, e.g. "DataGrid".
	Name string
	// MuiPackage is the published package convention: PackagePath with the
	// "x-" prefix replaced by "mui-".
	MuiPackage string
}

// packageFileRE captures the package directory following the last
// packages ancestor and the base name directly under src/, skipping nested
// subdirectories. Greedy prefixes keep the match anchored to the deepest
// packages/src pair.
var packageFileRE = regexp.MustCompile(`.*/packages.*/(?P<packagePath>[^/]+)/src/(?:[^/]+/)*(?P<name>[^/]+)\.(?:js|jsx|ts|tsx)$`)

// ExtractPackageFile parses a monorepo source path into its package
// directory and component name. Backslash separators are rewritten
// unconditionally, so Windows-style inputs parse on every host. Returns
// ok=false (all fields zero) when the path does not follow the
// packages/.../src layout.
func ExtractPackageFile(filePath string) (PackageFile, bool) {
	match := packageFileRE.FindStringSubmatch(strings.ReplaceAll(filePath, `\`, "/"))
	if match == nil {
		return PackageFile{}, false
	}
	pkg := match[packageFileRE.SubexpIndex("packagePath")]
	return PackageFile{
		PackagePath: pkg,
		Name:        match[packageFileRE.SubexpIndex("name")],
		MuiPackage:  strings.Replace(pkg, "x-", "mui-", 1),
	}, true
}

// MuiName produces the "Mui" prefixed component name used for global class
// names. The literal "Styled" substring is removed first (first occurrence
// only, wherever it appears), then the prefix is applied.
func MuiName(name string) string {
	return "Mui" + strings.Replace(name, "Styled", "", 1)
}

// KebabCase converts an identifier to kebab case: "useDataGrid" becomes
// "use-data-grid", "HTMLInput" becomes "html-input".
func KebabCase(s string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if i > 0 && unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				// Acronym boundary: the last uppercase before a lowercase
				// starts a new word (HTMLInput -> html, input).
				flush()
			}
			cur = append(cur, r)
		case unicode.IsDigit(r):
			if i > 0 && unicode.IsLetter(runes[i-1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			if i > 0 && unicode.IsDigit(runes[i-1]) {
				flush()
			}
			cur = append(cur, r)
		}
	}
	flush()

	return strings.Join(words, "-")
}
