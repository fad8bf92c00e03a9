package generator

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/gnana997/apidocs/pkg/paths"
	"github.com/gnana997/apidocs/pkg/source"
)

// IsHookName reports whether a symbol name follows the React hook
// convention: a "use" prefix followed by an uppercase letter.
func IsHookName(name string) bool {
	if !strings.HasPrefix(name, "use") || len(name) < 4 {
		return false
	}
	return unicode.IsUpper(rune(name[3]))
}

// productSlug derives the URL segment for a package: the normalized
// package name without its vendor prefix ("mui-material" -> "material").
func productSlug(muiPackage string) string {
	return strings.TrimPrefix(muiPackage, "mui-")
}

// BuildDescriptors turns discovered files into component and hook
// descriptors. Files outside the packages/<pkg>/src layout are ignored;
// unreadable files are logged and counted as failed.
func BuildDescriptors(files []string, cfg Config, logger *slog.Logger) ([]ComponentDescriptor, []HookDescriptor, int) {
	if logger == nil {
		logger = slog.Default()
	}

	var components []ComponentDescriptor
	var hooks []HookDescriptor
	failed := 0

	for _, file := range files {
		pf, ok := paths.ExtractPackageFile(file)
		if !ok {
			logger.Debug("file outside package layout, ignored", "file", file)
			continue
		}

		parsed, err := source.ParseFile(file)
		if err != nil {
			logger.Warn("failed to read source file", "file", file, "error", err)
			failed++
			continue
		}

		kebab := paths.KebabCase(pf.Name)
		product := productSlug(pf.MuiPackage)
		apiPathname := "/" + product + "/api/" + kebab + "/"
		apiDir := ""
		pageFile := ""
		if cfg.OutputDir != "" {
			apiDir = filepath.Join(cfg.OutputDir, product, "api")
			pageFile = filepath.Join(apiDir, kebab+".json")
		}

		if IsHookName(pf.Name) {
			hooks = append(hooks, HookDescriptor{
				Filename:          file,
				Name:              pf.Name,
				ApiPathname:       apiPathname,
				ApiPagesDirectory: apiDir,
				PageFile:          pageFile,
				Package:           pf.MuiPackage,
				Skipped:           parsed.ShouldSkip,
				Source:            parsed,
			})
			continue
		}

		components = append(components, ComponentDescriptor{
			Filename:          file,
			DisplayName:       pf.Name,
			PrefixedName:      paths.MuiName(pf.Name),
			ApiPathname:       apiPathname,
			ApiPagesDirectory: apiDir,
			PageFile:          pageFile,
			Package:           pf.MuiPackage,
			Skipped:           parsed.ShouldSkip,
			SystemComponent:   slices.Contains(cfg.SystemComponents, pf.Name),
			Source:            parsed,
		})
	}

	return components, hooks, failed
}
