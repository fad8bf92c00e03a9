// Package reference models the generated pages.json document: every
// component and hook API page produced by a build, in one queryable file.
package reference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Reference holds the full generated API reference for a library.
type Reference struct {
	SchemaVersion int             `json:"schemaVersion"`
	Library       string          `json:"library"`
	GeneratedAt   string          `json:"generatedAt,omitempty"`
	Components    []ComponentPage `json:"components"`
	Hooks         []HookPage      `json:"hooks"`
}

// Index provides O(1) lookups into the reference.
// Built during LoadFromFile after validation passes.
type Index struct {
	// ComponentByName maps component name -> *ComponentPage.
	ComponentByName map[string]*ComponentPage

	// ComponentByPathname maps API pathname -> *ComponentPage.
	ComponentByPathname map[string]*ComponentPage

	// HookByName maps hook name -> *HookPage.
	HookByName map[string]*HookPage

	// HookByPathname maps API pathname -> *HookPage.
	HookByPathname map[string]*HookPage

	// ComponentsByPackage maps package name -> []*ComponentPage.
	ComponentsByPackage map[string][]*ComponentPage
}

// Validate checks the reference for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (r *Reference) Validate() []error {
	var errs []error

	if r.SchemaVersion != CurrentSchemaVersion {
		errs = append(errs, fmt.Errorf("unsupported schema version %d (expected %d)", r.SchemaVersion, CurrentSchemaVersion))
	}
	if r.Library == "" {
		errs = append(errs, fmt.Errorf("library name is required"))
	}

	componentNames := make(map[string]bool, len(r.Components))
	hookNames := make(map[string]bool, len(r.Hooks))
	pathnames := make(map[string]bool, len(r.Components)+len(r.Hooks))

	for i, comp := range r.Components {
		if comp.Name == "" {
			errs = append(errs, fmt.Errorf("components[%d]: name is required", i))
			continue
		}
		if comp.Pathname == "" {
			errs = append(errs, fmt.Errorf("component %q: apiPathname is required", comp.Name))
		}
		if componentNames[comp.Name] {
			errs = append(errs, fmt.Errorf("component %q: duplicate component name", comp.Name))
			continue
		}
		componentNames[comp.Name] = true

		if comp.Pathname != "" {
			if pathnames[comp.Pathname] {
				errs = append(errs, fmt.Errorf("component %q: duplicate pathname %q", comp.Name, comp.Pathname))
			}
			pathnames[comp.Pathname] = true
		}

		for j, prop := range comp.Props {
			if prop.Name == "" {
				errs = append(errs, fmt.Errorf("component %q props[%d]: name is required", comp.Name, j))
			}
			if prop.Type == "" {
				errs = append(errs, fmt.Errorf("component %q props[%d]: type is required", comp.Name, j))
			}
		}
	}

	for i, hook := range r.Hooks {
		if hook.Name == "" {
			errs = append(errs, fmt.Errorf("hooks[%d]: name is required", i))
			continue
		}
		if !strings.HasPrefix(hook.Name, "use") {
			errs = append(errs, fmt.Errorf("hook %q: name must start with \"use\"", hook.Name))
		}
		if hook.Pathname == "" {
			errs = append(errs, fmt.Errorf("hook %q: apiPathname is required", hook.Name))
		}
		if hookNames[hook.Name] || componentNames[hook.Name] {
			errs = append(errs, fmt.Errorf("hook %q: duplicate name", hook.Name))
			continue
		}
		hookNames[hook.Name] = true

		if hook.Pathname != "" {
			if pathnames[hook.Pathname] {
				errs = append(errs, fmt.Errorf("hook %q: duplicate pathname %q", hook.Name, hook.Pathname))
			}
			pathnames[hook.Pathname] = true
		}

		for j, p := range hook.Parameters {
			if p.Name == "" || p.Type == "" {
				errs = append(errs, fmt.Errorf("hook %q parameters[%d]: name and type are required", hook.Name, j))
			}
		}
		for j, p := range hook.ReturnValue {
			if p.Name == "" || p.Type == "" {
				errs = append(errs, fmt.Errorf("hook %q returnValue[%d]: name and type are required", hook.Name, j))
			}
		}
	}

	return errs
}

// BuildIndex creates lookup maps for fast access.
// Should be called after Validate() passes.
func (r *Reference) BuildIndex() *Index {
	idx := &Index{
		ComponentByName:     make(map[string]*ComponentPage, len(r.Components)),
		ComponentByPathname: make(map[string]*ComponentPage, len(r.Components)),
		HookByName:          make(map[string]*HookPage, len(r.Hooks)),
		HookByPathname:      make(map[string]*HookPage, len(r.Hooks)),
		ComponentsByPackage: make(map[string][]*ComponentPage),
	}

	for i := range r.Components {
		comp := &r.Components[i]
		idx.ComponentByName[comp.Name] = comp
		idx.ComponentByPathname[comp.Pathname] = comp
		idx.ComponentsByPackage[comp.Package] = append(idx.ComponentsByPackage[comp.Package], comp)
	}

	for i := range r.Hooks {
		hook := &r.Hooks[i]
		idx.HookByName[hook.Name] = hook
		idx.HookByPathname[hook.Pathname] = hook
	}

	return idx
}

// LoadFromFile loads a reference from a pages.json file, validates it, and
// builds the index.
func LoadFromFile(path string) (*Reference, *Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a reference from raw JSON bytes, validates it, and
// builds the index.
func LoadFromBytes(data []byte) (*Reference, *Index, error) {
	var ref Reference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, nil, fmt.Errorf("failed to parse reference JSON: %w", err)
	}

	if errs := ref.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("reference validation failed: %w", errors.Join(errs...))
	}

	index := ref.BuildIndex()
	return &ref, index, nil
}
