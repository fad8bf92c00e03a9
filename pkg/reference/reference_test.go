package reference

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReference() *Reference {
	return &Reference{
		SchemaVersion: CurrentSchemaVersion,
		Library:       "acme-ui",
		Components: []ComponentPage{
			{
				Name:         "Button",
				PrefixedName: "MuiButton",
				Pathname:     "/material/api/button/",
				Filename:     "packages/mui-material/src/Button/Button.tsx",
				Package:      "mui-material",
				Description:  "Buttons allow users to take actions with a single tap.",
				Props: []PropDef{
					{Name: "variant", Type: "'text' | 'outlined'", Required: false, Default: "'text'"},
					{Name: "disabled", Type: "boolean"},
				},
				Spread: true,
			},
			{
				Name:     "Stack",
				Pathname: "/system/api/stack/",
				Package:  "mui-system",
				Props:    []PropDef{{Name: "spacing", Type: "number"}},
			},
		},
		Hooks: []HookPage{
			{
				Name:       "useButton",
				Pathname:   "/base/api/use-button/",
				Package:    "mui-base",
				Parameters: []PropDef{{Name: "disabled", Type: "boolean"}},
				ReturnValue: []PropDef{
					{Name: "getRootProps", Type: "() => object"},
				},
			},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validReference().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Reference)
		wantErr string
	}{
		{
			"missing library",
			func(r *Reference) { r.Library = "" },
			"library name is required",
		},
		{
			"wrong schema version",
			func(r *Reference) { r.SchemaVersion = 99 },
			"unsupported schema version",
		},
		{
			"duplicate component",
			func(r *Reference) { r.Components = append(r.Components, r.Components[0]) },
			"duplicate component name",
		},
		{
			"duplicate pathname",
			func(r *Reference) { r.Components[1].Pathname = r.Components[0].Pathname },
			"duplicate pathname",
		},
		{
			"prop without type",
			func(r *Reference) { r.Components[0].Props[0].Type = "" },
			"type is required",
		},
		{
			"hook without use prefix",
			func(r *Reference) { r.Hooks[0].Name = "button" },
			`must start with "use"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := validReference()
			tt.mutate(ref)
			errs := ref.Validate()
			require.NotEmpty(t, errs)
			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.wantErr, errs)
		})
	}
}

func TestBuildIndex(t *testing.T) {
	ref := validReference()
	idx := ref.BuildIndex()

	require.Contains(t, idx.ComponentByName, "Button")
	assert.Equal(t, "MuiButton", idx.ComponentByName["Button"].PrefixedName)
	assert.Contains(t, idx.ComponentByPathname, "/material/api/button/")
	assert.Contains(t, idx.HookByName, "useButton")
	assert.Len(t, idx.ComponentsByPackage["mui-material"], 1)
}

func TestLoadFromFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.json")

	data := []byte(`{
	  "schemaVersion": 1,
	  "library": "acme-ui",
	  "components": [
	    {"name": "Chip", "prefixedName": "MuiChip", "apiPathname": "/material/api/chip/",
	     "package": "mui-material", "props": [{"name": "label", "type": "ReactNode"}]}
	  ],
	  "hooks": []
	}`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	ref, idx, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "acme-ui", ref.Library)
	assert.Contains(t, idx.ComponentByName, "Chip")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read reference file")
}

func TestLoadFromBytes_InvalidJSON(t *testing.T) {
	_, _, err := LoadFromBytes([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse reference JSON")
}
