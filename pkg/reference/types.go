package reference

// CurrentSchemaVersion is the pages.json schema this build understands.
const CurrentSchemaVersion = 1

// PropDef describes a single documented prop, hook parameter, or hook
// return field.
type PropDef struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Required        bool   `json:"required"`
	Default         string `json:"default,omitempty"`
	Description     string `json:"description,omitempty"`
	Deprecated      bool   `json:"deprecated,omitempty"`
	DeprecationNote string `json:"deprecationNote,omitempty"`
}

// ComponentPage is the generated API page for one component.
type ComponentPage struct {
	Name               string    `json:"name"`
	PrefixedName       string    `json:"prefixedName"`
	Pathname           string    `json:"apiPathname"`
	Filename           string    `json:"filename"`
	Package            string    `json:"package"`
	Description        string    `json:"description,omitempty"`
	Props              []PropDef `json:"props"`
	Spread             bool      `json:"spread"`
	InheritedComponent string    `json:"inheritedComponent,omitempty"`
	SystemComponent    bool      `json:"systemComponent,omitempty"`
	DemoApiLink        string    `json:"demoApiLink,omitempty"`
}

// HookPage is the generated API page for one hook.
type HookPage struct {
	Name        string    `json:"name"`
	Pathname    string    `json:"apiPathname"`
	Filename    string    `json:"filename"`
	Package     string    `json:"package"`
	Description string    `json:"description,omitempty"`
	Parameters  []PropDef `json:"parameters"`
	ReturnValue []PropDef `json:"returnValue"`
	DemoApiLink string    `json:"demoApiLink,omitempty"`
}
