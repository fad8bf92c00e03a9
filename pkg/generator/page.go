package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnana997/apidocs/pkg/extractor"
	"github.com/gnana997/apidocs/pkg/paths"
	"github.com/gnana997/apidocs/pkg/reference"
)

// buildComponentPage assembles the API page for one component from its
// descriptor and extracted symbols. The props interface is looked up by
// the <Name>Props convention; a file without one still gets a page.
func (g *Generator) buildComponentPage(desc *ComponentDescriptor, syms *extractor.FileSymbols) (*reference.ComponentPage, error) {
	page := &reference.ComponentPage{
		Name:               desc.DisplayName,
		PrefixedName:       desc.PrefixedName,
		Pathname:           desc.ApiPathname,
		Filename:           desc.Filename,
		Package:            desc.Package,
		Props:              []reference.PropDef{},
		Spread:             desc.Source.Spread,
		InheritedComponent: desc.Source.InheritedComponent,
		SystemComponent:    desc.SystemComponent,
		DemoApiLink:        paths.APIPath(g.cfg.Demos[desc.DisplayName], desc.DisplayName),
	}

	if syms == nil {
		return page, nil
	}

	if exp := syms.Export(desc.DisplayName); exp != nil {
		page.Description = extractor.Description(exp)
	}

	props, err := g.buildProps(syms.Interface(desc.DisplayName + "Props"))
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", desc.DisplayName, err)
	}
	page.Props = props

	return page, nil
}

// buildHookPage assembles the API page for one hook. Parameters and the
// return value follow the Use<Name>Parameters / Use<Name>ReturnValue
// interface convention.
func (g *Generator) buildHookPage(desc *HookDescriptor, syms *extractor.FileSymbols) (*reference.HookPage, error) {
	page := &reference.HookPage{
		Name:        desc.Name,
		Pathname:    desc.ApiPathname,
		Filename:    desc.Filename,
		Package:     desc.Package,
		Parameters:  []reference.PropDef{},
		ReturnValue: []reference.PropDef{},
		DemoApiLink: paths.APIPath(g.cfg.Demos[desc.Name], desc.Name),
	}

	if syms == nil {
		return page, nil
	}

	if exp := syms.Export(desc.Name); exp != nil {
		page.Description = extractor.Description(exp)
	}

	capitalized := strings.ToUpper(desc.Name[:1]) + desc.Name[1:]

	params, err := g.buildProps(syms.Interface(capitalized + "Parameters"))
	if err != nil {
		return nil, fmt.Errorf("hook %s: %w", desc.Name, err)
	}
	page.Parameters = params

	ret, err := g.buildProps(syms.Interface(capitalized + "ReturnValue"))
	if err != nil {
		return nil, fmt.Errorf("hook %s: %w", desc.Name, err)
	}
	page.ReturnValue = ret

	return page, nil
}

// buildProps converts interface members into prop definitions, sorted by
// name. Members tagged @ignore are dropped; a type that fails to format
// aborts the page.
func (g *Generator) buildProps(members []extractor.Symbol) ([]reference.PropDef, error) {
	props := make([]reference.PropDef, 0, len(members))

	for i := range members {
		m := &members[i]
		tags := extractor.TagMap(m)
		if _, ok := tags["ignore"]; ok {
			continue
		}

		typ, err := g.fmtr.Stringify(m)
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", m.Name, err)
		}

		def := reference.PropDef{
			Name:        m.Name,
			Type:        typ,
			Required:    !m.Optional,
			Description: extractor.Description(m),
		}
		if tag, ok := tags["default"]; ok {
			def.Default = tag.Text
		}
		if tag, ok := tags["deprecated"]; ok {
			def.Deprecated = true
			def.DeprecationNote = tag.Text
		}

		props = append(props, def)
	}

	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	return props, nil
}
