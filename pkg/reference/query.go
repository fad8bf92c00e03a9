package reference

import "strings"

// SearchResult holds a page match with the reason it matched.
type SearchResult struct {
	// Kind is "component" or "hook".
	Kind        string
	Name        string
	Pathname    string
	MatchReason string
}

// QueryService provides read-only query methods over a loaded reference.
type QueryService struct {
	Reference *Reference
	Index     *Index
}

// NewQueryService creates a QueryService from a validated reference and its index.
func NewQueryService(ref *Reference, idx *Index) *QueryService {
	return &QueryService{Reference: ref, Index: idx}
}

// LoadAndQuery loads a reference from file and returns a ready-to-use QueryService.
func LoadAndQuery(path string) (*QueryService, error) {
	ref, idx, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewQueryService(ref, idx), nil
}

// ListComponents returns component pages filtered by package and/or keyword.
// Both filters are optional (pass "" to skip). When both are provided, they
// combine with AND logic. The keyword matches case-insensitively against
// component Name and Description.
func (q *QueryService) ListComponents(pkg, keyword string) []ComponentPage {
	var candidates []*ComponentPage

	if pkg != "" {
		candidates = q.Index.ComponentsByPackage[pkg]
	} else {
		candidates = make([]*ComponentPage, 0, len(q.Reference.Components))
		for i := range q.Reference.Components {
			candidates = append(candidates, &q.Reference.Components[i])
		}
	}

	keyword = strings.ToLower(keyword)
	result := make([]ComponentPage, 0)

	for _, comp := range candidates {
		if keyword != "" {
			nameLower := strings.ToLower(comp.Name)
			descLower := strings.ToLower(comp.Description)
			if !strings.Contains(nameLower, keyword) && !strings.Contains(descLower, keyword) {
				continue
			}
		}
		result = append(result, *comp)
	}

	return result
}

// ListHooks returns hook pages, optionally filtered by a case-insensitive
// keyword matched against Name and Description.
func (q *QueryService) ListHooks(keyword string) []HookPage {
	keyword = strings.ToLower(keyword)
	result := make([]HookPage, 0)

	for i := range q.Reference.Hooks {
		hook := &q.Reference.Hooks[i]
		if keyword != "" {
			nameLower := strings.ToLower(hook.Name)
			descLower := strings.ToLower(hook.Description)
			if !strings.Contains(nameLower, keyword) && !strings.Contains(descLower, keyword) {
				continue
			}
		}
		result = append(result, *hook)
	}

	return result
}

// GetComponent looks up a component page by name, falling back to the
// prefixed name (e.g. MuiButton) and then the API pathname.
// The bool indicates whether the component was found.
func (q *QueryService) GetComponent(name string) (*ComponentPage, bool) {
	if comp, ok := q.Index.ComponentByName[name]; ok {
		return comp, true
	}
	for i := range q.Reference.Components {
		if q.Reference.Components[i].PrefixedName == name {
			return &q.Reference.Components[i], true
		}
	}
	if comp, ok := q.Index.ComponentByPathname[name]; ok {
		return comp, true
	}
	return nil, false
}

// GetHook looks up a hook page by name, falling back to the API pathname.
// The bool indicates whether the hook was found.
func (q *QueryService) GetHook(name string) (*HookPage, bool) {
	if hook, ok := q.Index.HookByName[name]; ok {
		return hook, true
	}
	if hook, ok := q.Index.HookByPathname[name]; ok {
		return hook, true
	}
	return nil, false
}

// Search performs a case-insensitive search across component and hook names,
// descriptions, and prop names. Returns matches with the reason for the match.
func (q *QueryService) Search(query string) []SearchResult {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}

	var results []SearchResult

	for i := range q.Reference.Components {
		comp := &q.Reference.Components[i]

		if strings.Contains(strings.ToLower(comp.Name), query) {
			results = append(results, SearchResult{Kind: "component", Name: comp.Name, Pathname: comp.Pathname, MatchReason: "name"})
			continue
		}
		if strings.Contains(strings.ToLower(comp.Description), query) {
			results = append(results, SearchResult{Kind: "component", Name: comp.Name, Pathname: comp.Pathname, MatchReason: "description"})
			continue
		}
		for _, prop := range comp.Props {
			if strings.Contains(strings.ToLower(prop.Name), query) {
				results = append(results, SearchResult{Kind: "component", Name: comp.Name, Pathname: comp.Pathname, MatchReason: "prop:" + prop.Name})
				break
			}
		}
	}

	for i := range q.Reference.Hooks {
		hook := &q.Reference.Hooks[i]

		if strings.Contains(strings.ToLower(hook.Name), query) {
			results = append(results, SearchResult{Kind: "hook", Name: hook.Name, Pathname: hook.Pathname, MatchReason: "name"})
			continue
		}
		if strings.Contains(strings.ToLower(hook.Description), query) {
			results = append(results, SearchResult{Kind: "hook", Name: hook.Name, Pathname: hook.Pathname, MatchReason: "description"})
			continue
		}
		matched := false
		for _, p := range hook.Parameters {
			if strings.Contains(strings.ToLower(p.Name), query) {
				results = append(results, SearchResult{Kind: "hook", Name: hook.Name, Pathname: hook.Pathname, MatchReason: "parameter:" + p.Name})
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, p := range hook.ReturnValue {
			if strings.Contains(strings.ToLower(p.Name), query) {
				results = append(results, SearchResult{Kind: "hook", Name: hook.Name, Pathname: hook.Pathname, MatchReason: "return:" + p.Name})
				break
			}
		}
	}

	return results
}
