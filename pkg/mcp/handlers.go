package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// componentSummary is the compact list_components entry; full prop schemas
// come from get_component_api to keep list responses small.
type componentSummary struct {
	Name         string `json:"name"`
	PrefixedName string `json:"prefixedName,omitempty"`
	Pathname     string `json:"apiPathname"`
	Package      string `json:"package"`
	Description  string `json:"description,omitempty"`
	PropCount    int    `json:"propCount"`
}

type hookSummary struct {
	Name        string `json:"name"`
	Pathname    string `json:"apiPathname"`
	Package     string `json:"package"`
	Description string `json:"description,omitempty"`
}

type searchEntry struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Pathname    string `json:"apiPathname"`
	MatchReason string `json:"matchReason"`
}

// jsonResult marshals v into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleListComponents(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg := req.GetString("package", "")
	keyword := req.GetString("keyword", "")

	comps := s.query.ListComponents(pkg, keyword)
	if len(comps) == 0 {
		return mcp.NewToolResultText("no components found matching the given filters"), nil
	}

	summaries := make([]componentSummary, 0, len(comps))
	for _, c := range comps {
		summaries = append(summaries, componentSummary{
			Name:         c.Name,
			PrefixedName: c.PrefixedName,
			Pathname:     c.Pathname,
			Package:      c.Package,
			Description:  c.Description,
			PropCount:    len(c.Props),
		})
	}
	return jsonResult(summaries)
}

func (s *Server) handleListHooks(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword := req.GetString("keyword", "")

	hooks := s.query.ListHooks(keyword)
	if len(hooks) == 0 {
		return mcp.NewToolResultText("no hooks found matching the given filters"), nil
	}

	summaries := make([]hookSummary, 0, len(hooks))
	for _, h := range hooks {
		summaries = append(summaries, hookSummary{
			Name:        h.Name,
			Pathname:    h.Pathname,
			Package:     h.Package,
			Description: h.Description,
		})
	}
	return jsonResult(summaries)
}

func (s *Server) handleGetComponentApi(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	comp, ok := s.query.GetComponent(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("component not found: %s", name)), nil
	}
	return jsonResult(comp)
}

func (s *Server) handleGetHookApi(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	hook, ok := s.query.GetHook(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("hook not found: %s", name)), nil
	}
	return jsonResult(hook)
}

func (s *Server) handleSearchApi(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	results := s.query.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no pages found matching %q", query)), nil
	}

	entries := make([]searchEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, searchEntry{
			Kind:        r.Kind,
			Name:        r.Name,
			Pathname:    r.Pathname,
			MatchReason: r.MatchReason,
		})
	}
	return jsonResult(entries)
}
