package mcp

import "github.com/mark3labs/mcp-go/mcp"

func listComponentsTool() mcp.Tool {
	return mcp.NewTool("list_components",
		mcp.WithDescription("List component API pages, optionally filtered by package and/or keyword"),
		mcp.WithString("package",
			mcp.Description("Package name to filter by, e.g. mui-material"),
		),
		mcp.WithString("keyword",
			mcp.Description("Case-insensitive keyword matched against name and description"),
		),
	)
}

func listHooksTool() mcp.Tool {
	return mcp.NewTool("list_hooks",
		mcp.WithDescription("List hook API pages, optionally filtered by keyword"),
		mcp.WithString("keyword",
			mcp.Description("Case-insensitive keyword matched against name and description"),
		),
	)
}

func getComponentApiTool() mcp.Tool {
	return mcp.NewTool("get_component_api",
		mcp.WithDescription("Get the full API page for one component: props, defaults, deprecations, inheritance"),
		mcp.WithString("name",
			mcp.Description("Component name (Button), prefixed name (MuiButton), or API pathname"),
			mcp.Required(),
		),
	)
}

func getHookApiTool() mcp.Tool {
	return mcp.NewTool("get_hook_api",
		mcp.WithDescription("Get the full API page for one hook: parameters and return value"),
		mcp.WithString("name",
			mcp.Description("Hook name (useButton) or API pathname"),
			mcp.Required(),
		),
	)
}

func searchApiTool() mcp.Tool {
	return mcp.NewTool("search_api",
		mcp.WithDescription("Search component and hook pages by name, description, or prop name"),
		mcp.WithString("query",
			mcp.Description("Case-insensitive search term"),
			mcp.Required(),
		),
	)
}
