package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchProjectsTool defines the search_projects MCP tool.
var searchProjectsTool = mcp.NewTool("search_projects",
	mcp.WithDescription("List portfolio projects, optionally filtered by an exact tag and a case-insensitive text query, in catalog order."),
	mcp.WithString("tag",
		mcp.Description(`Exact, case-sensitive tag to filter by. Omit or pass "All" for every project.`),
	),
	mcp.WithString("query",
		mcp.Description("Substring matched against title, subtitle, stack, description, tags and controls"),
	),
)

// listTagsTool defines the list_tags MCP tool.
var listTagsTool = mcp.NewTool("list_tags",
	mcp.WithDescription(`List every tag used in the catalog, "All" first and the rest sorted.`),
)

// getProjectTool defines the get_project MCP tool.
var getProjectTool = mcp.NewTool("get_project",
	mcp.WithDescription("Get the full case study for one project: problem, approach, controls, impact and links."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Project slug (as returned by search_projects) or project ID"),
	),
)
