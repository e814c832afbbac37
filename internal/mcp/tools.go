package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wilbanksalexis/Powering/internal/chat"
)

// generateResponseTool defines the generate_response MCP tool.
var generateResponseTool = mcp.NewTool("generate_response",
	mcp.WithDescription("Answer a question about the environmental or social impact of data centers. Known places: "+placeList()+"."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Question naming one of the known places, optionally with an environmental or social topic"),
	),
)

// placeList names the places the responder knows, in scan order.
func placeList() string {
	names := make([]string, 0, len(chat.Places()))
	for _, p := range chat.Places() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// listCompaniesTool defines the list_companies MCP tool.
var listCompaniesTool = mcp.NewTool("list_companies",
	mcp.WithDescription("List the data center operators in the dataset with their location counts."),
)

// filterLocationsTool defines the filter_locations MCP tool.
var filterLocationsTool = mcp.NewTool("filter_locations",
	mcp.WithDescription("List the data center locations of one company (or all of them) with the map viewport that would show them."),
	mcp.WithString("company",
		mcp.Description("Exact company name; omit or pass \"all\" for every location"),
	),
)
