package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/wilbanksalexis/Powering/internal/mapview"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the impact chat and the location
// dataset as tools.
type Server struct {
	state *mapview.State
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over state. The state may have failed
// to load; the chat tool works regardless.
func NewServer(state *mapview.State) *Server {
	s := &Server{state: state}

	s.mcp = server.NewMCPServer(
		"powering",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateResponseTool, s.handleGenerateResponse)
	s.mcp.AddTool(listCompaniesTool, s.handleListCompanies)
	s.mcp.AddTool(filterLocationsTool, s.handleFilterLocations)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
