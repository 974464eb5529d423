package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/gallery"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents browse the project catalog.
type Server struct {
	source gallery.Source
	locale language.Tag
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server reading projects from source. The
// catalog is loaded on every call so edits are picked up without restart.
func NewServer(source gallery.Source, locale language.Tag) *Server {
	s := &Server{
		source: source,
		locale: locale,
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchProjectsTool, s.handleSearchProjects)
	s.mcp.AddTool(listTagsTool, s.handleListTags)
	s.mcp.AddTool(getProjectTool, s.handleGetProject)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
