package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewArtcheckMCPServer creates a new MCP server with the artcheck tools
// registered.
func NewArtcheckMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"artcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
