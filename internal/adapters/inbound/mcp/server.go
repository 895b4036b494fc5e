package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewEventlintMCPServer creates a new MCP server with the eventlint tools and
// resources registered. rulesPath selects the rule file; empty means the
// default lookup (.eventlint.yaml, falling back to built-in rules).
func NewEventlintMCPServer(rulesPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"eventlint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, rulesPath)
	registerResources(s, rulesPath)

	return s
}
