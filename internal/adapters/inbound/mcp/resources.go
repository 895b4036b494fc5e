package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eventlint/eventlint/internal/adapters/outbound/config"
)

// registerResources registers the eventlint MCP resources on the given server.
func registerResources(s *server.MCPServer, rulesPath string) {
	// eventlint://rules - the active rule configuration
	s.AddResource(
		mcplib.NewResource(
			"eventlint://rules",
			"Rule Configuration",
			mcplib.WithResourceDescription("The rule set events are validated against"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(rulesPath),
	)
}

func handleRulesResource(rulesPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading rules failed: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "eventlint://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
