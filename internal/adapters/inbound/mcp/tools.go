package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/eventlint/eventlint/internal/adapters/outbound/config"
	"github.com/eventlint/eventlint/internal/adapters/outbound/gitinfo"
	"github.com/eventlint/eventlint/internal/adapters/outbound/parser"
	"github.com/eventlint/eventlint/internal/application"
	"github.com/eventlint/eventlint/internal/domain"
)

// registerTools registers the eventlint MCP tools on the given server.
func registerTools(s *server.MCPServer, rulesPath string) {
	// 1. eventlint_scan
	s.AddTool(
		mcplib.NewTool("eventlint_scan",
			mcplib.WithDescription("Validate a single JSON event against the active rule set. Returns the scan report with issues and a pass/fail verdict."),
			mcplib.WithString("event",
				mcplib.Required(),
				mcplib.Description("The event to validate, as a JSON object string"),
			),
		),
		handleScan(rulesPath),
	)

	// 2. eventlint_rules
	s.AddTool(
		mcplib.NewTool("eventlint_rules",
			mcplib.WithDescription("Returns the active rule configuration as JSON"),
		),
		handleRules(rulesPath),
	)
}

// newScanService builds the standard scan service for MCP handlers.
func newScanService() *application.ScanService {
	return application.NewScanService(
		parser.New(),
		config.New(),
		gitinfo.New(),
		zerolog.Nop(),
	)
}

func handleScan(rulesPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		event, err := request.RequireString("event")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		workdir, _ := os.Getwd()
		report, err := newScanService().Scan([]byte(event), rulesPath, workdir)
		if err != nil {
			var perr *domain.ParseError
			if errors.As(err, &perr) {
				return errorResult(fmt.Sprintf("event rejected (%s): %s", perr.Kind, perr.Message)), nil
			}
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules(rulesPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(rulesPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules failed: %v", err)), nil
		}
		return jsonResult(cfg)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
