package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/eventlint/eventlint/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the eventlint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start eventlint MCP server (stdio)",
		Long:  "Start the eventlint MCP server using stdio transport. This lets AI coding assistants validate events and inspect the active rule set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewEventlintMCPServer(rulesPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a rule file (default: .eventlint.yaml, falling back to built-in rules)")

	return cmd
}
