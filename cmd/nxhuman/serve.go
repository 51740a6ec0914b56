package main

import (
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	nxmcp "github.com/nxhuman/nxhuman/internal/mcp"
	"github.com/nxhuman/nxhuman/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run nxhuman as a Model Context Protocol (MCP) server over stdio.

This exposes the project context and the decision log as MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "nxhuman": {
        "command": "nxhuman",
        "args": ["serve"]
      }
    }
  }

Available tools: rules, status, log_decision`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return output.NewErrorWithCause("could not determine working directory", err)
			}
			server := nxmcp.NewServer(buildVersion(), cwd)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
