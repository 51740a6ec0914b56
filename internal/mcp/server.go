// Package mcp provides a Model Context Protocol server for nxhuman.
// It exposes the generated context and the decision log as MCP tools that
// any MCP-capable agent environment can use without shelling out.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all nxhuman tools registered.
// dir is the project directory the tools operate in.
func NewServer(version string, dir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nxhuman",
		Version: version,
	}, nil)
	registerTools(server, dir)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all nxhuman tools to the server.
func registerTools(server *mcp.Server, dir string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rules",
		Description: "Get the nxhuman context rules for this project. Returns the .rules file content, or freshly generated content when the file does not exist yet.",
		Annotations: readOnlyAnnotations(),
	}, handleRules(dir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show which nxhuman context files exist in the project directory and how many decisions are logged.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(dir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_decision",
		Description: "Append a decision entry to the .nxlogs log. The log is append-only; prior entries are never modified.",
		Annotations: writeAnnotations(),
	}, handleLogDecision(dir))
}
