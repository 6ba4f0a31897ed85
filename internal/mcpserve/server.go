// Package mcpserve exposes the descriptor list over the Model Context
// Protocol so agent tooling can ask which files still need Xcode
// registration. Tools are read-only; the project file is never
// touched.
package mcpserve

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/manifest"
	"github.com/pbxplan/pbxplan/internal/report"
)

// New builds the MCP server over entries.
func New(entries []api.FileEntry, version string) *server.MCPServer {
	s := server.NewMCPServer("pbxplan", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Reports files that still need to be registered with the Xcode project. Registration itself happens in Xcode; see the registration_help tool."),
	)

	idx := manifest.NewIndex(entries)

	pending := mcp.NewTool("pending_files",
		mcp.WithDescription("List files that still need to be added to the Xcode project as a JSON array of {path, kind, group} descriptors, optionally filtered by group."),
		mcp.WithString("group",
			mcp.Description("Group path prefix, e.g. TaskSnap/Views. Empty lists every file."),
		),
	)
	s.AddTool(pending, pendingHandler(idx))

	help := mcp.NewTool("registration_help",
		mcp.WithDescription("Explain how to register pending files with the Xcode project."),
	)
	s.AddTool(help, helpHandler())

	return s
}

// Serve runs s on stdio until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func pendingHandler(idx *manifest.Index) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group := req.GetString("group", "")
		entries := idx.Entries()
		if group != "" {
			entries = idx.UnderGroup(group)
		}
		if entries == nil {
			entries = []api.FileEntry{}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func helpHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(report.HelpText()), nil
	}
}
