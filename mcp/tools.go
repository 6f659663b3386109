package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all csim MCP tools with the server.
func RegisterTools(s *server.MCPServer) {
	RegisterToolsWith(s, NewHandlerSet(nil))
}

// RegisterToolsWith registers the tools backed by the given handler set.
func RegisterToolsWith(s *server.MCPServer, handlers *HandlerSet) {
	// Tool 1: compare_files - score two files on disk
	s.AddTool(mcp.NewTool("compare_files",
		mcp.WithDescription("Score the structural similarity of two source files (0.0-1.0) with a verdict band; renamed identifiers and changed literals do not lower the score"),
		mcp.WithString("path_a",
			mcp.Required(),
			mcp.Description("Path to the first source file")),
		mcp.WithString("path_b",
			mcp.Required(),
			mcp.Description("Path to the second source file")),
		mcp.WithNumber("fail_above",
			mcp.Description("Gate threshold 0.0-1.0; the result is flagged when similarity reaches it")),
	), handlers.HandleCompareFiles)

	// Tool 2: compare_source - score two inline source buffers
	s.AddTool(mcp.NewTool("compare_source",
		mcp.WithDescription("Score the structural similarity of two inline source code strings"),
		mcp.WithString("source_a",
			mcp.Required(),
			mcp.Description("First source code buffer")),
		mcp.WithString("source_b",
			mcp.Required(),
			mcp.Description("Second source code buffer")),
	), handlers.HandleCompareSource)
}
