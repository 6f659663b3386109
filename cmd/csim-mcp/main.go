package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ludo-technologies/csim/internal/version"
	"github.com/ludo-technologies/csim/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "csim"

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Create MCP server with tool capabilities
	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	// Register all csim tools
	mcp.RegisterTools(server)

	log.Printf("Starting %s MCP server v%s\n", serverName, version.Short())
	log.Println("Registered tools:")
	log.Println("  - compare_files: Structural similarity of two source files")
	log.Println("  - compare_source: Structural similarity of two inline buffers")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	// Start server with stdio transport
	// This blocks until the server is terminated
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
