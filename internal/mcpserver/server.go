// ABOUTME: MCP server setup for the fitness log.
// ABOUTME: Wraps the MCP server with ledger access and stdio transport.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/varzesh/fitlog/internal/ledger"
)

// Server wraps the MCP server with ledger access.
type Server struct {
	mcpServer *mcp.Server
	ledger    *ledger.Ledger
}

// NewServer creates an MCP server over the given ledger.
func NewServer(l *ledger.Ledger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		ledger:    l,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
