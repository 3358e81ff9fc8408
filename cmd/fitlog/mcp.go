// ABOUTME: CLI command running the MCP server over stdio.
// ABOUTME: Exposes the log's operations as tools for AI assistants.
package main

import (
	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Run a Model Context Protocol server over stdio, exposing the
fitness log as tools and resources for AI assistants: logging,
listing, editing and removing exercises, stats, goals, types and
the weekly chart.

Add to an MCP client configuration as:
  command: fitlog
  args: ["mcp"]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcpserver.NewServer(fitLedger)
		if err != nil {
			return err
		}
		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
