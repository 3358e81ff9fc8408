// ABOUTME: MCP resource implementations for the fitness log.
// ABOUTME: Provides fitlog://today and fitlog://stats resources.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitlog://today - exercises logged for the current date
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://today",
		Name:        "Today's Exercises",
		Description: "All exercises logged for the current date",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fitlog://stats - the running aggregate summary
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://stats",
		Name:        "Aggregate Stats",
		Description: "Running totals, active days, date boundaries and goals",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.ledger.Calendar().Today()
	records, err := s.ledger.Get(today)
	if err != nil {
		return nil, fmt.Errorf("read today's exercises: %w", err)
	}

	result := map[string]any{
		"date":      today,
		"exercises": records,
		"count":     len(records),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ledger.Stats().Current(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://stats",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
