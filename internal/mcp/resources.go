// ABOUTME: MCP resource implementations for swim data.
// ABOUTME: Provides swim://recent, swim://strokes, and swim://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/swim/internal/timeutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// swim://recent - Latest times and log entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "swim://recent",
		Name:        "Recent Swim Data",
		Description: "Latest recorded times and log entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// swim://strokes - The stroke catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "swim://strokes",
		Name:        "Strokes",
		Description: "Available strokes",
		MIMEType:    "application/json",
	}, s.handleStrokesResource)

	// swim://summary - Dashboard with per-swimmer counts and bests
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "swim://summary",
		Name:        "Swim Summary Dashboard",
		Description: "Swimmer roster with time counts per swimmer",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	times := s.store.Times.List()
	if len(times) > 10 {
		times = times[:10]
	}
	entries := s.store.Entries.List()
	if len(entries) > 10 {
		entries = entries[:10]
	}

	result := map[string]interface{}{
		"times":   times,
		"entries": entries,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "swim://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleStrokesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.store.Strokes.List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "swim://strokes",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type swimmerSummary struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		TimeCount int    `json:"time_count"`
		Latest    string `json:"latest,omitempty"`
	}

	var roster []swimmerSummary
	for _, sw := range s.store.Swimmers.List() {
		times := s.store.Times.BySwimmer(sw.ID)
		entry := swimmerSummary{
			ID:        sw.ID,
			Name:      sw.Name,
			TimeCount: len(times),
		}
		if len(times) > 0 {
			entry.Latest = timeutil.FormatSeconds(times[0].TimeSeconds)
		}
		roster = append(roster, entry)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"unit":         s.store.Prefs.Unit(),
		"swimmers":     roster,
		"summary": map[string]int{
			"swimmers":  s.store.Swimmers.Count(),
			"teams":     s.store.Teams.Count(),
			"groups":    s.store.Groups.Count(),
			"times":     s.store.Times.Count(),
			"trainings": s.store.Trainings.Count(),
			"entries":   s.store.Entries.Count(),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "swim://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
