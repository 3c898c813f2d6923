// ABOUTME: MCP tool implementations for swim data.
// ABOUTME: Provides CRUD operations for swimmers, teams, times, and the log.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/swim/internal/models"
	"github.com/harperreed/swim/internal/timeutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_swimmer
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_swimmer",
		Description: "Add a swimmer, optionally attached to teams and groups",
	}, s.handleAddSwimmer)

	// list_swimmers
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_swimmers",
		Description: "List swimmers, optionally filtered by team",
	}, s.handleListSwimmers)

	// delete_swimmer
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_swimmer",
		Description: "Delete a swimmer by ID",
	}, s.handleDeleteSwimmer)

	// add_team
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_team",
		Description: "Create a new team",
	}, s.handleAddTeam)

	// list_teams
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_teams",
		Description: "List all teams",
	}, s.handleListTeams)

	// add_time
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_time",
		Description: "Record a time for a swimmer (swimmer and stroke by name)",
	}, s.handleAddTime)

	// list_times
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_times",
		Description: "List recorded times for a swimmer",
	}, s.handleListTimes)

	// best_time
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "best_time",
		Description: "Get a swimmer's best time for a stroke and distance",
	}, s.handleBestTime)

	// list_strokes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_strokes",
		Description: "List available strokes",
	}, s.handleListStrokes)

	// log_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Add a quick entry to the flat swim log (v1 style)",
	}, s.handleLogEntry)
}

// Tool input/output types

type addSwimmerInput struct {
	Name      string   `json:"name" jsonschema:"Swimmer name"`
	BirthDate string   `json:"birth_date,omitempty" jsonschema:"Birth date (YYYY-MM-DD)"`
	TeamIDs   []string `json:"team_ids,omitempty" jsonschema:"Team IDs the swimmer belongs to"`
	GroupIDs  []string `json:"group_ids,omitempty" jsonschema:"Group IDs the swimmer belongs to"`
}

type swimmerOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listSwimmersInput struct {
	TeamID string `json:"team_id,omitempty" jsonschema:"Filter by team ID"`
}

type deleteSwimmerInput struct {
	ID string `json:"id" jsonschema:"Swimmer ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addTeamInput struct {
	Name string `json:"name" jsonschema:"Team name"`
}

type teamOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addTimeInput struct {
	Swimmer  string  `json:"swimmer" jsonschema:"Swimmer name"`
	Stroke   string  `json:"stroke" jsonschema:"Stroke name (e.g. Freestyle)"`
	Distance string  `json:"distance" jsonschema:"Distance label (e.g. 100m)"`
	Seconds  float64 `json:"seconds" jsonschema:"Time in seconds"`
	Date     string  `json:"date,omitempty" jsonschema:"Date of the swim, defaults to now"`
}

type timeOutput struct {
	ID      string `json:"id"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

type listTimesInput struct {
	Swimmer string `json:"swimmer" jsonschema:"Swimmer name"`
}

type bestTimeInput struct {
	Swimmer  string `json:"swimmer" jsonschema:"Swimmer name"`
	Stroke   string `json:"stroke" jsonschema:"Stroke name"`
	Distance string `json:"distance" jsonschema:"Distance label"`
}

type logEntryInput struct {
	Name     string `json:"name" jsonschema:"Swimmer name"`
	Stroke   string `json:"stroke" jsonschema:"Stroke name"`
	Distance string `json:"distance" jsonschema:"Distance label"`
	Effort   string `json:"effort,omitempty" jsonschema:"Effort percentage (e.g. 80%)"`
	BestTime string `json:"best_time" jsonschema:"Best time (e.g. 1:03.450 or 25.340)"`
}

// Tool handlers

func (s *Server) handleAddSwimmer(ctx context.Context, req *mcp.CallToolRequest, input addSwimmerInput) (*mcp.CallToolResult, swimmerOutput, error) {
	sw, err := s.store.Swimmers.Add(&models.Swimmer{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		TeamIDs:   input.TeamIDs,
		GroupIDs:  input.GroupIDs,
	})
	if err != nil {
		return nil, swimmerOutput{}, fmt.Errorf("failed to add swimmer: %w", err)
	}

	return nil, swimmerOutput{
		ID:      sw.ID,
		Name:    sw.Name,
		Message: fmt.Sprintf("Added swimmer %s (ID: %s)", sw.Name, sw.ID[:8]),
	}, nil
}

func (s *Server) handleListSwimmers(ctx context.Context, req *mcp.CallToolRequest, input listSwimmersInput) (*mcp.CallToolResult, any, error) {
	var swimmers []*models.Swimmer
	if input.TeamID != "" {
		swimmers = s.store.Swimmers.ByTeam(input.TeamID)
	} else {
		swimmers = s.store.Swimmers.List()
	}

	if len(swimmers) == 0 {
		return nil, map[string]interface{}{"message": "No swimmers found."}, nil
	}

	return nil, swimmers, nil
}

func (s *Server) handleDeleteSwimmer(ctx context.Context, req *mcp.CallToolRequest, input deleteSwimmerInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.Swimmers.Remove(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete swimmer: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted swimmer: %s", input.ID),
	}, nil
}

func (s *Server) handleAddTeam(ctx context.Context, req *mcp.CallToolRequest, input addTeamInput) (*mcp.CallToolResult, teamOutput, error) {
	team, err := s.store.Teams.Add(&models.Team{Name: input.Name})
	if err != nil {
		return nil, teamOutput{}, fmt.Errorf("failed to add team: %w", err)
	}

	return nil, teamOutput{
		ID:      team.ID,
		Name:    team.Name,
		Message: fmt.Sprintf("Added team %s (ID: %s)", team.Name, team.ID[:8]),
	}, nil
}

func (s *Server) handleListTeams(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	teams := s.store.Teams.List()
	if len(teams) == 0 {
		return nil, map[string]interface{}{"message": "No teams found."}, nil
	}
	return nil, teams, nil
}

func (s *Server) handleAddTime(ctx context.Context, req *mcp.CallToolRequest, input addTimeInput) (*mcp.CallToolResult, timeOutput, error) {
	sw, ok := s.store.Swimmers.ByName(input.Swimmer)
	if !ok {
		return nil, timeOutput{}, fmt.Errorf("swimmer not found: %s", input.Swimmer)
	}
	stroke, ok := s.store.Strokes.ByName(input.Stroke)
	if !ok {
		return nil, timeOutput{}, fmt.Errorf("stroke not found: %s", input.Stroke)
	}

	tm, err := s.store.Times.Add(&models.Time{
		SwimmerID:   sw.ID,
		StrokeID:    stroke.ID,
		Distance:    input.Distance,
		TimeSeconds: input.Seconds,
		Date:        input.Date,
	})
	if err != nil {
		return nil, timeOutput{}, fmt.Errorf("failed to add time: %w", err)
	}

	formatted := timeutil.FormatSeconds(tm.TimeSeconds)
	return nil, timeOutput{
		ID:      tm.ID,
		Time:    formatted,
		Message: fmt.Sprintf("Recorded %s %s %s for %s", formatted, stroke.Name, input.Distance, sw.Name),
	}, nil
}

func (s *Server) handleListTimes(ctx context.Context, req *mcp.CallToolRequest, input listTimesInput) (*mcp.CallToolResult, any, error) {
	sw, ok := s.store.Swimmers.ByName(input.Swimmer)
	if !ok {
		return nil, nil, fmt.Errorf("swimmer not found: %s", input.Swimmer)
	}

	times := s.store.Times.BySwimmer(sw.ID)
	if len(times) == 0 {
		return nil, map[string]interface{}{"message": "No times found."}, nil
	}

	return nil, times, nil
}

func (s *Server) handleBestTime(ctx context.Context, req *mcp.CallToolRequest, input bestTimeInput) (*mcp.CallToolResult, any, error) {
	sw, ok := s.store.Swimmers.ByName(input.Swimmer)
	if !ok {
		return nil, nil, fmt.Errorf("swimmer not found: %s", input.Swimmer)
	}
	stroke, ok := s.store.Strokes.ByName(input.Stroke)
	if !ok {
		return nil, nil, fmt.Errorf("stroke not found: %s", input.Stroke)
	}

	best, ok := s.store.Times.Best(sw.ID, stroke.ID, input.Distance)
	if !ok {
		return nil, map[string]interface{}{
			"message": fmt.Sprintf("No %s %s times for %s.", stroke.Name, input.Distance, sw.Name),
		}, nil
	}

	return nil, map[string]interface{}{
		"swimmer":  sw.Name,
		"stroke":   stroke.Name,
		"distance": input.Distance,
		"seconds":  best.TimeSeconds,
		"time":     timeutil.FormatSeconds(best.TimeSeconds),
		"date":     best.Date,
	}, nil
}

func (s *Server) handleListStrokes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.store.Strokes.List(), nil
}

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, err := s.store.Entries.Add(input.Name, input.Stroke, input.Distance, input.Effort, input.BestTime)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s %s for %s: best %s, result %s",
			entry.Stroke, entry.Distance, entry.Name, entry.BestTime, entry.ResultTime),
	}, nil
}
