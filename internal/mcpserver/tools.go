// ABOUTME: MCP tool implementations for the fitness log.
// ABOUTME: Exposes ledger mutations, aggregate stats, goals and the weekly chart.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/varzesh/fitlog/internal/chart"
	"github.com/varzesh/fitlog/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Log an exercise for a date (defaults to today)",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercises logged for a date",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_exercise",
		Description: "Edit an exercise identified by date and name",
	}, s.handleUpdateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_exercise",
		Description: "Remove an exercise identified by date and name",
	}, s.handleRemoveExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get the running totals, active-day stats and goals",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goals",
		Description: "Set the daily calorie and duration goals",
	}, s.handleSetGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercise_types",
		Description: "List the registered exercise types",
	}, s.handleListTypes)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise_type",
		Description: "Register a new exercise type",
	}, s.handleAddType)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_chart",
		Description: "Get the 7-day calorie chart for this week or a past week",
	}, s.handleWeeklyChart)
}

// Tool input/output types

type addExerciseInput struct {
	Date           string `json:"date,omitempty" jsonschema:"Date key YYYY-MM-DD in the active calendar; defaults to today"`
	ExerciseName   string `json:"exercise_name" jsonschema:"Name of the exercise; unique per date"`
	ExerciseType   string `json:"exercise_type" jsonschema:"Registered exercise type"`
	Duration       int    `json:"duration" jsonschema:"Duration in minutes (1-1440)"`
	CaloriesBurned int    `json:"calories_burned" jsonschema:"Calories burned (0-10000)"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type listExercisesInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date key; defaults to today"`
}

type updateExerciseInput struct {
	Date           string  `json:"date" jsonschema:"Date key of the exercise"`
	Name           string  `json:"name" jsonschema:"Current exercise name"`
	ExerciseName   *string `json:"exercise_name,omitempty" jsonschema:"New name"`
	ExerciseType   *string `json:"exercise_type,omitempty" jsonschema:"New type"`
	Duration       *int    `json:"duration,omitempty" jsonschema:"New duration in minutes"`
	CaloriesBurned *int    `json:"calories_burned,omitempty" jsonschema:"New calories burned"`
}

type removeExerciseInput struct {
	Date string `json:"date" jsonschema:"Date key of the exercise"`
	Name string `json:"name" jsonschema:"Exercise name"`
}

type setGoalsInput struct {
	DailyCalorieGoal  int `json:"daily_calorie_goal" jsonschema:"Daily calorie goal (1-10000)"`
	DailyDurationGoal int `json:"daily_duration_goal" jsonschema:"Daily duration goal in minutes (1-1440)"`
}

type addTypeInput struct {
	Type string `json:"type" jsonschema:"New exercise type label"`
}

type weeklyChartInput struct {
	Offset int `json:"offset,omitempty" jsonschema:"Weeks before the current one (0 or negative)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	date := input.Date
	if date == "" {
		date = s.ledger.Calendar().Today()
	}
	rec := models.NewExerciseRecord(input.ExerciseName, input.ExerciseType, input.Duration, input.CaloriesBurned, date)
	if err := s.ledger.Add(date, rec); err != nil {
		return nil, exerciseOutput{}, err
	}
	return nil, exerciseOutput{
		ID:      rec.ID.String()[:8],
		Date:    date,
		Message: fmt.Sprintf("Logged %s on %s (ID: %s)", rec.ExerciseName, date, rec.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = s.ledger.Calendar().Today()
	}
	records, err := s.ledger.Get(date)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, map[string]any{"message": fmt.Sprintf("No exercises logged for %s.", date)}, nil
	}
	return nil, map[string]any{"date": date, "exercises": records}, nil
}

func (s *Server) handleUpdateExercise(ctx context.Context, req *mcp.CallToolRequest, input updateExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	patch := &models.Patch{
		ExerciseName:   input.ExerciseName,
		ExerciseType:   input.ExerciseType,
		Duration:       input.Duration,
		CaloriesBurned: input.CaloriesBurned,
	}
	if patch.IsEmpty() {
		return nil, simpleOutput{}, fmt.Errorf("nothing to change")
	}
	if err := s.ledger.Update(input.Date, input.Name, patch); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated %s on %s", input.Name, input.Date),
	}, nil
}

func (s *Server) handleRemoveExercise(ctx context.Context, req *mcp.CallToolRequest, input removeExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	removed, err := s.ledger.Remove(input.Date, input.Name)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Removed %s (%d kcal, %d min) from %s",
			removed.ExerciseName, removed.CaloriesBurned, removed.Duration, input.Date),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.ledger.Stats().Current(), nil
}

func (s *Server) handleSetGoals(ctx context.Context, req *mcp.CallToolRequest, input setGoalsInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.ledger.Stats().SetGoals(input.DailyCalorieGoal, input.DailyDurationGoal); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Goals set: %d kcal, %d min per day", input.DailyCalorieGoal, input.DailyDurationGoal),
	}, nil
}

func (s *Server) handleListTypes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, map[string]any{"types": s.ledger.Registry().List()}, nil
}

func (s *Server) handleAddType(ctx context.Context, req *mcp.CallToolRequest, input addTypeInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.ledger.Registry().Add(input.Type); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added exercise type: %s", input.Type),
	}, nil
}

func (s *Server) handleWeeklyChart(ctx context.Context, req *mcp.CallToolRequest, input weeklyChartInput) (*mcp.CallToolResult, any, error) {
	week, err := chart.Weekly(s.ledger, s.ledger.Calendar(), input.Offset)
	if err != nil {
		return nil, nil, err
	}
	return nil, week, nil
}
