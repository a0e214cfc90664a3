package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns MCP tool calls into facade calls and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// WindowInput is shared by every per-user analytics tool.
type WindowInput struct {
	UserID    string `json:"user_id" jsonschema:"Owner of the training data"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Inclusive window start (YYYY-MM-DD or RFC3339), omit for unbounded"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Inclusive window end (YYYY-MM-DD or RFC3339), omit for unbounded"`
}

type ProgressInput struct {
	WindowInput
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise to chart"`
}

// GetGymstatsSchemaTool returns the handler for get_gymstats_schema.
func (h *Handler) GetGymstatsSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// GetTrainingSummaryTool returns the handler for get_training_summary.
func (h *Handler) GetTrainingSummaryTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WindowInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		summary, err := h.service.Summary(ctx, in.UserID, in.StartDate, in.EndDate)
		if err != nil {
			return errorResult("Error computing summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

// GetMuscleDistributionTool returns the handler for get_muscle_distribution.
func (h *Handler) GetMuscleDistributionTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WindowInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		shares, err := h.service.MuscleDistribution(ctx, in.UserID, in.StartDate, in.EndDate)
		if err != nil {
			return errorResult("Error computing muscle distribution: " + err.Error()), nil, nil
		}
		return jsonResult(shares), nil, nil
	}
}

// GetExerciseProgressTool returns the handler for get_exercise_progress.
func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		if strings.TrimSpace(in.ExerciseID) == "" {
			return errorResult("exercise_id is required"), nil, nil
		}
		points, err := h.service.ExerciseProgress(ctx, in.UserID, in.ExerciseID, in.StartDate, in.EndDate)
		if err != nil {
			return errorResult("Error computing exercise progress: " + err.Error()), nil, nil
		}
		return jsonResult(points), nil, nil
	}
}

// GetBodyMetricsTool returns the handler for get_body_metrics.
func (h *Handler) GetBodyMetricsTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WindowInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		list, err := h.service.Metrics(ctx, in.UserID, in.StartDate, in.EndDate)
		if err != nil {
			return errorResult("Error listing body metrics: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
