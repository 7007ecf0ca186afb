package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agoramind/govscope/core"
	"github.com/agoramind/govscope/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.SnapshotManager
}

// sourceFor resolves the activity source for a request, allowing the caller
// to point a single tool call at a different export file.
func (h *toolHandler) sourceFor(request mcp.CallToolRequest) (contract.ActivitySource, error) {
	path := request.GetString("activity_path", h.baseCfg.ActivityPath)
	if path == "" {
		return nil, fmt.Errorf("activity_path is required when the server has no default export configured")
	}
	return contract.NewLocalActivitySource(path), nil
}

func (h *toolHandler) handleGetHealthScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := h.sourceFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.GetHealthResult(ctx, h.baseCfg, src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBalanceAssessment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := h.sourceFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.GetBalanceResult(ctx, h.baseCfg, src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPipeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := h.sourceFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.GetPipelineResult(ctx, h.baseCfg, src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAssessment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := h.sourceFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.GetAssessmentResult(ctx, h.baseCfg, src, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrends(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := *h.baseCfg
	if l := request.GetInt("history", 0); l > 0 {
		cfg.HistoryLimit = l
	}

	trend, snaps, err := core.GetTrendResult(&cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	out := struct {
		Trend     any `json:"trend"`
		Snapshots any `json:"snapshots"`
	}{Trend: trend, Snapshots: snaps}

	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
