// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agoramind/govscope/internal/contract"
)

// NewMCPServer initializes and configures the Govscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.SnapshotManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Governance Health Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_health_score ---
	s.AddTool(mcp.NewTool("get_health_score",
		mcp.WithDescription("Compute the composite governance health score (0-100) with its four sub-metrics."),
		mcp.WithString("activity_path", mcp.Description("Path to the governance activity JSON export (defaults to the server's configured export).")),
	), h.handleGetHealthScore)

	// --- 2. Tool: get_balance_assessment ---
	s.AddTool(mcp.NewTool("get_balance_assessment",
		mcp.WithDescription("Assess governance balance: power concentration, role diversity and responsiveness."),
		mcp.WithString("activity_path", mcp.Description("Path to the governance activity JSON export.")),
	), h.handleGetBalanceAssessment)

	// --- 3. Tool: get_pipeline ---
	s.AddTool(mcp.NewTool("get_pipeline",
		mcp.WithDescription("Report the proposal pipeline: per-phase counts, agent roles and stage throughput."),
		mcp.WithString("activity_path", mcp.Description("Path to the governance activity JSON export.")),
	), h.handleGetPipeline)

	// --- 4. Tool: get_assessment ---
	s.AddTool(mcp.NewTool("get_assessment",
		mcp.WithDescription("Run the full governance assessment: alerts, patterns, recommendations and trend deltas."),
		mcp.WithString("activity_path", mcp.Description("Path to the governance activity JSON export.")),
	), h.handleGetAssessment)

	// --- 5. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Summarize stored snapshot history: 7/30 day deltas and decline streaks."),
		mcp.WithNumber("history", mcp.Description("Maximum number of recent snapshots to consider.")),
	), h.handleGetTrends)

	return s
}

// StartMCPServer starts the Govscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.SnapshotManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
