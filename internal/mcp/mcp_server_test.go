package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramind/govscope/internal/contract"
	mcp_internal "github.com/agoramind/govscope/internal/mcp"
	"github.com/agoramind/govscope/internal/snapstore"
	"github.com/agoramind/govscope/schema"
)

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Precision:  1,
		Thresholds: schema.DefaultThresholds(),
	}

	// No manager needed; validation fails before any store access
	var mgr contract.SnapshotManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	for _, name := range []string{"get_health_score", "get_balance_assessment", "get_pipeline", "get_assessment"} {
		t.Run(name+" missing activity_path", func(t *testing.T) {
			res := callTool(t, s, name, map[string]any{})
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "activity_path is required")
		})
	}

	t.Run("get_health_score unreadable file", func(t *testing.T) {
		res := callTool(t, s, "get_health_score", map[string]any{
			"activity_path": filepath.Join(t.TempDir(), "missing.json"),
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "analysis failed")
	})
}

func TestMCPServerHandlers_HealthScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.json")
	payload := `{
		"generatedAt": "2026-08-20T12:00:00Z",
		"repo": {"owner": "agoramind", "name": "demo"},
		"proposals": [
			{"number": 1, "author": "planner-a", "phase": "implemented", "comments": 4,
			 "createdAt": "2026-08-01T12:00:00Z"},
			{"number": 2, "author": "builder-b", "phase": "voting", "comments": 2,
			 "createdAt": "2026-08-10T12:00:00Z"}
		],
		"agentStats": [
			{"login": "planner-a", "commits": 1, "reviews": 2, "comments": 3},
			{"login": "builder-b", "commits": 4, "reviews": 1, "comments": 2}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	baseCfg := &contract.Config{
		Precision:  1,
		Thresholds: schema.DefaultThresholds(),
	}
	var mgr contract.SnapshotManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "get_health_score", map[string]any{"activity_path": path})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"score"`)
	assert.Contains(t, text, `"bucket"`)
	assert.Contains(t, text, `"metrics"`)
}

func TestMCPServerHandlers_Trends(t *testing.T) {
	baseCfg := &contract.Config{
		Precision:    1,
		HistoryLimit: contract.DefaultHistoryLimit,
		Thresholds:   schema.DefaultThresholds(),
	}

	store := &snapstore.MockSnapshotStore{}
	store.On("ListSnapshots", 5).Return([]schema.GovernanceSnapshot{
		{Timestamp: "2026-08-10T12:00:00Z", HealthScore: 70},
		{Timestamp: "2026-08-17T12:00:00Z", HealthScore: 60},
	}, nil)

	mgr := &snapstore.MockSnapshotManager{}
	mgr.On("GetSnapshotStore").Return(store)

	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "get_trends", map[string]any{"history": 5.0})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"trend"`)
	assert.Contains(t, text, `"snapshots"`)
	store.AssertExpectations(t)
	mgr.AssertExpectations(t)
}
