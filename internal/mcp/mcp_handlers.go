package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/awardgap/core"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/huangsam/awardgap/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleGetProducerIntervals(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := core.GetProducerIntervals(ctx, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("interval analysis failed: %v", err)), nil
	}
	return jsonResult(report), nil
}

func (h *toolHandler) handleListMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	movies, err := core.ListMovies(ctx, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing movies failed: %v", err)), nil
	}

	winnersOnly := request.GetBool("winners_only", false)
	year := request.GetInt("year", 0)
	limit := request.GetInt("limit", 0)

	filtered := make([]schema.Movie, 0, len(movies))
	for _, m := range movies {
		if winnersOnly && !m.Winner {
			continue
		}
		if year > 0 && m.Year != year {
			continue
		}
		filtered = append(filtered, m)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return jsonResult(filtered), nil
}

func (h *toolHandler) handlePopulateMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("csv")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.PopulateMovies(ctx, h.mgr, raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("populate failed: %v", err)), nil
	}
	logging.FromContext(ctx).Info("populated movies via MCP",
		logging.FieldComponent, "mcp",
		logging.FieldRows, result.Count)
	return jsonResult(result), nil
}

func (h *toolHandler) handleGetStoreStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetMovieStore()
	if store == nil {
		return mcp.NewToolResultError(fmt.Sprintf("store status failed: %v", core.ErrNoStore)), nil
	}
	status, err := store.GetStatus(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store status failed: %v", err)), nil
	}
	if h.baseCfg != nil && status.Backend == "" {
		status.Backend = string(h.baseCfg.StoreBackend)
	}
	return jsonResult(status), nil
}
