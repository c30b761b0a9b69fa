// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the awardgap MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Awardgap Movie Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_producer_intervals ---
	s.AddTool(mcp.NewTool("get_producer_intervals",
		mcp.WithDescription("Find the producers with the shortest and the longest gap between two consecutive award wins."),
	), h.handleGetProducerIntervals)

	// --- 2. Tool: list_movies ---
	s.AddTool(mcp.NewTool("list_movies",
		mcp.WithDescription("List stored movies ordered by year and title."),
		mcp.WithBoolean("winners_only", mcp.Description("Only return winning movies.")),
		mcp.WithNumber("year", mcp.Description("Only return movies from this year.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleListMovies)

	// --- 3. Tool: populate_movies ---
	s.AddTool(mcp.NewTool("populate_movies",
		mcp.WithDescription("Validate a semicolon-delimited movie list (year;title;studios;producers;winner) and upsert every row."),
		mcp.WithString("csv", mcp.Description("The movie list, including its header row."), mcp.Required()),
	), h.handlePopulateMovies)

	// --- 4. Tool: get_store_status ---
	s.AddTool(mcp.NewTool("get_store_status",
		mcp.WithDescription("Report the backend, movie counts and schema version of the movie store."),
	), h.handleGetStoreStatus)

	return s
}

// StartMCPServer starts the awardgap MCP server over stdio.
// Tool calls inherit the logger attached to ctx.
func StartMCPServer(ctx context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	logger := logging.FromContext(ctx)
	return server.ServeStdio(s, server.WithStdioContextFunc(func(c context.Context) context.Context {
		return logging.WithLogger(c, logger)
	}))
}
