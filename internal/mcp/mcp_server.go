// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/relgate/relgate/internal/contract"
)

// NewMCPServer initializes and configures the relgate MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Relgate Release Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_repo ---
	s.AddTool(mcp.NewTool("analyze_repo",
		mcp.WithDescription("Analyze a repository for release risk: per-file scores, gate verdicts and repository-level findings."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured path if not specified).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of file details returned.")),
	), h.handleAnalyzeRepo)

	// --- 2. Tool: gate_check ---
	s.AddTool(mcp.NewTool("gate_check",
		mcp.WithDescription("Evaluate the release gate and report the files that warn or block the release."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository.")),
		mcp.WithString("fail_on", mcp.Description("Gate decision that fails the check. Defaults to 'block'."), mcp.Enum("warn", "block")),
	), h.handleGateCheck)

	// --- 3. Tool: release_report ---
	s.AddTool(mcp.NewTool("release_report",
		mcp.WithDescription("Generate a release document (notes, security report or checklist) from a fresh analysis."),
		mcp.WithString("kind", mcp.Description("Document kind to render."), mcp.Required(), mcp.Enum("notes", "security", "checklist")),
		mcp.WithString("repo_path", mcp.Description("Path to the repository.")),
	), h.handleReleaseReport)

	// --- 4. Tool: list_languages ---
	s.AddTool(mcp.NewTool("list_languages",
		mcp.WithDescription("List the languages with registered analysis handlers."),
	), h.handleListLanguages)

	return s
}

// StartMCPServer starts the relgate MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
