package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/relgate/relgate/core"
	"github.com/relgate/relgate/core/algo"
	"github.com/relgate/relgate/core/lang"
	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// gateCheckResponse is the structured result of the gate_check tool.
type gateCheckResponse struct {
	Passed       bool                `json:"passed"`
	Violations   int                 `json:"violations"`
	FailOn       schema.GateDecision `json:"fail_on"`
	RiskScore    float64             `json:"risk_score"`
	RiskLevel    schema.RiskLevel    `json:"risk_level"`
	FilesPassed  int                 `json:"files_passed"`
	FilesWarned  int                 `json:"files_warned"`
	FilesBlocked int                 `json:"files_blocked"`
	Incomplete   bool                `json:"incomplete"`
	FlaggedFiles []schema.FileDetail `json:"flagged_files"`
}

func (h *toolHandler) handleAnalyzeRepo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	limit := cfg.ResultLimit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = l
	}

	result, err := core.RunAnalysis(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	result.FileDetails = algo.RankFileDetails(result.FileDetails, limit)

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGateCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}

	failOn := cfg.FailOn
	switch request.GetString("fail_on", "") {
	case "warn":
		failOn = schema.GateWarn
	case "block":
		failOn = schema.GateBlock
	}
	if failOn == "" {
		failOn = schema.GateBlock
	}

	result, err := core.RunAnalysis(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gate check failed: %v", err)), nil
	}

	violations := result.FilesBlocked
	if failOn == schema.GateWarn {
		violations += result.FilesWarned
	}

	var flagged []schema.FileDetail
	for _, d := range result.FileDetails {
		if d.Gate != schema.GatePass {
			flagged = append(flagged, d)
		}
	}

	response := gateCheckResponse{
		Passed:       violations == 0,
		Violations:   violations,
		FailOn:       failOn,
		RiskScore:    result.RiskScore,
		RiskLevel:    result.RiskLevel,
		FilesPassed:  result.FilesPassed,
		FilesWarned:  result.FilesWarned,
		FilesBlocked: result.FilesBlocked,
		Incomplete:   result.Incomplete,
		FlaggedFiles: flagged,
	}

	jsonData, _ := json.MarshalIndent(response, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleReleaseReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := core.ReportKind(request.GetString("kind", ""))
	switch kind {
	case core.ReportNotes, core.ReportSecurity, core.ReportChecklist:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown report kind: %s (valid: notes, security, checklist)", kind)), nil
	}

	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	// MCP clients get markdown regardless of the configured output mode.
	cfg.Output = schema.TextOut

	result, err := core.RunAnalysis(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	content, err := core.RenderReport(result, kind, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report generation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (h *toolHandler) handleListLanguages(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(lang.DefaultRegistry().Languages(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
