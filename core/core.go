// Package core has core logic for analysis, scoring and gating.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/relgate/relgate/core/agg"
	"github.com/relgate/relgate/core/algo"
	"github.com/relgate/relgate/core/lang"
	"github.com/relgate/relgate/internal/aiengine"
	"github.com/relgate/relgate/internal/changes"
	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/internal/history"
	"github.com/relgate/relgate/internal/ingest"
	"github.com/relgate/relgate/internal/outwriter"
	"github.com/relgate/relgate/internal/report"
	"github.com/relgate/relgate/internal/secscan"
	"github.com/relgate/relgate/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ReportKind selects which release document ExecuteReport renders.
type ReportKind string

// Supported report kinds.
const (
	ReportNotes     ReportKind = "notes"
	ReportSecurity  ReportKind = "security"
	ReportChecklist ReportKind = "checklist"
)

// RunAnalysis executes the full analysis over the configured repository:
// ingestion, security scan, change detection, then the concurrent pipeline.
// On context cancellation it returns the partial result with Incomplete set.
func RunAnalysis(ctx context.Context, cfg *contract.Config) (*schema.AnalysisResult, error) {
	scan, err := ingest.Scan(cfg.RepoPath, cfg.Excludes)
	if err != nil {
		return nil, err
	}
	if len(scan.Files) == 0 {
		return nil, fmt.Errorf("no supported source files found in %s", cfg.RepoPath)
	}

	security, issuesByFile := secscan.NewScanner().ScanBatch(scan.Files)

	detector := changes.NewDetector(contract.NewLocalGitClient(), cfg.GitDepth)
	changeSummary := detector.Detect(ctx, cfg.RepoPath, scan.Files)
	volumes := changes.PerFileContributions(changeSummary)

	perFile := make(map[string]FileSignals, len(scan.Files))
	for _, file := range scan.Files {
		perFile[file.Path] = FileSignals{
			ChangeVolume:     volumes[file.Path],
			CriticalFunction: secscan.CriticalPathContribution(file.Path),
			Issues:           issuesByFile[file.Path],
		}
	}

	pipeline := NewPipeline(agg.NewAnalyzer(lang.DefaultRegistry()), cfg.Workers)
	result, err := pipeline.Run(ctx, cfg.RepoPath, scan.Files, BatchSignals{
		Security: security,
		Changes:  changeSummary,
		PerFile:  perFile,
	})
	if err != nil {
		return nil, err
	}

	// Riskiest files first; findings in priority order.
	result.FileDetails = algo.RankFileDetails(result.FileDetails, 0)
	result.Risks = algo.RankFindings(result.Risks)

	if cfg.AIEnabled {
		result.AI = enrichResult(ctx, cfg, result)
	}

	return result, nil
}

// enrichResult attaches optional AI commentary. Enrichment failures degrade
// to a status marker and never fail the run.
func enrichResult(ctx context.Context, cfg *contract.Config, result *schema.AnalysisResult) *schema.AIInsights {
	engine, err := aiengine.NewEngine(ctx, cfg.AIAPIKey)
	if err != nil {
		contract.LogWarn("AI enrichment unavailable", err)
		return &schema.AIInsights{Status: schema.AIStatusUnavailable}
	}
	return engine.Enrich(ctx, result)
}

// ExecuteAnalyze runs the analysis, records the run in history and prints
// the result. It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	result, err := RunAnalysis(ctx, cfg)
	if err != nil {
		return err
	}

	recordRun(ctx, cfg, result)

	// Persist everything, display only the top entries.
	result.FileDetails = algo.RankFileDetails(result.FileDetails, cfg.ResultLimit)

	duration := time.Since(start)
	return outwriter.WriteAnalysisResult(result, cfg, duration)
}

// recordRun saves the run to the configured history backend. Persistence
// failures are logged, not fatal: the analysis output still matters.
func recordRun(ctx context.Context, cfg *contract.Config, result *schema.AnalysisResult) {
	store, err := history.NewStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
	if err != nil {
		contract.LogWarn("failed to open history store", err)
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.SaveRun(ctx, result); err != nil {
		contract.LogWarn("failed to record run", err)
	}
}

// ExecuteGate runs the analysis and evaluates the release gate for CI/CD.
// It prints the flagged files and exits non-zero when any file reaches the
// configured fail-on decision.
func ExecuteGate(ctx context.Context, cfg *contract.Config) error {
	result, err := RunAnalysis(ctx, cfg)
	if err != nil {
		return err
	}

	recordRun(ctx, cfg, result)

	if err := outwriter.WriteGateSummary(result, cfg); err != nil {
		return err
	}

	violations := result.FilesBlocked
	if cfg.FailOn == schema.GateWarn {
		violations += result.FilesWarned
	}
	if violations > 0 {
		fmt.Printf("%d violation(s) found\n", violations)
		os.Exit(1)
	}
	return nil
}

// ExecuteReport runs the analysis and renders the requested release document.
func ExecuteReport(ctx context.Context, cfg *contract.Config, kind ReportKind) error {
	result, err := RunAnalysis(ctx, cfg)
	if err != nil {
		return err
	}

	content, err := RenderReport(result, kind, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteReport(content, cfg)
}

// RenderReport produces the document content for the requested kind. The
// checklist honors JSON output; notes and security are always markdown.
func RenderReport(result *schema.AnalysisResult, kind ReportKind, cfg *contract.Config) (string, error) {
	gen := report.NewGenerator()

	switch kind {
	case ReportNotes:
		return gen.ReleaseNotes(result), nil
	case ReportSecurity:
		return gen.SecurityReport(result), nil
	case ReportChecklist:
		if cfg.Output == schema.JSONOut {
			encoded, err := json.MarshalIndent(gen.Checklist(result), "", "  ")
			if err != nil {
				return "", fmt.Errorf("failed to encode checklist: %w", err)
			}
			return string(encoded) + "\n", nil
		}
		return gen.ChecklistMarkdown(result), nil
	default:
		return "", fmt.Errorf("unknown report kind: %s (valid: notes, security, checklist)", kind)
	}
}

// ExecuteLanguages prints the languages with registered handlers.
// This is a static display that does not require analysis.
func ExecuteLanguages(_ context.Context, cfg *contract.Config) error {
	return outwriter.WriteLanguageList(lang.DefaultRegistry().Languages(), cfg)
}
