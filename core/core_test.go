package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// writeTestRepo creates a throwaway source tree outside any Git repository,
// so change detection exercises its fallback path.
func writeTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	risky := "def handler(data):\n    if data:\n        return eval(data)\n    return None\n"
	clean := "x = 1\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "risky.py"), []byte(risky), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.py"), []byte(clean), 0o644))
	return dir
}

func testAnalysisConfig(repoPath string) *contract.Config {
	return &contract.Config{
		RepoPath:       repoPath,
		ResultLimit:    contract.DefaultResultLimit,
		Workers:        2,
		GitDepth:       contract.DefaultGitDepth,
		Output:         schema.TextOut,
		HistoryBackend: schema.NoneBackend,
	}
}

func TestRunAnalysis(t *testing.T) {
	dir := writeTestRepo(t)
	result, err := RunAnalysis(context.Background(), testAnalysisConfig(dir))
	require.NoError(t, err)

	assert.Equal(t, dir, result.RepoPath)
	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 2, result.Languages["Python"])
	assert.False(t, result.Incomplete)

	// The security scan flags the eval call.
	require.NotEmpty(t, result.Security.Vulnerabilities)
	assert.Equal(t, "Dynamic code evaluation (eval)", result.Security.Vulnerabilities[0].Description)

	// Details are ranked riskiest first; the eval file outranks the trivial one.
	require.Len(t, result.FileDetails, 2)
	assert.Equal(t, "risky.py", result.FileDetails[0].Path)
	assert.Greater(t, result.FileDetails[0].RiskScore, result.FileDetails[1].RiskScore)

	// Gate counts agree with the per-file verdicts.
	passed, warned, blocked := schema.GateCounts(result.FileDetails)
	assert.Equal(t, result.FilesPassed, passed)
	assert.Equal(t, result.FilesWarned, warned)
	assert.Equal(t, result.FilesBlocked, blocked)

	assert.GreaterOrEqual(t, result.RiskScore, 0.0)
	assert.LessOrEqual(t, result.RiskScore, 10.0)

	// No Git repository here, so change detection falls back to file counts.
	assert.NotEmpty(t, result.Changes.Note)
}

func TestRunAnalysisMissingPath(t *testing.T) {
	cfg := testAnalysisConfig(filepath.Join(t.TempDir(), "nope"))
	_, err := RunAnalysis(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")
}

func TestRunAnalysisNoSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	_, err := RunAnalysis(context.Background(), testAnalysisConfig(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported source files")
}

func TestRunAnalysisCancelled(t *testing.T) {
	dir := writeTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := RunAnalysis(ctx, testAnalysisConfig(dir))
	require.NoError(t, err)
	assert.True(t, result.Incomplete)
	assert.Empty(t, result.FileDetails)
}

func TestRenderReport(t *testing.T) {
	result := &schema.AnalysisResult{
		RiskScore: 5.5,
		RiskLevel: schema.RiskLevelMedium,
		Changes:   schema.ChangeSummary{Total: 3},
	}
	cfg := &contract.Config{Output: schema.TextOut}

	notes, err := RenderReport(result, ReportNotes, cfg)
	require.NoError(t, err)
	assert.Contains(t, notes, "# Release Notes")

	security, err := RenderReport(result, ReportSecurity, cfg)
	require.NoError(t, err)
	assert.Contains(t, security, "# Security Report")

	checklist, err := RenderReport(result, ReportChecklist, cfg)
	require.NoError(t, err)
	assert.Contains(t, checklist, "# Release Checklist")
}

func TestRenderReportChecklistJSON(t *testing.T) {
	cfg := &contract.Config{Output: schema.JSONOut}

	content, err := RenderReport(&schema.AnalysisResult{}, ReportChecklist, cfg)
	require.NoError(t, err)
	assert.True(t, len(content) > 0 && content[0] == '[')
	assert.Contains(t, content, "\"std-1\"")
}

func TestRenderReportUnknownKind(t *testing.T) {
	_, err := RenderReport(&schema.AnalysisResult{}, ReportKind("bogus"), &contract.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report kind")
}

func TestExecuteLanguages(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "langs.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: outFile}

	require.NoError(t, ExecuteLanguages(context.Background(), cfg))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Python")
	assert.Contains(t, string(data), "Go")
}

func TestExecuteAnalyzeNoneBackend(t *testing.T) {
	dir := writeTestRepo(t)
	outFile := filepath.Join(t.TempDir(), "result.json")

	cfg := testAnalysisConfig(dir)
	cfg.Output = schema.JSONOut
	cfg.OutputFile = outFile

	require.NoError(t, ExecuteAnalyze(context.Background(), cfg))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "risky.py")
}
