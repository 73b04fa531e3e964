package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

func init() {
	// Plain output so assertions do not depend on ANSI escapes.
	color.NoColor = true
}

func testConfig() *contract.Config {
	return &contract.Config{
		Output:         schema.TextOut,
		Width:          120,
		Workers:        4,
		HistoryBackend: schema.SQLiteBackend,
	}
}

func testResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		RepoPath:     "/repo",
		TotalFiles:   2,
		FilesPassed:  1,
		FilesBlocked: 1,
		Languages:    map[string]int{"Python": 2},
		CodeAnalysis: schema.CodeAnalysis{
			TotalComponents: 5,
			Dependencies:    []string{"flask"},
			Complexity:      schema.ComplexitySummary{Average: 4.5, Max: 12, Samples: 2},
		},
		Changes:   schema.ChangeSummary{Total: 3, Commits: 7},
		RiskScore: 5.5,
		RiskLevel: schema.RiskLevelMedium,
		Risks: []schema.RiskFinding{
			{Priority: schema.PriorityCritical, Title: "Hardcoded Secrets", Description: "1 secret", Mitigation: "Rotate"},
		},
		FileDetails: []schema.FileDetail{
			{Path: "src/auth.py", Language: "Python", Complexity: 12, RiskScore: 72.0, Gate: schema.GateBlock,
				Recommendations: []string{"Resolve blocking risks before release"}},
			{Path: "src/app.py", Language: "Python", Complexity: 2, RiskScore: 10.0, Gate: schema.GatePass},
		},
	}
}

func TestWriteAnalysisTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeAnalysisTable(testResult(), testConfig(), 100*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Release risk analysis for /repo")
	assert.Contains(t, out, "Files analyzed: 2 (Python: 2)")
	assert.Contains(t, out, "Repository risk: 5.5/10 (MEDIUM)")
	assert.Contains(t, out, "Hardcoded Secrets")
	assert.Contains(t, out, "src/auth.py")
	assert.Contains(t, out, "BLOCK")
	assert.Contains(t, out, "Gate summary: 1 passed, 0 warned, 1 blocked")
	assert.NotContains(t, out, "Partial result")
}

func TestWriteAnalysisTableIncomplete(t *testing.T) {
	result := testResult()
	result.Incomplete = true

	var buf bytes.Buffer
	err := writeAnalysisTable(result, testConfig(), time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Partial result")
}

func TestWriteAnalysisTableNoGitNote(t *testing.T) {
	result := testResult()
	result.Changes = schema.ChangeSummary{Total: 2, Note: "Git not available - showing file count only"}

	var buf bytes.Buffer
	err := writeAnalysisTable(result, testConfig(), time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Changes: 2 (Git not available - showing file count only)")
}

func TestWriteAnalysisTableInsights(t *testing.T) {
	result := testResult()
	result.AI = &schema.AIInsights{
		Status:      schema.AIStatusOK,
		CodeQuality: "Reduce complexity in auth.py",
	}

	var buf bytes.Buffer
	err := writeAnalysisTable(result, testConfig(), time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Code quality:")
	assert.Contains(t, buf.String(), "Reduce complexity in auth.py")
}

func TestWriteAnalysisCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeAnalysisCSV(&buf, testResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rank,path,language,lines,complexity,maintainability,risk_score,gate,issues", lines[0])
	assert.Contains(t, lines[1], "src/auth.py")
	assert.Contains(t, lines[1], "BLOCK")
	assert.Contains(t, lines[2], "src/app.py")
	assert.Contains(t, lines[2], "PASS")
}

func TestWriteAnalysisParquetRequiresFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut

	err := WriteAnalysisResult(testResult(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

func TestWriteGateSummaryFlagsOnly(t *testing.T) {
	var buf bytes.Buffer
	err := writeGateSummary(testResult(), testConfig(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "src/auth.py")
	assert.NotContains(t, out, "src/app.py") // PASS files are not listed
	assert.Contains(t, out, "Resolve blocking risks before release")
	assert.Contains(t, out, "Gate summary: 1 passed, 0 warned, 1 blocked out of 2 files")
}

func TestWriteRunsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := writeRunsTable(nil, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No runs recorded yet.")
}

func TestWriteRunsCSV(t *testing.T) {
	records := []schema.RunRecord{
		{
			ID:           3,
			StartedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			RepoPath:     "/repo",
			TotalFiles:   4,
			FilesPassed:  3,
			FilesBlocked: 1,
			RiskScore:    7.5,
			RiskLevel:    "HIGH",
			Incomplete:   true,
		},
	}

	var buf bytes.Buffer
	err := writeRunsCSV(&buf, records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "3,2026-08-01T12:00:00Z,/repo,4,3,0,1,7.5,HIGH,true", lines[1])
}

func TestFormatLanguages(t *testing.T) {
	assert.Equal(t, "no recognized languages", formatLanguages(nil))
	assert.Equal(t, "Python: 5, Go: 2, Ruby: 2",
		formatLanguages(map[string]int{"Go": 2, "Python": 5, "Ruby": 2}))
}

func TestFlaggedFiles(t *testing.T) {
	details := []schema.FileDetail{
		{Path: "a", Gate: schema.GatePass},
		{Path: "b", Gate: schema.GateWarn},
		{Path: "c", Gate: schema.GateBlock},
	}

	flagged := flaggedFiles(details)
	require.Len(t, flagged, 2)
	assert.Equal(t, "b", flagged[0].Path)
	assert.Equal(t, "c", flagged[1].Path)
}

func TestGetMaxTablePathWidth(t *testing.T) {
	narrow := testConfig()
	narrow.Width = 40
	assert.Equal(t, 15, getMaxTablePathWidth(narrow))

	wide := testConfig()
	wide.Width = 500
	assert.Equal(t, 70, getMaxTablePathWidth(wide))

	medium := testConfig()
	medium.Width = 100
	assert.Equal(t, 50, getMaxTablePathWidth(medium))
}
