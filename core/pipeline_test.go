package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/relgate/relgate/core/agg"
	"github.com/relgate/relgate/core/lang"
	"github.com/relgate/relgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipeline(workers int) *Pipeline {
	return NewPipeline(agg.NewAnalyzer(lang.DefaultRegistry()), workers)
}

// TestPipelineEmptyBatch treats an empty batch as fatal, never as a clean
// zero-risk result.
func TestPipelineEmptyBatch(t *testing.T) {
	p := testPipeline(2)
	result, err := p.Run(context.Background(), "/repo", nil, BatchSignals{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

// TestPipelineEndToEnd runs a small mixed batch through every stage.
func TestPipelineEndToEnd(t *testing.T) {
	files := []schema.FileRecord{
		{Path: "app.py", Name: "app.py", Language: "Python", Lines: 5,
			Content: "import flask\n\ndef run():\n    if True:\n        pass\n"},
		{Path: "legacy.pl", Name: "legacy.pl", Language: "Perl", Lines: 2,
			Content: "sub main {}\n"},
	}
	signals := BatchSignals{
		Security: schema.SecurityReport{
			Secrets: []schema.SecretFinding{{File: "app.py", Line: 1}},
		},
		Changes: schema.ChangeSummary{Total: 2},
		PerFile: map[string]FileSignals{
			"app.py": {CriticalFunction: 10},
		},
	}

	p := testPipeline(2)
	result, err := p.Run(context.Background(), "/repo", files, signals)
	require.NoError(t, err)

	assert.Equal(t, "/repo", result.RepoPath)
	assert.Equal(t, 2, result.TotalFiles)
	assert.False(t, result.Incomplete)

	// Details keep batch order regardless of worker interleaving.
	require.Len(t, result.FileDetails, 2)
	assert.Equal(t, "app.py", result.FileDetails[0].Path)
	assert.Equal(t, "legacy.pl", result.FileDetails[1].Path)

	// app.py: complexity 2 -> 10, plus critical-function 10 -> 20 -> PASS.
	appDetail := result.FileDetails[0]
	assert.InDelta(t, 20.0, appDetail.RiskScore, 0.001)
	assert.Equal(t, schema.GatePass, appDetail.Gate)

	// Perl has no handler; fallback analysis yields score 0.
	assert.Zero(t, result.FileDetails[1].RiskScore)

	assert.Equal(t, 2, result.FilesPassed)
	assert.Zero(t, result.FilesWarned)
	assert.Zero(t, result.FilesBlocked)

	assert.Equal(t, map[string]int{"Python": 1, "Perl": 1}, result.Languages)
	assert.Equal(t, []string{"flask"}, result.CodeAnalysis.Dependencies)
	assert.Equal(t, 1, result.CodeAnalysis.Complexity.Samples)

	// One secret -> CRITICAL finding, repo score 2.5, level LOW.
	require.Len(t, result.Risks, 1)
	assert.Equal(t, schema.PriorityCritical, result.Risks[0].Priority)
	assert.InDelta(t, 2.5, result.RiskScore, 0.001)
	assert.Equal(t, schema.RiskLevelLow, result.RiskLevel)
}

// TestPipelineCancellation returns a partial result marked incomplete
// instead of hanging or fabricating full output.
func TestPipelineCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the run starts

	files := make([]schema.FileRecord, 20)
	for i := range files {
		files[i] = schema.FileRecord{
			Path:     fmt.Sprintf("f%d.py", i),
			Language: "Python",
			Content:  "def f():\n    pass\n",
		}
	}

	p := testPipeline(4)
	result, err := p.Run(ctx, "/repo", files, BatchSignals{})
	require.NoError(t, err)

	assert.True(t, result.Incomplete)
	assert.Less(t, result.TotalFiles, len(files))
	assert.Len(t, result.FileDetails, result.TotalFiles)
}

// TestPipelineIdempotence runs the same batch twice with a parallel worker
// pool and expects bit-identical results.
func TestPipelineIdempotence(t *testing.T) {
	files := make([]schema.FileRecord, 40)
	for i := range files {
		files[i] = schema.FileRecord{
			Path:     fmt.Sprintf("pkg/mod%d.py", i),
			Name:     fmt.Sprintf("mod%d.py", i),
			Language: "Python",
			Lines:    4,
			Content:  fmt.Sprintf("import dep%d\n\ndef handle%d(x):\n    if x:\n        return x\n", i%7, i),
		}
	}
	signals := BatchSignals{Changes: schema.ChangeSummary{Total: 40}}

	p := testPipeline(8)
	first, err := p.Run(context.Background(), "/repo", files, signals)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), "/repo", files, signals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestPipelineWorkerDefault falls back to CPU-count workers.
func TestPipelineWorkerDefault(t *testing.T) {
	p := NewPipeline(agg.NewAnalyzer(lang.NewRegistry()), 0)
	assert.Positive(t, p.workers)
}
