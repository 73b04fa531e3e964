package core

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/relgate/relgate/core/agg"
	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// ErrEmptyBatch is returned when the pipeline is invoked with no files.
// An empty batch is a caller error, never an empty-but-successful result.
var ErrEmptyBatch = errors.New("no files to analyze")

// BatchSignals bundles the collaborator inputs for one pipeline run. Every
// field has a legal zero value meaning "collaborator did not report".
type BatchSignals struct {
	Security schema.SecurityReport
	Changes  schema.ChangeSummary

	// PerFile maps file path to that file's externally supplied signals.
	PerFile map[string]FileSignals
}

// Pipeline sequences code analysis, per-file risk computation, repository
// assessment and gate counting over an immutable file batch.
type Pipeline struct {
	analyzer *agg.Analyzer
	workers  int
}

// NewPipeline creates a pipeline. Workers below 1 default to the CPU count.
func NewPipeline(analyzer *agg.Analyzer, workers int) *Pipeline {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pipeline{analyzer: analyzer, workers: workers}
}

// fileOutcome is the per-file unit of parallel work. Workers write to unique
// indices of a pre-sized slice, so no lock is needed and output order is the
// input batch order regardless of worker interleaving.
type fileOutcome struct {
	facts  agg.FileFacts
	detail schema.FileDetail
	done   bool
}

// Run executes the full pipeline. On context cancellation it abandons
// pending files and returns the partial result with Incomplete set; only the
// files analyzed before cancellation appear in the output. An empty batch is
// fatal and returns ErrEmptyBatch.
func (p *Pipeline) Run(ctx context.Context, repoPath string, files []schema.FileRecord, signals BatchSignals) (*schema.AnalysisResult, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}

	outcomes := make([]fileOutcome, len(files))
	indexCh := make(chan int, len(files))
	var wg sync.WaitGroup

	for range p.workers {
		wg.Go(func() {
			for idx := range indexCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				outcomes[idx] = p.analyzeOne(files[idx], signals)
			}
		})
	}
	for i := range files {
		indexCh <- i
	}
	close(indexCh)
	wg.Wait()

	cancelled := ctx.Err() != nil
	if cancelled {
		contract.LogWarn("analysis cancelled", ctx.Err())
	}

	// Reduction over completed outcomes only; abandoned files are omitted
	// rather than reported with fabricated zero scores.
	facts := make([]agg.FileFacts, 0, len(files))
	details := make([]schema.FileDetail, 0, len(files))
	languages := make(map[string]int)
	for _, o := range outcomes {
		if !o.done {
			continue
		}
		facts = append(facts, o.facts)
		details = append(details, o.detail)
		languages[o.facts.File.Language]++
	}

	analysis := agg.Aggregate(facts)
	risks, repoScore := AssessRisks(signals.Security, analysis.Complexity, signals.Changes)
	passed, warned, blocked := schema.GateCounts(details)

	return &schema.AnalysisResult{
		RepoPath:     repoPath,
		TotalFiles:   len(details),
		FilesPassed:  passed,
		FilesWarned:  warned,
		FilesBlocked: blocked,
		Languages:    languages,
		CodeAnalysis: analysis,
		Security:     signals.Security,
		Changes:      signals.Changes,
		Risks:        risks,
		RiskScore:    repoScore,
		RiskLevel:    schema.RiskLevelForScore(repoScore),
		FileDetails:  details,
		Incomplete:   cancelled,
	}, nil
}

// analyzeOne runs the per-file stage: structural facts plus risk verdict.
func (p *Pipeline) analyzeOne(file schema.FileRecord, signals BatchSignals) fileOutcome {
	facts := p.analyzer.AnalyzeFile(file)

	fileSignals := signals.PerFile[file.Path]
	complexity := 0.0
	if facts.Sampled {
		complexity = facts.Facts.Complexity
	}
	detail := ComputeFileDetail(file, complexity, fileSignals)

	return fileOutcome{facts: facts, detail: detail, done: true}
}
