// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/relgate/relgate/schema"
)

// GitClient defines the Git operations needed for change detection.
// This allows the change-detection logic to be tested without a real git
// executable.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git
	// repository containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// ChangedFiles returns the files changed in the last 'depth' commits
	// with their change type (added, modified, deleted).
	ChangedFiles(ctx context.Context, repoPath string, depth int) ([]schema.FileChange, error)

	// CountCommits returns the number of commits in the last 'depth'
	// commits (fewer when the history is shorter).
	CountCommits(ctx context.Context, repoPath string, depth int) (int, error)
}

// HistoryStore persists analysis runs and per-file gate verdicts.
// Implementations exist for SQLite, MySQL and PostgreSQL.
type HistoryStore interface {
	// SaveRun persists a run and its per-file verdicts, returning the run ID.
	SaveRun(ctx context.Context, result *schema.AnalysisResult) (int64, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]schema.RunRecord, error)

	// ListFileGates returns the per-file verdicts recorded for a run.
	ListFileGates(ctx context.Context, runID int64) ([]schema.FileGateRecord, error)

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.HistoryStatus, error)

	// Clear removes all stored runs and verdicts.
	Clear(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}

// Enricher decorates an analysis result with optional AI commentary.
// Implementations never alter scores or gate decisions.
type Enricher interface {
	Enrich(ctx context.Context, result *schema.AnalysisResult) *schema.AIInsights
}
