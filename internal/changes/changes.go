// Package changes is the change-detection collaborator. It prefers the
// local git history and degrades to a file-count summary with a note when
// the repository is not under git.
package changes

import (
	"context"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

const (
	// maxRecentChanges bounds the change list kept on the summary.
	maxRecentChanges = 20

	// commitLogDepth is how far back the recent-commit count looks.
	commitLogDepth = 10
)

// NoGitNote marks a summary built without git history.
const NoGitNote = "Git not available - showing file count only"

// Detector resolves a change summary for one repository.
type Detector struct {
	client contract.GitClient
	depth  int // diff depth, HEAD~depth..HEAD
}

// NewDetector creates a detector. Depth below 1 uses the default git depth.
func NewDetector(client contract.GitClient, depth int) *Detector {
	if depth < 1 {
		depth = contract.DefaultGitDepth
	}
	return &Detector{client: client, depth: depth}
}

// Detect builds the change summary for the repository at repoPath. When git
// fails (not a repository, no git binary) it falls back to counting the
// ingested files and records a note; the fallback is never an error.
func (d *Detector) Detect(ctx context.Context, repoPath string, ingested []schema.FileRecord) schema.ChangeSummary {
	summary, err := d.gitSummary(ctx, repoPath)
	if err != nil {
		return fallbackSummary(ingested)
	}
	return summary
}

// gitSummary builds the summary from git history.
func (d *Detector) gitSummary(ctx context.Context, repoPath string) (schema.ChangeSummary, error) {
	changed, err := d.client.ChangedFiles(ctx, repoPath, d.depth)
	if err != nil {
		return schema.ChangeSummary{}, err
	}

	byType := map[schema.ChangeType]int{
		schema.ChangeAdded:    0,
		schema.ChangeModified: 0,
		schema.ChangeDeleted:  0,
	}
	for _, ch := range changed {
		byType[ch.Type]++
	}

	recent := changed
	if len(recent) > maxRecentChanges {
		recent = recent[:maxRecentChanges]
	}

	commits, err := d.client.CountCommits(ctx, repoPath, commitLogDepth)
	if err != nil {
		// Commit count is informational; a diff without it is still usable.
		contract.LogWarn("counting recent commits", err)
		commits = 0
	}

	return schema.ChangeSummary{
		Total:   len(changed),
		Recent:  recent,
		ByType:  byType,
		Commits: commits,
	}, nil
}

// fallbackSummary counts ingested files when git history is unavailable.
func fallbackSummary(ingested []schema.FileRecord) schema.ChangeSummary {
	return schema.ChangeSummary{
		Total: len(ingested),
		Note:  NoGitNote,
	}
}

// PerFileContributions maps each changed path onto its change-volume risk
// contribution: 5 points per detected change, saturating at the cap.
func PerFileContributions(summary schema.ChangeSummary) map[string]float64 {
	contributions := make(map[string]float64)
	for _, ch := range summary.Recent {
		contributions[ch.File] += 5
		if contributions[ch.File] > schema.MaxChangeVolumeContribution {
			contributions[ch.File] = schema.MaxChangeVolumeContribution
		}
	}
	return contributions
}
