package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/relgate/relgate/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRepoHash implements the GitClient interface.
func (c *LocalGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ChangedFiles implements the GitClient interface via name-status diff over
// the last 'depth' commits. Shallow histories fall back to comparing against
// the root commit.
func (c *LocalGitClient) ChangedFiles(ctx context.Context, repoPath string, depth int) ([]schema.FileChange, error) {
	out, err := c.Run(ctx, repoPath, "diff", "--name-status", fmt.Sprintf("HEAD~%d..HEAD", depth))
	if err != nil {
		// HEAD~depth does not exist in short histories; diff against the
		// empty tree of the first commit instead.
		out, err = c.Run(ctx, repoPath, "diff", "--name-status", "--root", "HEAD")
		if err != nil {
			return nil, err
		}
	}
	return ParseNameStatus(string(out)), nil
}

// CountCommits implements the GitClient interface.
func (c *LocalGitClient) CountCommits(ctx context.Context, repoPath string, depth int) (int, error) {
	out, err := c.Run(ctx, repoPath, "rev-list", "--count", fmt.Sprintf("--max-count=%d", depth), "HEAD")
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output: %w", err)
	}
	return count, nil
}

// ParseNameStatus parses 'git diff --name-status' output into file changes.
// Rename lines (R<score>\told\tnew) are reported as a modification of the
// new path.
func ParseNameStatus(out string) []schema.FileChange {
	var changes []schema.FileChange
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		status, file := fields[0], fields[len(fields)-1]

		var changeType schema.ChangeType
		switch status[0] {
		case 'A':
			changeType = schema.ChangeAdded
		case 'D':
			changeType = schema.ChangeDeleted
		default: // M, R, C, T
			changeType = schema.ChangeModified
		}
		changes = append(changes, schema.FileChange{File: file, Type: changeType})
	}
	return changes
}
