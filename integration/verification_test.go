//go:build basic

// Package integration contains integration tests for relgate.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// riskySource is complex enough and has enough findings to blow past the
// blocking threshold.
const riskySource = `import pickle

PASSWORD = "super-secret-pw"
API_KEY = "abcdef1234567890"

def handler(data, mode, flag, extra):
    if mode == "a":
        if flag:
            return eval(data)
    if mode == "b":
        if flag:
            return pickle.loads(data)
    if mode == "c":
        if extra:
            if flag:
                return exec(data)
    if mode == "d":
        for item in data:
            if item:
                while flag:
                    return item
    return None
`

// writeRepo writes sources into a fresh temp directory.
func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

// runInDir runs the relgate binary against a specific repository.
func runInDir(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getRelgateBinary(), args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

// TestGateExitCodes verifies that the gate command fails on blocking files
// and passes on clean ones.
func TestGateExitCodes(t *testing.T) {
	riskyRepo := writeRepo(t, map[string]string{"danger.py": riskySource})
	cleanRepo := writeRepo(t, map[string]string{"tidy.py": "x = 1\n"})

	out, err := runInDir(t, riskyRepo, "gate", "--history-backend", "none")
	require.Error(t, err, "gate should exit non-zero for a blocking file")
	assert.Contains(t, out, "danger.py")
	assert.Contains(t, out, "violation(s) found")

	out, err = runInDir(t, cleanRepo, "gate", "--history-backend", "none")
	require.NoError(t, err, "gate should pass a clean repo: %s", out)
	assert.Contains(t, out, "Gate summary:")
}

// TestAnalyzeCSVOutput verifies the CSV export shape.
func TestAnalyzeCSVOutput(t *testing.T) {
	repo := writeRepo(t, map[string]string{
		"danger.py": riskySource,
		"tidy.py":   "x = 1\n",
	})

	outFile := filepath.Join(t.TempDir(), "risk.csv")
	_, err := runInDir(t, repo, "analyze",
		"--history-backend", "none",
		"--output", "csv",
		"--output-file", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one row per file")
	assert.Equal(t, "rank,path,language,lines,complexity,maintainability,risk_score,gate,issues", lines[0])
	assert.Contains(t, lines[1], "danger.py") // riskiest file ranks first
}

// TestHistoryRoundTrip verifies that analyze records runs in SQLite and the
// history commands can read them back.
func TestHistoryRoundTrip(t *testing.T) {
	repo := writeRepo(t, map[string]string{"tidy.py": "x = 1\n"})

	dbFile := filepath.Join(t.TempDir(), "history.db")
	_ = os.Setenv("RELGATE_HISTORY_DB_CONNECT", dbFile)
	defer func() { _ = os.Unsetenv("RELGATE_HISTORY_DB_CONNECT") }()

	_, err := runInDir(t, repo, "analyze")
	require.NoError(t, err)

	out, err := runInDir(t, repo, "history", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "No runs recorded yet.")

	out, err = runInDir(t, repo, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend: sqlite")

	_, err = runInDir(t, repo, "history", "clear")
	require.NoError(t, err)

	out, err = runInDir(t, repo, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
}
