// Package main provides a performance benchmarking tool for the relgate CLI.
// It measures execution times across different repository sizes and command
// types, running each test multiple times, treating the first run as cold and
// averaging the rest as warm, generating CSV output for performance analysis
// and documentation.
//
// Prerequisites:
// - relgate binary installed and available in PATH
// - Test repositories cloned to the specified base directory
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Repository string
	Command    string
	ColdTime   string
	WarmTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase  string
	Timeout   time.Duration
	Workers   int
	Runs      int
	TestRepos []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	repoBase := os.Args[1]

	config := BenchmarkConfig{
		RepoBase:  repoBase,
		Timeout:   5 * time.Minute,
		Workers:   8,
		Runs:      4,
		TestRepos: []string{"csv-parser", "fd", "git", "kubernetes"},
	}

	commands := [][]string{
		{"analyze", "--history-backend", "none"},
		{"gate", "--history-backend", "none", "--fail-on", "block"},
	}

	var results []BenchmarkResult
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); err != nil {
			fmt.Printf("Skipping %s: %v\n", repo, err)
			continue
		}

		for _, command := range commands {
			result, err := benchmarkCommand(config, repo, repoPath, command)
			if err != nil {
				fmt.Printf("Benchmark failed for %s %s: %v\n", repo, command[0], err)
				continue
			}
			results = append(results, result)
		}
	}

	if err := writeResults(results); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
}

// benchmarkCommand times one relgate command against one repository.
// The first run is reported as cold; the remaining runs are averaged as warm.
func benchmarkCommand(config BenchmarkConfig, repo, repoPath string, command []string) (BenchmarkResult, error) {
	args := append(command, "--workers", fmt.Sprint(config.Workers), repoPath)

	var coldTime time.Duration
	var warmTotal time.Duration
	warmRuns := 0

	for i := range config.Runs {
		elapsed, err := timeCommand(config.Timeout, args)
		if err != nil {
			// gate exits non-zero on violations; that is still a valid timing
			if _, ok := err.(*exec.ExitError); !ok {
				return BenchmarkResult{}, err
			}
		}
		if i == 0 {
			coldTime = elapsed
		} else {
			warmTotal += elapsed
			warmRuns++
		}
		fmt.Printf("%s %s run %d: %v\n", repo, command[0], i+1, elapsed)
	}

	warmTime := time.Duration(0)
	if warmRuns > 0 {
		warmTime = warmTotal / time.Duration(warmRuns)
	}

	return BenchmarkResult{
		Repository: repo,
		Command:    command[0],
		ColdTime:   coldTime.Round(time.Millisecond).String(),
		WarmTime:   warmTime.Round(time.Millisecond).String(),
	}, nil
}

// timeCommand runs relgate once with a timeout and returns the elapsed time.
func timeCommand(timeout time.Duration, args []string) (time.Duration, error) {
	cmd := exec.Command("relgate", args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return 0, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return time.Since(start), err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		return time.Since(start), fmt.Errorf("timed out after %v", timeout)
	}
}

// writeResults prints the benchmark table as CSV to stdout.
func writeResults(results []BenchmarkResult) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"repository", "command", "cold", "warm"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Repository, r.Command, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	return nil
}
