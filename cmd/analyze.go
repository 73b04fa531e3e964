package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relgate/relgate/core"
	"github.com/relgate/relgate/internal/contract"
)

// analyzeCmd performs the full release-risk analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [repo-path]",
	Short: "Analyze a repository and rank files by release risk.",
	Long: `Scan the repository, score every supported source file and print the results.

The analysis combines four signals per file:
- Cyclomatic complexity estimated by the language handler
- Security findings (hardcoded secrets, risky code patterns)
- Change volume from recent Git history
- Whether the file sits on a critical path (auth, payment, crypto, ...)

Every run is recorded in the history backend so trends can be tracked over time.

Examples:
  # Analyze the current directory
  relgate analyze

  # Analyze another repository, top 10 files only
  relgate analyze ~/src/service --limit 10

  # Export findings to CSV for tracking
  relgate analyze --output csv --output-file risk.csv

  # Include AI commentary (requires GEMINI_API_KEY)
  relgate analyze --ai`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
