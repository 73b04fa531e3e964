package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relgate/relgate/core"
	"github.com/relgate/relgate/internal/contract"
)

// gateCmd runs the release gate for CI/CD pipelines.
var gateCmd = &cobra.Command{
	Use:   "gate [repo-path]",
	Short: "Evaluate the release gate and exit non-zero on violations.",
	Long: `Run the analysis and evaluate the release gate for CI/CD.

Each file receives a PASS, WARN or BLOCK verdict based on its risk score.
The command exits non-zero when any file reaches the --fail-on decision,
making it suitable as a pipeline step:

  PASS   score below 30
  WARN   score from 30 up to 60
  BLOCK  score of 60 or above

Examples:
  # Fail the pipeline only on blocking files (default)
  relgate gate

  # Stricter: fail on warnings too
  relgate gate --fail-on warn

  # Gate a specific repository
  relgate gate ~/src/service`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run gate check", err)
		}
	},
}
