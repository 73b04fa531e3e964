package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relgate/relgate/core"
	"github.com/relgate/relgate/internal/contract"
)

// reportSetupWrapper skips the kind argument so sharedSetup sees only the
// optional repo path.
func reportSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args[1:])
}

// reportCmd renders release documents from a fresh analysis.
var reportCmd = &cobra.Command{
	Use:   "report <kind> [repo-path]",
	Short: "Generate a release document: notes, security or checklist.",
	Long: `Run the analysis and render a markdown release document.

Kinds:
  notes      Release notes summarizing changes and overall risk
  security   Vulnerability and secret findings with recommendations
  checklist  Actionable pre-release checklist (supports --output json)

Examples:
  # Print release notes for the current directory
  relgate report notes

  # Write the security report to a file
  relgate report security --output-file SECURITY.md

  # Machine-readable checklist for tooling
  relgate report checklist --output json`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"notes", "security", "checklist"},
	PreRunE:   reportSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteReport(rootCtx, cfg, core.ReportKind(args[0])); err != nil {
			contract.LogFatal("Cannot generate report", err)
		}
	},
}
