package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relgate/relgate/core"
	"github.com/relgate/relgate/internal/contract"
)

// languagesCmd lists the languages with registered handlers.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages relgate can analyze.",
	Long: `Display the languages with registered analysis handlers.

Files in other languages are still ingested when their extension is known,
but they receive generic component extraction instead of a dedicated handler.

Examples:
  # Human-readable list
  relgate languages

  # JSON array for tooling
  relgate languages --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLanguages(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list languages", err)
		}
	},
}
