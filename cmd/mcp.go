package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the relgate MCP server",
	Long:  `Launch an MCP server that allows AI agents to run release-risk analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The setup runs quietly so stdio stays clean for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
