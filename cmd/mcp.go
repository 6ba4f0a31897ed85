package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/pbxplan/pbxplan/internal/mcpserve"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the plan over the Model Context Protocol on stdio",
	Long: `Serve the descriptor list to MCP clients over stdio. Tools:
pending_files lists descriptors (optional group filter) and
registration_help returns the registration instructions. Both are
read-only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}

		// Keep stdout clean for the protocol; status goes to stderr.
		log.Printf("pbxplan mcp: serving %d descriptor(s) on stdio", len(entries))
		return mcpserve.Serve(mcpserve.New(entries, Version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
