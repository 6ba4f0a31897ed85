package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbxplan/pbxplan/internal/grouptree"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the logical group hierarchy of the descriptor list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), grouptree.Render(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
