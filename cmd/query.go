package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pbxplan/pbxplan/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query \"SQL\"",
	Short: "Run SQL over the descriptor list",
	Long: `Run one SQL query over the descriptor list.

The list is loaded into an in-memory SQLite table per run:

  files(ordinal, path, filename, ext, kind, group_path, depth)

ordinal preserves list order, ext has no dot, group_path joins the
group segments with "/", depth counts them. Nothing touches disk and
nothing survives the process. Rows print tab-separated under a column
header.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}
		res, err := query.Run(entries, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, strings.Join(res.Columns, "\t"))
		for _, row := range res.Rows {
			fmt.Fprintln(out, strings.Join(row, "\t"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
