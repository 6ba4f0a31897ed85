package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/pbxplan/pbxplan/internal/manifest"
	"github.com/pbxplan/pbxplan/internal/verify"
)

var (
	checkRoot   string
	checkGroup  string
	checkParse  bool
	checkStrict bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkRoot, "root", "r", ".", "Project root the listed paths are resolved against")
	checkCmd.Flags().StringVarP(&checkGroup, "group", "g", "", "Only check files under this group path prefix")
	checkCmd.Flags().BoolVar(&checkParse, "parse", false, "Parse present Swift sources and report syntax errors")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when listed files are missing")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which listed files exist under the project root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}

		idx := manifest.NewIndex(entries)
		if checkGroup != "" {
			entries = idx.UnderGroup(checkGroup)
		}

		checker := verify.New(osfs.New(checkRoot))
		checker.Parse = checkParse
		results, err := checker.Run(cmd.Context(), entries)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%-8s %s\n", r.State, r.Entry.Path)
			for _, s := range r.Syntax {
				fmt.Fprintf(out, "         %s\n", s.Error())
			}
			if r.Err != nil {
				fmt.Fprintf(out, "         %v\n", r.Err)
			}
		}
		for _, dup := range idx.Duplicates() {
			fmt.Fprintf(out, "duplicate path in list: %s\n", dup)
		}

		sum := verify.Summarize(results)
		fmt.Fprintf(out, "%d present, %d missing", sum.Present, sum.Missing)
		if sum.Errors > 0 {
			fmt.Fprintf(out, ", %d unreadable", sum.Errors)
		}
		if checkParse {
			fmt.Fprintf(out, ", %d with syntax errors", sum.Syntax)
		}
		fmt.Fprintln(out)

		if checkStrict && sum.Missing > 0 {
			return fmt.Errorf("%d file(s) missing under %s", sum.Missing, checkRoot)
		}
		if sum.Errors > 0 {
			return fmt.Errorf("%d file(s) could not be checked", sum.Errors)
		}
		return nil
	},
}
