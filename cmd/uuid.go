package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pbxplan/pbxplan/internal/pbx"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid [n]",
	Short: "Generate PBX object identifiers",
	Long: `Generate fresh PBX object identifiers (24 uppercase hex chars), one
per line, for people hand-editing a pbxproj with the xcodeproj gem or
similar. The ids are random; nothing checks them against any project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return fmt.Errorf("invalid count %q: want a positive integer", args[0])
			}
			n = v
		}

		out := cmd.OutOrStdout()
		for _, id := range pbx.NewObjectIDs(n) {
			fmt.Fprintln(out, id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uuidCmd)
}
