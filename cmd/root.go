package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/manifest"
	"github.com/pbxplan/pbxplan/internal/report"
)

// Version is reported by --version and to MCP clients.
const Version = "0.2.0"

var manifestPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Manifest file (.yaml, .json, or .hcl); default is the built-in TaskSnap list")
}

var rootCmd = &cobra.Command{
	Use:     "pbxplan",
	Short:   "Plan Xcode project registrations without touching the project file",
	Version: Version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), entries)
	},
}

// loadEntries resolves the descriptor list every command works over:
// the built-in TaskSnap list, or the manifest named by --manifest.
func loadEntries() ([]api.FileEntry, error) {
	if manifestPath == "" {
		return manifest.Builtin(), nil
	}
	return manifest.Load(manifestPath)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
