package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/manifest"
)

var (
	exportFormat string
	exportGroup  string
	exportSelect string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportGroup, "group", "g", "", "Only export files under this group path prefix")
	exportCmd.Flags().StringVar(&exportSelect, "select", "", "JSONPath over the list, e.g. $[?(@.kind == 'sourcecode.swift')]")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the descriptor list in machine-readable form",
	Long: `Dump the descriptor list as JSON or YAML.

The plain dump is a manifest document, so it round-trips:
pbxplan export -f yaml > files.yaml; pbxplan --manifest files.yaml
renders the same report. With --select the output is the raw JSONPath
result instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}
		if exportGroup != "" {
			entries = manifest.NewIndex(entries).UnderGroup(exportGroup)
		}

		var doc any = api.Manifest{Files: entries}
		if exportSelect != "" {
			matches, err := manifest.Select(entries, exportSelect)
			if err != nil {
				return err
			}
			vals := make([]any, len(matches))
			for i, m := range matches {
				vals[i] = m.Value()
			}
			doc = vals
		}

		out := cmd.OutOrStdout()
		switch exportFormat {
		case "json":
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal json: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			data, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			fmt.Fprint(out, string(data))
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
		}
		return nil
	},
}
