// ABOUTME: CLI commands for exporting and importing the full store.
// ABOUTME: JSON or YAML documents, format inferred from the file extension on import.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/ledger"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export every logged exercise, the running statistics and the
exercise type list as a single JSON or YAML document. Writes to
stdout unless --output is given.

Examples:
  fitlog export > backup.json
  fitlog export --format yaml --output backup.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := fitLedger.Export()
		if err != nil {
			return err
		}
		raw, err := ledger.MarshalExport(data, exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(exportOutput, raw, 0600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		color.Green("✓ Exported %d day(s) to %s", len(data.Days), exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an export file",
	Long: `Import a document produced by "fitlog export", overwriting any
existing entries for the same dates. The format is taken from the
file extension (.json, .yaml or .yml).

Example:
  fitlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		format := "json"
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".yaml", ".yml":
			format = "yaml"
		}

		data, err := ledger.UnmarshalExport(raw, format)
		if err != nil {
			return err
		}
		if err := fitLedger.Import(data); err != nil {
			return err
		}
		color.Green("✓ Imported %d day(s) from %s", len(data.Days), args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
