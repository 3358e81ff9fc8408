// ABOUTME: CLI commands for the exercise type registry.
// ABOUTME: Lists the registered types and appends new ones.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:     "types",
	Aliases: []string{"t"},
	Short:   "List exercise types",
	Long: `List the registered exercise types. New exercises must use one of
these; add your own with "fitlog types add".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		types := fitLedger.Registry().List()
		fmt.Printf("Exercise types (%d):\n", len(types))
		for _, t := range types {
			fmt.Printf("  %s\n", t)
		}
		return nil
	},
}

var typesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new exercise type",
	Long: `Register a new exercise type. The name is trimmed of surrounding
whitespace; an already-registered name is rejected.

Examples:
  fitlog types add Climbing
  fitlog types add "Rowing machine"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fitLedger.Registry().Add(args[0]); err != nil {
			return err
		}
		color.Green("✓ Registered exercise type %q", args[0])
		return nil
	},
}

func init() {
	typesCmd.AddCommand(typesAddCmd)
	rootCmd.AddCommand(typesCmd)
}
