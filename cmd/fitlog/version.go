// ABOUTME: CLI command printing the build version.
// ABOUTME: Runs without opening the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fitlog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitlog %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
