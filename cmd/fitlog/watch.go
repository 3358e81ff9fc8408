// ABOUTME: CLI command streaming store changes as they happen.
// ABOUTME: Uses Badger's native subscription; stops on interrupt.
package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store for changes",
	Long: `Print every key that changes in the store until interrupted. Useful
while another fitlog process (serve, mcp) is writing.

Note that Badger locks its directory per process, so changes are
only visible from writers inside this process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Println("Watching for changes (Ctrl-C to stop)...")
		faint := color.New(color.Faint)
		return store.Watch(ctx, "", func(key string) {
			fmt.Printf("%s changed: %s\n",
				faint.Sprint(time.Now().Format("15:04:05")), key)
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
