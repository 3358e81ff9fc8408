// ABOUTME: CLI command running the local HTTP API server.
// ABOUTME: Port from --port, the PORT environment variable, or 8080.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the fitness log over a local HTTP API. Endpoints mirror the
CLI: exercises, stats, goals, types and the weekly chart, all JSON.

The port comes from --port, then the PORT environment variable
(a .env file in the working directory is honored), then 8080.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Optional; absence of a .env file is not an error.
		_ = godotenv.Load()

		port := servePort
		if port == 0 {
			port = 8080
			if env := os.Getenv("PORT"); env != "" {
				if _, err := fmt.Sscanf(env, "%d", &port); err != nil {
					return fmt.Errorf("invalid PORT value: %s", env)
				}
			}
		}

		addr := fmt.Sprintf(":%d", port)
		fmt.Printf("Serving fitness log API on %s\n", addr)
		return server.New(fitLedger).ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default from PORT env or 8080)")
	rootCmd.AddCommand(serveCmd)
}
