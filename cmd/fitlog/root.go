// ABOUTME: Root Cobra command for the fitlog CLI.
// ABOUTME: Opens the store and wires ledger, stats engine and registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/caldate"
	"github.com/varzesh/fitlog/internal/config"
	"github.com/varzesh/fitlog/internal/kv"
	"github.com/varzesh/fitlog/internal/ledger"
	"github.com/varzesh/fitlog/internal/registry"
	"github.com/varzesh/fitlog/internal/stats"
)

var (
	store     *kv.BadgerStore
	cal       caldate.Calendar
	fitLedger *ledger.Ledger
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal fitness log",
	Long: `Fitlog records daily exercises against calendar dates and keeps
running statistics over everything you have logged.

QUICK START:

  $ fitlog add "Morning run" Running 30 300   # Log an exercise for today
  $ fitlog list                               # See today's exercises
  $ fitlog list --date 1404-06-19             # See another date
  $ fitlog stats                              # Running totals and goals
  $ fitlog chart                              # This week's calorie chart

EDITING:

  $ fitlog edit "Morning run" --calories 250  # Fix a field
  $ fitlog remove "Morning run"               # Remove an exercise

TYPES AND GOALS:

  $ fitlog types                              # List exercise types
  $ fitlog types add "Climbing"               # Register a new type
  $ fitlog goals 500 60                       # Daily kcal and minute goals

DATES:

  Dates are keyed in the configured calendar (jalali by default,
  gregorian via the config file) as YYYY-MM-DD, e.g. 1404-06-19.

DATA STORAGE:

  Entries live in a local Badger store at ~/.local/share/fitlog/db.
  There is no server and no sync; the store belongs to this device.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cal, err = cfg.OpenCalendar()
		if err != nil {
			return err
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		reg := registry.New(store)
		engine := stats.New(store, cal)
		fitLedger = ledger.New(store, cal, reg, engine)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
