// ABOUTME: CLI command for the legacy log migration.
// ABOUTME: Shows migration status; the migration itself runs automatically.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Show legacy log migration status",
	Long: `Show the status of the one-time legacy log migration.

Older versions stored everything in a flat log of entries. On first run
this version builds swimmer and time records from that log and marks the
migration done; the original log entries are kept untouched.

The migration runs automatically before every command, so this command
normally just reports that it has already happened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := st.MigrationVersion()
		if version == store.CurrentMigrationVersion {
			color.Green("✓ Migration complete (version %s)", version)
		} else {
			color.Yellow("Migration pending")
		}

		fmt.Printf("  Log entries: %d\n", st.Entries.Count())
		fmt.Printf("  Swimmers:    %d\n", st.Swimmers.Count())
		fmt.Printf("  Times:       %d\n", st.Times.Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
