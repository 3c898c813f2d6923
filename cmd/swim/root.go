// ABOUTME: Root Cobra command for swim CLI.
// ABOUTME: Handles store lifecycle and the one-time legacy migration.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/config"
	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	backend kv.Store
	st      *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "swim",
	Short: "Swim practice tracker",
	Long: `Swim is a CLI tool for tracking swim practice.

WHAT IT TRACKS:

  Swimmers    roster with team and group memberships
  Times       recorded times per swimmer, stroke, and distance
  Trainings   training plans built from interval or effort exercises
  Log         the quick flat log (name, stroke, distance, effort, best time)

QUICK START:

  $ swim swimmer add "Ana"                    # Add a swimmer
  $ swim time add Ana Freestyle 100m 1:02.35  # Record a time
  $ swim time best Ana Freestyle 100m         # Show the best time
  $ swim log add Ana Freestyle 100m 1:00.50   # Quick log entry

TEAMS AND GROUPS:

  $ swim team add "Dolphins"             # Create a team
  $ swim group add "Juniors" --team t1   # Create a group within a team
  $ swim swimmer list --team t1          # Filter the roster

SYNC (OPTIONAL):

  Set "backend": "charm" in ~/.config/swim/config.json to sync data
  across devices via Charm Cloud. Data is E2E encrypted with your SSH key.

  $ swim sync link      # Link device to your Charm account
  $ swim sync status    # Check sync status

MCP INTEGRATION:

  Run 'swim mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "swim": { "command": "swim", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored locally in Badger at ~/.local/share/swim by default.
  Legacy flat-log data is migrated to swimmers and times on first run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		backend, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		st = store.Open(backend)

		ran, summary, err := st.RunMigrationIfNeeded()
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if ran {
			color.Yellow("Migrated legacy log: %d swimmers, %d times", summary.Swimmers, summary.Times)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
