// ABOUTME: CLI command for the distance unit preference.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/store"
	"github.com/spf13/cobra"
)

var unitCmd = &cobra.Command{
	Use:   "unit [m|y]",
	Short: "Show or set the distance unit",
	Long: `Show or set the preferred distance unit.

Distances are labeled in meters (m) or yards (y). The preference only
changes which distance options are offered; stored distance strings are
never converted.

EXAMPLES:

  swim unit      # Show the current unit
  swim unit y    # Switch to yards
  swim unit m    # Switch to meters`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			unit := st.Prefs.Unit()
			name := "meters"
			if unit == store.UnitYards {
				name = "yards"
			}
			fmt.Printf("Unit: %s (%s)\n", unit, name)
			return nil
		}

		if err := st.Prefs.SetUnit(args[0]); err != nil {
			return fmt.Errorf("failed to set unit: %w", err)
		}
		color.Green("✓ Unit set to %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitCmd)
}
