// ABOUTME: CLI commands for the stroke catalog.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/models"
	"github.com/spf13/cobra"
)

var strokeCmd = &cobra.Command{
	Use:   "stroke",
	Short: "Manage strokes",
	Long: `Manage the stroke catalog.

The five standard strokes (Freestyle, Backstroke, Breaststroke, Butterfly,
Individual Medley) are seeded automatically on first launch.

EXAMPLES:

  swim stroke list            # List strokes
  swim stroke add "Kick"      # Add a custom stroke`,
}

var strokeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List strokes",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, stroke := range st.Strokes.List() {
			fmt.Printf("%s %s\n", faint.Sprint(stroke.ID[:8]), stroke.Name)
		}
		return nil
	},
}

var strokeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom stroke",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stroke, err := st.Strokes.Add(&models.Stroke{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to add stroke: %w", err)
		}

		color.Green("✓ Added stroke %s", stroke.Name)
		return nil
	},
}

func init() {
	strokeCmd.AddCommand(strokeListCmd)
	strokeCmd.AddCommand(strokeAddCmd)
	rootCmd.AddCommand(strokeCmd)
}
