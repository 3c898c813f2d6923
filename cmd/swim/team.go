// ABOUTME: CLI commands for managing teams.
// ABOUTME: Supports add, list, rename, and delete operations.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/models"
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:     "team",
	Aliases: []string{"t"},
	Short:   "Manage teams",
	Long: `Manage teams.

EXAMPLES:

  swim team add "Dolphins"          # Create a team
  swim team list                    # List all teams
  swim team rename abc123 "Orcas"   # Rename a team
  swim team delete abc123           # Delete a team`,
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := st.Teams.Add(&models.Team{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to add team: %w", err)
		}

		color.Green("✓ Added team %s", team.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(team.ID[:8]))
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		teams := st.Teams.List()
		if len(teams) == 0 {
			fmt.Println("No teams found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, team := range teams {
			groups := st.Groups.ByTeam(team.ID)
			swimmers := st.Swimmers.ByTeam(team.ID)
			fmt.Printf("%s %s %s\n",
				faint.Sprint(team.ID[:8]),
				padRight(team.Name, 24),
				faint.Sprintf("%d groups, %d swimmers", len(groups), len(swimmers)))
		}
		return nil
	},
}

var teamRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := st.Teams.Update(resolveID(st.Teams.List(), args[0]), func(t *models.Team) {
			t.Name = args[1]
		})
		if err != nil {
			return fmt.Errorf("failed to rename team: %w", err)
		}

		color.Green("✓ Renamed team to %s", team.Name)
		return nil
	},
}

var teamDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a team",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Teams.List(), args[0])
		if err := st.Teams.Remove(id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}

		color.Green("✓ Deleted team %s", args[0])
		return nil
	},
}

func init() {
	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamRenameCmd)
	teamCmd.AddCommand(teamDeleteCmd)
	rootCmd.AddCommand(teamCmd)
}
