// ABOUTME: CLI commands for managing groups within teams.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/models"
	"github.com/spf13/cobra"
)

var groupTeam string

var groupCmd = &cobra.Command{
	Use:     "group",
	Aliases: []string{"g"},
	Short:   "Manage groups",
	Long: `Manage training groups. A group can optionally belong to a team.

EXAMPLES:

  swim group add "Juniors" --team abc123   # Create a group in a team
  swim group add "Masters"                 # Create a standalone group
  swim group list                          # List all groups
  swim group list --team abc123            # List a team's groups
  swim group delete def456                 # Delete a group`,
}

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teamID := ""
		if groupTeam != "" {
			teamID = resolveID(st.Teams.List(), groupTeam)
			if _, ok := st.Teams.GetByID(teamID); !ok {
				return fmt.Errorf("team not found: %s", groupTeam)
			}
		}

		group, err := st.Groups.Add(&models.Group{Name: args[0], TeamID: teamID})
		if err != nil {
			return fmt.Errorf("failed to add group: %w", err)
		}

		color.Green("✓ Added group %s", group.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(group.ID[:8]))
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		var groups []*models.Group
		if groupTeam != "" {
			groups = st.Groups.ByTeam(resolveID(st.Teams.List(), groupTeam))
		} else {
			groups = st.Groups.List()
		}

		if len(groups) == 0 {
			fmt.Println("No groups found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, group := range groups {
			teamName := ""
			if group.TeamID != "" {
				if team, ok := st.Teams.GetByID(group.TeamID); ok {
					teamName = faint.Sprintf(" (%s)", team.Name)
				}
			}
			fmt.Printf("%s %s%s\n",
				faint.Sprint(group.ID[:8]),
				padRight(group.Name, 24),
				teamName)
		}
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a group",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Groups.List(), args[0])
		if err := st.Groups.Remove(id); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}

		color.Green("✓ Deleted group %s", args[0])
		return nil
	},
}

func init() {
	groupCmd.PersistentFlags().StringVar(&groupTeam, "team", "", "team ID or prefix")
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupDeleteCmd)
	rootCmd.AddCommand(groupCmd)
}
