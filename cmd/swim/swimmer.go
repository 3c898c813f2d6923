// ABOUTME: CLI commands for managing the swimmer roster.
// ABOUTME: Supports add, list with filters, team/group membership, and delete.
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/models"
	"github.com/spf13/cobra"
)

var (
	swimmerBirthDate string
	swimmerTeam      string
	swimmerGroup     string
)

var swimmerCmd = &cobra.Command{
	Use:     "swimmer",
	Aliases: []string{"sw"},
	Short:   "Manage swimmers",
	Long: `Manage the swimmer roster.

EXAMPLES:

  swim swimmer add "Ana"                      # Add a swimmer
  swim swimmer add "Ben" --birthdate 2010-04-12 --team abc123
  swim swimmer list                           # List the roster
  swim swimmer list --team abc123             # Filter by team
  swim swimmer show abc123                    # Details and memberships
  swim swimmer join abc123 --group def456     # Add a group membership
  swim swimmer delete abc123                  # Delete a swimmer`,
}

var swimmerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a swimmer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sw := &models.Swimmer{
			Name:      args[0],
			BirthDate: swimmerBirthDate,
		}
		if swimmerTeam != "" {
			teamID := resolveID(st.Teams.List(), swimmerTeam)
			if _, ok := st.Teams.GetByID(teamID); !ok {
				return fmt.Errorf("team not found: %s", swimmerTeam)
			}
			sw.TeamIDs = []string{teamID}
		}
		if swimmerGroup != "" {
			groupID := resolveID(st.Groups.List(), swimmerGroup)
			if _, ok := st.Groups.GetByID(groupID); !ok {
				return fmt.Errorf("group not found: %s", swimmerGroup)
			}
			sw.GroupIDs = []string{groupID}
		}

		added, err := st.Swimmers.Add(sw)
		if err != nil {
			return fmt.Errorf("failed to add swimmer: %w", err)
		}

		color.Green("✓ Added swimmer %s", added.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(added.ID[:8]))
		return nil
	},
}

var swimmerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List swimmers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var swimmers []*models.Swimmer
		switch {
		case swimmerTeam != "":
			swimmers = st.Swimmers.ByTeam(resolveID(st.Teams.List(), swimmerTeam))
		case swimmerGroup != "":
			swimmers = st.Swimmers.ByGroup(resolveID(st.Groups.List(), swimmerGroup))
		default:
			swimmers = st.Swimmers.List()
		}

		if len(swimmers) == 0 {
			fmt.Println("No swimmers found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, sw := range swimmers {
			var details []string
			if sw.BirthDate != "" {
				details = append(details, sw.BirthDate)
			}
			if n := len(st.Times.BySwimmer(sw.ID)); n > 0 {
				details = append(details, fmt.Sprintf("%d times", n))
			}
			suffix := ""
			if len(details) > 0 {
				suffix = faint.Sprintf(" (%s)", strings.Join(details, ", "))
			}
			fmt.Printf("%s %s%s\n",
				faint.Sprint(sw.ID[:8]),
				padRight(sw.Name, 24),
				suffix)
		}
		return nil
	},
}

var swimmerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a swimmer's details and memberships",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Swimmers.List(), args[0])
		sw, ok := st.Swimmers.GetByID(id)
		if !ok {
			return fmt.Errorf("swimmer not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", faint.Sprint(sw.ID[:8]), color.New(color.Bold).Sprint(sw.Name))
		if sw.BirthDate != "" {
			fmt.Printf("  Born:   %s\n", sw.BirthDate)
		}
		// Dangling membership ids render as the raw id prefix.
		if len(sw.TeamIDs) > 0 {
			var names []string
			for _, tid := range sw.TeamIDs {
				if team, ok := st.Teams.GetByID(tid); ok {
					names = append(names, team.Name)
				} else {
					names = append(names, truncate(tid, 8))
				}
			}
			fmt.Printf("  Teams:  %s\n", strings.Join(names, ", "))
		}
		if len(sw.GroupIDs) > 0 {
			var names []string
			for _, gid := range sw.GroupIDs {
				if group, ok := st.Groups.GetByID(gid); ok {
					names = append(names, group.Name)
				} else {
					names = append(names, truncate(gid, 8))
				}
			}
			fmt.Printf("  Groups: %s\n", strings.Join(names, ", "))
		}
		if times := st.Times.BySwimmer(sw.ID); len(times) > 0 {
			fmt.Printf("  Times:  %d recorded\n", len(times))
		}
		return nil
	},
}

var swimmerJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Add a swimmer to a team or group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if swimmerTeam == "" && swimmerGroup == "" {
			return fmt.Errorf("provide --team or --group")
		}

		id := resolveID(st.Swimmers.List(), args[0])
		sw, err := st.Swimmers.Update(id, func(sw *models.Swimmer) {
			if swimmerTeam != "" {
				teamID := resolveID(st.Teams.List(), swimmerTeam)
				if !slices.Contains(sw.TeamIDs, teamID) {
					sw.TeamIDs = append(sw.TeamIDs, teamID)
				}
			}
			if swimmerGroup != "" {
				groupID := resolveID(st.Groups.List(), swimmerGroup)
				if !slices.Contains(sw.GroupIDs, groupID) {
					sw.GroupIDs = append(sw.GroupIDs, groupID)
				}
			}
		})
		if err != nil {
			return fmt.Errorf("failed to update swimmer: %w", err)
		}

		color.Green("✓ Updated memberships for %s", sw.Name)
		return nil
	},
}

var swimmerDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a swimmer",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Swimmers.List(), args[0])
		if err := st.Swimmers.Remove(id); err != nil {
			return fmt.Errorf("failed to delete swimmer: %w", err)
		}

		color.Green("✓ Deleted swimmer %s", args[0])
		return nil
	},
}

func init() {
	swimmerCmd.PersistentFlags().StringVar(&swimmerTeam, "team", "", "team ID or prefix")
	swimmerCmd.PersistentFlags().StringVar(&swimmerGroup, "group", "", "group ID or prefix")
	swimmerAddCmd.Flags().StringVar(&swimmerBirthDate, "birthdate", "", "birth date (YYYY-MM-DD)")

	swimmerCmd.AddCommand(swimmerAddCmd)
	swimmerCmd.AddCommand(swimmerListCmd)
	swimmerCmd.AddCommand(swimmerShowCmd)
	swimmerCmd.AddCommand(swimmerJoinCmd)
	swimmerCmd.AddCommand(swimmerDeleteCmd)
	rootCmd.AddCommand(swimmerCmd)
}
