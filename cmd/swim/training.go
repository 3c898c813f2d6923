// ABOUTME: CLI commands for training plans and their exercises.
// ABOUTME: Mirrors the workout-style subcommand layout: add, list, show, exercise.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/models"
	"github.com/spf13/cobra"
)

var (
	trainingInterval string
	trainingEffort   string
	trainingSwimmer  string
	trainingGroup    string
)

var trainingCmd = &cobra.Command{
	Use:     "training",
	Aliases: []string{"tr"},
	Short:   "Manage training plans",
	Long: `Manage training plans built from exercises.

Each exercise names a stroke, a distance, a number of sets, and either an
interval (e.g. 1:45) or an effort percentage (e.g. 80%).

EXAMPLES:

  swim training add "Tuesday set"                         # Create a plan
  swim training exercise abc123 Freestyle 100m 4 --interval 1:45
  swim training exercise abc123 Butterfly 50m 8 --effort 90%
  swim training show abc123                               # View a plan
  swim training assign abc123 --swimmer Ana               # Assign to a swimmer
  swim training delete abc123                             # Delete a plan`,
}

var trainingAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a training plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := st.Trainings.Add(&models.Training{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to add training: %w", err)
		}

		color.Green("✓ Added training %s", tr.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(tr.ID[:8]))
		return nil
	},
}

var trainingListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List training plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		trainings := st.Trainings.List()
		if len(trainings) == 0 {
			fmt.Println("No trainings found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, tr := range trainings {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(tr.ID[:8]),
				padRight(tr.Name, 24),
				faint.Sprintf("%d exercises", len(tr.Exercises)))
		}
		return nil
	},
}

var trainingShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a training plan with its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Trainings.List(), args[0])
		tr, ok := st.Trainings.GetByID(id)
		if !ok {
			return fmt.Errorf("training not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", faint.Sprint(tr.ID[:8]), color.New(color.Bold).Sprint(tr.Name))
		if len(tr.Exercises) == 0 {
			fmt.Println("  No exercises yet.")
			return nil
		}

		for _, ex := range tr.Exercises {
			strokeName := ex.StrokeID
			if stroke, ok := st.Strokes.GetByID(ex.StrokeID); ok {
				strokeName = stroke.Name
			}
			detail := ex.Interval
			if ex.Mode == models.ModeEffort {
				detail = ex.Effort
			}
			fmt.Printf("  %dx %s %s @ %s %s\n",
				ex.Sets, ex.Distance, strokeName, detail, faint.Sprint(ex.ID[:8]))
		}
		return nil
	},
}

var trainingExerciseCmd = &cobra.Command{
	Use:   "exercise <training-id> <stroke> <distance> <sets>",
	Short: "Add an exercise to a training plan",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		stroke, ok := st.Strokes.ByName(args[1])
		if !ok {
			return fmt.Errorf("stroke not found: %s", args[1])
		}
		sets, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid set count: %s", args[3])
		}

		ex := &models.Exercise{
			StrokeID: stroke.ID,
			Distance: args[2],
			Sets:     sets,
		}
		switch {
		case trainingInterval != "":
			ex.Mode = models.ModeInterval
			ex.Interval = trainingInterval
		case trainingEffort != "":
			ex.Mode = models.ModeEffort
			ex.Effort = trainingEffort
		default:
			return fmt.Errorf("provide --interval or --effort")
		}

		id := resolveID(st.Trainings.List(), args[0])
		tr, err := st.Trainings.AddExercise(id, ex)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added exercise to %s", tr.Name)
		return nil
	},
}

var trainingAssignCmd = &cobra.Command{
	Use:   "assign <id>",
	Short: "Assign a training plan to swimmers or groups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trainingSwimmer == "" && trainingGroup == "" {
			return fmt.Errorf("provide --swimmer or --group")
		}

		var swimmerID, groupID string
		if trainingSwimmer != "" {
			sw, ok := st.Swimmers.ByName(trainingSwimmer)
			if !ok {
				return fmt.Errorf("swimmer not found: %s", trainingSwimmer)
			}
			swimmerID = sw.ID
		}
		if trainingGroup != "" {
			groupID = resolveID(st.Groups.List(), trainingGroup)
			if _, ok := st.Groups.GetByID(groupID); !ok {
				return fmt.Errorf("group not found: %s", trainingGroup)
			}
		}

		id := resolveID(st.Trainings.List(), args[0])
		tr, err := st.Trainings.Update(id, func(tr *models.Training) {
			if swimmerID != "" {
				tr.SwimmerIDs = appendUnique(tr.SwimmerIDs, swimmerID)
			}
			if groupID != "" {
				tr.GroupIDs = appendUnique(tr.GroupIDs, groupID)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to assign training: %w", err)
		}

		color.Green("✓ Assigned %s", tr.Name)
		return nil
	},
}

var trainingDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a training plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Trainings.List(), args[0])
		if err := st.Trainings.Remove(id); err != nil {
			return fmt.Errorf("failed to delete training: %w", err)
		}

		color.Green("✓ Deleted training %s", args[0])
		return nil
	},
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func init() {
	trainingExerciseCmd.Flags().StringVar(&trainingInterval, "interval", "", "interval (e.g. 1:45)")
	trainingExerciseCmd.Flags().StringVar(&trainingEffort, "effort", "", "effort percentage (e.g. 80%)")
	trainingAssignCmd.Flags().StringVar(&trainingSwimmer, "swimmer", "", "swimmer name")
	trainingAssignCmd.Flags().StringVar(&trainingGroup, "group", "", "group ID or prefix")

	trainingCmd.AddCommand(trainingAddCmd)
	trainingCmd.AddCommand(trainingListCmd)
	trainingCmd.AddCommand(trainingShowCmd)
	trainingCmd.AddCommand(trainingExerciseCmd)
	trainingCmd.AddCommand(trainingAssignCmd)
	trainingCmd.AddCommand(trainingDeleteCmd)
	rootCmd.AddCommand(trainingCmd)
}
