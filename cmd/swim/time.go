// ABOUTME: CLI commands for recording and querying times.
// ABOUTME: Supports add, list with filters, best-time lookup, and delete.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/swim/internal/models"
	"github.com/harperreed/swim/internal/timeutil"
	"github.com/spf13/cobra"
)

var (
	timeDate    string
	timeSwimmer string
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Record and query times",
	Long: `Record and query times per swimmer, stroke, and distance.

Times are given as M:SS.mmm or SS.mmm (e.g. 1:02.350 or 58.900).
Swimmers and strokes are looked up by name, case-insensitively.

EXAMPLES:

  swim time add Ana Freestyle 100m 1:02.350    # Record a time
  swim time list --swimmer Ana                 # List a swimmer's times
  swim time best Ana Freestyle 100m            # Show the best time
  swim time delete abc123                      # Delete a time`,
}

var timeAddCmd = &cobra.Command{
	Use:   "add <swimmer> <stroke> <distance> <time>",
	Short: "Record a time",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, ok := st.Swimmers.ByName(args[0])
		if !ok {
			return fmt.Errorf("swimmer not found: %s", args[0])
		}
		stroke, ok := st.Strokes.ByName(args[1])
		if !ok {
			return fmt.Errorf("stroke not found: %s", args[1])
		}
		seconds, err := timeutil.ParseInput(args[3])
		if err != nil {
			return fmt.Errorf("invalid time: %s", args[3])
		}

		date := timeDate
		if date == "" {
			date = time.Now().Format(time.RFC3339)
		}

		tm, err := st.Times.Add(&models.Time{
			SwimmerID:   sw.ID,
			StrokeID:    stroke.ID,
			Distance:    args[2],
			TimeSeconds: seconds,
			Date:        date,
		})
		if err != nil {
			return fmt.Errorf("failed to add time: %w", err)
		}

		color.Green("✓ Recorded %s %s %s for %s", timeutil.FormatSeconds(seconds), stroke.Name, args[2], sw.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(tm.ID[:8]))
		return nil
	},
}

var timeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List times",
	RunE: func(cmd *cobra.Command, args []string) error {
		var times []*models.Time
		if timeSwimmer != "" {
			sw, ok := st.Swimmers.ByName(timeSwimmer)
			if !ok {
				return fmt.Errorf("swimmer not found: %s", timeSwimmer)
			}
			times = st.Times.BySwimmer(sw.ID)
		} else {
			times = st.Times.List()
		}

		if len(times) == 0 {
			fmt.Println("No times found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, tm := range times {
			swimmerName := tm.SwimmerID
			if sw, ok := st.Swimmers.GetByID(tm.SwimmerID); ok {
				swimmerName = sw.Name
			}
			strokeName := tm.StrokeID
			if stroke, ok := st.Strokes.GetByID(tm.StrokeID); ok {
				strokeName = stroke.Name
			}
			fmt.Printf("%s %s %s %s %s %s\n",
				faint.Sprint(tm.ID[:8]),
				padRight(swimmerName, 16),
				padRight(strokeName, 14),
				padRight(tm.Distance, 6),
				timeutil.FormatSeconds(tm.TimeSeconds),
				faint.Sprint(truncate(tm.Date, 10)))
		}
		return nil
	},
}

var timeBestCmd = &cobra.Command{
	Use:   "best <swimmer> <stroke> <distance>",
	Short: "Show a swimmer's best time",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, ok := st.Swimmers.ByName(args[0])
		if !ok {
			return fmt.Errorf("swimmer not found: %s", args[0])
		}
		stroke, ok := st.Strokes.ByName(args[1])
		if !ok {
			return fmt.Errorf("stroke not found: %s", args[1])
		}

		best, ok := st.Times.Best(sw.ID, stroke.ID, args[2])
		if !ok {
			fmt.Printf("No %s %s times for %s.\n", stroke.Name, args[2], sw.Name)
			return nil
		}

		fmt.Printf("%s %s %s: %s %s\n",
			sw.Name, stroke.Name, args[2],
			color.GreenString(timeutil.FormatSeconds(best.TimeSeconds)),
			color.New(color.Faint).Sprint(truncate(best.Date, 10)))
		return nil
	},
}

var timeDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a time",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveID(st.Times.List(), args[0])
		if err := st.Times.Remove(id); err != nil {
			return fmt.Errorf("failed to delete time: %w", err)
		}

		color.Green("✓ Deleted time %s", args[0])
		return nil
	},
}

func init() {
	timeAddCmd.Flags().StringVar(&timeDate, "date", "", "date of the swim (default: now)")
	timeListCmd.Flags().StringVar(&timeSwimmer, "swimmer", "", "filter by swimmer name")

	timeCmd.AddCommand(timeAddCmd)
	timeCmd.AddCommand(timeListCmd)
	timeCmd.AddCommand(timeBestCmd)
	timeCmd.AddCommand(timeDeleteCmd)
	rootCmd.AddCommand(timeCmd)
}
