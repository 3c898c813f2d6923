// ABOUTME: CLI commands for the flat quick log.
// ABOUTME: The v1 feature: free-form entries with computed result times.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logEffort string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Quick flat swim log",
	Long: `Quick flat swim log.

This is the original free-form log: each entry records a name, stroke,
distance, effort percentage, and best time, and computes the target result
time. Entries are kept as-is; the one-time migration builds swimmers and
times from them without touching the log.

EXAMPLES:

  swim log add Ana Freestyle 100m 1:00.500              # 80% effort default
  swim log add Ana Freestyle 100m 1:00.500 --effort 90%
  swim log list                                         # Show the log
  swim log clear                                        # Delete all entries`,
}

var logAddCmd = &cobra.Command{
	Use:   "add <name> <stroke> <distance> <best-time>",
	Short: "Add a log entry",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := st.Entries.Add(args[0], args[1], args[2], logEffort, args[3])
		if err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}

		color.Green("✓ Logged %s %s for %s", entry.Stroke, entry.Distance, entry.Name)
		fmt.Printf("  best %s → result %s at %s\n", entry.BestTime, entry.ResultTime, entry.Effort)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := st.Entries.List()
		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s %s best %s result %s\n",
				faint.Sprint(e.Timestamp),
				padRight(e.Name, 16),
				padRight(e.Stroke, 14),
				padRight(e.Distance, 6),
				e.BestTime,
				e.ResultTime)
		}
		return nil
	},
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will delete ALL log entries.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := st.Entries.Clear(); err != nil {
			return fmt.Errorf("failed to clear log: %w", err)
		}

		color.Green("✓ Log cleared")
		return nil
	},
}

func init() {
	logAddCmd.Flags().StringVar(&logEffort, "effort", "80%", "effort percentage")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logClearCmd)
	rootCmd.AddCommand(logCmd)
}
