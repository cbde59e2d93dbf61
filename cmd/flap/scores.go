package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [slot]",
	Short: "Show run history",
	Long: `Without a slot, show the best runs across all slots.
With a slot, show its recent runs, aggregate stats and a score trend.

Examples:
  flap scores
  flap scores 2 --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 20, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	history, err := openHistory()
	if err != nil {
		return err
	}
	defer history.Close()

	if len(args) == 0 {
		runs, err := history.TopRuns(flagScoresLimit)
		if err != nil {
			return err
		}
		fmt.Println("Best runs")
		fmt.Println()
		printRuns(runs, true)
		return nil
	}

	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	stats, err := history.SlotStats(slot)
	if err != nil {
		return err
	}
	runs, err := history.RecentRuns(slot, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Slot %d\n\n", slot)
	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flap' and pick this slot to set the first score!")
		return nil
	}
	fmt.Printf("  Runs %d   Best %d   Avg %.2f   Longest %.1fs   Last %s\n\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.LongestRun,
		stats.LastPlayed.Format("2006-01-02 15:04"))
	printRuns(runs, false)

	if len(runs) >= 2 {
		// Oldest first, left to right.
		data := make([]float64, len(runs))
		for i, r := range runs {
			data[len(runs)-1-i] = float64(r.Score)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("score, last %d runs", len(runs))),
		))
	}
	return nil
}

func printRuns(runs []storage.RunRecord, withSlot bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-4s  %6s  %-11s  %-6s  %-8s  %7s  %s\n", "#", "Slot", "Score", "Mode", "Diff", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-4s  %6s  %-11s  %-6s  %-8s  %7s  %s\n", "--", "----", "-----", "----", "----", "-------", "----", "----")
	for i, r := range runs {
		slot := "-"
		if withSlot {
			slot = fmt.Sprintf("%d", r.Slot)
		}
		fmt.Printf("  %-4d  %-4s  %6d  %-11s  %-6s  %-8s  %6.1fs  %s\n",
			i+1, slot, r.Score, r.Mode, r.Difficulty, r.Outcome, r.Elapsed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
