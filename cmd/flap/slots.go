package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/storage"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show the save slots",
	Args:  cobra.NoArgs,
	RunE:  runSlots,
}

func runSlots(cmd *cobra.Command, args []string) error {
	slots, err := openSlots()
	if err != nil {
		return err
	}

	profiles, err := slots.List()
	if err != nil {
		logger.Warn("some slots could not be read", "error", err)
	}

	fmt.Printf("Save slots (%s)\n\n", slots.Dir())
	fmt.Printf("  %-4s  %-10s  %6s  %6s  %7s  %8s  %s\n", "Slot", "Name", "Best", "Games", "Avg", "Longest", "Last played")
	fmt.Printf("  %-4s  %-10s  %6s  %6s  %7s  %8s  %s\n", "----", "----", "----", "-----", "---", "-------", "-----------")
	for _, p := range profiles {
		if !p.Played() {
			fmt.Printf("  %-4d  %-10s  %6s\n", p.Slot, p.Name, "empty")
			continue
		}
		last := "-"
		if p.LastMode != "" {
			last = fmt.Sprintf("%s / %s", p.LastMode, p.LastDifficulty)
		}
		fmt.Printf("  %-4d  %-10s  %6d  %6d  %7.2f  %7.1fs  %s\n",
			p.Slot, p.Name, p.HighScore, p.TotalGames, p.AverageScore, p.LongestSurvival, last)
	}

	if board := storage.Leaderboard(profiles); len(board) > 0 {
		fmt.Println()
		fmt.Printf("Top slot: %s with %d\n", board[0].Name, board[0].HighScore)
	}
	return nil
}
