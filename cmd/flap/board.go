package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse slots and run history interactively",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	slots, err := openSlots()
	if err != nil {
		return err
	}
	profiles, err := slots.List()
	if err != nil {
		logger.Warn("some slots could not be read", "error", err)
	}

	var history tui.RunHistory
	store, err := openHistory()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		defer store.Close()
		history = store
	}

	width, height := terminalSize()
	return tui.RunBoard(profiles, history, width, height)
}
