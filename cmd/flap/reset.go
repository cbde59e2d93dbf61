package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <slot>",
	Short: "Wipe a save slot and its run history",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	slots, err := openSlots()
	if err != nil {
		return err
	}
	if err := slots.Delete(slot); err != nil {
		return err
	}

	history, err := openHistory()
	if err != nil {
		logger.Warn("could not open run history, it was left as is", "error", err)
	} else {
		defer history.Close()
		if err := history.ClearSlot(slot); err != nil {
			return err
		}
	}

	logger.Info("slot reset", "slot", slot)
	fmt.Printf("Slot %d reset.\n", slot)
	return nil
}
