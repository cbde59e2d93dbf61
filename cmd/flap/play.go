package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/nav"
	"github.com/vovakirdan/tui-flap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the main menu.

Controls:
  Enter/Space    - Confirm
  1-3            - Pick a slot, mode, difficulty or theme
  Alt+1-3 / !@#  - Delete a save slot
  Space/Up/W     - Flap
  Esc/B          - Back
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Examples:
  flap play
  flap play --seed 7 --fps 30
  flap play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	slots, err := openSlots()
	if err != nil {
		return err
	}

	opts := []nav.Option{nav.WithLogger(logger)}
	history, err := openHistory()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		defer history.Close()
		opts = append(opts, nav.WithHistory(history))
	}
	if settings.Seed != 0 {
		seed := settings.Seed
		opts = append(opts, nav.WithSeed(func() int64 { return seed }))
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
		Seed:     settings.Seed,
	}

	logs := redirectLogs()
	defer logs.Close()

	logger.Info("session started", "saves", slots.Dir(), "fps", cfg.TickRate)
	machine := nav.New(rules, slots, opts...)
	return tui.Run(machine, slots, cfg, logger)
}
