package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/game"
)

var (
	flagSimMode       string
	flagSimDifficulty string
	flagSimMaxTime    float64
	flagSimPlot       bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fly a headless run with the autopilot",
	Long: `Run the simulator without a terminal UI. A simple autopilot aims for
the centre of the next gap. Useful for checking a custom rules table.

Examples:
  flap simulate
  flap simulate --mode checkpoints --difficulty hard --seed 42
  flap simulate --config ./my-rules.yaml --max-time 120`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "endless", "Mode: endless, timeattack, checkpoints")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
	simulateCmd.Flags().Float64Var(&flagSimMaxTime, "max-time", 60, "Stop after this many simulated seconds")
	simulateCmd.Flags().BoolVar(&flagSimPlot, "plot", true, "Plot the altitude trace")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	mode, err := config.ParseMode(flagSimMode)
	if err != nil {
		return err
	}
	difficulty, err := config.ParseDifficulty(flagSimDifficulty)
	if err != nil {
		return err
	}
	if flagSimMaxTime <= 0 {
		return fmt.Errorf("--max-time must be positive, got %v", flagSimMaxTime)
	}
	rules, err := loadRules()
	if err != nil {
		return err
	}

	seed := settings.Seed
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			return err
		}
	}

	run, err := game.Start(rules, mode, difficulty, nil, seed)
	if err != nil {
		return err
	}
	pilot := game.NewAutopilot(rules.Tuning(difficulty))

	dt := 1 / float32(settings.FPS)
	sampleEvery := max(settings.FPS/10, 1)

	var (
		altitude []float64
		flaps    int
		outcome  *game.Outcome
	)
	for i := 0; ; i++ {
		snap := run.Snapshot()
		if float64(snap.Elapsed) >= flagSimMaxTime {
			break
		}
		if i%sampleEvery == 0 {
			altitude = append(altitude, float64(snap.Y))
		}

		var intents []core.Intent
		if pilot.ShouldFlap(snap) {
			intents = append(intents, core.Flap())
			flaps++
		}
		if outcome = run.Tick(dt, intents); outcome != nil {
			break
		}
	}

	logger.Debug("simulation finished", "seed", seed, "ticks", len(altitude)*sampleEvery)

	fmt.Printf("Simulated %s / %s (seed %d, %d fps)\n\n", mode, difficulty, seed, settings.FPS)
	if outcome != nil {
		fmt.Printf("  Outcome   %s\n", outcome.Reason)
	} else {
		fmt.Printf("  Outcome   still flying after %.0fs\n", flagSimMaxTime)
	}
	fmt.Printf("  Score     %d\n", run.Score())
	fmt.Printf("  Elapsed   %.2fs\n", run.Elapsed())
	fmt.Printf("  Flaps     %d\n", flaps)
	if cp := run.Checkpoint(); cp != nil {
		fmt.Printf("  Checkpoint at %d (obstacle %d)\n", cp.Score, cp.Obstacle)
	}

	if flagSimPlot && len(altitude) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(altitude,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("altitude"),
		))
	}
	return nil
}
