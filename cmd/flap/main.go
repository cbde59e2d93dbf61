// flap is a terminal flappy-style arcade game with three save slots.
//
// Usage:
//
//	flap                  - Play (same as "flap play")
//	flap slots            - Show the save slots
//	flap scores [slot]    - Show run history and best runs
//	flap board            - Browse run history interactively
//	flap reset <slot>     - Wipe a save slot and its history
//	flap config           - Print the effective rules table
//	flap simulate         - Fly a headless run with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - Obstacle seed for reproducible runs
//	--saves <dir>         - Save slot directory (default: ~/.flap/saves)
//	--db <path>           - Run history database (default: ~/.flap/history.db)
//	--config <path>       - Custom rules YAML
//	--log-level <level>   - debug, info, warn or error
//
// Every global flag can also be set through its FLAP_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/config"
)

var (
	flagFPS      int
	flagSeed     int64
	flagSaveDir  string
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// settings holds the flags merged over the FLAP_* environment.
var settings config.Env

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flap",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flap",
	Short: "Flap - thread the gaps in your terminal",
	Long: `Flap is a one-button arcade game for the terminal. Pick a save slot,
a mode and a difficulty, then keep the bird between the columns.

Modes:
  Endless      - fly until you crash
  TimeAttack   - score as much as you can before the clock runs out
  Checkpoints  - every few columns your progress is kept for the next run

Examples:
  flap
  flap --seed 42
  flap scores 1
  flap simulate --mode timeattack --difficulty hard`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveSettings,
	RunE:              runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Obstacle seed (0 = random per run)")
	pf.StringVar(&flagSaveDir, "saves", "~/.flap/saves", "Save slot directory")
	pf.StringVar(&flagDBPath, "db", "~/.flap/history.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// resolveSettings reads FLAP_* variables and lets explicit flags win.
func resolveSettings(cmd *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		env.FPS = flagFPS
	}
	if flags.Changed("seed") {
		env.Seed = flagSeed
	}
	if flags.Changed("saves") {
		env.SaveDir = flagSaveDir
	}
	if flags.Changed("db") {
		env.DBPath = flagDBPath
	}
	if flags.Changed("config") {
		env.ConfigPath = flagConfig
	}
	if flags.Changed("log-level") {
		env.LogLevel = flagLogLevel
	}

	if env.FPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", env.FPS)
	}
	level, err := log.ParseLevel(env.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", env.LogLevel, err)
	}
	logger.SetLevel(level)

	settings = env
	return nil
}
