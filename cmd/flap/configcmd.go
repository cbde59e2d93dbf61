package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flap/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules table as YAML",
	Long: `Print the rules table the game would use, after the search order
--config, ~/.flap/configs/flap.yaml, ./configs/flap.yaml, built-in defaults.

Examples:
  flap config > my-rules.yaml
  flap config --default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagConfigDefault {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	rules, source, err := config.Load(settings.ConfigPath)
	if err != nil {
		return err
	}
	out, err := config.Marshal(rules)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	for _, w := range rules.Warnings() {
		fmt.Printf("# warning: %s\n", w)
	}
	fmt.Print(string(out))
	return nil
}
