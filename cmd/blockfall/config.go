package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	flagPreset   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

Lookup order:
  1. --config path
  2. ~/.blockfall/configs/blockfall.yaml
  3. ./configs/blockfall.yaml
  4. built-in defaults

Examples:
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall config --preset instant
  blockfall config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagPreset, "preset", "standard", "Preset to apply: standard, instant")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults and ignore config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}

	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
