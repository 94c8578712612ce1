package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Going back from a paused or finished game returns to the menu.

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		backToMenu, err := tui.Run(game, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
