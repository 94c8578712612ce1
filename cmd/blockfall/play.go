package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: blockfall).

Controls:
  Left/Right, A/D  - Shift piece
  Down, S          - Soft drop
  Space            - Hard drop
  Up, X, W         - Rotate clockwise
  Z                - Rotate counter-clockwise
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to menu (paused or game over)
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play blockfall_instant
  blockfall play --config ./my-blockfall.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := blockfall.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'blockfall list' to see variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	backToMenu, err := tui.Run(game, runtimeConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if backToMenu {
		return runMenu(nil, nil)
	}
	return nil
}
