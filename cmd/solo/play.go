package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/solo-mission/internal/config"
	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/games/solo"
	"github.com/vovakirdan/solo-mission/internal/platform/tui"
	"github.com/vovakirdan/solo-mission/internal/registry"
	"github.com/vovakirdan/solo-mission/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDemo       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a run of the given variant, or pick one from a menu.

Controls:
  Left/Right, A/D  - Drag the ship
  Up/Down, W/S     - Drag vertically (solo_free only)
  Space            - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (after game over or while paused)
  Ctrl+S           - Save a screenshot to ~/.solo/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Opening pace, five lives
  normal - Default pace
  hard   - Faster opening, two lives
  fixed  - No progression, the opening pace never changes

Examples:
  solo play
  solo play solo --difficulty easy
  solo play solo_god --demo
  solo play solo --config ./my-solo.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot fly")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkDifficulty(flagDifficulty); err != nil {
		return err
	}
	configureGames(flagConfig, flagDifficulty, gameLogger())

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	} else {
		gameID, cfg, err = tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if gameID == "" {
			return nil
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'solo list' to see available variants)", err)
	}

	if flagDemo {
		if g, ok := game.(*solo.Game); ok {
			g.SetAutopilot(solo.NewAutopilot())
		}
	}

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// checkDifficulty rejects unknown preset names.
func checkDifficulty(name string) error {
	if name == "" {
		return nil
	}
	if config.ParsePreset(name) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return nil
}
