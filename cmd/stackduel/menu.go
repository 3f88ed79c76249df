package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackduel/internal/config"
	"github.com/vovakirdan/stackduel/internal/platform/tui"
	"github.com/vovakirdan/stackduel/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Stack Duel with a mode picker menu",
	Long: `Start Stack Duel in interactive menu mode.

Pick a mode, then a difficulty. After a match you return to the menu.

Controls:
  Up/Down/W/S  - Navigate menu
  Enter        - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  stackduel menu
  stackduel menu --fps 30
  stackduel menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	audio := newAudio()
	if audio != nil {
		defer audio.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "error", err)
			continue
		}

		preset := config.DifficultyPreset(flagDifficulty)
		if preset == "" {
			preset, err = tui.RunDifficultySelector(game.Title(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			// Back to the mode list
			if preset == "" {
				continue
			}
		}
		if err := setGameDifficulty(game, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		var backToMenu bool
		if audio != nil {
			backToMenu, err = tui.Run(game, store, cfg, audio)
		} else {
			backToMenu, err = tui.Run(game, store, cfg, nil)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
