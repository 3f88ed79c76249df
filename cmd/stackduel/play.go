package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stackduel/internal/config"
	"github.com/vovakirdan/stackduel/internal/core"
	"github.com/vovakirdan/stackduel/internal/games/stackduel"
	"github.com/vovakirdan/stackduel/internal/platform/tui"
	"github.com/vovakirdan/stackduel/internal/registry"
	"github.com/vovakirdan/stackduel/internal/storage"
)

var flagNoBell bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: stackduel).

Controls:
  WASD/Arrows  - Move cursor
  Space/X      - Swap the two blocks under the cursor
  R            - Hold to raise your stack faster
  P            - Pause
  Enter/N      - Restart (after game over)
  Esc/B        - Back (when paused or over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - CPU reacts slowly
  normal - Balanced CPU
  hard   - CPU reacts fast
  fixed  - Stack never speeds up

Without --difficulty a selector is shown before the match.

Examples:
  stackduel play
  stackduel play stackduel_timeattack
  stackduel play --difficulty hard
  stackduel play --config ./my-stackduel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom stackduel config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Disable the terminal bell")
	}
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags validates and applies --config and --difficulty.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}
	if _, err := config.LoadStackDuel(flagConfig); err != nil {
		return err
	}
	stackduel.SetConfigPath(flagConfig)
	stackduel.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the scores database. Matches still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func newAudio() *tui.BellAudio {
	if flagNoBell {
		return nil
	}
	return tui.NewBellAudio(os.Stderr)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "stackduel"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stackduel list' to see available modes.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty == "" {
		preset, selErr := tui.RunDifficultySelector(game.Title(), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if preset == "" {
			return
		}
		if err := setGameDifficulty(game, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore()
	audio := newAudio()

	var runErr error
	if audio != nil {
		_, runErr = tui.Run(game, store, cfg, audio)
		audio.Close()
	} else {
		_, runErr = tui.Run(game, store, cfg, nil)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func setGameDifficulty(game registry.Game, preset config.DifficultyPreset) error {
	g, ok := game.(*stackduel.Game)
	if !ok {
		return nil
	}
	return g.SetDifficulty(string(preset))
}
