// stackduel is a two-sided block matching duel played in the terminal.
//
// Usage:
//
//	stackduel list              - List available modes
//	stackduel play [mode]       - Play a mode (default: stackduel)
//	stackduel menu              - Pick modes interactively
//	stackduel serve             - Start SSH server for remote play
//	stackduel scores <mode>     - Show high scores and recent duels
//	stackduel simulate          - Run headless CPU vs CPU duels
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.stackduel/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackduel/internal/games/stackduel"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Shared by play, menu and simulate
	flagConfig     string
	flagDifficulty string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stackduel",
	Short: "Stack Duel - a block matching duel in your terminal",
	Long: `Stack Duel is a falling-block matching puzzle played against a CPU
opponent. Swap adjacent blocks to line up three or more of a colour, chain
clears to send garbage across, and outlast the other stack.

Available commands:
  list      - Show all modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores and recent duels
  simulate  - Run CPU vs CPU duels headlessly

Examples:
  stackduel play
  stackduel play stackduel_timeattack --difficulty hard
  stackduel menu
  stackduel serve --ssh :2222
  stackduel simulate --matches 100 --export ./out/selfplay.parquet`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "stackduel",
		})
		stackduel.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stackduel/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
