package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackduel/internal/config"
	"github.com/vovakirdan/stackduel/internal/games/stackduel"
	"github.com/vovakirdan/stackduel/internal/selfplay"
)

var (
	flagMatches int
	flagSeconds int
	flagWorkers int
	flagExport  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless CPU vs CPU duels",
	Long: `Run duels where the CPU planner drives both sides, without a terminal.

Every tick both grids are checked for blocks owning more than one cell;
violations are reported per match. Results can be exported to Parquet for
balancing work.

Examples:
  stackduel simulate
  stackduel simulate --matches 200 --seconds 120 --workers 8
  stackduel simulate --difficulty hard --export ./out/hard.parquet
  stackduel simulate --seed 42 --matches 1 --log-level debug`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMatches, "matches", 20, "Number of duels to play")
	simulateCmd.Flags().IntVar(&flagSeconds, "seconds", 180, "Per-duel time limit in seconds (0 = play until a top-out)")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Duels played in parallel")
	simulateCmd.Flags().StringVar(&flagExport, "export", "", "Write per-match results to this Parquet file")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom stackduel config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadStackDuel(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyStackDuelPreset(&cfg, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := selfplay.Run(ctx, selfplay.Config{
		Matches:   flagMatches,
		Workers:   flagWorkers,
		Seed:      seed,
		TimeLimit: time.Duration(flagSeconds) * time.Second,
		TickRate:  flagFPS,
		Settings:  stackduel.SettingsFromConfig(cfg),
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "matches", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	st := selfplay.Summarize(results)
	printStats(st, seed)

	if flagExport != "" {
		if err := selfplay.WriteParquet(flagExport, results); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(results), flagExport)
	}

	if st.Violations > 0 {
		return fmt.Errorf("%d grid ownership violations", st.Violations)
	}
	return nil
}

func printStats(st selfplay.Stats, seed int64) {
	fmt.Printf("Simulated %d duels (seed %d)\n", st.Matches, seed)
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Side A wins", st.HumanWins)
	fmt.Printf("  %-14s %d\n", "Side B wins", st.CPUWins)
	fmt.Printf("  %-14s %d\n", "Time ups", st.Undecided)
	fmt.Printf("  %-14s %s\n", "Avg duration", st.AvgDuration.Round(time.Second))
	fmt.Printf("  %-14s %.1f\n", "Avg score", st.AvgScore)
	fmt.Printf("  %-14s x%d\n", "Best combo", st.MaxCombo)
	fmt.Printf("  %-14s %d\n", "Violations", st.Violations)
}
