// Package selfplay runs headless duels where planners drive both sides. It is
// used to balance settings and to catch engine regressions. Every tick each
// grid is checked for blocks owning two cells, and violations are counted per
// match.
package selfplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/stackduel/internal/games/stackduel/engine"
)

// DefaultMaxDuration caps matches that have no time limit.
const DefaultMaxDuration = 10 * time.Minute

// ctxCheckTicks is how often a running match polls for cancellation.
const ctxCheckTicks = 600

// Config describes a batch of simulated matches.
type Config struct {
	Matches   int
	Workers   int           // Zero or less runs one match at a time
	Seed      int64         // Match i uses Seed+i
	TimeLimit time.Duration // Per-match limit; zero plays until a top-out or DefaultMaxDuration
	TickRate  int           // Simulation rate; zero means 60
	Settings  engine.Settings
	Logger    *log.Logger
}

// Result is one simulated match. Field tags define the Parquet schema.
type Result struct {
	Match         int32  `parquet:"match"`
	Seed          int64  `parquet:"seed"`
	Winner        string `parquet:"winner,dict"` // "human", "cpu" or empty
	Ticks         int64  `parquet:"ticks"`
	DurationMS    int64  `parquet:"duration_ms"`
	HumanScore    int32  `parquet:"human_score"`
	CPUScore      int32  `parquet:"cpu_score"`
	HumanMaxCombo int32  `parquet:"human_max_combo"`
	CPUMaxCombo   int32  `parquet:"cpu_max_combo"`
	HumanSent     int32  `parquet:"human_sent"`
	CPUSent       int32  `parquet:"cpu_sent"`
	Clears        int32  `parquet:"clears"`
	Raises        int32  `parquet:"raises"`
	Violations    int32  `parquet:"violations"`
}

// Duration returns the simulated match length.
func (r Result) Duration() time.Duration {
	return time.Duration(r.DurationMS) * time.Millisecond
}

// Run plays cfg.Matches duels on up to cfg.Workers goroutines. Results are
// indexed by match number, so the output does not depend on scheduling.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Matches <= 0 {
		return nil, errors.New("selfplay: matches must be positive")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, cfg.Matches)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i := range cfg.Matches {
		g.Go(func() error {
			r, err := Play(ctx, cfg, i)
			if err != nil {
				return fmt.Errorf("selfplay: match %d: %w", i, err)
			}
			results[i] = r
			logger.Debug("match finished", "match", i, "winner", r.Winner, "duration", r.Duration())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Play simulates match number i of cfg.
func Play(ctx context.Context, cfg Config, i int) (Result, error) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := time.Second / time.Duration(rate)

	seed := cfg.Seed + int64(i)
	duel := engine.NewDuel(engine.Options{
		Settings:  cfg.Settings,
		Seed:      seed,
		Autoplay:  true,
		TimeLimit: cfg.TimeLimit,
		Logger:    cfg.Logger,
	})

	limit := cfg.TimeLimit
	if limit <= 0 {
		limit = DefaultMaxDuration
	}

	r := Result{Match: int32(i), Seed: seed}
	for !duel.Over() && duel.Elapsed() < limit {
		if r.Ticks%ctxCheckTicks == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		res := duel.Tick(dt)
		r.Ticks++
		r.Clears += int32(len(res.Clears))
		for _, raised := range res.Raised {
			if raised {
				r.Raises++
			}
		}
		for s := range engine.NumSides {
			if err := duel.Board(engine.Side(s)).Grid().CheckOwnership(); err != nil {
				r.Violations++
			}
		}
	}

	human, cpu := duel.Board(engine.SideHuman), duel.Board(engine.SideCPU)
	r.DurationMS = duel.Elapsed().Milliseconds()
	r.HumanScore = int32(human.Score())
	r.CPUScore = int32(cpu.Score())
	r.HumanMaxCombo = int32(human.MaxCombo())
	r.CPUMaxCombo = int32(cpu.MaxCombo())
	r.HumanSent = int32(duel.Sent(engine.SideHuman))
	r.CPUSent = int32(duel.Sent(engine.SideCPU))
	if winner, ok := duel.Winner(); ok {
		r.Winner = winner.String()
	}
	return r, nil
}

// Stats aggregates a batch of results.
type Stats struct {
	Matches     int
	HumanWins   int
	CPUWins     int
	Undecided   int
	AvgDuration time.Duration
	AvgScore    float64
	MaxCombo    int
	Violations  int
}

// Summarize aggregates results.
func Summarize(results []Result) Stats {
	st := Stats{Matches: len(results)}
	if len(results) == 0 {
		return st
	}

	var total time.Duration
	var score int64
	for _, r := range results {
		switch r.Winner {
		case engine.SideHuman.String():
			st.HumanWins++
		case engine.SideCPU.String():
			st.CPUWins++
		default:
			st.Undecided++
		}
		total += r.Duration()
		score += int64(r.HumanScore) + int64(r.CPUScore)
		st.MaxCombo = max(st.MaxCombo, int(r.HumanMaxCombo), int(r.CPUMaxCombo))
		st.Violations += int(r.Violations)
	}
	st.AvgDuration = total / time.Duration(len(results))
	st.AvgScore = float64(score) / float64(2*len(results))
	return st
}
