// Package stackduel adapts the duel engine to the game platform. It
// registers two modes: a duel against the CPU and a solo time attack.
package stackduel

import (
	"cmp"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stackduel/internal/config"
	"github.com/vovakirdan/stackduel/internal/core"
	"github.com/vovakirdan/stackduel/internal/games/stackduel/engine"
	"github.com/vovakirdan/stackduel/internal/registry"
)

// Mode IDs.
const (
	IDVersus     = "stackduel"
	IDTimeAttack = "stackduel_timeattack"
)

// Mode selects the rules of a match.
type Mode int

const (
	ModeVersus Mode = iota
	ModeTimeAttack
)

// shakeDuration is how long a board shakes after a large garbage drop.
const shakeDuration = 200 * time.Millisecond

// shakeThreshold is the smallest chunk that shakes the receiving board.
const shakeThreshold = 4

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes engine diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for both modes.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.StackDuelConfig
	duel    *engine.Duel
	audio   engine.Audio
	preset  config.DifficultyPreset

	paused bool
	shake  [engine.NumSides]time.Duration
	ticks  int
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode, audio: engine.NopAudio{}}
}

// SetAudio sets the sound sink used from the next Reset on.
func (g *Game) SetAudio(a engine.Audio) {
	if a == nil {
		a = engine.NopAudio{}
	}
	g.audio = a
}

// SetDifficulty overrides the package-level preset for this game from the
// next Reset on. An empty name clears the override.
func (g *Game) SetDifficulty(name string) error {
	if name == "" {
		g.preset = ""
		return nil
	}
	p, err := config.ParseDifficulty(name)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimeAttack {
		return IDTimeAttack
	}
	return IDVersus
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimeAttack {
		return "Stack Duel: Time Attack"
	}
	return "Stack Duel"
}

// Reset starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadStackDuel(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultStackDuelConfig()
	}
	if preset := cmp.Or(g.preset, difficultyPreset); preset != "" {
		config.ApplyStackDuelPreset(&cfg, preset)
	}
	g.cfg = cfg

	opts := engine.Options{
		Settings: SettingsFromConfig(cfg),
		Seed:     runtime.Seed,
		Audio:    g.audio,
		Logger:   logger,
	}
	if g.mode == ModeTimeAttack {
		opts.Solo = true
		opts.TimeLimit = cfg.TimeLimit()
	}
	g.duel = engine.NewDuel(opts)

	g.paused = false
	g.shake = [engine.NumSides]time.Duration{}
	g.ticks = 0
}

// SettingsFromConfig converts a loaded configuration to engine settings.
func SettingsFromConfig(cfg config.StackDuelConfig) engine.Settings {
	s := engine.Settings{
		FallRate:         cfg.Timing.FallRate,
		ClearDuration:    time.Duration(cfg.Timing.ClearMS) * time.Millisecond,
		RaiseInterval:    time.Duration(cfg.Timing.RaiseIntervalMS) * time.Millisecond,
		ManualRaiseRate:  cfg.Timing.ManualRaiseRate,
		GarbageHold:      time.Duration(cfg.Garbage.HoldMS) * time.Millisecond,
		GarbageDropDelay: time.Duration(cfg.Garbage.DropDelayMS) * time.Millisecond,
		ReactionTime:     cfg.Reaction(),
	}
	if cfg.Difficulty.Enabled {
		for _, step := range cfg.Difficulty.Steps {
			s.SpeedSteps = append(s.SpeedSteps, engine.SpeedStep{
				Score:    step.Score,
				Interval: time.Duration(step.IntervalMS) * time.Millisecond,
			})
		}
	}
	return s
}

// Step applies one tick of input and advances the duel.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.duel == nil || g.duel.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	dt := g.runtime.TickDuration()
	res := g.duel.Tick(dt)
	g.ticks++

	for s := range g.shake {
		g.shake[s] = max(g.shake[s]-dt, 0)
	}
	for _, f := range res.Flushes {
		if f.Sent >= shakeThreshold {
			g.shake[f.From.Opponent()] = shakeDuration
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyInput(in core.InputFrame) {
	b := g.duel.Board(engine.SideHuman)
	dx := in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	dy := in.Count(core.ActionDown) - in.Count(core.ActionUp)
	if dx != 0 || dy != 0 {
		b.MoveCursor(dx, dy)
	}
	for range in.Count(core.ActionSwap) {
		g.duel.Swap(engine.SideHuman)
	}
	if in.Count(core.ActionRaise)%2 == 1 {
		b.SetManualRaise(!b.ManualRaise())
	}
}

// State returns the human side's score and the match status.
func (g *Game) State() core.GameState {
	if g.duel == nil {
		return core.GameState{}
	}
	winner, ok := g.duel.Winner()
	return core.GameState{
		Score:    g.duel.Board(engine.SideHuman).Score(),
		GameOver: g.duel.Over(),
		Paused:   g.paused,
		Won:      g.duel.Over() && ok && winner == engine.SideHuman,
	}
}

// Summary describes the current match for the results table.
func (g *Game) Summary() core.MatchSummary {
	if g.duel == nil {
		return core.MatchSummary{Mode: g.ID()}
	}
	human := g.duel.Board(engine.SideHuman)
	sum := core.MatchSummary{
		Mode:        g.ID(),
		Difficulty:  g.cfg.CPU.Preset,
		Score:       human.Score(),
		MaxCombo:    human.MaxCombo(),
		GarbageSent: g.duel.Sent(engine.SideHuman),
		Duration:    g.duel.Elapsed(),
	}
	if cpu := g.duel.Board(engine.SideCPU); cpu != nil {
		sum.OpponentScore = cpu.Score()
		sum.GarbageReceived = g.duel.Sent(engine.SideCPU)
	}
	if winner, ok := g.duel.Winner(); ok {
		sum.Winner = winner.String()
	}
	return sum
}

// Snapshot returns the engine state for rendering and tests.
func (g *Game) Snapshot() engine.Snapshot {
	if g.duel == nil {
		return engine.Snapshot{}
	}
	return g.duel.Snapshot()
}

func init() {
	registry.Register(IDVersus, func() registry.Game {
		return New(ModeVersus)
	})
	registry.Register(IDTimeAttack, func() registry.Game {
		return New(ModeTimeAttack)
	})
}
