package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a duel.
type Options struct {
	Settings  Settings
	Seed      int64
	Solo      bool          // No CPU side
	Autoplay  bool          // A planner also drives the human side
	TimeLimit time.Duration // Ends the duel without a winner; zero disables
	Audio     Audio         // Receives human-side sounds; nil discards
	Logger    *log.Logger   // Nil discards
}

// ClearEvent reports one clearing cycle.
type ClearEvent struct {
	Side   Side
	Count  int
	Combo  int
	Attack int
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Clears    []ClearEvent
	Flushes   []FlushResult
	Raised    [NumSides]bool
	GameOver  bool
	Winner    Side
	HasWinner bool
}

// Duel sequences both boards, their planners and the garbage exchange.
type Duel struct {
	boards   [NumSides]*Board
	planners [NumSides]*Planner
	exchange *Exchange
	settings Settings
	audio    Audio
	logger   *log.Logger

	elapsed   time.Duration
	timeLimit time.Duration
	over      bool
	winner    Side
	hasWinner bool
	sent      [NumSides]int
}

// NewDuel creates a duel. Every random stream derives from opts.Seed.
func NewDuel(opts Options) *Duel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	audio := opts.Audio
	if audio == nil {
		audio = NopAudio{}
	}

	seeds := rand.New(rand.NewSource(opts.Seed))
	d := &Duel{
		settings:  opts.Settings,
		audio:     audio,
		logger:    logger,
		timeLimit: opts.TimeLimit,
	}

	d.boards[SideHuman] = NewBoard(SideHuman, opts.Settings, rand.New(rand.NewSource(seeds.Int63())), logger)
	if opts.Autoplay {
		d.planners[SideHuman] = NewPlanner(d.boards[SideHuman], opts.Settings.ReactionTime)
	}

	cpuRNG := rand.New(rand.NewSource(seeds.Int63()))
	if !opts.Solo {
		cpu := opts.Settings
		cpu.SpeedSteps = nil
		d.boards[SideCPU] = NewBoard(SideCPU, cpu, cpuRNG, logger)
		d.planners[SideCPU] = NewPlanner(d.boards[SideCPU], opts.Settings.ReactionTime)
	}

	d.exchange = NewExchange(opts.Settings, rand.New(rand.NewSource(seeds.Int63())), logger)
	return d
}

// Board returns the board of side s, or nil when the side is absent.
func (d *Duel) Board(s Side) *Board { return d.boards[s] }

// Planner returns the planner driving side s, or nil.
func (d *Duel) Planner(s Side) *Planner { return d.planners[s] }

// Exchange returns the garbage exchange.
func (d *Duel) Exchange() *Exchange { return d.exchange }

// Elapsed returns the simulated time.
func (d *Duel) Elapsed() time.Duration { return d.elapsed }

// Remaining returns the time left under a time limit, or zero without one.
func (d *Duel) Remaining() time.Duration {
	if d.timeLimit <= 0 || d.elapsed >= d.timeLimit {
		return 0
	}
	return d.timeLimit - d.elapsed
}

// Over reports whether the duel has ended.
func (d *Duel) Over() bool { return d.over }

// Winner returns the winning side; ok is false when nobody won.
func (d *Duel) Winner() (s Side, ok bool) { return d.winner, d.hasWinner }

// Sent returns the garbage blocks side s has queued for its opponent.
func (d *Duel) Sent(s Side) int { return d.sent[s] }

// Swap performs a swap on side s and plays the swap sound when accepted.
func (d *Duel) Swap(s Side) bool {
	b := d.boards[s]
	if b == nil || d.over || !b.Swap() {
		return false
	}
	d.play(s, SoundSwap)
	return true
}

// Tick advances the duel by dt. Each present side is stepped in order, then
// sides whose chain ended this tick flush their attack, human side first.
func (d *Duel) Tick(dt time.Duration) TickResult {
	var res TickResult
	if d.over {
		d.fillOutcome(&res)
		return res
	}
	d.elapsed += dt

	var chainEnded [NumSides]bool
	for s := SideHuman; s < NumSides; s++ {
		chainEnded[s] = d.tickSide(s, dt, &res)
		if d.over {
			d.fillOutcome(&res)
			return res
		}
	}

	for s := SideHuman; s < NumSides; s++ {
		if !chainEnded[s] {
			continue
		}
		opp := s.Opponent()
		f := d.exchange.Flush(s, d.boards[opp] != nil)
		if f.Cancelled == 0 && f.Sent == 0 {
			continue
		}
		res.Flushes = append(res.Flushes, f)
		d.sent[s] += f.Sent
		if f.Sent > 0 {
			d.play(opp, SoundGarbageAlert)
		}
	}

	if d.timeLimit > 0 && d.elapsed >= d.timeLimit {
		d.over = true
		d.fillOutcome(&res)
	}
	return res
}

// tickSide runs one side's step: clear countdown while resolving, otherwise
// gravity, match detection, garbage delivery, then raise and planning on a
// settled board. It reports whether the side's chain ended.
func (d *Duel) tickSide(s Side, dt time.Duration, res *TickResult) (chainEnded bool) {
	b := d.boards[s]
	if b == nil {
		return false
	}
	b.clock += dt
	p := d.planners[s]

	if b.resolving {
		b.clearTimer -= dt
		if b.clearTimer <= 0 {
			b.removeCleared()
			b.resolving = false
		}
		if p != nil {
			p.Reset()
		}
		return false
	}

	falling, landed := b.applyGravity(dt)
	if landed > 0 {
		d.play(s, SoundFall)
	}

	if !falling {
		if n := b.detectMatches(); n > 0 {
			b.combo++
			b.maxCombo = max(b.maxCombo, b.combo)
			b.resolving = true
			b.clearTimer = d.settings.ClearDuration
			b.addScore(n)

			attack := AttackAmount(n, b.combo)
			d.exchange.Accrue(s, attack)
			res.Clears = append(res.Clears, ClearEvent{Side: s, Count: n, Combo: b.combo, Attack: attack})

			d.play(s, SoundClear)
			if b.combo > 1 {
				d.play(s, SoundCombo)
			}
			if p != nil {
				p.Reset()
			}
			return false
		}
		if b.combo > 0 {
			b.combo = 0
			chainEnded = true
		}
	}

	if d.exchange.Deliver(s, b, dt) {
		d.play(s, SoundGarbageDrop)
		// A block dropped into an empty column sits on row 0 until it falls.
		b.scheduleFalls()
		falling = falling || b.anyFalling()
	}

	if falling {
		if p != nil {
			p.Reset()
		}
		return chainEnded
	}

	switch b.advanceRaise(dt, !d.exchange.HasIncoming(s)) {
	case RaiseShifted:
		res.Raised[s] = true
	case RaiseGameOver:
		d.logger.Info("stack topped out", "side", s, "score", b.score)
		d.finish(s.Opponent())
		return chainEnded
	}

	if p != nil && p.Think(dt) {
		d.play(s, SoundSwap)
	}
	return chainEnded
}

// finish ends the duel. The winner only counts when that side is present.
func (d *Duel) finish(winner Side) {
	d.over = true
	if d.boards[winner] != nil {
		d.winner = winner
		d.hasWinner = true
	}
}

func (d *Duel) fillOutcome(res *TickResult) {
	res.GameOver = d.over
	res.Winner = d.winner
	res.HasWinner = d.hasWinner
}

// play forwards human-side sounds to the audio collaborator.
func (d *Duel) play(s Side, snd Sound) {
	if s == SideHuman {
		d.audio.Play(snd)
	}
}
