package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Side identifies one of the two participants.
type Side int

const (
	SideHuman Side = iota
	SideCPU
)

// NumSides is the number of participants in a duel.
const NumSides = 2

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

// String returns the side name.
func (s Side) String() string {
	if s == SideCPU {
		return "cpu"
	}
	return "human"
}

// Cursor selects the two horizontally adjacent cells (X, Y) and (X+1, Y).
type Cursor struct {
	X, Y int
}

// Initial cursor position.
const (
	startCursorX = 2
	startCursorY = 5
)

// Board owns one grid and the state of one side. Human input and the CPU
// planner drive it through the same surface: MoveCursor, SetCursor, Swap and
// SetManualRaise.
type Board struct {
	side     Side
	grid     Grid
	cursor   Cursor
	settings Settings
	rng      *rand.Rand
	logger   *log.Logger
	nextID   uint32

	clock      time.Duration
	combo      int
	maxCombo   int
	resolving  bool
	clearTimer time.Duration
	score      int
	cleared    int

	raiseProgress float64 // Fraction of a row accumulated toward the next raise
	raiseInterval time.Duration
	manualRaise   bool
	shifts        int // Raises performed; lets planners detect shifted rows
	lost          bool
}

// NewBoard creates a board with the lower half filled and no runs.
// A nil logger discards diagnostics.
func NewBoard(side Side, settings Settings, rng *rand.Rand, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Board{
		side:          side,
		settings:      settings,
		rng:           rng,
		logger:        logger,
		cursor:        Cursor{X: startCursorX, Y: startCursorY},
		raiseInterval: settings.RaiseInterval,
	}
	b.populate()
	return b
}

// populate fills the bottom half, never placing a type that would complete a
// run with its two left or two upper neighbours.
func (b *Board) populate() {
	b.grid.Reset()
	for y := Height / 2; y < Height; y++ {
		for x := 0; x < Width; x++ {
			typ := b.randomType()
			for b.completesRun(x, y, typ) {
				typ = b.randomType()
			}
			b.grid.cells[x][y] = b.newBlock(typ, y)
		}
	}
}

func (b *Board) completesRun(x, y int, typ BlockType) bool {
	if x >= 2 {
		l1, l2 := b.grid.cells[x-1][y], b.grid.cells[x-2][y]
		if l1 != nil && l2 != nil && l1.Type == typ && l2.Type == typ {
			return true
		}
	}
	if y >= 2 {
		u1, u2 := b.grid.cells[x][y-1], b.grid.cells[x][y-2]
		if u1 != nil && u2 != nil && u1.Type == typ && u2.Type == typ {
			return true
		}
	}
	return false
}

func (b *Board) randomType() BlockType {
	return BlockType(b.rng.Intn(NumBlockTypes))
}

func (b *Board) newBlock(typ BlockType, y int) *Block {
	b.nextID++
	return &Block{ID: b.nextID, Type: typ, State: StateIdle, VisualY: float64(y)}
}

// Side returns the board's side.
func (b *Board) Side() Side { return b.side }

// Grid returns the board's grid. Callers must not mutate it.
func (b *Board) Grid() *Grid { return &b.grid }

// Cursor returns the cursor position.
func (b *Board) Cursor() Cursor { return b.cursor }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Combo returns the current chain length.
func (b *Board) Combo() int { return b.combo }

// MaxCombo returns the longest chain reached.
func (b *Board) MaxCombo() int { return b.maxCombo }

// Cleared returns the total number of blocks cleared.
func (b *Board) Cleared() int { return b.cleared }

// Resolving reports whether the clear animation is running.
func (b *Board) Resolving() bool { return b.resolving }

// Lost reports whether the stack topped out.
func (b *Board) Lost() bool { return b.lost }

// ManualRaise reports whether manual raise is on.
func (b *Board) ManualRaise() bool { return b.manualRaise }

// RaiseProgress returns the fraction of a row accumulated toward the next raise.
func (b *Board) RaiseProgress() float64 { return b.raiseProgress }

// RaiseInterval returns the current automatic raise interval.
func (b *Board) RaiseInterval() time.Duration { return b.raiseInterval }

// Stable reports whether no block is falling and no clear is in progress.
func (b *Board) Stable() bool {
	return !b.resolving && !b.anyFalling()
}

func (b *Board) anyFalling() bool {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if blk := b.grid.cells[x][y]; blk != nil && blk.State == StateFalling {
				return true
			}
		}
	}
	return false
}

// MoveCursor shifts the cursor by (dx, dy), clamped to the board.
func (b *Board) MoveCursor(dx, dy int) {
	b.SetCursor(b.cursor.X+dx, b.cursor.Y+dy)
}

// SetCursor places the cursor at (x, y), clamped to the board.
func (b *Board) SetCursor(x, y int) {
	b.cursor.X = clamp(x, 0, Width-2)
	b.cursor.Y = clamp(y, 0, Height-1)
}

// SetManualRaise turns manual raise on or off.
func (b *Board) SetManualRaise(on bool) {
	b.manualRaise = on
}

// Swap exchanges the two cells under the cursor. It is accepted when an idle
// block trades places with an empty cell or with another idle block, and
// rejected otherwise, leaving the grid unchanged.
func (b *Board) Swap() bool {
	return b.swapAt(b.cursor.X, b.cursor.Y)
}

func (b *Board) swapAt(x, y int) bool {
	if b.lost || !InBounds(x, y) || !InBounds(x+1, y) {
		return false
	}
	left, right := b.grid.cells[x][y], b.grid.cells[x+1][y]
	switch {
	case left == nil && right == nil:
		return false
	case left == nil && !right.Idle():
		return false
	case right == nil && !left.Idle():
		return false
	case left != nil && right != nil && (!left.Idle() || !right.Idle()):
		return false
	}
	b.grid.cells[x][y], b.grid.cells[x+1][y] = right, left
	return true
}

// addScore credits a clearing cycle and applies the raise speed-up schedule.
func (b *Board) addScore(n int) {
	b.score += n * 10 * b.combo
	b.cleared += n
	b.raiseInterval = b.settings.intervalFor(b.score)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
