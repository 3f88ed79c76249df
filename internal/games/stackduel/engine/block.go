// Package engine implements the Stack Duel board simulation: the block state
// machine, gravity, match detection, the garbage exchange between two sides,
// the CPU planner and the tick orchestrator that sequences them.
//
// The engine is pure logic with no terminal or timing dependencies. Every
// timer is a countdown advanced by the delta passed to Duel.Tick.
package engine

import "time"

// BlockType is the color category of a block.
type BlockType int8

// Block colors.
const (
	Red BlockType = iota
	Blue
	Green
	Yellow
	Magenta
)

// NumBlockTypes is the number of distinct block colors.
const NumBlockTypes = 5

// noType marks an empty cell in a typeGrid.
const noType BlockType = -1

// String returns the color name.
func (t BlockType) String() string {
	switch t {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Magenta:
		return "magenta"
	default:
		return "none"
	}
}

// BlockState is the lifecycle state of a block.
type BlockState uint8

const (
	StateIdle     BlockState = iota // Resting and eligible for matching
	StateFalling                    // Animating toward TargetY
	StateClearing                   // Matched, waiting for the clear timer
	StateCleared                    // Removed at the end of the clear window
)

// String returns the state name.
func (s BlockState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFalling:
		return "falling"
	case StateClearing:
		return "clearing"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Block is a single cell occupant. Its logical position is the grid cell that
// holds it; VisualY is only the animated row used for presentation.
type Block struct {
	ID        uint32
	Type      BlockType
	State     BlockState
	VisualY   float64       // Continuous row position
	TargetY   int           // Landing row, valid while falling
	ClearedAt time.Duration // Board clock when the block entered clearing
}

// Idle reports whether b is non-nil and resting.
func (b *Block) Idle() bool {
	return b != nil && b.State == StateIdle
}
