package engine

import "time"

// CellView is the presentation state of one cell.
type CellView struct {
	Empty   bool
	Type    BlockType
	State   BlockState
	VisualY float64
}

// SideView is the presentation state of one side.
type SideView struct {
	Present       bool
	Cells         [Width][Height]CellView
	Cursor        Cursor
	Score         int
	Combo         int
	PendingAttack int           // Accrued attack not yet flushed
	Incoming      int           // Garbage blocks queued for this side
	Hold          time.Duration // Remaining hold before queued garbage drops
	RaiseProgress float64
	ManualRaise   bool
	Resolving     bool
	Lost          bool
}

// Snapshot is a read-only copy of the duel for rendering.
type Snapshot struct {
	Sides     [NumSides]SideView
	Elapsed   time.Duration
	Remaining time.Duration
	Over      bool
	Winner    Side
	HasWinner bool
}

// Snapshot copies the current duel state.
func (d *Duel) Snapshot() Snapshot {
	snap := Snapshot{
		Elapsed:   d.elapsed,
		Remaining: d.Remaining(),
		Over:      d.over,
		Winner:    d.winner,
		HasWinner: d.hasWinner,
	}
	for s := SideHuman; s < NumSides; s++ {
		b := d.boards[s]
		if b == nil {
			continue
		}
		v := &snap.Sides[s]
		v.Present = true
		v.Cursor = b.cursor
		v.Score = b.score
		v.Combo = b.combo
		v.PendingAttack = d.exchange.Pending(s)
		v.Incoming = d.exchange.Incoming(s)
		v.Hold = d.exchange.Hold(s)
		v.RaiseProgress = b.raiseProgress
		v.ManualRaise = b.manualRaise
		v.Resolving = b.resolving
		v.Lost = b.lost
		for x := 0; x < Width; x++ {
			for y := 0; y < Height; y++ {
				blk := b.grid.cells[x][y]
				if blk == nil {
					v.Cells[x][y] = CellView{Empty: true}
					continue
				}
				v.Cells[x][y] = CellView{Type: blk.Type, State: blk.State, VisualY: blk.VisualY}
			}
		}
	}
	return snap
}
