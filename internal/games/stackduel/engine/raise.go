package engine

import "time"

// RaiseResult is the outcome of advancing the raise accumulator.
type RaiseResult int

const (
	RaiseNone     RaiseResult = iota // Accumulator below one row
	RaiseShifted                     // Stack moved up one row
	RaiseGameOver                    // Row 0 was occupied; the side lost
)

// String returns the result name.
func (r RaiseResult) String() string {
	switch r {
	case RaiseShifted:
		return "shifted"
	case RaiseGameOver:
		return "game over"
	default:
		return "none"
	}
}

// advanceRaise integrates the raise rate over dt. Manual raise uses its own
// faster rate and ignores autoAllowed; otherwise the automatic rate applies
// only when autoAllowed is true.
func (b *Board) advanceRaise(dt time.Duration, autoAllowed bool) RaiseResult {
	switch {
	case b.manualRaise:
		b.raiseProgress += b.settings.ManualRaiseRate * dt.Seconds()
	case autoAllowed && b.raiseInterval > 0:
		b.raiseProgress += dt.Seconds() / b.raiseInterval.Seconds()
	}

	if b.raiseProgress < 1 {
		return RaiseNone
	}
	res := b.Raise()
	if res == RaiseShifted {
		b.raiseProgress--
	}
	return res
}

// Raise shifts the stack up one row and fills a new bottom row. If row 0 is
// occupied the grid is left untouched and the board is marked lost.
func (b *Board) Raise() RaiseResult {
	if b.lost {
		return RaiseGameOver
	}
	if b.grid.RowOccupied(0) {
		b.lost = true
		return RaiseGameOver
	}

	for x := 0; x < Width; x++ {
		for y := 0; y < Height-1; y++ {
			blk := b.grid.cells[x][y+1]
			b.grid.cells[x][y] = blk
			if blk != nil {
				blk.VisualY--
				if blk.State == StateFalling {
					blk.TargetY--
				}
			}
		}
		b.grid.cells[x][Height-1] = nil
	}

	b.fillBottomRow()

	if b.cursor.Y > 0 {
		b.cursor.Y--
	}
	b.shifts++
	return RaiseShifted
}

// fillBottomRow creates the new bottom row. A candidate type is redrawn while
// it would complete a run with its two left neighbours.
func (b *Board) fillBottomRow() {
	y := Height - 1
	for x := 0; x < Width; x++ {
		typ := b.randomType()
		for x >= 2 && b.grid.cells[x-1][y].Type == typ && b.grid.cells[x-2][y].Type == typ {
			typ = b.randomType()
		}
		b.grid.cells[x][y] = b.newBlock(typ, y)
	}
}
