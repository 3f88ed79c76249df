package engine

// markGrid flags cells that belong to a run.
type markGrid [Width][Height]bool

// scanRuns marks every horizontal and vertical run of MinRun or more equal
// types. Cells for which typeAt returns noType break runs. It returns the
// number of marked cells.
func scanRuns(typeAt func(x, y int) BlockType, marks *markGrid) int {
	for y := 0; y < Height; y++ {
		start := 0
		for x := 1; x <= Width; x++ {
			if x < Width && typeAt(x, y) != noType && typeAt(x, y) == typeAt(start, y) {
				continue
			}
			if x-start >= MinRun && typeAt(start, y) != noType {
				for i := start; i < x; i++ {
					marks[i][y] = true
				}
			}
			start = x
		}
	}

	for x := 0; x < Width; x++ {
		start := 0
		for y := 1; y <= Height; y++ {
			if y < Height && typeAt(x, y) != noType && typeAt(x, y) == typeAt(x, start) {
				continue
			}
			if y-start >= MinRun && typeAt(x, start) != noType {
				for j := start; j < y; j++ {
					marks[x][j] = true
				}
			}
			start = y
		}
	}

	n := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if marks[x][y] {
				n++
			}
		}
	}
	return n
}

// detectMatches moves every idle block that is part of a run into the
// clearing state and returns how many blocks it marked. Falling and clearing
// blocks never take part, so repeated calls do not count a block twice.
func (b *Board) detectMatches() int {
	eligible := func(x, y int) BlockType {
		blk := b.grid.cells[x][y]
		if !blk.Idle() {
			return noType
		}
		return blk.Type
	}

	var marks markGrid
	if scanRuns(eligible, &marks) == 0 {
		return 0
	}

	n := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if !marks[x][y] {
				continue
			}
			blk := b.grid.cells[x][y]
			blk.State = StateClearing
			blk.ClearedAt = b.clock
			n++
		}
	}
	return n
}

// removeCleared empties every cell whose block finished its clear window.
func (b *Board) removeCleared() int {
	n := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			blk := b.grid.cells[x][y]
			if blk == nil || (blk.State != StateClearing && blk.State != StateCleared) {
				continue
			}
			blk.State = StateCleared
			b.grid.cells[x][y] = nil
			n++
		}
	}
	return n
}
