package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Board dimensions. Row 0 is the top (loss) row.
const (
	Width  = 6
	Height = 12
)

// MinRun is the shortest run of equal types that clears.
const MinRun = 3

// Grid is the fixed cell array of one board. A block's cell is the single
// source of truth for its logical position.
type Grid struct {
	cells [Width][Height]*Block
}

// InBounds reports whether (x, y) is a valid cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the block at (x, y), or nil for empty or out-of-bounds cells.
func (g *Grid) At(x, y int) *Block {
	if !InBounds(x, y) {
		return nil
	}
	return g.cells[x][y]
}

// Set places b at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, b *Block) {
	if !InBounds(x, y) {
		return
	}
	g.cells[x][y] = b
}

// Reset empties every cell.
func (g *Grid) Reset() {
	g.cells = [Width][Height]*Block{}
}

// ColumnTop returns the row of the topmost occupied cell in column x,
// or Height when the column is empty.
func (g *Grid) ColumnTop(x int) int {
	for y := 0; y < Height; y++ {
		if g.cells[x][y] != nil {
			return y
		}
	}
	return Height
}

// RowOccupied reports whether any cell of row y holds a block.
func (g *Grid) RowOccupied(y int) bool {
	for x := 0; x < Width; x++ {
		if g.cells[x][y] != nil {
			return true
		}
	}
	return false
}

// Runs counts the cells that belong to a run of MinRun or more equal types,
// regardless of block state.
func (g *Grid) Runs() int {
	t := g.types()
	var marks markGrid
	return scanRuns(t.at, &marks)
}

// CheckOwnership reports a block that occupies more than one cell.
func (g *Grid) CheckOwnership() error {
	seen := intmap.New[uint32, int](Width * Height)
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			b := g.cells[x][y]
			if b == nil {
				continue
			}
			if prev, ok := seen.Get(b.ID); ok {
				return fmt.Errorf("engine: block %d owns cells (%d,%d) and (%d,%d)",
					b.ID, prev%Width, prev/Width, x, y)
			}
			seen.Put(b.ID, y*Width+x)
		}
	}
	return nil
}

// Verify checks ownership and that no idle block rests above an empty cell.
// The second check only holds on a settled board.
func (g *Grid) Verify() error {
	if err := g.CheckOwnership(); err != nil {
		return err
	}
	for x := 0; x < Width; x++ {
		for y := 0; y < Height-1; y++ {
			b := g.cells[x][y]
			if b != nil && b.State == StateIdle && g.cells[x][y+1] == nil {
				return fmt.Errorf("engine: idle block %d at (%d,%d) rests over a gap", b.ID, x, y)
			}
		}
	}
	return nil
}

// types copies the grid into a disposable type-only grid.
func (g *Grid) types() typeGrid {
	var t typeGrid
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b := g.cells[x][y]; b != nil {
				t[x][y] = b.Type
			} else {
				t[x][y] = noType
			}
		}
	}
	return t
}

// typeGrid is a scratch copy of block types used for simulation.
type typeGrid [Width][Height]BlockType

func (t *typeGrid) at(x, y int) BlockType {
	return t[x][y]
}

// count returns the number of occupied cells in column x.
func (t *typeGrid) count(x int) int {
	n := 0
	for y := 0; y < Height; y++ {
		if t[x][y] != noType {
			n++
		}
	}
	return n
}

// compact packs column x toward the bottom, preserving order.
func (t *typeGrid) compact(x int) {
	var col [Height]BlockType
	n := 0
	for y := 0; y < Height; y++ {
		if t[x][y] != noType {
			col[n] = t[x][y]
			n++
		}
	}
	for y := 0; y < Height; y++ {
		t[x][y] = noType
	}
	for i := 0; i < n; i++ {
		t[x][Height-n+i] = col[i]
	}
}

// runAt reports whether the cell (x, y) completes a horizontal or vertical
// run of MinRun or more.
func (t *typeGrid) runAt(x, y int) bool {
	typ := t[x][y]
	if typ == noType {
		return false
	}

	h := 1
	for i := x - 1; i >= 0 && t[i][y] == typ; i-- {
		h++
	}
	for i := x + 1; i < Width && t[i][y] == typ; i++ {
		h++
	}
	if h >= MinRun {
		return true
	}

	v := 1
	for j := y - 1; j >= 0 && t[x][j] == typ; j-- {
		v++
	}
	for j := y + 1; j < Height && t[x][j] == typ; j++ {
		v++
	}
	return v >= MinRun
}
