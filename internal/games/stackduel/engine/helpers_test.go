package engine

import (
	"math/rand"
	"testing"
	"time"
)

const tick = time.Second / 60

var letterTypes = map[byte]BlockType{
	'R': Red,
	'B': Blue,
	'G': Green,
	'Y': Yellow,
	'M': Magenta,
}

// emptyBoard returns a human board with every cell cleared.
func emptyBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(SideHuman, DefaultSettings(), rand.New(rand.NewSource(1)), nil)
	b.grid.Reset()
	return b
}

// layout fills the board from bottom-aligned rows of letters; '.' is empty.
func layout(t *testing.T, b *Board, rows ...string) {
	t.Helper()
	b.grid.Reset()
	top := Height - len(rows)
	for i, row := range rows {
		if len(row) != Width {
			t.Fatalf("row %q has %d cells, want %d", row, len(row), Width)
		}
		for x := 0; x < Width; x++ {
			if row[x] == '.' {
				continue
			}
			typ, ok := letterTypes[row[x]]
			if !ok {
				t.Fatalf("unknown cell %q", row[x])
			}
			put(b, x, top+i, typ)
		}
	}
}

func put(b *Board, x, y int, typ BlockType) *Block {
	blk := b.newBlock(typ, y)
	b.grid.cells[x][y] = blk
	return blk
}

// typesOf copies the board's types for comparison.
func typesOf(b *Board) typeGrid {
	return b.grid.types()
}

// settle runs gravity until nothing falls.
func settle(t *testing.T, b *Board) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if falling, _ := b.applyGravity(tick); !falling {
			return
		}
	}
	t.Fatal("gravity did not settle")
}

type recordingAudio struct {
	sounds []Sound
}

func (r *recordingAudio) Play(s Sound) {
	r.sounds = append(r.sounds, s)
}

func (r *recordingAudio) count(s Sound) int {
	n := 0
	for _, got := range r.sounds {
		if got == s {
			n++
		}
	}
	return n
}
