package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExchange() *Exchange {
	return NewExchange(DefaultSettings(), rand.New(rand.NewSource(7)), nil)
}

func TestAttackAmount(t *testing.T) {
	tests := []struct {
		name    string
		cleared int
		combo   int
		want    int
	}{
		{"three single", 3, 1, 0},
		{"four single", 4, 1, 2},
		{"five single", 5, 1, 4},
		{"six single", 6, 1, Width},
		{"nine single", 9, 1, Width},
		{"zero combo counts as single", 4, 0, 2},
		{"chain of two", 3, 2, 3},
		{"chain of two ignores size", 6, 2, 3},
		{"chain of three", 3, 3, 5},
		{"chain of four", 3, 4, Width},
		{"chain of five", 3, 5, 2 * Width},
		{"chain of six", 3, 6, 3 * Width},
		{"chain of ten", 3, 10, 3 * Width},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AttackAmount(tc.cleared, tc.combo))
		})
	}
}

func TestFlushCancelsAgainstOpponentPool(t *testing.T) {
	e := newTestExchange()
	e.Accrue(SideHuman, 5)
	e.Accrue(SideCPU, 3)

	res := e.Flush(SideHuman, true)

	assert.Equal(t, 3, res.Cancelled)
	assert.Equal(t, 2, res.Sent)
	assert.Zero(t, e.Pending(SideHuman))
	assert.Zero(t, e.Pending(SideCPU))
	assert.Equal(t, 2, e.Incoming(SideCPU))
	assert.Zero(t, e.Incoming(SideHuman))
	assert.Equal(t, 2*time.Second, e.Hold(SideCPU))
}

func TestFlushFullyCancelled(t *testing.T) {
	e := newTestExchange()
	e.Accrue(SideHuman, 3)
	e.Accrue(SideCPU, 5)

	res := e.Flush(SideHuman, true)

	assert.Equal(t, 3, res.Cancelled)
	assert.Zero(t, res.Sent)
	assert.Zero(t, e.Pending(SideHuman))
	assert.Equal(t, 2, e.Pending(SideCPU))
	assert.False(t, e.HasIncoming(SideCPU))
}

func TestFlushWithoutOpponentDiscards(t *testing.T) {
	e := newTestExchange()
	e.Accrue(SideHuman, 6)

	res := e.Flush(SideHuman, false)

	assert.Zero(t, res.Sent)
	assert.Zero(t, e.Pending(SideHuman))
	assert.False(t, e.HasIncoming(SideCPU))
}

func TestFlushQueuesChunksInOrder(t *testing.T) {
	e := newTestExchange()
	e.Accrue(SideCPU, 2)
	e.Flush(SideCPU, true)
	e.Accrue(SideCPU, 4)
	e.Flush(SideCPU, true)

	require.Len(t, e.records[SideHuman].queue, 2)
	assert.Equal(t, 2, e.records[SideHuman].queue[0].Len())
	assert.Equal(t, 4, e.records[SideHuman].queue[1].Len())
	assert.Equal(t, 6, e.Incoming(SideHuman))
}

func TestDeliverWaitsForHold(t *testing.T) {
	e := newTestExchange()
	b := emptyBoard(t)
	e.Accrue(SideCPU, 2)
	e.Flush(SideCPU, true)

	assert.False(t, e.Deliver(SideHuman, b, time.Second))
	assert.Equal(t, time.Second, e.Hold(SideHuman))
	assert.False(t, e.Deliver(SideHuman, b, time.Second))
	assert.Zero(t, e.Hold(SideHuman))

	assert.False(t, e.Deliver(SideHuman, b, 50*time.Millisecond))
	assert.True(t, e.Deliver(SideHuman, b, 25*time.Millisecond))
	assert.Equal(t, 1, e.Incoming(SideHuman))

	assert.False(t, e.Deliver(SideHuman, b, 74*time.Millisecond))
	assert.True(t, e.Deliver(SideHuman, b, time.Millisecond))
	assert.False(t, e.HasIncoming(SideHuman))

	settle(t, b)
	placed := 0
	for x := 0; x < Width; x++ {
		if b.grid.At(x, Height-1) != nil {
			placed++
		}
	}
	assert.Equal(t, 2, placed, "each block lands in its own column")
	require.NoError(t, b.grid.Verify())
}

func TestDeliverAssignsDistinctColumns(t *testing.T) {
	e := newTestExchange()
	b := emptyBoard(t)
	e.Accrue(SideCPU, Width+2)
	e.Flush(SideCPU, true)
	e.records[SideHuman].hold = 0

	for e.HasIncoming(SideHuman) {
		require.True(t, e.Deliver(SideHuman, b, 75*time.Millisecond))
		settle(t, b)
	}

	for x := 0; x < Width; x++ {
		assert.NotNil(t, b.grid.At(x, Height-1), "column %d", x)
	}
	stacked := 0
	for x := 0; x < Width; x++ {
		if b.grid.At(x, Height-2) != nil {
			stacked++
		}
	}
	assert.Equal(t, 2, stacked)
	require.NoError(t, b.grid.Verify())
}

func TestPlaceAboveColumnTop(t *testing.T) {
	e := newTestExchange()
	b := emptyBoard(t)
	layout(t, b,
		"R.....",
		"B.....",
	)

	require.True(t, e.place(b, Green, 0))

	blk := b.grid.At(0, Height-3)
	require.NotNil(t, blk)
	assert.Equal(t, Green, blk.Type)
	assert.Equal(t, StateIdle, blk.State)
	assert.Equal(t, float64(Height-3), blk.VisualY)
}

func TestPlaceFullColumnFallsThrough(t *testing.T) {
	e := newTestExchange()
	b := emptyBoard(t)
	for y := 0; y < Height; y++ {
		put(b, 5, y, BlockType(y%2))
	}

	require.True(t, e.place(b, Yellow, 5))
	require.NotNil(t, b.grid.At(0, 0))
	assert.Equal(t, Yellow, b.grid.At(0, 0).Type)
}

func TestPlaceEmptyColumnTopRow(t *testing.T) {
	e := newTestExchange()
	b := emptyBoard(t)

	require.True(t, e.place(b, Green, 0))

	blk := b.grid.At(0, 0)
	require.NotNil(t, blk)
	assert.Equal(t, Green, blk.Type)
	assert.Equal(t, StateIdle, blk.State)
	assert.Zero(t, blk.VisualY)
	for y := 1; y < Height; y++ {
		assert.Nil(t, b.grid.At(0, y), "row %d", y)
	}

	settle(t, b)
	assert.Nil(t, b.grid.At(0, 0))
	assert.Same(t, blk, b.grid.At(0, Height-1))
	require.NoError(t, b.grid.Verify())
}

func TestPlaceBoardFullDiscards(t *testing.T) {
	e := newTestExchange()
	b := emptyBoard(t)
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			put(b, x, y, BlockType((x+2*y)%NumBlockTypes))
		}
	}
	before := typesOf(b)

	assert.False(t, e.place(b, Red, 2))
	assert.Equal(t, before, typesOf(b))
}
