package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// chainAttack is the attack of a chain, indexed by combo length. Longer
// chains send 3*Width.
var chainAttack = [...]int{0, 0, 3, 5, Width, 2 * Width}

// AttackAmount returns the attack of one clearing cycle. Single clears score
// by size; chains score by length.
func AttackAmount(cleared, combo int) int {
	if combo <= 1 {
		switch {
		case cleared >= 6:
			return Width
		case cleared == 5:
			return 4
		case cleared == 4:
			return 2
		}
		return 0
	}
	if combo < len(chainAttack) {
		return chainAttack[combo]
	}
	return 3 * Width
}

// Chunk is one batch of garbage queued for a side. Columns are assigned the
// first time the chunk releases a block.
type Chunk struct {
	types   []BlockType
	columns []int
	next    int
}

// Len returns the number of blocks not yet released.
func (c *Chunk) Len() int {
	return len(c.types) - c.next
}

// garbageRecord is the incoming and outgoing garbage state of one side.
type garbageRecord struct {
	pending int           // Accrued attack not yet flushed
	queue   []*Chunk      // Incoming chunks, oldest first
	hold    time.Duration // Remaining delay before the head chunk drops
	drop    time.Duration // Time since the last released block
}

// FlushResult describes one flush of a side's attack pool.
type FlushResult struct {
	From      Side
	Cancelled int // Attack cancelled against the opponent's pool
	Sent      int // Size of the chunk queued for the opponent
}

// Exchange tracks attack pools and garbage queues for both sides.
type Exchange struct {
	records  [NumSides]garbageRecord
	settings Settings
	rng      *rand.Rand
	logger   *log.Logger
}

// NewExchange creates an empty exchange. A nil logger discards diagnostics.
func NewExchange(settings Settings, rng *rand.Rand, logger *log.Logger) *Exchange {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exchange{settings: settings, rng: rng, logger: logger}
}

// Accrue adds attack to a side's pending pool.
func (e *Exchange) Accrue(s Side, amount int) {
	if amount > 0 {
		e.records[s].pending += amount
	}
}

// Pending returns the side's unflushed attack pool.
func (e *Exchange) Pending(s Side) int {
	return e.records[s].pending
}

// Incoming returns the number of garbage blocks queued for the side.
func (e *Exchange) Incoming(s Side) int {
	n := 0
	for _, c := range e.records[s].queue {
		n += c.Len()
	}
	return n
}

// HasIncoming reports whether the side has queued garbage.
func (e *Exchange) HasIncoming(s Side) bool {
	return len(e.records[s].queue) > 0
}

// Hold returns the remaining hold time of the side's incoming garbage.
func (e *Exchange) Hold(s Side) time.Duration {
	if e.records[s].hold < 0 {
		return 0
	}
	return e.records[s].hold
}

// Flush ends a chain for side s. Its pool is cancelled against the
// opponent's pending pool and any remainder is queued for the opponent as
// one chunk of random colors. Without an opponent the pool is discarded.
func (e *Exchange) Flush(s Side, hasOpponent bool) FlushResult {
	own := &e.records[s]
	res := FlushResult{From: s}
	if own.pending == 0 {
		return res
	}
	if !hasOpponent {
		own.pending = 0
		return res
	}

	opp := &e.records[s.Opponent()]
	cancel := min(own.pending, opp.pending)
	own.pending -= cancel
	opp.pending -= cancel
	res.Cancelled = cancel

	if own.pending > 0 {
		chunk := &Chunk{types: make([]BlockType, own.pending)}
		for i := range chunk.types {
			chunk.types[i] = BlockType(e.rng.Intn(NumBlockTypes))
		}
		opp.queue = append(opp.queue, chunk)
		opp.hold = e.settings.GarbageHold
		res.Sent = own.pending
		own.pending = 0
	}

	e.logger.Debug("chain flushed", "side", s, "cancelled", res.Cancelled, "sent", res.Sent)
	return res
}

// Deliver advances the side's hold and drop timers and releases at most one
// queued block onto the board. It returns true when a block was placed.
func (e *Exchange) Deliver(s Side, b *Board, dt time.Duration) bool {
	r := &e.records[s]
	if len(r.queue) == 0 {
		r.hold = 0
		r.drop = 0
		return false
	}
	if r.hold > 0 {
		r.hold -= dt
		return false
	}
	r.hold = 0

	r.drop += dt
	if r.drop < e.settings.GarbageDropDelay {
		return false
	}
	r.drop = 0

	chunk := r.queue[0]
	if chunk.columns == nil {
		chunk.columns = e.shuffledColumns()
	}
	typ := chunk.types[chunk.next]
	col := chunk.columns[chunk.next%Width]
	chunk.next++
	if chunk.Len() == 0 {
		r.queue = r.queue[1:]
	}

	return e.place(b, typ, col)
}

// shuffledColumns returns a random permutation of the column indices.
func (e *Exchange) shuffledColumns() []int {
	cols := make([]int, Width)
	for i := range cols {
		cols[i] = i
	}
	for i := len(cols) - 1; i > 0; i-- {
		j := e.rng.Intn(i + 1)
		cols[i], cols[j] = cols[j], cols[i]
	}
	return cols
}

// place puts a garbage block directly above the occupied top of column col,
// or on the top row of an empty column, from where gravity carries it down.
// A full column hands the block to the next column with room; if every
// column is full the block is discarded.
func (e *Exchange) place(b *Board, typ BlockType, col int) bool {
	for k := 0; k < Width; k++ {
		x := (col + k) % Width
		top := b.grid.ColumnTop(x)
		y := top - 1
		if top == Height {
			y = 0
		}
		if y < 0 {
			continue
		}
		b.grid.cells[x][y] = b.newBlock(typ, y)
		return true
	}
	e.logger.Warn("garbage discarded, board full", "side", b.side, "type", typ)
	return false
}
