package engine

import "time"

// applyGravity schedules unsupported blocks and advances every falling block
// by dt. It reports whether any block is still falling and how many landed.
func (b *Board) applyGravity(dt time.Duration) (falling bool, landed int) {
	b.scheduleFalls()
	return b.advanceFalls(dt)
}

// scheduleFalls recomputes the bottom-anchored compaction target of every
// non-clearing block. A column holding n such blocks packs them into rows
// Height-n .. Height-1 in their current order.
func (b *Board) scheduleFalls() {
	for x := 0; x < Width; x++ {
		var rows [Height]int
		n := 0
		for y := 0; y < Height; y++ {
			blk := b.grid.cells[x][y]
			if blk == nil || blk.State == StateClearing || blk.State == StateCleared {
				continue
			}
			rows[n] = y
			n++
		}

		for i := 0; i < n; i++ {
			y := rows[i]
			blk := b.grid.cells[x][y]
			target := Height - n + i

			switch {
			case target == y && blk.State == StateFalling:
				blk.State = StateIdle
				blk.VisualY = float64(y)
			case target == y:
			case blk.State == StateIdle:
				blk.State = StateFalling
				blk.VisualY = float64(y)
				blk.TargetY = target
			default:
				blk.TargetY = target
			}
		}
	}
}

// advanceFalls moves falling blocks toward their targets. Columns are walked
// bottom to top so lower blocks vacate their cells before upper ones land.
func (b *Board) advanceFalls(dt time.Duration) (falling bool, landed int) {
	step := b.settings.FallRate * dt.Seconds()

	for x := 0; x < Width; x++ {
		for y := Height - 1; y >= 0; y-- {
			blk := b.grid.cells[x][y]
			if blk == nil || blk.State != StateFalling {
				continue
			}

			blk.VisualY += step
			if blk.VisualY < float64(blk.TargetY) {
				falling = true
				continue
			}

			dest := blk.TargetY
			if dest != y {
				if occupant := b.grid.cells[x][dest]; occupant != nil && occupant != blk {
					b.logger.Warn("landing conflict, rescheduling",
						"side", b.side,
						"block", blk.ID,
						"occupant", occupant.ID,
						"column", x,
						"from", y,
						"to", dest,
					)
					blk.State = StateIdle
					blk.VisualY = float64(y)
					falling = true
					continue
				}
				b.grid.cells[x][dest] = blk
				b.grid.cells[x][y] = nil
			}
			blk.State = StateIdle
			blk.VisualY = float64(dest)
			landed++
		}
	}
	return falling, landed
}
