package engine

import "time"

// Step is one planner action: move the cursor to (X, Y) and swap.
type Step struct {
	X, Y int
}

// Opportunity is a move that completes a run.
type Opportunity struct {
	X, Y       int  // Source block
	TargetX    int  // Destination column
	Relocation bool // Walk the block across empty cells instead of one swap
}

// Steps expands the opportunity into cursor-and-swap steps. A relocation
// walks the block one column per step toward TargetX.
func (o Opportunity) Steps() []Step {
	if !o.Relocation {
		return []Step{{X: o.X, Y: o.Y}}
	}
	dir := 1
	if o.TargetX < o.X {
		dir = -1
	}
	steps := make([]Step, 0, abs(o.TargetX-o.X))
	for c := o.X; c != o.TargetX; c += dir {
		left := c
		if dir < 0 {
			left = c - 1
		}
		steps = append(steps, Step{X: left, Y: o.Y})
	}
	return steps
}

// Planner drives one board the way a player would. It waits one reaction
// interval of stability before each action and drops its plan whenever the
// board becomes unstable or raises.
type Planner struct {
	board    *Board
	reaction time.Duration
	timer    time.Duration
	plan     []Step
	shifts   int
}

// NewPlanner creates a planner for b acting once per reaction interval.
func NewPlanner(b *Board, reaction time.Duration) *Planner {
	return &Planner{board: b, reaction: reaction, timer: reaction}
}

// Plan returns the steps not yet executed.
func (p *Planner) Plan() []Step {
	return p.plan
}

// Reset restarts the reaction timer and discards the current plan.
func (p *Planner) Reset() {
	p.timer = p.reaction
	p.plan = nil
}

// Think advances the reaction timer on a stable board and, when it expires,
// executes the next planned step or plans a new move. It reports whether a
// swap was performed.
func (p *Planner) Think(dt time.Duration) bool {
	if len(p.plan) > 0 && p.board.shifts != p.shifts {
		p.plan = nil
	}

	p.timer -= dt
	if p.timer > 0 {
		return false
	}
	p.timer = p.reaction

	if len(p.plan) == 0 {
		opp, ok := p.Search()
		if !ok {
			return false
		}
		p.plan = opp.Steps()
		p.shifts = p.board.shifts
	}
	return p.step()
}

func (p *Planner) step() bool {
	s := p.plan[0]
	p.plan = p.plan[1:]
	p.board.SetCursor(s.X, s.Y)
	if !p.board.Swap() {
		p.plan = nil
		return false
	}
	return true
}

// Search finds the first opportunity on the board. Relocations are preferred
// over adjacent swaps. Both scans walk rows top to bottom, then columns left
// to right, and stop at the first hit.
func (p *Planner) Search() (Opportunity, bool) {
	t := p.board.grid.types()
	if opp, ok := p.findRelocation(&t); ok {
		return opp, true
	}
	return p.findSwap(&t)
}

// findRelocation looks for an idle block that can slide along its row across
// empty cells into another column and complete a run where it lands.
func (p *Planner) findRelocation(t *typeGrid) (Opportunity, bool) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if !p.board.grid.cells[x][y].Idle() {
				continue
			}
			typ := t[x][y]
			for tx := 0; tx < Width; tx++ {
				if tx == x || !pathClear(t, x, tx, y) {
					continue
				}

				sim := *t
				sim[x][y] = noType
				sim.compact(x)
				land := Height - sim.count(tx) - 1
				if land < 0 {
					continue
				}
				sim[tx][land] = typ
				if sim.runAt(tx, land) {
					return Opportunity{X: x, Y: y, TargetX: tx, Relocation: true}, true
				}
			}
		}
	}
	return Opportunity{}, false
}

// findSwap looks for two adjacent idle blocks whose swap completes a run at
// either cell. The swap is simulated and undone in place.
func (p *Planner) findSwap(t *typeGrid) (Opportunity, bool) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width-1; x++ {
			if !p.board.grid.cells[x][y].Idle() || !p.board.grid.cells[x+1][y].Idle() {
				continue
			}
			if t[x][y] == t[x+1][y] {
				continue
			}

			t[x][y], t[x+1][y] = t[x+1][y], t[x][y]
			hit := t.runAt(x, y) || t.runAt(x+1, y)
			t[x][y], t[x+1][y] = t[x+1][y], t[x][y]

			if hit {
				return Opportunity{X: x, Y: y, TargetX: x + 1}, true
			}
		}
	}
	return Opportunity{}, false
}

// pathClear reports whether every cell of row y strictly after x up to and
// including tx is empty.
func pathClear(t *typeGrid, x, tx, y int) bool {
	dir := 1
	if tx < x {
		dir = -1
	}
	for c := x + dir; c != tx+dir; c += dir {
		if t[c][y] != noType {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
