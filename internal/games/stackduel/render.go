package stackduel

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/stackduel/internal/core"
	"github.com/vovakirdan/stackduel/internal/games/stackduel/engine"
)

// Layout in screen cells. Each block is two characters wide.
const (
	cellW  = 2
	boardW = engine.Width*cellW + 2
	boardH = engine.Height + 2
	hudW   = 22
	// Title, indicator row, board, raise bar, score line.
	layoutH = 1 + 1 + boardH + 2
)

// Visual characters for rendering.
const (
	blockGlyph = '█'
	flashGlyph = '░'
	raiseGlyph = '▀'
)

var blockColors = [engine.NumBlockTypes]core.Color{
	engine.Red:     core.ColorRed,
	engine.Blue:    core.ColorBlue,
	engine.Green:   core.ColorGreen,
	engine.Yellow:  core.ColorYellow,
	engine.Magenta: core.ColorMagenta,
}

// Render draws both boards, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.duel == nil {
		return
	}
	snap := g.duel.Snapshot()
	cpu := snap.Sides[engine.SideCPU].Present

	needW := boardW + hudW
	if cpu {
		needW += boardW
	}
	if dst.Width() < needW || dst.Height() < layoutH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	left := (dst.Width() - needW) / 2
	top := (dst.Height() - layoutH) / 2
	dst.DrawTextCentered(top, g.Title(), core.ColorBrightWhite)

	boardTop := top + 2
	g.drawSide(dst, snap.Sides[engine.SideHuman], engine.SideHuman, left, boardTop)
	g.drawHUD(dst, snap, left+boardW+2, boardTop)
	if cpu {
		g.drawSide(dst, snap.Sides[engine.SideCPU], engine.SideCPU, left+boardW+hudW, boardTop)
	}

	switch {
	case snap.Over:
		title, color := g.outcome(snap)
		sub := fmt.Sprintf("Score %d  |  Enter: restart  B: menu", snap.Sides[engine.SideHuman].Score)
		drawCenteredMessage(dst, title, sub, color)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
}

func (g *Game) outcome(snap engine.Snapshot) (string, core.Color) {
	switch {
	case snap.HasWinner && snap.Winner == engine.SideHuman:
		return "YOU WIN!", core.ColorBrightGreen
	case snap.HasWinner:
		return "CPU WINS!", core.ColorBrightRed
	case g.mode == ModeTimeAttack && !snap.Sides[engine.SideHuman].Lost:
		return "TIME UP", core.ColorBrightYellow
	}
	return "GAME OVER", core.ColorBrightRed
}

// drawSide draws one board at (x, y): the incoming garbage indicator above
// it, the framed grid, the raise bar and the score line below.
func (g *Game) drawSide(dst *core.Screen, v engine.SideView, side engine.Side, x, y int) {
	if g.shake[side] > 0 {
		if g.ticks%2 == 0 {
			x++
		} else {
			x--
		}
	}

	label := "YOU"
	if side == engine.SideCPU {
		label = "CPU"
	}
	if v.Incoming > 0 {
		dst.DrawTextColor(x, y-1, fmt.Sprintf("▼%d %.1fs", v.Incoming, v.Hold.Seconds()), core.ColorOrange)
	} else {
		dst.DrawTextColor(x, y-1, label, core.ColorGray)
	}

	frame := core.ColorGray
	if v.Lost {
		frame = core.ColorRed
	}
	dst.DrawBox(core.NewRect(x, y, boardW, boardH), frame)

	for cx := 0; cx < engine.Width; cx++ {
		for cy := 0; cy < engine.Height; cy++ {
			cv := v.Cells[cx][cy]
			if cv.Empty {
				continue
			}
			row := core.Clamp(int(math.Round(cv.VisualY)), 0, engine.Height-1)
			glyph, color := g.cellGlyph(cv)
			px := x + 1 + cx*cellW
			dst.SetCell(px, y+1+row, glyph, color)
			dst.SetCell(px+1, y+1+row, glyph, color)
		}
	}

	if !v.Lost {
		g.drawCursor(dst, v, x, y)
	}

	inner := boardW - 2
	filled := core.Clamp(int(math.Round(v.RaiseProgress*float64(inner))), 0, inner)
	barColor := core.ColorDarkGray
	if v.ManualRaise {
		barColor = core.ColorBrightCyan
	}
	for i := 0; i < filled; i++ {
		dst.SetCell(x+1+i, y+boardH, raiseGlyph, barColor)
	}

	dst.DrawTextColor(x, y+boardH+1, fmt.Sprintf("%-4s%8d", label, v.Score), core.ColorWhite)
}

func (g *Game) cellGlyph(cv engine.CellView) (rune, core.Color) {
	color := blockColors[cv.Type]
	if cv.State == engine.StateClearing {
		if (g.ticks/4)%2 == 0 {
			return blockGlyph, color.Bright()
		}
		return flashGlyph, core.ColorBrightWhite
	}
	return blockGlyph, color
}

// drawCursor brackets the two selected cells, tinted with their block colors.
func (g *Game) drawCursor(dst *core.Screen, v engine.SideView, x, y int) {
	for i := 0; i < 2; i++ {
		cx := v.Cursor.X + i
		color := core.ColorBrightWhite
		if cv := v.Cells[cx][v.Cursor.Y]; !cv.Empty {
			color = blockColors[cv.Type].Bright()
		}
		px := x + 1 + cx*cellW
		dst.SetCell(px, y+1+v.Cursor.Y, '[', color)
		dst.SetCell(px+1, y+1+v.Cursor.Y, ']', color)
	}
}

type hudLine struct {
	text  string
	color core.Color
}

func (g *Game) drawHUD(dst *core.Screen, snap engine.Snapshot, x, y int) {
	human := snap.Sides[engine.SideHuman]
	lines := []hudLine{
		{g.clockLine(snap), core.ColorBrightWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("COMBO   x%d", max(human.Combo, 1)), comboColor(human.Combo)},
		{fmt.Sprintf("ATTACK  %d", human.PendingAttack), core.ColorOrange},
		{fmt.Sprintf("RISE    %.1fs", g.duel.Board(engine.SideHuman).RaiseInterval().Seconds()), core.ColorCyan},
	}
	if cpu := snap.Sides[engine.SideCPU]; cpu.Present {
		lines = append(lines, hudLine{fmt.Sprintf("CPU ATK %d", cpu.PendingAttack), core.ColorGray})
	}

	for i, l := range lines {
		dst.DrawTextColor(x, y+i, l.text, l.color)
	}

	help := []string{"arrows move", "space  swap", "r      raise", "p      pause"}
	base := y + boardH - len(help) - 1
	for i, h := range help {
		dst.DrawTextColor(x, base+i, h, core.ColorDarkGray)
	}
}

func (g *Game) clockLine(snap engine.Snapshot) string {
	if g.mode == ModeTimeAttack {
		return "LEFT    " + formatClock(snap.Remaining)
	}
	return "TIME    " + formatClock(snap.Elapsed)
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func comboColor(combo int) core.Color {
	if combo > 1 {
		return core.ColorBrightYellow
	}
	return core.ColorWhite
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	dst.DrawTextColor(box.X+(w-len([]rune(title)))/2, box.Y+1, title, color)
	dst.DrawTextColor(box.X+(w-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorWhite)
}
