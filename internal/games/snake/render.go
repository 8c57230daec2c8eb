package snake

import (
	"fmt"

	"github.com/vovakirdan/underwater-snake/internal/core"
)

// Terminal layout. Each board cell is two columns wide so the grid looks
// square in a typical terminal font.
const (
	cellCols  = 2
	hudRows   = 2 // Title line and separator
	borderPad = 1
)

// layoutSize returns the terminal size needed to draw the whole board.
func (g *Game) layoutSize() (w, h int) {
	n := g.geom.CellCount
	return n*cellCols + 2*borderPad, hudRows + n + 2*borderPad
}

// boardRect returns the bordered board area, centered horizontally.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w, _ := g.layoutSize()
	x := max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudRows, w, g.geom.CellCount+2*borderPad)
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.layoutSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}
	if g.round == nil {
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorCyan)

	g.renderFood(dst, board)
	g.renderSnake(dst, board)

	switch {
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.round.State() == StateStopped:
		g.renderOverlay(dst, "Game Over", "Press a direction to swim again")
	}
}

// renderHUD draws the two-tone title, the score, and the separator.
func (g *Game) renderHUD(dst *core.Screen) {
	x := dst.DrawTextColored(1, 0, "Underwater", core.ColorCyan)
	dst.DrawTextColored(x+1, 0, "Snake", core.ColorMagenta)

	score := 0
	if g.round != nil {
		score = g.round.Score()
	}
	stats := fmt.Sprintf("Score: %d  Best: %d ", score, g.best)
	// Narrow screens push the stats right rather than over the title.
	sx := core.Clamp(dst.Width()-len(stats), x+len("Snake")+2, dst.Width())
	dst.DrawTextColored(sx, 0, stats, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// cellPos maps a board cell to the terminal column and row of its left half.
func cellPos(board core.Rect, c Cell) (int, int) {
	return board.X + borderPad + c.X*cellCols, board.Y + borderPad + c.Y
}

func (g *Game) renderFood(dst *core.Screen, board core.Rect) {
	food := g.round.Food()
	if food == NoCell {
		return
	}
	x, y := cellPos(board, food)
	dst.SetColored(x, y, '>', core.ColorOrange)
	dst.SetColored(x+1, y, '<', core.ColorOrange)
}

func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	cells := g.round.Body().Cells()
	// Tail first so the head wins if anything overlaps.
	for i := len(cells) - 1; i >= 0; i-- {
		x, y := cellPos(board, cells[i])
		fill := '▓'
		if i == 0 {
			fill = '█'
		}
		dst.SetColored(x, y, fill, core.ColorMagenta)
		dst.SetColored(x+1, y, fill, core.ColorMagenta)
	}
}

// renderOverlay draws a message box in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 4
	cx, cy := dst.Bounds().Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+2, subtitle, core.ColorGray)
}
