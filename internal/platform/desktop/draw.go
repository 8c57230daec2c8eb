package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/underwater-snake/internal/games/snake"
)

var (
	colorWater  = color.NRGBA{50, 50, 50, 255}
	colorTeal   = color.NRGBA{0, 100, 100, 255}
	colorPurple = color.NRGBA{128, 0, 128, 255}
	colorHead   = color.NRGBA{160, 40, 160, 255}
	colorFish   = color.NRGBA{255, 140, 0, 255}
	colorFin    = color.NRGBA{230, 100, 0, 255}
	colorEye    = color.NRGBA{20, 20, 20, 255}
	colorScore  = color.NRGBA{0, 0, 0, 255}
	colorShade  = color.NRGBA{0, 0, 0, 160}
	colorText   = color.NRGBA{230, 230, 230, 255}
)

const (
	borderWidth = 5
	titleY      = 20
	titleScale  = 3
	hintScale   = 2
)

// segmentRoundness is the corner radius as a share of the cell edge.
const segmentRoundness = 0.25

// rect is a float rectangle in window pixels.
type rect struct {
	X, Y, W, H float32
}

// cellRect returns the pixel rectangle of a board cell.
func cellRect(geom snake.Geometry, c snake.Cell) rect {
	x, y := geom.CellOrigin(c)
	size := float32(geom.CellSize)
	return rect{X: float32(x), Y: float32(y), W: size, H: size}
}

// frameRect returns the outline drawn around the board.
func frameRect(geom snake.Geometry) rect {
	side := float32(geom.BoardSize() + 2*borderWidth)
	origin := float32(geom.Offset - borderWidth)
	return rect{X: origin, Y: origin, W: side, H: side}
}

// drawRounded fills r with rounded corners of radius rad.
func drawRounded(dst *ebiten.Image, r rect, rad float32, clr color.Color) {
	if rad*2 > r.W {
		rad = r.W / 2
	}
	vector.DrawFilledRect(dst, r.X+rad, r.Y, r.W-2*rad, r.H, clr, true)
	vector.DrawFilledRect(dst, r.X, r.Y+rad, r.W, r.H-2*rad, clr, true)
	vector.DrawFilledCircle(dst, r.X+rad, r.Y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, r.X+r.W-rad, r.Y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, r.X+rad, r.Y+r.H-rad, rad, clr, true)
	vector.DrawFilledCircle(dst, r.X+r.W-rad, r.Y+r.H-rad, rad, clr, true)
}

// drawFish draws the food as a small fish facing left inside r.
func drawFish(dst *ebiten.Image, r rect) {
	cx, cy := r.X+r.W*0.45, r.Y+r.H/2
	body := r.W * 0.28
	vector.DrawFilledRect(dst, r.X+r.W*0.7, r.Y+r.H*0.3, r.W*0.22, r.H*0.4, colorFin, true)
	vector.DrawFilledCircle(dst, cx-body*0.5, cy, body, colorFish, true)
	vector.DrawFilledCircle(dst, cx+body*0.5, cy, body*0.9, colorFish, true)
	vector.DrawFilledCircle(dst, cx-body*0.9, cy-body*0.3, r.W*0.05, colorEye, true)
}

// drawText draws s scaled up from the bitmap font with its top-left at x, y.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(basicfont.Face7x13.Ascent))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}

// textWidth returns the drawn width of s in window pixels.
func textWidth(s string, scale float64) float64 {
	return float64(text.BoundString(basicfont.Face7x13, s).Dx()) * scale
}

// drawBoard draws the whole window: title, score, frame, fish and snake.
func drawBoard(dst *ebiten.Image, g *snake.Game) {
	geom := g.Geometry()
	dst.Fill(colorWater)

	f := frameRect(geom)
	half := float32(borderWidth) / 2
	vector.StrokeRect(dst, f.X+half, f.Y+half, f.W-borderWidth, f.H-borderWidth, borderWidth, colorTeal, true)

	titleX := float64(geom.Offset - borderWidth)
	drawText(dst, "Underwater", titleX, titleY, titleScale, colorTeal)
	drawText(dst, "Snake", titleX+textWidth("Underwater ", titleScale), titleY, titleScale, colorPurple)

	round := g.Round()
	if round == nil {
		return
	}
	score := fmt.Sprintf("%d", round.Score())
	drawText(dst, score, float64(geom.WindowSize())-100, titleY, titleScale, colorScore)

	if food := round.Food(); food != snake.NoCell {
		drawFish(dst, cellRect(geom, food))
	}

	cells := round.Body().Cells()
	rad := float32(geom.CellSize) * segmentRoundness
	for i := len(cells) - 1; i >= 0; i-- {
		clr := colorPurple
		if i == 0 {
			clr = colorHead
		}
		drawRounded(dst, cellRect(geom, cells[i]), rad, clr)
	}

	switch {
	case g.Paused():
		drawBanner(dst, geom, "Paused", "Press P to continue")
	case round.State() == snake.StateStopped:
		drawBanner(dst, geom, "Game Over", "Press a direction to swim again")
	}
}

// drawBanner shades the board and writes a centered two-line message.
func drawBanner(dst *ebiten.Image, geom snake.Geometry, title, subtitle string) {
	side := float64(geom.WindowSize())
	boxH := float64(geom.CellSize * 4)
	boxY := side/2 - boxH/2
	vector.DrawFilledRect(dst, float32(geom.Offset), float32(boxY), float32(geom.BoardSize()), float32(boxH), colorShade, true)

	drawText(dst, title, (side-textWidth(title, titleScale))/2, boxY+12, titleScale, colorText)
	drawText(dst, subtitle, (side-textWidth(subtitle, hintScale))/2, boxY+boxH-40, hintScale, colorText)
}
