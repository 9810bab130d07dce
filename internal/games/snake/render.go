package snake

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal layout: a board cell is two columns wide and one row tall, the
// FPS line sits above the board frame and the score line below it.
const (
	cellColumns = 2
	cellRows    = 1
	hudRows     = 2
)

var glyphs = map[core.Color][]rune{
	core.ColorHead:    {'█', '█'},
	core.ColorSegment: {'▓', '▓'},
	core.ColorFood:    {'(', ')'},
}

// Render draws the game to a terminal screen. A screen with no area is
// skipped entirely.
func (g *Game) Render(dst *core.Screen) {
	if dst.Empty() {
		return
	}
	dst.Clear()

	fps, score := g.HUDText()
	dst.DrawTextColored(0, 0, fps, core.ColorHUD)

	frame, ok := g.boardFrame(dst)
	if !ok {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	dst.DrawBox(frame, core.ColorFrame)

	area := frame.Inset(1)
	vp := Viewport{Width: float64(area.W), Height: float64(area.H), Board: g.board}
	for _, d := range g.Drawables() {
		drawCell(dst, vp, area, d)
	}

	sx := dst.Width() - 1 - len(score)
	dst.DrawTextColored(max(0, sx), dst.Height()-1, score, core.ColorHUD)
}

// boardFrame returns the rectangle of the board including its border,
// centered horizontally below the FPS line.
func (g *Game) boardFrame(dst *core.Screen) (core.Rect, bool) {
	w := g.board.Width*cellColumns + 2
	h := g.board.Height*cellRows + 2
	if dst.Width() < w || dst.Height() < h+hudRows {
		return core.Rect{}, false
	}
	return core.NewRect((dst.Width()-w)/2, 1, w, h), true
}

// drawCell fills the screen cells covered by a drawable.
func drawCell(dst *core.Screen, vp Viewport, area core.Rect, d Drawable) {
	x, y, w, h := vp.Rect(d)
	cols := max(1, int(math.Round(w)))
	rows := max(1, int(math.Round(h)))
	left := int(math.Floor(x + (w-float64(cols))/2 + 0.5))
	top := int(math.Floor(y + (h-float64(rows))/2 + 0.5))

	pattern := glyphs[d.Role]
	if len(pattern) == 0 {
		pattern = []rune{'?'}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sx, sy := area.X+left+c, area.Y+top+r
			if area.Contains(sx, sy) {
				dst.SetColored(sx, sy, pattern[c%len(pattern)], d.Role)
			}
		}
	}
}

// renderOverlay draws a centered overlay message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorFrame)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
