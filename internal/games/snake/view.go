package snake

// Viewport maps board cells onto a drawing surface of Width x Height units
// (pixels for a window, character cells for a terminal).
//
// Translate follows a centered, y-up convention: the origin is the middle of
// the surface. ToScreen converts that into top-left, y-down coordinates.
type Viewport struct {
	Width  float64
	Height float64
	Board  Board
}

// TileSize returns the extent of one cell on each axis.
func (v Viewport) TileSize() (w, h float64) {
	return v.Width / float64(v.Board.Width), v.Height / float64(v.Board.Height)
}

// Translate returns the center of cell p relative to the surface center.
func (v Viewport) Translate(p Position) (x, y float64) {
	return convert(float64(p.X), v.Width, float64(v.Board.Width)),
		convert(float64(p.Y), v.Height, float64(v.Board.Height))
}

// Scale returns the extent of a drawable of the given size (fraction of a cell).
func (v Viewport) Scale(size float64) (w, h float64) {
	return size / float64(v.Board.Width) * v.Width, size / float64(v.Board.Height) * v.Height
}

// ToScreen converts centered y-up coordinates into top-left y-down ones.
func (v Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return x + v.Width/2, v.Height/2 - y
}

// Rect returns the top-left corner and extent of a drawable on screen.
func (v Viewport) Rect(d Drawable) (x, y, w, h float64) {
	cx, cy := v.ToScreen(v.Translate(d.Pos))
	w, h = v.Scale(d.Size)
	return cx - w/2, cy - h/2, w, h
}

func convert(pos, boundWindow, boundGame float64) float64 {
	tile := boundWindow / boundGame
	return pos/boundGame*boundWindow - boundWindow/2 + tile/2
}

// HUD margins for the score text, in surface units from the bottom-right corner.
const (
	ScoreMarginBottom = 5
	ScoreMarginRight  = 15
)

// ScoreAnchor returns the top-left corner for score text of the given
// extent, anchored to the bottom-right of a surface.
func ScoreAnchor(textW, textH, surfaceW, surfaceH float64) (x, y float64) {
	return surfaceW - ScoreMarginRight - textW, surfaceH - ScoreMarginBottom - textH
}
