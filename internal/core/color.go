package core

// Color identifies the role a screen cell is drawn with.
// Frontends resolve roles to concrete colors from the configured palette.
type Color uint8

// Cell roles.
const (
	ColorDefault Color = iota
	ColorHead
	ColorSegment
	ColorFood
	ColorHUD
	ColorFrame
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorHead:
		return "head"
	case ColorSegment:
		return "segment"
	case ColorFood:
		return "food"
	case ColorHUD:
		return "hud"
	case ColorFrame:
		return "frame"
	default:
		return "unknown"
	}
}
