package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Styles maps core.Color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the role styles from a configured palette. Every role
// shares the palette background.
func NewStyles(p config.Palette) Styles {
	base := lipgloss.NewStyle().Background(lipgloss.Color(p.Background.Hex()))
	fg := func(c config.RGB) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c.Hex()))
	}
	return Styles{
		core.ColorDefault: base,
		core.ColorHead:    fg(p.Head),
		core.ColorSegment: fg(p.Segment),
		core.ColorFood:    fg(p.Food),
		core.ColorHUD:     fg(p.Text).Bold(true),
		core.ColorFrame:   fg(p.Text).Faint(true),
	}
}

// style returns the style for a role, falling back to the default role.
func (st Styles) style(c core.Color) lipgloss.Style {
	if s, ok := st[c]; ok {
		return s
	}
	if s, ok := st[core.ColorDefault]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	if s.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
