package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Styles maps core.Color paint slots to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the styles for a theme. Empty colours fall back to the
// terminal default.
func NewStyles(theme config.Theme) Styles {
	fg := func(c string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}
	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorHead:    fg(theme.Head).Bold(true),
		core.ColorBody:    fg(theme.Body),
		core.ColorBorder:  fg(theme.Border),
		core.ColorHUD:     fg(theme.HUD).Bold(true),
		core.ColorOverlay: fg(theme.Overlay).Bold(true),
		core.ColorApple:   fg(theme.Apple),
		core.ColorBanana:  fg(theme.Banana),
		core.ColorOrange:  fg(theme.Orange),
		core.ColorPear:    fg(theme.Pear),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
