package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pricing-bot/internal/theme"
)

type terminalColors struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var terminalPalettes = map[theme.Theme]terminalColors{
	theme.Light: {Accent: lipgloss.Color("#005F9E"), Muted: lipgloss.Color("#4A4A4A")},
	theme.Dark:  {Accent: lipgloss.Color("#6EB6FF"), Muted: lipgloss.Color("#A0A0A0")},
}

// Colorize styles a plain-text Screen for a terminal: the title bold in the
// theme accent and the bracket line muted. Other lines are left alone so
// table columns stay aligned. Escapes are dropped when stdout is not a TTY.
func Colorize(screen string, t theme.Theme) string {
	colors, ok := terminalPalettes[t]
	if !ok {
		colors = terminalPalettes[theme.Light]
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(colors.Accent)
	muted := lipgloss.NewStyle().Foreground(colors.Muted)

	lines := strings.Split(screen, "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = title.Render(line)
		case strings.HasPrefix(line, "Monthly GGR:"):
			lines[i] = muted.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
