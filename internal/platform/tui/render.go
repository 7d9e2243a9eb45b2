package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are styled together to keep escape
// sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
