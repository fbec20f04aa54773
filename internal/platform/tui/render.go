package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles using ANSI color indexes.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the lipgloss style for a frame color.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a frame to a styled string, one lipgloss run per
// stretch of same-colored cells in a row.
func RenderScreen(frame *core.Screen) string {
	rows := make([]string, frame.Height())
	for y := range rows {
		rows[y] = renderRow(frame, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(frame *core.Screen, y int) string {
	var (
		out   strings.Builder
		run   []rune
		color core.Color
	)
	flush := func() {
		if len(run) > 0 {
			out.WriteString(styleFor(color).Render(string(run)))
			run = run[:0]
		}
	}

	for x := 0; x < frame.Width(); x++ {
		cell := frame.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return out.String()
}
