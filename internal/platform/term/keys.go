package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyAction maps a key event to a game action.
func KeyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r := ev.Rune(); r == 'c' || r == 'C' {
				return core.ActionQuit
			}
			return core.ActionNone
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return core.ActionQuit
		case 'r', 'R':
			return core.ActionRestart
		case ' ':
			return core.ActionFlap
		}
	}
	return core.ActionNone
}

var tcellColors = map[core.Color]tcell.Color{
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorMagenta: tcell.ColorPurple,
	core.ColorCyan:    tcell.ColorTeal,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorGray:    tcell.ColorGray,
}

// Style returns the tcell style for a frame color.
func Style(c core.Color) tcell.Style {
	fg, ok := tcellColors[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}
