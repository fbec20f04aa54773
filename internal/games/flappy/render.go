package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameOverText is shown centered on the screen when the round ends.
const GameOverText = "GAME OVER - Press 'r' to restart or 'q' to quit"

// backgroundStride is the column spacing of the background dot grid.
const backgroundStride = 4

// Palette assigns colors to the drawable elements of the game.
type Palette struct {
	Background core.Color
	Entity     core.Color
	Obstacle   core.Color
	Score      core.Color
	Banner     core.Color
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorCyan,
		Entity:     core.ColorYellow,
		Obstacle:   core.ColorGreen,
		Score:      core.ColorWhite,
		Banner:     core.ColorRed,
	}
}

// Render draws the current game state to the screen.
// Pillars are drawn after the entity, so a colliding entity is hidden.
func (s *State) Render(dst *core.Screen, p Palette) {
	dst.Clear()

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x += backgroundStride {
			dst.Set(x, y, BackgroundChar, p.Background)
		}
	}

	dst.Set(s.entityX, s.EntityRow(), s.Glyph(), p.Entity)

	for _, o := range s.obstacles.items {
		drawObstacle(dst, o, p.Obstacle)
	}

	dst.DrawText(0, 0, fmt.Sprintf("Score: %d", s.score), p.Score)

	if s.over {
		dst.DrawTextCentered(dst.Height()/2, GameOverText, p.Banner)
	}
}

// drawObstacle renders the two vertical runs of a pillar with their caps.
func drawObstacle(dst *core.Screen, o Obstacle, c core.Color) {
	x := o.Column()
	if x < 0 || x >= dst.Width() {
		return
	}

	if above := o.Above(); !above.Empty() {
		dst.FillRect(above, PillarChar, c)
		dst.Set(x, above.Bottom()-1, PillarCapAbove, c)
	}

	if below := o.Below(dst.Height()); !below.Empty() {
		dst.FillRect(below, PillarChar, c)
		dst.Set(x, below.Y, PillarCapBelow, c)
	}
}
