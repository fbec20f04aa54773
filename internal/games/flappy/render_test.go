package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestGameRender(t *testing.T) {
	s := newTestState(t, 80, 20, 1)
	p := DefaultPalette()
	screen := core.NewScreen(80, 20)

	s.Render(screen, p)

	if got := screen.GetCell(4, 5); got.Rune != BackgroundChar || got.Color != p.Background {
		t.Errorf("background dot expected at (4, 5), got %+v", got)
	}
	if screen.Get(5, 5) != ' ' {
		t.Errorf("background should only fill every %dth column, got %q", backgroundStride, screen.Get(5, 5))
	}

	entity := screen.GetCell(s.EntityX(), s.EntityRow())
	if entity.Rune != s.Glyph() || entity.Color != p.Entity {
		t.Errorf("entity cell = %+v, expected %q in %v", entity, s.Glyph(), p.Entity)
	}

	if !strings.HasPrefix(screen.Row(0), "Score: 0") {
		t.Errorf("score should be drawn at the top-left, row 0 = %q", screen.Row(0))
	}

	if strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner should not be drawn while playing")
	}
}

func TestRenderObstacle(t *testing.T) {
	s := newTestState(t, 80, 20, 1)
	s.obstacles.items = append(s.obstacles.items, Obstacle{X: 40.6, GapStart: 5, GapEnd: 11})
	screen := core.NewScreen(80, 20)

	s.Render(screen, DefaultPalette())

	tests := []struct {
		y    int
		want rune
	}{
		{0, PillarChar},
		{3, PillarChar},
		{4, PillarCapAbove},
		{5, BackgroundChar}, // gap shows the background grid
		{10, BackgroundChar},
		{11, PillarCapBelow},
		{12, PillarChar},
		{19, PillarChar},
	}
	for _, tc := range tests {
		if got := screen.Get(40, tc.y); got != tc.want {
			t.Errorf("column 40 row %d = %q, expected %q", tc.y, got, tc.want)
		}
	}
	if screen.GetCell(40, 12).Color != core.ColorGreen {
		t.Errorf("pillar color = %v, expected green", screen.GetCell(40, 12).Color)
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestState(t, 80, 20, 1)
	s.over = true
	s.score = 3
	screen := core.NewScreen(80, 20)

	s.Render(screen, DefaultPalette())

	row := screen.Row(10)
	if !strings.Contains(row, GameOverText) {
		t.Errorf("banner should be on row height/2, got %q", row)
	}
	x := (80 - len(GameOverText)) / 2
	if screen.GetCell(x, 10).Color != core.ColorRed {
		t.Errorf("banner color = %v, expected red", screen.GetCell(x, 10).Color)
	}
	if !strings.HasPrefix(screen.Row(0), "Score: 3") {
		t.Errorf("row 0 = %q, expected score 3", screen.Row(0))
	}
}
