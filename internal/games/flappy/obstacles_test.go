package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestObstacleFootprint(t *testing.T) {
	o := Obstacle{X: 20.7, GapStart: 5, GapEnd: 11}

	tests := []struct {
		col      int
		expected bool
	}{
		{19, false},
		{20, true},
		{21, true},
		{22, false},
	}
	for _, tc := range tests {
		if got := o.Covers(tc.col); got != tc.expected {
			t.Errorf("Covers(%d) = %v, expected %v", tc.col, got, tc.expected)
		}
	}

	if !o.InGap(5) || !o.InGap(10) {
		t.Error("rows 5 and 10 should be inside the gap")
	}
	if o.InGap(4) || o.InGap(11) {
		t.Error("rows 4 and 11 should be outside the gap")
	}

	if neg := (Obstacle{X: -0.5}); neg.Column() != -1 {
		t.Errorf("Column() should floor negative positions, got %d", neg.Column())
	}
}

func TestObstaclePassedAndRemoved(t *testing.T) {
	s := newTestState(t, 80, 20, 1)
	s.obstacles.items = append(s.obstacles.items, Obstacle{X: 5.0, GapStart: 3, GapEnd: 9})

	s.AdvanceObstacles(1.0)

	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	for _, o := range s.Obstacles() {
		if o.X == -10.0 {
			t.Error("obstacle scrolled to x=-10 should have been removed")
		}
	}
	if s.Over() {
		t.Error("obstacle far left of the entity must not collide")
	}
}

func TestScoreAwardedOnce(t *testing.T) {
	s := newTestState(t, 80, 20, 1)
	s.obstacles.items = append(s.obstacles.items, Obstacle{X: 21.0, GapStart: 7, GapEnd: 13})

	s.AdvanceObstacles(0.1) // x = 19.5, passes column 20
	if s.Score() != 1 {
		t.Fatalf("Score() = %d after passing, expected 1", s.Score())
	}

	for i := 0; i < 5; i++ {
		before := s.Score()
		s.AdvanceObstacles(0.01)
		if s.Score() < before {
			t.Fatalf("score decreased from %d to %d", before, s.Score())
		}
		if s.Score() != 1 {
			t.Fatalf("passed obstacle re-awarded score: %d", s.Score())
		}
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		row      float64
		expected bool
	}{
		{"in gap at footprint", 20.5, 10, false},
		{"gap top row", 20.5, 7, false},
		{"gap last row", 20.5, 12.9, false},
		{"above gap", 20.5, 6, true},
		{"below gap", 20.5, 13, true},
		{"trailing column covers entity", 19.2, 2, true},
		{"obstacle right of footprint", 21.1, 2, false},
		{"obstacle left of footprint", 18.9, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(t, 80, 20, 1)
			s.entityY = tc.row
			s.obstacles.items = append(s.obstacles.items, Obstacle{X: tc.x, GapStart: 7, GapEnd: 13})

			s.AdvanceObstacles(0)

			if s.Over() != tc.expected {
				t.Errorf("Over() = %v, expected %v", s.Over(), tc.expected)
			}
		})
	}
}

func TestCollisionSticky(t *testing.T) {
	s := newTestState(t, 80, 20, 1)
	s.entityY = 2
	s.obstacles.items = append(s.obstacles.items, Obstacle{X: 20.5, GapStart: 7, GapEnd: 13})

	s.AdvanceObstacles(0)
	if !s.Over() {
		t.Fatal("expected collision")
	}

	s.entityY = 10
	s.AdvanceObstacles(0)
	if !s.Over() {
		t.Error("game over must persist until reset")
	}
}

func TestSpawnPolicy(t *testing.T) {
	s := newTestState(t, 80, 20, 1)

	s.AdvanceObstacles(0)
	obs := s.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("empty field should spawn one obstacle, got %d", len(obs))
	}
	if obs[0].X != 79 {
		t.Errorf("spawn X = %f, expected width-1", obs[0].X)
	}

	// 79 - 15 = 64, still right of 80-20
	s.AdvanceObstacles(1.0)
	if n := len(s.Obstacles()); n != 1 {
		t.Fatalf("no spawn expected before threshold, got %d obstacles", n)
	}

	// 64 - 7.5 = 56.5, left of the threshold
	s.AdvanceObstacles(0.5)
	obs = s.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected a second obstacle after threshold, got %d", len(obs))
	}
	if obs[0].X >= obs[1].X {
		t.Errorf("obstacles should be ordered by spawn time: %f then %f", obs[0].X, obs[1].X)
	}
}

func TestSpawnGeometry(t *testing.T) {
	for h := MinHeight; h <= 60; h++ {
		f := newObstacleField(boundsFor(80, h), rand.New(rand.NewSource(int64(h))))

		minSeen, maxSeen := h, 0
		for i := 0; i < 400; i++ {
			f.spawn()
			o := f.items[len(f.items)-1]

			if o.GapStart < GapMargin {
				t.Fatalf("h=%d: GapStart %d < %d", h, o.GapStart, GapMargin)
			}
			if o.GapStart+GapSize > h-GapMargin {
				t.Fatalf("h=%d: GapStart %d + %d > %d", h, o.GapStart, GapSize, h-GapMargin)
			}
			if o.GapEnd-o.GapStart != GapSize {
				t.Fatalf("h=%d: gap size %d, expected %d", h, o.GapEnd-o.GapStart, GapSize)
			}
			if o.GapStart < minSeen {
				minSeen = o.GapStart
			}
			if o.GapStart > maxSeen {
				maxSeen = o.GapStart
			}
		}

		if h == 20 && (minSeen != GapMargin || maxSeen != h-GapSize-GapMargin-1) {
			t.Errorf("h=20: gap starts span [%d, %d], expected [%d, %d]",
				minSeen, maxSeen, GapMargin, h-GapSize-GapMargin-1)
		}
	}
}

func boundsFor(w, h int) core.Bounds {
	return core.Bounds{W: w, H: h}
}
