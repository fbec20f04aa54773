// Package flappy implements the simulation of a Flappy Bird-style game.
// The entity falls under gravity, flaps upward on input and must pass
// through the gaps of obstacles scrolling in from the right edge.
//
// The package is pure state transition: it never touches the terminal.
// The loop driver in internal/engine calls into it once per tick.
package flappy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Physics constants. Velocity is in rows per tick; dt is in seconds.
const (
	Gravity     = 0.05 // Acceleration per second of dt, before TimeScale
	TimeScale   = 10.0 // How strongly dt affects acceleration
	FlapImpulse = -0.3 // Velocity set on flap (negative = up)
	ScrollSpeed = 15.0 // Obstacle columns per second
)

// Obstacle spawn constants.
const (
	SpawnThreshold = 20.0 // Distance from the right edge before the next spawn
	GapSize        = 6    // Rows in every gap
	GapMargin      = 3    // Minimum rows kept above and below a gap
)

// MinWidth is the narrowest play field that can hold an obstacle.
const MinWidth = 2

// MinHeight is the shortest play field that leaves room for a gap plus its
// margins.
const MinHeight = GapSize + 2*GapMargin + 1

// AnimationPeriod is the number of ticks between entity glyph changes.
const AnimationPeriod = 5

// Visual characters for rendering.
var EntityGlyphs = [3]rune{'>', '^', '>'}

const (
	PillarChar     = '║'
	PillarCapAbove = '╦' // Last row of the run above the gap
	PillarCapBelow = '╩' // First row of the run below the gap
	BackgroundChar = '·'
)

// ErrTooSmall is returned when the terminal cannot fit an obstacle gap.
var ErrTooSmall = errors.New("flappy: play field too small")

// State holds all mutable world state for one game.
type State struct {
	bounds    core.Bounds
	entityX   int
	entityY   float64
	velocity  float64
	frame     int
	counter   int
	obstacles *obstacleField
	score     uint
	over      bool
}

// NewState creates a game for a play field of the given size.
// rng drives gap placement; pass a seeded source for reproducible games.
func NewState(b core.Bounds, rng *rand.Rand) (*State, error) {
	if b.W < MinWidth || b.H < MinHeight {
		return nil, fmt.Errorf("%w: %s, need at least %dx%d", ErrTooSmall, b, MinWidth, MinHeight)
	}
	if rng == nil {
		return nil, errors.New("flappy: nil rng")
	}

	s := &State{
		bounds:    b,
		entityX:   b.W / 4,
		obstacles: newObstacleField(b, rng),
	}
	s.Reset()
	return s, nil
}

// Reset starts a fresh round. Bounds and the entity column are kept.
func (s *State) Reset() {
	s.entityY = float64(s.bounds.H) / 2.0
	s.velocity = 0
	s.frame = 0
	s.counter = 0
	s.score = 0
	s.over = false
	s.obstacles.clear()
}

// AdvanceEntity applies gravity for dt seconds, moves the entity, cycles
// its glyph and clamps it to the play field.
func (s *State) AdvanceEntity(dt float64) {
	s.velocity += Gravity * dt * TimeScale
	s.entityY += s.velocity

	if s.counter%AnimationPeriod == 0 {
		s.frame = (s.frame + 1) % len(EntityGlyphs)
	}

	floor := float64(s.bounds.H - 1)
	switch {
	case s.entityY < 1.0:
		// Rests against the ceiling, no bounce
		s.entityY = 1.0
		s.velocity = 0
	case s.entityY >= floor:
		s.entityY = floor
		s.over = true
	}
}

// AdvanceObstacles scrolls obstacles for dt seconds, awards score for the
// ones passed, detects collisions, drops off-screen obstacles and spawns a
// new one when there is room.
func (s *State) AdvanceObstacles(dt float64) {
	passed, hit := s.obstacles.update(dt, s.entityX, s.EntityRow())
	s.score += uint(passed)
	if hit {
		s.over = true
	}

	s.obstacles.prune()

	if s.obstacles.needsSpawn() {
		s.obstacles.spawn()
	}
}

// Flap sets the entity velocity to FlapImpulse, discarding the current one.
func (s *State) Flap() {
	s.velocity = FlapImpulse
}

// Tick advances the animation counter. The driver calls it once per loop
// iteration, so glyph cadence follows the frame rate rather than wall time.
func (s *State) Tick() {
	s.counter++
}

// Bounds returns the play field size.
func (s *State) Bounds() core.Bounds {
	return s.bounds
}

// EntityX returns the fixed entity column.
func (s *State) EntityX() int {
	return s.entityX
}

// EntityY returns the continuous vertical position.
func (s *State) EntityY() float64 {
	return s.entityY
}

// EntityRow returns the screen row the entity occupies.
func (s *State) EntityRow() int {
	return int(s.entityY)
}

// Velocity returns the current vertical velocity.
func (s *State) Velocity() float64 {
	return s.velocity
}

// Glyph returns the current animation glyph.
func (s *State) Glyph() rune {
	return EntityGlyphs[s.frame]
}

// Score returns the number of obstacles passed this round.
func (s *State) Score() uint {
	return s.score
}

// Over reports whether the round has ended.
func (s *State) Over() bool {
	return s.over
}

// Obstacles returns a copy of the obstacles, oldest first.
func (s *State) Obstacles() []Obstacle {
	return s.obstacles.snapshot()
}
