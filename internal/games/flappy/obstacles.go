package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a one-cell-wide pillar pair with a passable gap, scrolling
// right to left.
type Obstacle struct {
	X        float64 // Horizontal position, decreases every tick
	GapStart int     // First passable row
	GapEnd   int     // First blocked row below the gap
	Passed   bool    // Whether the entity has passed this obstacle (for scoring)
}

// Column returns the screen column the obstacle occupies.
func (o Obstacle) Column() int {
	return int(math.Floor(o.X))
}

// Covers reports whether col falls within the obstacle's horizontal
// footprint, [floor(x), floor(x)+1].
func (o Obstacle) Covers(col int) bool {
	c := o.Column()
	return col >= c && col <= c+1
}

// InGap reports whether row is inside [GapStart, GapEnd).
func (o Obstacle) InGap(row int) bool {
	return row >= o.GapStart && row < o.GapEnd
}

// Above returns the pillar run from the top of the screen to the gap.
func (o Obstacle) Above() core.Rect {
	return core.NewRect(o.Column(), 0, 1, o.GapStart)
}

// Below returns the pillar run from the gap down to the bottom of the screen.
func (o Obstacle) Below(screenH int) core.Rect {
	return core.NewRect(o.Column(), o.GapEnd, 1, screenH-o.GapEnd)
}

// obstacleField handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order, so the last one is the rightmost.
type obstacleField struct {
	items  []Obstacle
	rng    *rand.Rand
	bounds core.Bounds
}

func newObstacleField(b core.Bounds, rng *rand.Rand) *obstacleField {
	return &obstacleField{
		items:  make([]Obstacle, 0, 8),
		rng:    rng,
		bounds: b,
	}
}

func (f *obstacleField) clear() {
	f.items = f.items[:0]
}

// update scrolls every obstacle, marks the ones that dropped below
// entityX as passed and reports whether any of them blocks (col, row).
// Returns the number of newly passed obstacles.
func (f *obstacleField) update(dt float64, col, row int) (passed int, hit bool) {
	dx := ScrollSpeed * dt
	for i := range f.items {
		o := &f.items[i]
		o.X -= dx

		if !o.Passed && o.X < float64(col) {
			o.Passed = true
			passed++
		}

		if o.Covers(col) && !o.InGap(row) {
			hit = true
		}
	}
	return passed, hit
}

// prune removes obstacles that have reached the left screen edge.
func (f *obstacleField) prune() {
	kept := f.items[:0]
	for _, o := range f.items {
		if o.X > 0 {
			kept = append(kept, o)
		}
	}
	f.items = kept
}

// needsSpawn reports whether the field is empty or the newest obstacle has
// scrolled left of the spawn threshold.
func (f *obstacleField) needsSpawn() bool {
	if len(f.items) == 0 {
		return true
	}
	last := f.items[len(f.items)-1]
	return last.X < float64(f.bounds.W)-SpawnThreshold
}

// spawn appends one obstacle at the right edge with a uniformly random gap,
// leaving GapMargin rows above and below it.
func (f *obstacleField) spawn() {
	span := f.bounds.H - GapSize - 2*GapMargin
	gapStart := GapMargin + f.rng.Intn(span)

	f.items = append(f.items, Obstacle{
		X:        float64(f.bounds.W - 1),
		GapStart: gapStart,
		GapEnd:   gapStart + GapSize,
	})
}

func (f *obstacleField) snapshot() []Obstacle {
	out := make([]Obstacle, len(f.items))
	copy(out, f.items)
	return out
}
