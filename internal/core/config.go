package core

import "time"

// RuntimeConfig contains what a frontend learns at startup and hands to the
// loop driver: the terminal size and the RNG seed.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means derive one from the clock
}

// Bounds returns the play field size described by the config.
func (c RuntimeConfig) Bounds() Bounds {
	return Bounds{W: c.ScreenW, H: c.ScreenH}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
