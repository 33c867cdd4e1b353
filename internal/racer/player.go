package racer

import (
	"time"

	"justapengu.in/ledracer/pkg/neopixel"
)

// DefaultColors are the player identity colors, indexed by player slot.
var DefaultColors = []neopixel.Color{
	{R: 255},
	{G: 255},
	{B: 255},
	{R: 255, G: 255},
}

type Lap struct {
	Number        int
	LapTime       time.Duration
	CompletedTime time.Time
}

// Player is one entrant on the circular track. Position is the index of the
// player's leading pixel, Laps counts completed wraps. Color never changes
// for the lifetime of the game.
type Player struct {
	Index int
	Color neopixel.Color

	Position int
	Laps     int
}

func NewPlayer(index int, color neopixel.Color) *Player {
	return &Player{
		Index: index,
		Color: color,
	}
}

// Advance moves the player forward by steps pixels, wrapping at the track
// end. It reports whether the move completed a lap. steps must not be
// negative; callers only ever produce fixed or small random positive steps.
func (p *Player) Advance(steps int) bool {
	newPosition := p.Position + steps

	if newPosition >= TrackLength {
		p.Laps++
		p.Position = newPosition % TrackLength

		return true
	}

	p.Position = newPosition

	return false
}

// Reset returns the mutable race state to its starting values. The player's
// identity fields are untouched, players persist across games.
func (p *Player) Reset() {
	p.Position = 0
	p.Laps = 0
}
