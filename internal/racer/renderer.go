package racer

import (
	"justapengu.in/ledracer/pkg/neopixel"
)

var countdownColor = neopixel.Color{R: 128, G: 128, B: 128}

// Renderer maps race state onto the pixel buffer. Every frame clears the
// whole buffer, draws each player's trail in index order and pushes the
// buffer exactly once. Overlapping trails overwrite each other, later
// players win, trails are cosmetic and no blending is attempted.
type Renderer struct {
	strip neopixel.Strip
}

func NewRenderer(strip neopixel.Strip) *Renderer {
	return &Renderer{strip: strip}
}

func (r *Renderer) DrawFrame(players []*Player) error {
	r.strip.Clear()

	for _, player := range players {
		r.drawTrail(player)
	}

	return r.strip.Show()
}

func (r *Renderer) drawTrail(player *Player) {
	length := trailLength(player.Laps)

	for j := 0; j < length; j++ {
		index := (player.Position - j + TrackLength) % TrackLength
		r.strip.SetPixel(index, fadeColor(player.Color, j))
	}
}

// DrawCountdown lights `remaining` pixels in a neutral color.
func (r *Renderer) DrawCountdown(remaining int) error {
	r.strip.Clear()

	for i := 0; i < remaining && i < r.strip.PixelCount(); i++ {
		r.strip.SetPixel(i, countdownColor)
	}

	return r.strip.Show()
}

// DrawSolid fills the whole strip with one color, used by the celebration
// blink.
func (r *Renderer) DrawSolid(color neopixel.Color) error {
	neopixel.Fill(r.strip, color)

	return r.strip.Show()
}

// Blank clears the display and pushes the empty frame.
func (r *Renderer) Blank() error {
	return neopixel.Blank(r.strip)
}

// trailLength grows with completed laps up to a hard cap, so a quick glance
// at the strip shows who is ahead.
func trailLength(laps int) int {
	length := laps + baseTrailLength

	if length > maxTrailLength {
		return maxTrailLength
	}

	return length
}

// fadeColor dims a trail pixel linearly with its offset behind the leading
// edge: full brightness at offset 0, fadeStep less of 255 per step, floored
// at black.
func fadeColor(color neopixel.Color, offset int) neopixel.Color {
	return color.Scale(255-fadeStep*offset, 255)
}
