package racer

import (
	"fmt"
	"time"

	"justapengu.in/ledracer/pkg/neopixel"
)

// Game rules are compile-time constants. Only the hardware wiring is
// runtime-configurable.
const (
	TrackLength = 60
	PlayerCount = 4
	WinningLaps = 3

	// humanStep is deliberately larger than any automatic step so that a
	// player actually pressing the button beats the automated one.
	humanStep  = 3
	botStepMin = 1
	botStepMax = 3 // exclusive

	gameDuration        = time.Minute
	celebrationDuration = time.Second * 10
	blinkInterval       = time.Millisecond * 250

	countdownFrom = 10
	countdownStep = time.Millisecond * 500

	baseTrailLength = 3
	maxTrailLength  = 5
	fadeStep        = 50

	tickInterval = time.Millisecond * 20
)

type HardwareConfig struct {
	Strip      neopixel.Config `json:"strip" yaml:"strip"`
	ButtonPins []int           `json:"button_pins" yaml:"button_pins"`
}

// DefaultHardwareConfig matches the reference wiring: a 60 pixel strip on
// GPIO 21 and three arcade buttons on GPIO 5, 6 and 13.
func DefaultHardwareConfig() *HardwareConfig {
	return &HardwareConfig{
		Strip: neopixel.Config{
			GPIOPin:    21,
			LedCount:   TrackLength,
			Brightness: 128,
			DMAChannel: 10,
		},
		ButtonPins: []int{5, 6, 13},
	}
}

func (c *HardwareConfig) Validate() error {
	if c.Strip.LedCount < TrackLength {
		return fmt.Errorf("racer: strip has %d pixels, the track needs %d", c.Strip.LedCount, TrackLength)
	}

	if c.Strip.GPIOPin <= 0 {
		return fmt.Errorf("racer: invalid strip gpio pin: %d", c.Strip.GPIOPin)
	}

	if c.Strip.Brightness <= 0 || c.Strip.Brightness > 255 {
		return fmt.Errorf("racer: strip brightness must be in 1-255, got %d", c.Strip.Brightness)
	}

	if len(c.ButtonPins) > PlayerCount {
		return fmt.Errorf("racer: %d button pins configured, the game has %d player slots", len(c.ButtonPins), PlayerCount)
	}

	seen := make(map[int]bool)

	for _, pin := range c.ButtonPins {
		if pin <= 0 {
			return fmt.Errorf("racer: invalid button pin: %d", pin)
		}

		if seen[pin] {
			return fmt.Errorf("racer: button pin %d assigned twice", pin)
		}

		seen[pin] = true
	}

	return nil
}
