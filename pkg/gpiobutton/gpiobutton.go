// Package gpiobutton reads the raw logic level of arcade buttons wired
// between a GPIO pin and ground, with the pin's internal pull-up enabled.
// Idle reads high, pressed reads low. Pins are addressed by BCM number.
//
// Real GPIO access (via periph.io) only compiles on linux/arm. Other builds
// get a stub whose pins always read idle, so that the game binary can still
// be built and run on a desktop machine.
package gpiobutton

type Reader interface {
	// Level returns true while the pin reads logic high. The read is a
	// non-blocking snapshot, software debouncing is the caller's concern.
	Level(pin int) bool
	Close() error
}

// Fake is a Reader whose levels are set by tests. Unset pins read high,
// matching the pull-up idle state of real hardware.
type Fake struct {
	levels map[int]bool
}

func NewFake() *Fake {
	return &Fake{levels: make(map[int]bool)}
}

func (f *Fake) Level(pin int) bool {
	level, ok := f.levels[pin]

	if !ok {
		return true
	}

	return level
}

// Press pulls a pin low, as a closed button would.
func (f *Fake) Press(pin int) {
	f.levels[pin] = false
}

// Release returns a pin to its pulled-up idle state.
func (f *Fake) Release(pin int) {
	f.levels[pin] = true
}

func (f *Fake) Close() error {
	return nil
}
