package racer

// Debouncer turns the raw level of a pulled-up button line into
// edge-triggered press events. It fires exactly once per physical press, on
// the tick where the line transitions from idle (high) to pressed (low),
// and never on the release edge or while the button is held.
type Debouncer struct {
	lastLevel bool
}

func NewDebouncer() *Debouncer {
	// lines idle high, so a button held at startup still counts as a press
	return &Debouncer{lastLevel: true}
}

// Pressed consumes the current raw level and reports whether a press edge
// occurred. The stored level is updated on every call regardless of the
// outcome, so the next call always compares against correct history.
func (d *Debouncer) Pressed(level bool) bool {
	pressed := !level && d.lastLevel
	d.lastLevel = level

	return pressed
}
