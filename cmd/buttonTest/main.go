package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"

	"justapengu.in/ledracer/internal/racer"
	"justapengu.in/ledracer/pkg/gpiobutton"
)

// buttonTest polls the configured button pins and logs every press and
// release edge, to verify the wiring of the arcade buttons. Buttons must be
// wired COM to ground and NO to the pin, the internal pull-up is enabled.

// pinWatcher wraps the game's edge detector with enough state to also
// report releases and count presses.
type pinWatcher struct {
	debouncer *racer.Debouncer
	held      bool
	presses   int
}

func newPinWatcher() *pinWatcher {
	return &pinWatcher{debouncer: racer.NewDebouncer()}
}

type pinEvent uint8

const (
	pinEventNone pinEvent = iota
	pinEventPressed
	pinEventReleased
)

func (w *pinWatcher) observe(level bool) pinEvent {
	if w.debouncer.Pressed(level) {
		w.held = true
		w.presses++

		return pinEventPressed
	}

	if w.held && level {
		w.held = false

		return pinEventReleased
	}

	return pinEventNone
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	pins := racer.DefaultHardwareConfig().ButtonPins

	reader, err := gpiobutton.Open(pins)

	if err != nil {
		logger.WithError(err).Fatal("Could not open button GPIO")
	}

	defer reader.Close()

	logger.Infof("Watching pins %v, press the buttons. Ctrl+C to exit", pins)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	watchers := make(map[int]*pinWatcher)

	for _, pin := range pins {
		watchers[pin] = newPinWatcher()
	}

	tick := time.NewTicker(time.Millisecond * 20)
	defer tick.Stop()

	for {
		select {
		case <-c:
			logger.Infof("Stopped")
			return
		case <-tick.C:
			for _, pin := range pins {
				watcher := watchers[pin]

				switch watcher.observe(reader.Level(pin)) {
				case pinEventPressed:
					logger.Infof("GPIO%d PRESSED (press #%d)", pin, watcher.presses)
				case pinEventReleased:
					logger.Infof("GPIO%d released", pin)
				}
			}
		}
	}
}
