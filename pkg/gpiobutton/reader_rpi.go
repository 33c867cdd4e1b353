//go:build linux && arm
// +build linux,arm

package gpiobutton

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphReader struct {
	pins map[int]gpio.PinIO
}

// Open initialises periph host state and configures every listed pin as a
// pulled-up input. An unknown BCM number or a pin that cannot be configured
// is a configuration error and fails the whole Open.
func Open(pins []int) (Reader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpiobutton: could not init periph host: %w", err)
	}

	reader := &periphReader{pins: make(map[int]gpio.PinIO)}

	for _, pin := range pins {
		p := gpioreg.ByName(fmt.Sprintf("GPIO%d", pin))

		if p == nil {
			return nil, fmt.Errorf("gpiobutton: no such pin: GPIO%d", pin)
		}

		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("gpiobutton: could not configure GPIO%d as input: %w", pin, err)
		}

		reader.pins[pin] = p
	}

	return reader, nil
}

func (r *periphReader) Level(pin int) bool {
	p, ok := r.pins[pin]

	if !ok {
		return true
	}

	return p.Read() == gpio.High
}

func (r *periphReader) Close() error {
	return nil
}
