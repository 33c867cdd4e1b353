//go:build pi
// +build pi

package neopixel

import (
	"fmt"

	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

type ws2811Strip struct {
	dev   *ws.WS2811
	count int
}

// New opens the WS281x device described by cfg. The process must be running
// as root for the underlying DMA access to work.
func New(cfg Config) (Strip, error) {
	opt := ws.DefaultOptions
	opt.DmaNum = cfg.DMAChannel
	opt.Channels[0].GpioPin = cfg.GPIOPin
	opt.Channels[0].Brightness = cfg.Brightness
	opt.Channels[0].LedCount = cfg.LedCount

	dev, err := ws.MakeWS2811(&opt)

	if err != nil {
		return nil, fmt.Errorf("neopixel: could not create ws2811 device: %w", err)
	}

	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("neopixel: could not init ws2811 device: %w", err)
	}

	return &ws2811Strip{dev: dev, count: cfg.LedCount}, nil
}

func (s *ws2811Strip) SetPixel(index int, color Color) {
	if index < 0 || index >= s.count {
		return
	}

	s.dev.Leds(0)[index] = color.uint32()
}

func (s *ws2811Strip) Show() error {
	if err := s.dev.Render(); err != nil {
		return err
	}

	return s.dev.Wait()
}

func (s *ws2811Strip) PixelCount() int {
	return s.count
}

func (s *ws2811Strip) Clear() {
	leds := s.dev.Leds(0)

	for i := range leds {
		leds[i] = 0
	}
}

func (s *ws2811Strip) Close() {
	s.Clear()
	_ = s.dev.Render()
	s.dev.Fini()
}
