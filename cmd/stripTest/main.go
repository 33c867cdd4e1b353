package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"

	"justapengu.in/ledracer/internal/racer"
	"justapengu.in/ledracer/pkg/neopixel"
)

// stripTest runs a sequence of animations to verify the wiring of the LED
// strip: color wipes in each primary, a theater chase, a rainbow cycle and
// a full-strip blink. Pass -console to draw on the terminal instead of the
// hardware.

var (
	useConsole bool
	ledCount   int
)

func init() {
	flag.BoolVar(&useConsole, "console", false, "draw on the terminal instead of the strip")
	flag.IntVar(&ledCount, "n", racer.DefaultHardwareConfig().Strip.LedCount, "number of pixels")
	flag.Parse()
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	var strip neopixel.Strip
	var err error

	if useConsole {
		strip = neopixel.NewConsole(ledCount, os.Stdout)
	} else {
		config := racer.DefaultHardwareConfig().Strip
		config.LedCount = ledCount

		strip, err = neopixel.New(config)

		if err != nil {
			logger.WithError(err).Fatal("Could not open LED strip")
		}
	}

	defer strip.Close()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	go func() {
		<-c
		_ = neopixel.Blank(strip)
		strip.Close()
		os.Exit(0)
	}()

	logger.Infof("Color wipes")

	wipes := []neopixel.Color{{R: 255}, {G: 255}, {B: 255}, {}}

	for _, color := range wipes {
		if err := colorWipe(strip, color, time.Millisecond*50); err != nil {
			logger.WithError(err).Fatal("Could not render")
		}
	}

	logger.Infof("Theater chase")

	if err := theaterChase(strip, neopixel.Color{R: 127, G: 127, B: 127}, time.Millisecond*50, 10); err != nil {
		logger.WithError(err).Fatal("Could not render")
	}

	logger.Infof("Rainbow cycle")

	if err := rainbowCycle(strip, time.Millisecond*20, 2); err != nil {
		logger.WithError(err).Fatal("Could not render")
	}

	logger.Infof("Blink")

	if err := blink(strip, neopixel.ColorWhite, time.Millisecond*250, 8); err != nil {
		logger.WithError(err).Fatal("Could not render")
	}

	if err := neopixel.Blank(strip); err != nil {
		logger.WithError(err).Fatal("Could not clear the strip")
	}

	logger.Infof("Done")
}

func colorWipe(strip neopixel.Strip, color neopixel.Color, wait time.Duration) error {
	for i := 0; i < strip.PixelCount(); i++ {
		strip.SetPixel(i, color)

		if err := strip.Show(); err != nil {
			return err
		}

		time.Sleep(wait)
	}

	return nil
}

func theaterChase(strip neopixel.Strip, color neopixel.Color, wait time.Duration, iterations int) error {
	for j := 0; j < iterations; j++ {
		for q := 0; q < 3; q++ {
			for i := 0; i < strip.PixelCount(); i += 3 {
				strip.SetPixel(i+q, color)
			}

			if err := strip.Show(); err != nil {
				return err
			}

			time.Sleep(wait)

			for i := 0; i < strip.PixelCount(); i += 3 {
				strip.SetPixel(i+q, neopixel.ColorBlack)
			}
		}
	}

	return nil
}

func rainbowCycle(strip neopixel.Strip, wait time.Duration, iterations int) error {
	count := strip.PixelCount()

	for j := 0; j < 256*iterations; j++ {
		for i := 0; i < count; i++ {
			strip.SetPixel(i, wheel((i*256/count+j)&255))
		}

		if err := strip.Show(); err != nil {
			return err
		}

		time.Sleep(wait)
	}

	return nil
}

func blink(strip neopixel.Strip, color neopixel.Color, wait time.Duration, toggles int) error {
	for i := 0; i < toggles; i++ {
		if i%2 == 0 {
			neopixel.Fill(strip, color)
		} else {
			strip.Clear()
		}

		if err := strip.Show(); err != nil {
			return err
		}

		time.Sleep(wait)
	}

	return nil
}

// wheel generates rainbow colors across 0-255 positions.
func wheel(pos int) neopixel.Color {
	switch {
	case pos < 85:
		return neopixel.Color{R: uint8(pos * 3), G: uint8(255 - pos*3)}
	case pos < 170:
		pos -= 85
		return neopixel.Color{R: uint8(255 - pos*3), B: uint8(pos * 3)}
	default:
		pos -= 170
		return neopixel.Color{G: uint8(pos * 3), B: uint8(255 - pos*3)}
	}
}
