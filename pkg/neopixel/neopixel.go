// Package neopixel provides access to a WS281x addressable LED strip. The
// real driver (rpi-ws281x-go) requires root and Raspberry Pi PWM hardware,
// so it is only compiled in with the "pi" build tag. All other builds get an
// in-memory strip, which is also what the tests use.
package neopixel

type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

var (
	ColorBlack = Color{}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// Scale multiplies each channel by num/den, saturating at zero.
func (c Color) Scale(num, den int) Color {
	if num <= 0 {
		return ColorBlack
	}

	return Color{
		R: uint8(int(c.R) * num / den),
		G: uint8(int(c.G) * num / den),
		B: uint8(int(c.B) * num / den),
	}
}

// uint32 packs the color in the 0x00RRGGBB layout the ws2811 engine expects.
func (c Color) uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

type Config struct {
	GPIOPin    int `json:"gpio_pin" yaml:"gpio_pin"`
	LedCount   int `json:"led_count" yaml:"led_count"`
	Brightness int `json:"brightness" yaml:"brightness"`
	DMAChannel int `json:"dma_channel" yaml:"dma_channel"`
}

type Strip interface {
	SetPixel(index int, color Color)
	// Show pushes the pixel buffer to the hardware. It blocks for the
	// strip's transmission duration.
	Show() error
	PixelCount() int
	// Clear sets every pixel to black. It does not push the buffer.
	Clear()
	Close()
}

// Fill sets every pixel on the strip to the same color.
func Fill(strip Strip, color Color) {
	for i := 0; i < strip.PixelCount(); i++ {
		strip.SetPixel(i, color)
	}
}

// Blank clears the strip and pushes the empty frame.
func Blank(strip Strip) error {
	strip.Clear()
	return strip.Show()
}
