package neopixel

import (
	"testing"
)

func TestColorScaleSaturatesAtBlack(t *testing.T) {
	c := Color{R: 200, G: 100, B: 50}

	if got := c.Scale(255, 255); got != c {
		t.Errorf("full scale should be the identity, got %+v", got)
	}

	if got := c.Scale(0, 255); got != ColorBlack {
		t.Errorf("zero scale should be black, got %+v", got)
	}

	if got := c.Scale(-40, 255); got != ColorBlack {
		t.Errorf("negative scale should floor at black, got %+v", got)
	}
}

func TestMemoryShowSnapshotsBuffer(t *testing.T) {
	strip := NewMemory(4)
	strip.SetPixel(1, Color{R: 255})

	if err := strip.Show(); err != nil {
		t.Fatal(err)
	}

	strip.SetPixel(1, Color{G: 255})

	// the shown frame keeps what was pushed, not the current buffer
	if shown := strip.Shown(); shown[1] != (Color{R: 255}) {
		t.Errorf("expected the shown frame to be a snapshot, got %+v", shown[1])
	}
}

func TestMemoryIgnoresOutOfRangePixels(t *testing.T) {
	strip := NewMemory(4)

	strip.SetPixel(-1, ColorWhite)
	strip.SetPixel(4, ColorWhite)

	for i := 0; i < 4; i++ {
		if strip.Pixel(i) != ColorBlack {
			t.Errorf("expected pixel %d to be untouched", i)
		}
	}
}

func TestFillAndBlank(t *testing.T) {
	strip := NewMemory(3)

	Fill(strip, ColorWhite)

	for i := 0; i < 3; i++ {
		if strip.Pixel(i) != ColorWhite {
			t.Errorf("expected pixel %d to be filled", i)
		}
	}

	if err := Blank(strip); err != nil {
		t.Fatal(err)
	}

	for _, pixel := range strip.Shown() {
		if pixel != ColorBlack {
			t.Errorf("expected a blanked strip, got %+v", pixel)
		}
	}
}
