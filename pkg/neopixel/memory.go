package neopixel

// Memory is a Strip backed by a plain slice. It is used for desktop builds
// and by the game tests, which inspect the last shown frame.
type Memory struct {
	pixels []Color
	shown  []Color

	// ShowErr, when set, is returned by the next call to Show. Tests use
	// it to simulate a hardware transport failure.
	ShowErr error

	ShowCount int
}

func NewMemory(count int) *Memory {
	return &Memory{
		pixels: make([]Color, count),
		shown:  make([]Color, count),
	}
}

func (m *Memory) SetPixel(index int, color Color) {
	if index < 0 || index >= len(m.pixels) {
		return
	}

	m.pixels[index] = color
}

func (m *Memory) Show() error {
	if m.ShowErr != nil {
		return m.ShowErr
	}

	copy(m.shown, m.pixels)
	m.ShowCount++

	return nil
}

func (m *Memory) PixelCount() int {
	return len(m.pixels)
}

func (m *Memory) Clear() {
	for i := range m.pixels {
		m.pixels[i] = ColorBlack
	}
}

func (m *Memory) Close() {}

// Shown returns the frame most recently pushed by Show.
func (m *Memory) Shown() []Color {
	out := make([]Color, len(m.shown))
	copy(out, m.shown)

	return out
}

// Pixel returns the buffered (not necessarily shown) color at index.
func (m *Memory) Pixel(index int) Color {
	return m.pixels[index]
}
