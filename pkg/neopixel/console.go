package neopixel

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console is a Strip that draws each frame as a row of colored blocks on a
// terminal. Useful for checking animations without wiring up the hardware.
type Console struct {
	*Memory
	out io.Writer
}

func NewConsole(count int, out io.Writer) *Console {
	return &Console{
		Memory: NewMemory(count),
		out:    out,
	}
}

func (c *Console) Show() error {
	if err := c.Memory.Show(); err != nil {
		return err
	}

	line := ""

	for _, pixel := range c.Shown() {
		line += sprintPixel(pixel)
	}

	_, err := fmt.Fprintf(c.out, "\r%s", line)

	return err
}

// sprintPixel maps an RGB color onto the nearest of the 8 standard terminal
// colors. The terminal view is a debugging aid, fidelity does not matter.
func sprintPixel(c Color) string {
	if c == ColorBlack {
		return " "
	}

	r, g, b := c.R > 0, c.G > 0, c.B > 0

	var attr color.Attribute

	switch {
	case r && g && b:
		attr = color.FgWhite
	case r && g:
		attr = color.FgYellow
	case r && b:
		attr = color.FgMagenta
	case g && b:
		attr = color.FgCyan
	case r:
		attr = color.FgRed
	case g:
		attr = color.FgGreen
	default:
		attr = color.FgBlue
	}

	return color.New(attr).Sprint("█")
}
