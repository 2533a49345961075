// Package terminal queries the controlling terminal's dimensions for the
// snapshot viewer.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions used when stdout is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// GetSize returns the terminal's width and height in cells, falling back to
// the defaults when the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// Fits reports whether a map render of the given dimensions fits the
// terminal, with reservedRows kept free for chrome around the map.
func Fits(width, height, reservedRows int) bool {
	w, h := GetSize()
	return width <= w && height+reservedRows <= h
}
