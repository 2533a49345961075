// Package input reads single keypresses from a raw-mode terminal.
package input

import (
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after the
// leading ESC byte. Returns the arrow name, or "" for anything else.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Both CSI (ESC [) and SS3 (ESC O) sequences occur in the wild.
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// GetKeypress blocks for one keypress and returns it as a lowercase
// character string or an arrow name ("arrow_left" etc.). Ctrl+C exits the
// process.
func GetKeypress() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}

	if b == 0x1b {
		return tryReadArrowKey()
	}
	if b == 3 {
		term.Restore(int(os.Stdin.Fd()), oldState)
		os.Exit(0)
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return string(b)
}
