// Package viewer plays back a builder's snapshot history so generation can
// be inspected step by step. It sits outside the generation core and only
// ever reads finished snapshots.
package viewer

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/engine/terminal"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/devtools"
)

// clearScreen resets the terminal between frames.
func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// PlayTUI steps through the snapshot history in the terminal. Arrow keys or
// n/p move between frames, q quits. Returns immediately when the history is
// empty.
func PlayTUI(algorithm string, history []*world.Map, startX, startY int) {
	if len(history) == 0 {
		fmt.Println(gotext.Get("No snapshots recorded; run with snapshots enabled."))
		return
	}

	if !terminal.Fits(history[0].Width, history[0].Height, 2) {
		w, h := terminal.GetSize()
		fmt.Printf("%s (%dx%d > %dx%d)\n",
			gotext.Get("Warning: map is larger than the terminal"),
			history[0].Width, history[0].Height, w, h)
	}

	frame := 0
	for {
		clearScreen()
		color.Style{color.OpBold}.Printf("%s %s %d/%d\n",
			algorithm, gotext.Get("snapshot"), frame+1, len(history))
		devtools.RenderMap(history[frame], startX, startY)
		fmt.Println(gotext.Get("n/right: next  p/left: previous  q: quit"))

		switch input.GetKeypress() {
		case "n", "arrow_right":
			if frame < len(history)-1 {
				frame++
			}
		case "p", "arrow_left":
			if frame > 0 {
				frame--
			}
		case "q":
			return
		}
	}
}
