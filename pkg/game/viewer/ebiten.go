package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkdelve/pkg/engine/world"
)

// tileSize is the on-screen pixel size of one map tile.
const tileSize = 12

// Tile fill colors for the graphical playback.
var (
	ebitenWall   = color.RGBA{130, 110, 90, 255}
	ebitenFloor  = color.RGBA{48, 48, 48, 255}
	ebitenStairs = color.RGBA{255, 220, 80, 255}
	ebitenStart  = color.RGBA{80, 220, 255, 255}
)

// playback is the ebiten.Game driving snapshot animation: one frame of the
// history every few ticks, with manual stepping once autoplay is paused.
type playback struct {
	algorithm string
	history   []*world.Map
	startX    int
	startY    int

	frame    int
	autoplay bool
	ticks    int
}

// ticksPerFrame controls autoplay speed at the default 60 TPS.
const ticksPerFrame = 6

// Update advances autoplay and handles stepping keys.
func (p *playback) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.autoplay = !p.autoplay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		p.autoplay = false
		if p.frame < len(p.history)-1 {
			p.frame++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		p.autoplay = false
		if p.frame > 0 {
			p.frame--
		}
	}

	if p.autoplay {
		p.ticks++
		if p.ticks >= ticksPerFrame {
			p.ticks = 0
			if p.frame < len(p.history)-1 {
				p.frame++
			} else {
				p.autoplay = false
			}
		}
	}
	return nil
}

// Draw renders the current snapshot as filled tiles.
func (p *playback) Draw(screen *ebiten.Image) {
	m := p.history[p.frame]
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			var fill color.RGBA
			switch m.TileAt(x, y) {
			case world.TileDownStairs:
				fill = ebitenStairs
			case world.TileFloor:
				fill = ebitenFloor
			default:
				fill = ebitenWall
			}
			if x == p.startX && y == p.startY {
				fill = ebitenStart
			}
			vector.DrawFilledRect(screen,
				float32(x*tileSize), float32(y*tileSize),
				tileSize, tileSize, fill, false)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %d/%d  space: play/pause  arrows: step  q: quit",
		p.algorithm, p.frame+1, len(p.history)))
}

// Layout reports the fixed logical screen size.
func (p *playback) Layout(outsideWidth, outsideHeight int) (int, int) {
	m := p.history[0]
	return m.Width * tileSize, m.Height * tileSize
}

// PlayWindow opens an ebiten window and animates the snapshot history.
// Blocks until the window closes.
func PlayWindow(algorithm string, history []*world.Map, startX, startY int) error {
	if len(history) == 0 {
		return fmt.Errorf("no snapshots recorded")
	}

	m := history[0]
	ebiten.SetWindowSize(m.Width*tileSize, m.Height*tileSize)
	ebiten.SetWindowTitle("darkdelve: " + algorithm)

	p := &playback{
		algorithm: algorithm,
		history:   history,
		startX:    startX,
		startY:    startY,
		autoplay:  true,
	}
	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("snapshot playback: %w", err)
	}
	return nil
}
