package game

import (
	"math"

	"github.com/vovakirdan/wave-rider/internal/core"
)

// Sprite extents carried over from the artwork proportions: the wave
// band covers the bottom of the screen, a spray column is half a
// screen tall.
const sprayHeight = 0.5

// Vertical bob applied to the wave band and the boat. Cosmetic; it
// never feeds back into physics or hit tests.
const (
	bobAmp  = 0.05
	bobFreq = 3.0
)

// waveCrest is the repeating surface pattern; scrolling it leftward
// sells the wave motion.
var waveCrest = []rune("~~∿~~~~∿")

func bob(t float64) float64 {
	return bobAmp * math.Sin(bobFreq*t)
}

// cellX projects a normalized x coordinate onto a screen column.
func cellX(v float64, w int) int {
	return int(math.Floor(v * float64(w)))
}

// cellY projects a normalized y coordinate onto a screen row.
func cellY(v float64, h int) int {
	return int(math.Floor(v * float64(h)))
}

// Render draws the current visual state into the cell buffer: wave,
// boat, obstacles, and the game-over banner when the run has ended.
// Rendering happens every frame regardless of state and reads the
// frozen time sample in game over, so the scene holds still.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawWave(dst)
	g.drawBoat(dst)

	for _, o := range g.queue.All() {
		o.Draw(dst)
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", "Press R to retry")
	}
}

// drawWave draws the scrolling surface line and the water under it.
func (g *Game) drawWave(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	surfaceY := cellY(g.cfg.Physics.SeaLevel+bob(g.time), h)

	_, frac := math.Modf(g.cfg.Obstacles.WaveSpeed * g.time)
	offset := int(frac * float64(w))

	for x := 0; x < w; x++ {
		r := waveCrest[(x+offset)%len(waveCrest)]
		dst.SetColored(x, surfaceY, r, core.ColorBrightCyan)
	}
	for y := surfaceY + 1; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetColored(x, y, '≈', core.ColorBlue)
		}
	}
}

// drawBoat draws the hull across the boat's band with a small sail
// above it. The hull row tracks posY plus the wave bob.
func (g *Game) drawBoat(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	x0 := cellX(g.cfg.Boat.X, w)
	x1 := cellX(g.cfg.Boat.X+g.cfg.Boat.Width, w)
	y := cellY(g.boat.PosY()+bob(g.time), h)

	for x := x0; x < x1; x++ {
		dst.SetColored(x, y, '▄', core.ColorYellow)
	}
	dst.SetColored(x0, y, '◢', core.ColorYellow)
	dst.SetColored(x1-1, y, '◣', core.ColorYellow)

	mid := (x0 + x1) / 2
	dst.SetColored(mid, y-1, '█', core.ColorBrightWhite)
	dst.SetColored(mid+1, y-1, '▙', core.ColorBrightWhite)
	dst.SetColored(mid, y-2, '▲', core.ColorBrightWhite)
}

// Draw renders the spray as a column of foam under its crest.
func (s *Spray) Draw(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	x0 := cellX(s.pos.X, w)
	x1 := cellX(s.pos.X+s.cfg.Obstacles.SprayWidth, w)
	top := cellY(s.pos.Y, h)
	bottom := cellY(s.pos.Y+sprayHeight, h)

	for x := x0; x < x1; x++ {
		dst.SetColored(x, top, '░', core.ColorBrightWhite)
		for y := top + 1; y < bottom; y++ {
			dst.SetColored(x, y, '▒', core.ColorBrightCyan)
		}
	}
}

// Draw renders the pelican with its two-frame wing flap.
func (p *Pelican) Draw(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	x0 := cellX(p.pos.X, w)
	x1 := cellX(p.pos.X+p.cfg.Obstacles.PelicanWidth, w)
	y := cellY(p.pos.Y, h)
	mid := (x0 + x1) / 2

	dst.SetColored(mid, y, '▼', core.ColorGray)
	if p.animIndex == 0 {
		dst.SetColored(x0, y, '\\', core.ColorGray)
		dst.SetColored(x1-1, y, '/', core.ColorGray)
	} else {
		dst.SetColored(x0, y+1, '/', core.ColorGray)
		dst.SetColored(x1-1, y+1, '\\', core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
