package survival

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/school-survival/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '●'
	PlatformChar = '▀'
	FloorChar    = '═'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

// glyph is how an obstacle kind looks on screen.
type glyph struct {
	r rune
	c core.Color
}

var kindGlyphs = [kindCount]glyph{
	KindPaperAirplane: {'➤', core.ColorWhite},
	KindTextbook:      {'▓', core.ColorBlue},
	KindApple:         {'●', core.ColorRed},
	KindPencil:        {'│', core.ColorYellow},
	KindBackpack:      {'▒', core.ColorGreen},
	KindLunchTray:     {'▬', core.ColorGray},
}

// viewport maps field pixels onto screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64 // cells per pixel
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := max(1, dst.Height()-1)
	return viewport{
		sx: float64(dst.Width()) / snap.FieldW,
		sy: float64(rows) / snap.FieldH,
	}
}

// cells converts a pixel box into a cell box at least one cell large.
func (v viewport) cells(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx = int(math.Floor(x * v.sx))
	cy = 1 + int(math.Floor(y*v.sy))
	cw = max(1, int(math.Round(w*v.sx)))
	ch = max(1, int(math.Round(h*v.sy)))
	return cx, cy, cw, ch
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen, highScore int) {
	RenderSnapshot(dst, g.Snapshot(), highScore)
}

// RenderSnapshot draws snap scaled to fit dst.
func RenderSnapshot(dst *core.Screen, snap Snapshot, highScore int) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}
	v := newViewport(dst, snap)

	_, floorRow, _, _ := v.cells(0, snap.FloorY, 0, 0)
	dst.DrawHLine(0, floorRow, dst.Width(), FloorChar, core.ColorGray)

	for _, p := range snap.Platforms {
		x, y, w, _ := v.cells(p.X, p.Y, p.W, p.H)
		dst.DrawHLine(x, y, w, PlatformChar, core.ColorBrown)
	}

	for _, o := range snap.Obstacles {
		gl := kindGlyphs[o.Kind]
		x, y, w, h := v.cells(o.X, o.Y, o.W, o.H)
		dst.DrawRect(x, y, w, h, gl.r, gl.c)
	}

	drawPlayer(dst, v, snap.Player)
	drawHUD(dst, snap, highScore)

	switch snap.Phase {
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume, R to restart")
	case PhaseOver:
		sub := fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", snap.Score, max(highScore, snap.Score))
		drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

func drawPlayer(dst *core.Screen, v viewport, p PlayerSnapshot) {
	x, y, w, h := v.cells(p.X, p.Y, p.W, p.H)
	if p.Crouching && h > 1 {
		y++
		h--
	}
	color := core.ColorCyan
	if p.Invulnerable {
		color = core.ColorMagenta
	}
	dst.DrawRect(x, y, w, h, PlayerChar, color)

	headX := x
	if p.FacingRight {
		headX = x + w - 1
	}
	dst.SetColored(headX, y, PlayerHead, core.ColorSkin)
}

func drawHUD(dst *core.Screen, snap Snapshot, highScore int) {
	hearts := strings.Repeat(string(HeartFull), snap.Player.Health) +
		strings.Repeat(string(HeartEmpty), max(0, snap.Player.MaxHealth-snap.Player.Health))
	dst.DrawTextColored(1, 0, hearts, core.ColorRed)

	score := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, max(highScore, snap.Score))
	dst.DrawText(snap.Player.MaxHealth+2, 0, score)

	level := fmt.Sprintf(" Lv %.1f  %.1fs ", snap.Difficulty, snap.ElapsedMs/1000)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(w, core.Max(len(title), len(subtitle))+4)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}
