package starfall

import (
	"fmt"

	"github.com/starfall-arcade/starfall/internal/core"
)

// Visual characters for rendering
const (
	ShipNose      = '▲'
	ShipBodyLeft  = '▟'
	ShipBodyMid   = '█'
	ShipBodyRight = '▙'
	FlameChar     = '▼'
	BulletChar    = '•'
	EnemyCore     = '█'
	EnemyEdgeL    = '▐'
	EnemyEdgeR    = '▌'
	StarBright    = '✦'
	StarMid       = '·'
	StarDim       = '.'
	HeartFull     = '♥'
	HeartEmpty    = '♡'
)

// FlameSpeed is the velocity magnitude above which the exhaust flame shows.
const FlameSpeed = 1.2

// Render draws the current state to the screen buffer: background stars,
// ship, bullets, enemies, HUD and overlays, in that order. Pure read of
// game state; an unattached (zero-size) surface is skipped.
func (g *Game) Render(dst *core.Screen) {
	vp := core.Viewport{
		FieldW: FieldW, FieldH: FieldH,
		ScreenW: dst.Width(), ScreenH: dst.Height(),
	}
	if !vp.Valid() {
		return
	}

	dst.Clear()

	g.drawStars(dst, vp)
	g.drawPlayer(dst, vp)
	g.drawBullets(dst, vp)
	g.drawEnemies(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.world.Phase == PhaseGameOver {
		g.drawGameOver(dst)
	}
}

// drawStars renders the parallax background; brighter stars get the
// heavier glyph.
func (g *Game) drawStars(dst *core.Screen, vp core.Viewport) {
	for i := range g.world.Stars {
		s := &g.world.Stars[i]
		x, y := vp.Cell(s.Pos)
		switch {
		case s.Brightness >= 0.75:
			dst.SetCell(x, y, StarBright, core.ColorWhite)
		case s.Brightness >= 0.45:
			dst.SetCell(x, y, StarMid, core.ColorGray)
		default:
			dst.SetCell(x, y, StarDim, core.ColorGray)
		}
	}
}

// drawPlayer renders the ship as a small glyph cluster, with an exhaust
// flame when moving fast enough.
func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	p := &g.world.Player
	cx, cy := vp.Cell(p.Pos)

	dst.SetCell(cx, cy-1, ShipNose, core.ColorBrightCyan)
	dst.SetCell(cx-1, cy, ShipBodyLeft, core.ColorCyan)
	dst.SetCell(cx, cy, ShipBodyMid, core.ColorBrightCyan)
	dst.SetCell(cx+1, cy, ShipBodyRight, core.ColorCyan)

	if p.Vel.Len() > FlameSpeed {
		dst.SetCell(cx, cy+1, FlameChar, core.ColorOrange)
	}
}

func (g *Game) drawBullets(dst *core.Screen, vp core.Viewport) {
	for i := range g.world.Bullets {
		x, y := vp.Cell(g.world.Bullets[i].Pos)
		dst.SetCell(x, y, BulletChar, core.ColorBrightYellow)
	}
}

// drawEnemies renders each enemy as a chunky block with side borders.
func (g *Game) drawEnemies(dst *core.Screen, vp core.Viewport) {
	for i := range g.world.Enemies {
		x, y := vp.Cell(g.world.Enemies[i].Pos)
		dst.SetCell(x-1, y, EnemyEdgeL, core.ColorRed)
		dst.SetCell(x, y, EnemyCore, core.ColorBrightRed)
		dst.SetCell(x+1, y, EnemyEdgeR, core.ColorRed)
	}
}

// drawHUD renders the score on the left and the heart row on the right:
// filled hearts for remaining hit points, hollow for the rest.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.world.Score), core.ColorBrightWhite)

	maxHP := g.cfg.Session.HitPoints
	x := dst.Width() - 2*maxHP
	for i := 0; i < maxHP; i++ {
		if i < g.world.HP {
			dst.SetCell(x+2*i, 0, HeartFull, core.ColorBrightRed)
		} else {
			dst.SetCell(x+2*i, 0, HeartEmpty, core.ColorGray)
		}
	}
}

// drawGameOver renders the terminal overlay with the final score and the
// restart prompt.
func (g *Game) drawGameOver(dst *core.Screen) {
	drawCenteredMessage(dst, "GAME OVER",
		fmt.Sprintf("Final Score: %d  |  Press R to restart", g.world.Score))
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
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
