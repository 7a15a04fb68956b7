package solo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/sim"
)

// Visual characters for rendering
const (
	ShipChar       = '▲'
	BulletChar     = '│'
	EnemyChar      = 'V'
	CurvyEnemyChar = 'W'
	BonusChar      = '◆'
	BlastChar      = '*'
	SparkChar      = '+'
	SmokeChar      = '·'
	StarChar       = '.'
	PlanetChar     = 'o'
)

const (
	hudRows       = 1
	starsPerTile  = 14
	minScreenW    = 20
	minScreenH    = 10
	starPatternID = 7
)

var planetColors = map[string]core.Color{
	"planet1": core.ColorBlue,
	"planet2": core.ColorMagenta,
	"planet3": core.ColorOrange,
}

// starPattern holds star positions as fractions of a background tile.
// Every tile shares it, so the field repeats seamlessly while scrolling.
var starPattern = func() []core.Vec {
	rng := rand.New(rand.NewSource(starPatternID))
	stars := make([]core.Vec, starsPerTile)
	for i := range stars {
		stars[i] = core.V(rng.Float64(), rng.Float64())
	}
	return stars
}()

// viewport maps world units (origin bottom-left, Y up) to screen cells
// (origin top-left, Y down) below the HUD row.
type viewport struct {
	cols, rows int
	top        int
	worldW     float64
	worldH     float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows,
		top:    hudRows,
		worldW: worldW,
		worldH: worldH,
	}
}

// toCell returns the cell containing world point p.
func (v viewport) toCell(p core.Vec) (int, int) {
	x := int(math.Floor(p.X / v.worldW * float64(v.cols)))
	y := v.top + int(math.Floor((v.worldH-p.Y)/v.worldH*float64(v.rows)))
	return x, y
}

// span returns the size of a world box in cells, at least one cell each way.
func (v viewport) span(size core.Vec) (int, int) {
	w := int(math.Round(size.X / v.worldW * float64(v.cols)))
	h := int(math.Round(size.Y / v.worldH * float64(v.rows)))
	return core.Max(1, w), core.Max(1, h)
}

// visible reports whether cell row y is inside the play area.
func (v viewport) visible(y int) bool {
	return y >= v.top && y < v.top+v.rows
}

// fill draws a w*h block of r centered on world point p, clipped to the play area.
func (v viewport) fill(dst *core.Screen, p core.Vec, w, h int, r rune, c core.Color) {
	cx, cy := v.toCell(p)
	x0 := cx - w/2
	y0 := cy - h/2
	for y := y0; y < y0+h; y++ {
		if !v.visible(y) {
			continue
		}
		for x := x0; x < x0+w; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Screen too small")
		return
	}

	v := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)
	g.drawStars(dst, v)
	g.drawPlanet(dst, v)

	g.sim.World().Each(sim.CategoryBonus|sim.CategoryEnemy|sim.CategoryBullet|sim.CategoryPlayer|sim.CategoryEffect, func(e *sim.Entity) {
		g.drawEntity(dst, v, e)
	})

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.sim.Terminal() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score()))
	}
}

func (g *Game) drawStars(dst *core.Screen, v viewport) {
	layer := g.sim.Backdrop().Stars
	for _, bottom := range layer.Offsets {
		for _, s := range starPattern {
			p := core.V(s.X*v.worldW, bottom+s.Y*layer.TileHeight)
			if p.Y < 0 || p.Y >= v.worldH {
				continue
			}
			x, y := v.toCell(p)
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}
}

func (g *Game) drawPlanet(dst *core.Screen, v viewport) {
	planet := g.sim.Backdrop().Planet.Planet
	color, ok := planetColors[planet.Visual]
	if !ok {
		color = core.ColorBlue
	}
	w, h := v.span(core.V(planet.Size.X*planet.Scale, planet.Size.Y*planet.Scale))
	cx, cy := v.toCell(planet.Pos)
	rx, ry := float64(w)/2, float64(h)/2
	for y := cy - h/2; y <= cy+h/2; y++ {
		if !v.visible(y) {
			continue
		}
		for x := cx - w/2; x <= cx+w/2; x++ {
			nx := float64(x-cx) / rx
			ny := float64(y-cy) / ry
			if nx*nx+ny*ny <= 1 {
				dst.SetColored(x, y, PlanetChar, color)
			}
		}
	}
}

func (g *Game) drawEntity(dst *core.Screen, v viewport, e *sim.Entity) {
	switch e.Category {
	case sim.CategoryPlayer:
		w, h := v.span(e.Size)
		v.fill(dst, e.Pos, w, h, ShipChar, core.ColorGreen)
	case sim.CategoryBullet:
		v.fill(dst, e.Pos, 1, 1, BulletChar, core.ColorBrightYellow)
	case sim.CategoryEnemy:
		w, h := v.span(e.Size)
		r, c := EnemyChar, core.ColorRed
		if path, ok := g.sim.Motions().Path(e.ID); ok && path.Style == sim.MotionCurvy {
			r, c = CurvyEnemyChar, core.ColorMagenta
		}
		v.fill(dst, e.Pos, w, h, r, c)
	case sim.CategoryBonus:
		w, h := v.span(e.Size)
		v.fill(dst, e.Pos, w, h, BonusChar, core.ColorBrightCyan)
	case sim.CategoryEffect:
		if e.Scale <= 0 {
			return
		}
		w, h := v.span(core.V(e.Size.X*e.Scale, e.Size.Y*e.Scale))
		r, c := blastGlyph(e.Scale, e.Alpha)
		v.fill(dst, e.Pos, w, h, r, c)
	}
}

// blastGlyph picks the explosion look for its current scale and opacity.
func blastGlyph(scale, alpha float64) (rune, core.Color) {
	switch {
	case alpha < 0.35:
		return SmokeChar, core.ColorGray
	case scale < 0.5:
		return SparkChar, core.ColorBrightYellow
	default:
		return BlastChar, core.ColorOrange
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := g.sim.HUD()
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	dst.DrawTextColored(1, 0, hud.Score.Text, labelColor(hud.Score, core.ColorBrightWhite))

	lives := hud.Lives.Text
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, labelColor(hud.Lives, core.ColorBrightRed))

	speed := fmt.Sprintf("x%.1f", g.sim.Multiplier())
	dst.DrawTextColored((dst.Width()-len(speed))/2, 0, speed, core.ColorCyan)
}

// labelColor highlights a label while it pulses.
func labelColor(l sim.Label, base core.Color) core.Color {
	if l.Scale > 1.2 {
		return core.ColorBrightYellow
	}
	return base
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

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
