package sim

import (
	"math"

	"github.com/vovakirdan/solo-mission/internal/config"
	"github.com/vovakirdan/solo-mission/internal/core"
)

// ScrollLayer is a column of equal-height tiles moving down the screen.
// A tile that drops below LowerBound is moved up by the full column height,
// so together the tiles always cover the visible extent.
type ScrollLayer struct {
	Tiles      []*Entity // Tile i has its bottom edge at Offsets[i]
	Offsets    []float64
	TileHeight float64
	LowerBound float64
	Speed      float64

	world *World
	width float64
}

// NewScrollLayer lays out enough tiles to cover viewHeight plus one spare.
func NewScrollLayer(world *World, visual string, viewWidth, viewHeight, tileHeight, speed float64) *ScrollLayer {
	count := int(math.Ceil(viewHeight/tileHeight)) + 1
	l := &ScrollLayer{
		Offsets:    make([]float64, count),
		Tiles:      make([]*Entity, count),
		TileHeight: tileHeight,
		LowerBound: -tileHeight,
		Speed:      speed,
		world:      world,
		width:      viewWidth,
	}
	for i := range l.Offsets {
		l.Offsets[i] = float64(i) * tileHeight
		l.Tiles[i] = world.Spawn(CategoryBackground, visual, l.center(i), core.V(viewWidth, tileHeight))
	}
	return l
}

func (l *ScrollLayer) center(i int) core.Vec {
	return core.V(l.width/2, l.Offsets[i]+l.TileHeight/2)
}

// Span returns the total height covered by the tiles.
func (l *ScrollLayer) Span() float64 {
	return float64(len(l.Offsets)) * l.TileHeight
}

// Advance scrolls every tile down by dt*Speed.
func (l *ScrollLayer) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	span := l.Span()
	for i := range l.Offsets {
		y := l.Offsets[i] - dt*l.Speed
		if y < l.LowerBound {
			off := math.Mod(y-l.LowerBound, span)
			if off < 0 {
				off += span
			}
			y = l.LowerBound + off
		}
		l.Offsets[i] = y
		l.world.Move(l.Tiles[i], l.center(i))
	}
}

// PlanetLayer is a single decoration drifting down faster than the
// background. When it leaves the screen it comes back as a new planet.
type PlanetLayer struct {
	Planet     *Entity
	Speed      float64
	LowerBound float64
	Respawns   int

	world *World
	rng   RNG
	cfg   config.ScrollConfig
	viewW float64
	viewH float64
}

// NewPlanetLayer places the first planet somewhere on screen.
func NewPlanetLayer(world *World, rng RNG, cfg config.ScrollConfig, viewW, viewH float64) *PlanetLayer {
	p := &PlanetLayer{
		Speed:      cfg.Speed * cfg.Parallax,
		LowerBound: -cfg.TileHeight,
		world:      world,
		rng:        rng,
		cfg:        cfg,
		viewW:      viewW,
		viewH:      viewH,
	}
	visual, scale := p.pick()
	pos := core.V(RandRange(rng, 0, viewW), RandRange(rng, 0, viewH))
	p.Planet = world.Spawn(CategoryDecoration, visual, pos, core.V(viewW/2, viewW/2))
	world.SetAppearance(p.Planet, scale, 1)
	return p
}

func (p *PlanetLayer) pick() (string, float64) {
	visual := "planet"
	if n := len(p.cfg.PlanetVisuals); n > 0 {
		visual = p.cfg.PlanetVisuals[p.rng.Intn(n)]
	}
	return visual, RandRange(p.rng, p.cfg.PlanetScaleMin, p.cfg.PlanetScaleMax)
}

// Advance scrolls the planet and respawns it once it passes LowerBound.
func (p *PlanetLayer) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	pos := p.Planet.Pos
	pos.Y -= dt * p.Speed
	if pos.Y < p.LowerBound {
		p.respawn()
		return
	}
	p.world.Move(p.Planet, pos)
}

// respawn replaces the planet with a fresh entity above the screen, so the
// host creates a node with the new visual.
func (p *PlanetLayer) respawn() {
	visual, scale := p.pick()
	pos := core.V(RandRange(p.rng, 0, p.viewW), p.viewH+RandRange(p.rng, p.cfg.RespawnMin, p.cfg.RespawnMax))
	p.world.Remove(p.Planet)
	p.Planet = p.world.Spawn(CategoryDecoration, visual, pos, p.Planet.Size)
	p.world.SetAppearance(p.Planet, scale, 1)
	p.Respawns++
}

// Backdrop drives the background tiles and the planet together.
type Backdrop struct {
	Stars  *ScrollLayer
	Planet *PlanetLayer
}

// NewBackdrop builds both layers from cfg.
func NewBackdrop(world *World, rng RNG, cfg config.ScrollConfig, viewW, viewH float64) *Backdrop {
	return &Backdrop{
		Stars:  NewScrollLayer(world, "background", viewW, viewH, cfg.TileHeight, cfg.Speed),
		Planet: NewPlanetLayer(world, rng, cfg, viewW, viewH),
	}
}

// Advance scrolls both layers.
func (b *Backdrop) Advance(dt float64) {
	b.Stars.Advance(dt)
	b.Planet.Advance(dt)
}
