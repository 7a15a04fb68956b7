package sim

import (
	"math"

	"github.com/vovakirdan/solo-mission/internal/core"
)

// MotionStyle selects the interpolation curve of a path.
type MotionStyle int

const (
	MotionStraight MotionStyle = iota
	MotionCurvy
)

// String returns the style name.
func (s MotionStyle) String() string {
	switch s {
	case MotionStraight:
		return "straight"
	case MotionCurvy:
		return "curvy"
	default:
		return "unknown"
	}
}

// MotionPath moves an entity from From to To over Duration seconds.
// Vertical position is a plain lerp. Curvy paths add a sinusoidal lateral
// offset with a whole number of half waves, so both endpoints are exact.
type MotionPath struct {
	From      core.Vec
	To        core.Vec
	Style     MotionStyle
	Duration  float64
	Progress  float64 // In [0, 1], never decreases
	Amplitude float64
	Waves     int
}

// Straight builds a linear path.
func Straight(from, to core.Vec, duration float64) MotionPath {
	return MotionPath{From: from, To: to, Style: MotionStraight, Duration: duration}
}

// Curvy builds a weaving path.
func Curvy(from, to core.Vec, duration, amplitude float64, waves int) MotionPath {
	return MotionPath{
		From:      from,
		To:        to,
		Style:     MotionCurvy,
		Duration:  duration,
		Amplitude: amplitude,
		Waves:     waves,
	}
}

// DurationFor returns the seconds needed to cover from..to at speed.
// A non-positive speed yields zero, which completes on the first tick.
func DurationFor(from, to core.Vec, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return to.Sub(from).Len() / speed
}

// Advance moves progress forward by dt and returns the new position and
// whether the path is complete.
func (p *MotionPath) Advance(dt float64) (core.Vec, bool) {
	if dt < 0 {
		dt = 0
	}
	if p.Duration <= 0 {
		p.Progress = 1
	} else {
		p.Progress = math.Min(1, p.Progress+dt/p.Duration)
	}
	return p.PositionAt(p.Progress), p.Progress >= 1
}

// PositionAt returns the position at progress t.
func (p *MotionPath) PositionAt(t float64) core.Vec {
	x := core.Lerp(p.From.X, p.To.X, t) + p.lateralOffset(t)
	y := core.Lerp(p.From.Y, p.To.Y, t)
	return core.V(x, y)
}

func (p *MotionPath) lateralOffset(t float64) float64 {
	if p.Style != MotionCurvy || p.Waves == 0 {
		return 0
	}
	if t >= 1 {
		return 0
	}
	return p.Amplitude * math.Sin(math.Pi*float64(p.Waves)*t)
}

type activeMotion struct {
	entity     *Entity
	path       MotionPath
	onComplete func()
}

// MotionSystem owns every active path, keyed by entity.
type MotionSystem struct {
	world  *World
	active map[EntityID]*activeMotion
	order  []EntityID
}

// NewMotionSystem creates a motion registry for world.
func NewMotionSystem(world *World) *MotionSystem {
	return &MotionSystem{
		world:  world,
		active: make(map[EntityID]*activeMotion),
	}
}

// Begin places e at path.From and starts moving it. A path already running
// for e is replaced without firing its callback.
func (m *MotionSystem) Begin(e *Entity, path MotionPath, onComplete func()) {
	path.Progress = 0
	if _, ok := m.active[e.ID]; !ok {
		m.order = append(m.order, e.ID)
	}
	m.active[e.ID] = &activeMotion{entity: e, path: path, onComplete: onComplete}
	m.world.Move(e, path.From)
}

// Cancel drops the path for id without firing its callback.
func (m *MotionSystem) Cancel(id EntityID) bool {
	if _, ok := m.active[id]; !ok {
		return false
	}
	delete(m.active, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Path returns a copy of the active path for id.
func (m *MotionSystem) Path(id EntityID) (MotionPath, bool) {
	am, ok := m.active[id]
	if !ok {
		return MotionPath{}, false
	}
	return am.path, true
}

// Active returns the number of running paths.
func (m *MotionSystem) Active() int {
	return len(m.active)
}

// Update advances every path by dt. Paths of removed entities are dropped
// silently. Completion callbacks run after all paths have moved, in start order.
func (m *MotionSystem) Update(dt float64) {
	var done []func()
	kept := m.order[:0]
	for _, id := range m.order {
		am := m.active[id]
		if am.entity.Removed() {
			delete(m.active, id)
			continue
		}
		pos, finished := am.path.Advance(dt)
		m.world.Move(am.entity, pos)
		if finished {
			delete(m.active, id)
			if am.onComplete != nil {
				done = append(done, am.onComplete)
			}
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept

	for _, fn := range done {
		fn()
	}
}
