package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/solo-mission/internal/core"
)

func TestMotionProgressMonotonic(t *testing.T) {
	paths := map[string]MotionPath{
		"straight": Straight(core.V(0, 0), core.V(0, 100), 1),
		"curvy":    Curvy(core.V(100, 1534), core.V(600, -100), 2, 80, 3),
	}
	steps := []float64{0, 0.1, 0.3, 0.05, 0.9, 5, 1}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			p := path
			prev := 0.0
			var pos core.Vec
			var done bool
			for _, dt := range steps {
				pos, done = p.Advance(dt)
				assert.GreaterOrEqual(t, p.Progress, prev)
				assert.LessOrEqual(t, p.Progress, 1.0)
				prev = p.Progress
			}
			assert.True(t, done)
			assert.Equal(t, 1.0, p.Progress)
			assert.Equal(t, p.To, pos)
		})
	}
}

func TestMotionHugeStep(t *testing.T) {
	p := Straight(core.V(10, 10), core.V(20, -500), 3)
	pos, done := p.Advance(1e12)
	assert.True(t, done)
	assert.Equal(t, 1.0, p.Progress)
	assert.Equal(t, core.V(20, -500), pos)
}

func TestMotionNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1} {
		p := Straight(core.V(0, 0), core.V(5, 5), d)
		pos, done := p.Advance(0)
		assert.True(t, done, "duration %v", d)
		assert.Equal(t, core.V(5, 5), pos)
	}
}

func TestMotionNegativeStep(t *testing.T) {
	p := Straight(core.V(0, 0), core.V(0, 10), 1)
	p.Advance(0.5)
	p.Advance(-0.25)
	assert.Equal(t, 0.5, p.Progress)
}

func TestCurvyShape(t *testing.T) {
	p := Curvy(core.V(100, 0), core.V(200, -500), 1, 50, 3)

	assert.Equal(t, core.V(100, 0), p.PositionAt(0))
	assert.Equal(t, core.V(200, -500), p.PositionAt(1))

	mid := p.PositionAt(0.5)
	assert.InDelta(t, 150+50*math.Sin(1.5*math.Pi), mid.X, 1e-9)
	assert.InDelta(t, -250, mid.Y, 1e-9, "vertical movement is a plain lerp")
}

func TestDurationFor(t *testing.T) {
	assert.InDelta(t, 2.0, DurationFor(core.V(0, 0), core.V(30, 40), 25), 1e-9)
	assert.Equal(t, 0.0, DurationFor(core.V(0, 0), core.V(30, 40), 0))
}

func TestMotionSystemCallbackOnce(t *testing.T) {
	w := NewWorld(nil)
	m := NewMotionSystem(w)
	e := w.Spawn(CategoryEnemy, "enemy", core.V(0, 0), core.V(1, 1))

	calls := 0
	m.Begin(e, Straight(core.V(0, 100), core.V(0, 0), 1), func() { calls++ })
	assert.Equal(t, core.V(0, 100), e.Pos, "Begin places the entity at the start")

	m.Update(0.5)
	assert.Equal(t, 0, calls)
	assert.InDelta(t, 50, e.Pos.Y, 1e-9)

	m.Update(2)
	m.Update(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, m.Active())
	assert.Equal(t, core.V(0, 0), e.Pos)
}

func TestMotionSystemDropsRemovedEntity(t *testing.T) {
	w := NewWorld(nil)
	m := NewMotionSystem(w)
	e := w.Spawn(CategoryEnemy, "enemy", core.V(0, 0), core.V(1, 1))

	calls := 0
	m.Begin(e, Straight(core.V(0, 0), core.V(0, -10), 1), func() { calls++ })
	w.Remove(e)
	m.Update(10)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, m.Active())
}

func TestMotionSystemReplaceAndCancel(t *testing.T) {
	w := NewWorld(nil)
	m := NewMotionSystem(w)
	e := w.Spawn(CategoryBonus, "bonus", core.V(0, 0), core.V(1, 1))

	var fired []string
	m.Begin(e, Straight(core.V(0, 0), core.V(10, 0), 1), func() { fired = append(fired, "first") })
	m.Begin(e, Straight(core.V(0, 0), core.V(20, 0), 1), func() { fired = append(fired, "second") })
	m.Update(1)
	assert.Equal(t, []string{"second"}, fired)

	m.Begin(e, Straight(core.V(0, 0), core.V(20, 0), 1), func() { fired = append(fired, "third") })
	require.True(t, m.Cancel(e.ID))
	assert.False(t, m.Cancel(e.ID))
	m.Begin(e, Straight(core.V(0, 0), core.V(20, 0), 1), nil)
	m.Update(0.5)
	path, ok := m.Path(e.ID)
	require.True(t, ok)
	assert.Equal(t, 0.5, path.Progress, "a restarted path advances once per update")
	assert.Equal(t, []string{"second"}, fired)
}

func TestMotionCallbackMayStartMotion(t *testing.T) {
	w := NewWorld(nil)
	m := NewMotionSystem(w)
	e := w.Spawn(CategoryPlayer, "player", core.V(0, 0), core.V(1, 1))

	legs := 0
	var next func()
	next = func() {
		legs++
		if legs < 3 {
			m.Begin(e, Straight(e.Pos, e.Pos.Add(core.V(0, 10)), 1), next)
		}
	}
	m.Begin(e, Straight(core.V(0, 0), core.V(0, 10), 1), next)
	for i := 0; i < 5; i++ {
		m.Update(1)
	}
	assert.Equal(t, 3, legs)
	assert.Equal(t, core.V(0, 30), e.Pos)
}
