package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/solo-mission/internal/core"
)

func TestCategoryOrder(t *testing.T) {
	ordered := []Category{
		CategoryPlayer,
		CategoryBullet,
		CategoryEnemy,
		CategoryBonus,
		CategoryBackground,
		CategoryDecoration,
		CategoryEffect,
	}
	for i, c := range ordered {
		assert.Equal(t, Category(1)<<i, c, c.String())
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "None", CategoryNone.String())
	assert.Equal(t, "Bullet", CategoryBullet.String())
	assert.Equal(t, "Player|Enemy", (CategoryPlayer | CategoryEnemy).String())
}

func TestWorldDeferredRemoval(t *testing.T) {
	host := newRecordingHost()
	w := NewWorld(host)
	for i := 0; i < 4; i++ {
		w.Spawn(CategoryEnemy, "enemy", core.V(float64(i), 0), core.V(1, 1))
	}
	w.Spawn(CategoryBullet, "bullet", core.V(0, 0), core.V(1, 1))

	visited := 0
	w.Each(CategoryEnemy, func(e *Entity) {
		visited++
		w.Remove(e)
	})
	assert.Equal(t, 4, visited)
	assert.Equal(t, 5, w.Len(), "removed entities stay stored until flush")
	assert.Equal(t, 0, w.Count(CategoryEnemy))
	assert.Equal(t, 0, host.removed)

	w.Flush()
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 4, host.removed)
	assert.Equal(t, 1, w.Count(CategoryAll))
}

func TestWorldGetSkipsRemoved(t *testing.T) {
	w := NewWorld(nil)
	e := w.Spawn(CategoryBonus, "bonus", core.V(1, 2), core.V(3, 4))

	got, ok := w.Get(e.ID)
	require.True(t, ok)
	assert.Same(t, e, got)

	w.Remove(e)
	w.Remove(e)
	_, ok = w.Get(e.ID)
	assert.False(t, ok)
	assert.True(t, e.Removed())
}

func TestWorldSpawnDuringWalk(t *testing.T) {
	w := NewWorld(nil)
	w.Spawn(CategoryEnemy, "enemy", core.V(0, 0), core.V(1, 1))

	visited := 0
	w.Each(CategoryAll, func(*Entity) {
		visited++
		w.Spawn(CategoryEffect, "explosion", core.V(0, 0), core.V(1, 1))
	})
	assert.Equal(t, 1, visited)
	assert.Equal(t, 2, w.Count(CategoryAll))
}

func TestWorldLookupByHandle(t *testing.T) {
	host := newRecordingHost()
	w := NewWorld(host)
	enemy := w.Spawn(CategoryEnemy, "enemy", core.V(0, 0), core.V(1, 1))
	handle := host.last(t, CategoryEnemy)

	got, ok := w.Lookup(handle)
	require.True(t, ok)
	assert.Same(t, enemy, got)

	_, ok = w.Lookup(int(enemy.ID))
	assert.False(t, ok, "entity IDs are not host handles")

	w.Remove(enemy)
	_, ok = w.Lookup(handle)
	assert.False(t, ok)

	w.Flush()
	assert.Empty(t, w.handles)
}

func TestWorldLookupWithoutHandles(t *testing.T) {
	w := NewWorld(nil)
	w.Spawn(CategoryEnemy, "enemy", core.V(0, 0), core.V(1, 1))

	_, ok := w.Lookup(nil)
	assert.False(t, ok)
	_, ok = w.Lookup([]int{1})
	assert.False(t, ok, "non-comparable handles are never indexed")
}
