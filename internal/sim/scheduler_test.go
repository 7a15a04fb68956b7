package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRepeating(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.Schedule(TimerEnemyWave, 1, true, func() { fired++ })

	s.Tick(0.5)
	assert.Equal(t, 0, fired)
	s.Tick(0.5)
	assert.Equal(t, 1, fired)
	s.Tick(1)
	assert.Equal(t, 2, fired)
	assert.Len(t, s.Pending(TimerEnemyWave), 1)
}

func TestSchedulerOneShot(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.Schedule(TimerDelayed, 0.5, false, func() { fired++ })

	s.Tick(1)
	s.Tick(1)
	assert.Equal(t, 1, fired)
	assert.Empty(t, s.Pending(TimerDelayed))
}

func TestSchedulerReplaceKeepsOneTimerPerKind(t *testing.T) {
	s := NewScheduler(nil)
	var fired []string
	s.Schedule(TimerEnemyWave, 4, true, func() { fired = append(fired, "old") })
	s.Replace(TimerEnemyWave, 3, true, func() { fired = append(fired, "mid") })
	s.Replace(TimerEnemyWave, 2, true, func() { fired = append(fired, "new") })

	pending := s.Pending(TimerEnemyWave)
	require.Len(t, pending, 1)
	assert.Equal(t, 2.0, pending[0].Interval)

	s.Tick(4)
	assert.Equal(t, []string{"new"}, fired)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(nil)
	fired := false
	id := s.Schedule(TimerBonus, 1, false, func() { fired = true })

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	s.Tick(2)
	assert.False(t, fired)
	assert.Equal(t, 0, s.CancelKind(TimerBonus))
}

func TestSchedulerClosedGate(t *testing.T) {
	open := true
	s := NewScheduler(func() bool { return open })
	fired := 0
	s.Schedule(TimerEnemyWave, 1, true, func() { fired++ })

	open = false
	s.Tick(10)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1.0, s.Pending(TimerEnemyWave)[0].Remaining, "a closed gate also stops the countdown")
}

func TestSchedulerGateClosedByFiring(t *testing.T) {
	open := true
	s := NewScheduler(func() bool { return open })
	var fired []string
	s.Schedule(TimerDelayed, 1, false, func() {
		fired = append(fired, "first")
		open = false
	})
	s.Schedule(TimerEnemyWave, 1, true, func() { fired = append(fired, "second") })

	s.Tick(1)
	assert.Equal(t, []string{"first"}, fired)
}

func TestSchedulerArmedDuringFiringWaitsForNextTick(t *testing.T) {
	s := NewScheduler(nil)
	var fired []string
	s.Schedule(TimerDelayed, 1, false, func() {
		fired = append(fired, "delayed")
		s.Schedule(TimerBonus, 0, false, func() { fired = append(fired, "bonus") })
	})

	s.Tick(1)
	assert.Equal(t, []string{"delayed"}, fired)
	s.Tick(0)
	assert.Equal(t, []string{"delayed", "bonus"}, fired)
}

func TestTimerKindString(t *testing.T) {
	assert.Equal(t, "enemy_wave", TimerEnemyWave.String())
	assert.Equal(t, "bonus", TimerBonus.String())
	assert.Equal(t, "delayed", TimerDelayed.String())
}
