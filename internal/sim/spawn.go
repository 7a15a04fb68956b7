package sim

import "github.com/vovakirdan/solo-mission/internal/core"

// startSpawning arms the enemy wave timer and the first bonus timer.
func (s *Sim) startSpawning() {
	s.sched.Replace(TimerEnemyWave, s.enemyInterval, true, s.spawnEnemy)
	s.armBonus()
}

func (s *Sim) armBonus() {
	delay := RandRange(s.rng, s.cfg.Bonus.MinInterval, s.cfg.Bonus.MaxInterval)
	s.sched.Replace(TimerBonus, delay, false, func() {
		s.spawnBonus()
		s.armBonus()
	})
}

// ReconfigureEnemyInterval swaps the enemy wave timer for one at interval.
// The interval only shrinks and never drops below the configured floor;
// a request that would not shrink it is ignored.
func (s *Sim) ReconfigureEnemyInterval(interval float64) bool {
	if interval < s.cfg.Enemies.MinInterval {
		interval = s.cfg.Enemies.MinInterval
	}
	if interval >= s.enemyInterval {
		return false
	}
	s.enemyInterval = interval
	s.stats.IntervalReductions++
	if len(s.sched.Pending(TimerEnemyWave)) > 0 {
		s.sched.Replace(TimerEnemyWave, interval, true, s.spawnEnemy)
	}
	return true
}

// spawnEnemy sends one enemy from above the screen to below it.
func (s *Sim) spawnEnemy() {
	ec := s.cfg.Enemies
	w, h := s.cfg.World.Width, s.cfg.World.Height

	from := core.V(RandRange(s.rng, -ec.SpawnMargin, w+ec.SpawnMargin), h+ec.StartOffset)
	to := core.V(RandRange(s.rng, -ec.SpawnMargin, w+ec.SpawnMargin), ec.EndY)
	duration := DurationFor(from, to, ec.BaseSpeed*s.state.Multiplier)

	var path MotionPath
	if s.rng.Intn(2) == 1 {
		amp := RandRange(s.rng, ec.CurvyAmpMin, ec.CurvyAmpMax)
		waves := RandIntRange(s.rng, ec.CurvyWavesMin, ec.CurvyWavesMax)
		path = Curvy(from, to, duration, amp, waves)
	} else {
		path = Straight(from, to, duration)
	}

	enemy := s.world.Spawn(CategoryEnemy, "enemy", from, core.V(ec.Width, ec.Height))
	s.motions.Begin(enemy, path, func() {
		s.enemyEscaped(enemy)
	})
	s.stats.EnemiesSpawned++
}

// enemyEscaped charges a life for an enemy that reached the bottom.
func (s *Sim) enemyEscaped(enemy *Entity) {
	if enemy.Removed() {
		return
	}
	s.world.Remove(enemy)
	s.stats.EnemiesEscaped++
	s.apply(s.state.AddLives(-1))
}

// spawnBonus sends a bonus ship across the screen at a random height.
func (s *Sim) spawnBonus() {
	bc := s.cfg.Bonus
	w, h := s.cfg.World.Width, s.cfg.World.Height

	y := h * RandRange(s.rng, bc.BandMin, bc.BandMax)
	from := core.V(-bc.Width, y)
	to := core.V(w+bc.Width, y)

	bonus := s.world.Spawn(CategoryBonus, "bonus", from, core.V(bc.Width, bc.Height))
	s.motions.Begin(bonus, Straight(from, to, bc.Duration), func() {
		s.world.Remove(bonus)
	})
	s.stats.BonusesSpawned++
}
