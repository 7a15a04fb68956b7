package sim

// TimerKind tags what a timer spawns.
type TimerKind int

const (
	TimerEnemyWave TimerKind = iota
	TimerBonus
	TimerDelayed
)

// String returns the kind name.
func (k TimerKind) String() string {
	switch k {
	case TimerEnemyWave:
		return "enemy_wave"
	case TimerBonus:
		return "bonus"
	case TimerDelayed:
		return "delayed"
	default:
		return "unknown"
	}
}

// TimerID identifies a scheduled timer.
type TimerID uint64

// SpawnTimer counts down to a firing.
type SpawnTimer struct {
	ID        TimerID
	Kind      TimerKind
	Interval  float64
	Repeat    bool
	Remaining float64

	fire      func()
	cancelled bool
}

// Scheduler runs countdown timers inside the frame update. It never blocks;
// a timer is just a number that reaches zero during some Tick.
type Scheduler struct {
	timers []*SpawnTimer
	nextID TimerID
	open   func() bool
}

// NewScheduler creates a scheduler. Firings are honored only while open
// returns true; a nil open always allows them.
func NewScheduler(open func() bool) *Scheduler {
	return &Scheduler{open: open}
}

func (s *Scheduler) allowed() bool {
	return s.open == nil || s.open()
}

// Schedule arms a timer that fires after interval seconds.
func (s *Scheduler) Schedule(kind TimerKind, interval float64, repeat bool, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, &SpawnTimer{
		ID:        s.nextID,
		Kind:      kind,
		Interval:  interval,
		Repeat:    repeat,
		Remaining: interval,
		fire:      fn,
	})
	return s.nextID
}

// Replace cancels every pending timer of kind and arms a new one.
func (s *Scheduler) Replace(kind TimerKind, interval float64, repeat bool, fn func()) TimerID {
	s.CancelKind(kind)
	return s.Schedule(kind, interval, repeat, fn)
}

// Cancel stops a timer. Cancelling an unknown or finished timer returns false.
func (s *Scheduler) Cancel(id TimerID) bool {
	for _, t := range s.timers {
		if t.ID == id && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	return false
}

// CancelKind stops every pending timer of kind and returns how many were stopped.
func (s *Scheduler) CancelKind(kind TimerKind) int {
	n := 0
	for _, t := range s.timers {
		if t.Kind == kind && !t.cancelled {
			t.cancelled = true
			n++
		}
	}
	return n
}

// Pending returns the live timers of kind.
func (s *Scheduler) Pending(kind TimerKind) []SpawnTimer {
	var out []SpawnTimer
	for _, t := range s.timers {
		if t.Kind == kind && !t.cancelled {
			out = append(out, *t)
		}
	}
	return out
}

// Tick counts every timer down by dt and fires the due ones in arming order.
// Timers armed by a firing start counting on the next Tick. Once the gate
// closes nothing fires and nothing counts down.
func (s *Scheduler) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if !s.allowed() {
		return
	}
	snapshot := s.timers
	for _, t := range snapshot {
		if t.cancelled {
			continue
		}
		t.Remaining -= dt
		if t.Remaining > 0 {
			continue
		}
		if !s.allowed() {
			break
		}
		if t.Repeat {
			t.Remaining = t.Interval
		} else {
			t.cancelled = true
		}
		if t.fire != nil {
			t.fire()
		}
	}
	s.compact()
}

func (s *Scheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
}
