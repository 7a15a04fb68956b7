package sim

import (
	"testing"

	"github.com/vovakirdan/solo-mission/internal/config"
	"github.com/vovakirdan/solo-mission/internal/core"
)

// recordingHost numbers its nodes from 1000 so handles never coincide with
// entity IDs.
type recordingHost struct {
	created   int
	removed   int
	positions map[int]core.Vec
	byCat     map[Category][]int
}

func newRecordingHost() *recordingHost {
	return &recordingHost{
		positions: make(map[int]core.Vec),
		byCat:     make(map[Category][]int),
	}
}

func (h *recordingHost) CreateEntity(_ string, _ core.Vec, cat Category) Handle {
	h.created++
	handle := 1000 + h.created
	h.byCat[cat] = append(h.byCat[cat], handle)
	return handle
}

// last returns the newest handle created for cat.
func (h *recordingHost) last(t *testing.T, cat Category) int {
	t.Helper()
	handles := h.byCat[cat]
	if len(handles) == 0 {
		t.Fatalf("host never created a %s node", cat)
	}
	return handles[len(handles)-1]
}

func (h *recordingHost) SetPosition(handle Handle, pos core.Vec) {
	h.positions[handle.(int)] = pos
}

func (h *recordingHost) SetAppearance(Handle, float64, float64) {}

func (h *recordingHost) RemoveEntity(Handle) {
	h.removed++
}

// hostConfig returns defaults with contacts reported by the caller,
// so tests decide exactly which pairs touch.
func hostConfig() config.SoloConfig {
	cfg := config.DefaultSoloConfig()
	cfg.Gameplay.CollisionMode = config.CollisionHost
	return cfg
}

func newTestSim(t *testing.T, mutate func(*config.SoloConfig)) *Sim {
	t.Helper()
	cfg := hostConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(Options{Config: cfg, Seed: 42})
}

// settle runs the sim until the ship has finished flying in.
func settle(t *testing.T, s *Sim) {
	t.Helper()
	for i := 0; i < 120 && !s.PlayerReady(); i++ {
		s.OnFrameUpdate(1.0 / 60)
	}
	if !s.PlayerReady() {
		t.Fatal("player never finished appearing")
	}
}

func spawnEnemyAt(s *Sim, pos core.Vec) *Entity {
	ec := s.cfg.Enemies
	return s.world.Spawn(CategoryEnemy, "enemy", pos, core.V(ec.Width, ec.Height))
}
