package sim

import "github.com/vovakirdan/solo-mission/internal/core"

// Handle is the host's reference to the visual node behind an entity.
// The simulation never inspects it; it only uses it as a map key to resolve
// contacts, so hosts that report contacts must return comparable, unique handles.
type Handle any

// Host is the rendering collaborator. The simulation tells it about entity
// lifecycle and appearance; everything it draws is derived from these calls.
type Host interface {
	CreateEntity(visual string, size core.Vec, cat Category) Handle
	SetPosition(h Handle, pos core.Vec)
	SetAppearance(h Handle, scale, alpha float64)
	RemoveEntity(h Handle)
}

// NopHost ignores every call. Headless runs and tests use it.
type NopHost struct{}

func (NopHost) CreateEntity(string, core.Vec, Category) Handle { return nil }
func (NopHost) SetPosition(Handle, core.Vec)                   {}
func (NopHost) SetAppearance(Handle, float64, float64)         {}
func (NopHost) RemoveEntity(Handle)                            {}
