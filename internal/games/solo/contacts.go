package solo

import (
	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/sim"
)

// Categories the contact host tests against each other: every target is
// checked against every hitter.
const (
	contactTargets = sim.CategoryEnemy | sim.CategoryBonus
	contactHitters = sim.CategoryPlayer | sim.CategoryBullet
)

// node is the host-side mirror of one entity.
type node struct {
	handle int
	cat    sim.Category
	pos    core.Vec
	size   core.Vec
}

// contactHost mirrors the world into its own nodes and reports overlapping
// pairs back through Sim.OnContact. It is used when collision_mode is "host".
type contactHost struct {
	next  int
	nodes map[int]*node
	order []int
}

func newContactHost() *contactHost {
	return &contactHost{nodes: make(map[int]*node)}
}

func (h *contactHost) CreateEntity(_ string, size core.Vec, cat sim.Category) sim.Handle {
	h.next++
	h.nodes[h.next] = &node{handle: h.next, cat: cat, size: size}
	h.order = append(h.order, h.next)
	return h.next
}

func (h *contactHost) SetPosition(handle sim.Handle, pos core.Vec) {
	if n, ok := h.node(handle); ok {
		n.pos = pos
	}
}

func (h *contactHost) SetAppearance(sim.Handle, float64, float64) {}

func (h *contactHost) RemoveEntity(handle sim.Handle) {
	if n, ok := h.node(handle); ok {
		delete(h.nodes, n.handle)
	}
}

func (h *contactHost) node(handle sim.Handle) (*node, bool) {
	id, ok := handle.(int)
	if !ok {
		return nil, false
	}
	n, ok := h.nodes[id]
	return n, ok
}

// live compacts the creation order and returns the nodes in it.
func (h *contactHost) live() []*node {
	kept := h.order[:0]
	out := make([]*node, 0, len(h.nodes))
	for _, id := range h.order {
		if n, ok := h.nodes[id]; ok {
			kept = append(kept, id)
			out = append(out, n)
		}
	}
	h.order = kept
	return out
}

// report delivers every overlapping target/hitter pair to s, in creation
// order. It returns the number of contacts the simulation resolved.
func (h *contactHost) report(s *sim.Sim) int {
	var targets, hitters []*node
	for _, n := range h.live() {
		switch {
		case n.cat&contactTargets != 0:
			targets = append(targets, n)
		case n.cat&contactHitters != 0:
			hitters = append(hitters, n)
		}
	}

	resolved := 0
	for _, t := range targets {
		tb := core.NewBox(t.pos, t.size)
		for _, o := range hitters {
			if !tb.Intersects(core.NewBox(o.pos, o.size)) {
				continue
			}
			if s.OnContact(t.cat, o.cat, t.handle, o.handle) != sim.ContactIgnored {
				resolved++
			}
		}
	}
	return resolved
}
