package components

import "sync"

// ButtonGroup tracks which buttons currently belong to it. Members register
// on attach and deregister on detach; the full-width rule iterates the
// member set at class-composition time, so attach/detach and iteration take
// the same lock.
type ButtonGroup struct {
	mu        sync.Mutex
	fullWidth bool
	members   map[*Button]struct{}
}

func NewButtonGroup(fullWidth bool) *ButtonGroup {
	return &ButtonGroup{
		fullWidth: fullWidth,
		members:   make(map[*Button]struct{}),
	}
}

// FullWidth reports whether the group stretches its members.
func (g *ButtonGroup) FullWidth() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fullWidth
}

// SetFullWidth toggles the group flag at runtime.
func (g *ButtonGroup) SetFullWidth(on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fullWidth = on
}

// Attach registers b as a member. Attaching to a second group moves the
// button: it detaches from the previous group first.
func (g *ButtonGroup) Attach(b *Button) {
	if b == nil {
		return
	}
	if prev := b.group; prev != nil && prev != g {
		prev.Detach(b)
	}
	g.mu.Lock()
	g.members[b] = struct{}{}
	g.mu.Unlock()
	b.group = g
}

// Detach removes b from the member set.
func (g *ButtonGroup) Detach(b *Button) {
	if b == nil {
		return
	}
	g.mu.Lock()
	delete(g.members, b)
	g.mu.Unlock()
	if b.group == g {
		b.group = nil
	}
}

// Len returns the current member count.
func (g *ButtonGroup) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.members)
}

// anyMemberFullWidth reports whether any attached button carries its own
// full-width flag.
func (g *ButtonGroup) anyMemberFullWidth() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for m := range g.members {
		if m.cfg.FullWidth {
			return true
		}
	}
	return false
}
