package timer

import (
	"sync"
	"time"
)

// Handle identifies a callback scheduled through a Group. It is only useful
// for cancelling that callback.
type Handle uint64

// Group tracks the callbacks it scheduled so they can be cancelled as a set.
//
// Group does no locking of its own. Every method must be called with mu held,
// and every callback scheduled through the group runs with mu held. A
// callback whose handle is no longer registered when it acquires mu does
// nothing, so a timer that fired concurrently with Cancel or StopAll never
// runs its action.
type Group struct {
	clock   Clock
	mu      sync.Locker
	next    Handle
	pending map[Handle]Timer
}

func NewGroup(clock Clock, mu sync.Locker) *Group {
	return &Group{
		clock:   clock,
		mu:      mu,
		pending: make(map[Handle]Timer),
	}
}

func (g *Group) After(d time.Duration, f func()) Handle {
	g.next++
	h := g.next

	g.pending[h] = g.clock.AfterFunc(d, func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		if _, ok := g.pending[h]; !ok {
			return
		}
		delete(g.pending, h)
		f()
	})

	return h
}

// Cancel revokes h. Cancelling an unknown or already fired handle is a no-op
// and returns false.
func (g *Group) Cancel(h Handle) bool {
	t, ok := g.pending[h]
	if !ok {
		return false
	}
	delete(g.pending, h)
	t.Stop()
	return true
}

// StopAll revokes every outstanding callback and returns how many there were.
func (g *Group) StopAll() int {
	n := len(g.pending)
	for h, t := range g.pending {
		t.Stop()
		delete(g.pending, h)
	}
	return n
}

func (g *Group) Len() int {
	return len(g.pending)
}
