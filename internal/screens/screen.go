// Package screens holds the view-model state machines behind the
// dashboard's collection pages: one fetch on mount, then ready items that
// user actions mutate through the backend and an authoritative refetch.
package screens

import "sync"

// Phase is the observable state of a resource screen.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// collection is the shared loading/error/ready container. A failed user
// action on a ready collection keeps the items visible; only the initial
// fetch (or an explicit reload) passes through the loading phase.
type collection[T any] struct {
	mu      sync.Mutex
	phase   Phase
	message string
	items   []T
}

func newCollection[T any]() collection[T] {
	return collection[T]{phase: PhaseLoading}
}

func (c *collection[T]) setReady(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseReady
	c.message = ""
	c.items = items
}

func (c *collection[T]) setError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseError
	c.message = message
	c.items = nil
}

func (c *collection[T]) setLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseLoading
	c.message = ""
	c.items = nil
}

func (c *collection[T]) snapshot() (Phase, string, []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.message, append([]T(nil), c.items...)
}

// replaceWhere swaps the ready items using fn, without touching the
// phase. Used when a refetch after a mutation fails and the local copy is
// the best truth available.
func (c *collection[T]) replaceWhere(fn func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseReady {
		c.items = fn(c.items)
	}
}
