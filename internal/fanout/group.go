package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fanwait/internal/errors"
)

// Handle is a non-owning reference to a launched unit, sufficient only to
// wait for it.
type Handle struct {
	Ordinal int
	done    chan struct{}
}

// Done is closed exactly once, when the unit's body has returned.
func (h *Handle) Done() <-chan struct{} { return h.done }

// WaiterSet is the ordered collection of handles a caller must wait on.
type WaiterSet struct {
	handles []*Handle
}

// Len returns the number of handles in the set.
func (s *WaiterSet) Len() int { return len(s.handles) }

// Handles returns the handles in launch order.
func (s *WaiterSet) Handles() []*Handle { return s.handles }

func (s *WaiterSet) add(h *Handle) { s.handles = append(s.handles, h) }

// join blocks until every handle has been signalled, in launch order.
func (s *WaiterSet) join() {
	for _, h := range s.handles {
		<-h.done
	}
}

// Group launches units and provides the single join point for them.
// Launch and Wait must be called from the same goroutine; a Group is not
// reusable after Wait.
type Group struct {
	eg  errgroup.Group
	set WaiterSet
}

// NewGroup returns a Group. A positive limit bounds the number of units in
// flight; Launch then blocks until a slot frees up.
func NewGroup(limit int) *Group {
	g := &Group{}
	if limit > 0 {
		g.eg.SetLimit(limit)
	}
	return g
}

// Launch records a handle for u and starts work for it.
func (g *Group) Launch(ctx context.Context, u Unit, work Work) *Handle {
	h := &Handle{Ordinal: u.Ordinal, done: make(chan struct{})}
	g.set.add(h)
	g.eg.Go(func() error {
		defer close(h.done)
		if err := work(ctx, u); err != nil {
			return &apperrors.UnitError{Ordinal: u.Ordinal, Cause: err}
		}
		return nil
	})
	return h
}

// Handles returns the waiter set built so far.
func (g *Group) Handles() *WaiterSet { return &g.set }

// Wait joins every launched unit and returns the first unit error, if any.
func (g *Group) Wait() error {
	g.set.join()
	return g.eg.Wait()
}
