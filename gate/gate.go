package gate

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/resilient/logger"
)

// Action represents deferred work
type Action func()

type observer struct {
	id  string
	run Action
}

// Pending represents a deferred action waiting for readiness
type Pending struct {
	ID  string
	Run Action
}

// Gate is a one-way readiness signal with observers and a single deferred action slot
type Gate struct {
	mu        sync.Mutex
	ready     bool
	draining  bool // SetReady is still delivering, Defer keeps using the slot
	observers []*observer
	pending   *Pending
	logger    logger.Logger
}

// Option represents gate option
type Option func(g *Gate)

// WithLogger sets logger
func WithLogger(log logger.Logger) Option {
	return func(g *Gate) {
		g.logger = log
	}
}

// Ready returns current readiness
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// OnReady registers an observer and returns its id.
// The observer runs in the caller goroutine when the gate is already ready.
func (g *Gate) OnReady(run Action) string {
	id := uuid.NewString()
	g.mu.Lock()
	if g.ready {
		g.mu.Unlock()
		g.run(id, run)
		return id
	}
	g.observers = append(g.observers, &observer{id: id, run: run})
	g.mu.Unlock()
	return id
}

// Remove detaches an observer that has not run yet
func (g *Gate) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, candidate := range g.observers {
		if candidate.id == id {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			return true
		}
	}
	return false
}

// SetReady opens the gate; it returns true only for the call that performed the transition.
// The pending deferred action runs first, then observers in registration order, all outside the lock.
// Actions deferred while SetReady is delivering replace the slot and run before it returns,
// so the most recent deferred action is always the last one to run.
func (g *Gate) SetReady() bool {
	g.mu.Lock()
	if g.ready {
		g.mu.Unlock()
		return false
	}
	g.ready = true
	g.draining = true
	observers := g.observers
	g.observers = nil
	g.mu.Unlock()

	g.drain(false)
	for _, o := range observers {
		g.run(o.id, o.run)
	}
	g.drain(true)
	return true
}

// drain runs the pending slot until it stays empty, the final drain ends delivery
func (g *Gate) drain(final bool) {
	for {
		g.mu.Lock()
		pending := g.pending
		g.pending = nil
		if pending == nil {
			if final {
				g.draining = false
			}
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		g.run(pending.ID, pending.Run)
	}
}

// Defer runs action now when ready, otherwise stores it as the single pending action replacing any previous one
func (g *Gate) Defer(run Action) string {
	id := uuid.NewString()
	g.mu.Lock()
	if g.ready && !g.draining {
		g.mu.Unlock()
		g.run(id, run)
		return id
	}
	if g.pending != nil {
		g.logger.Debug(context.Background(), fmt.Sprintf("pending action %v replaced by %v", g.pending.ID, id))
	}
	g.pending = &Pending{ID: id, Run: run}
	g.mu.Unlock()
	return id
}

// Pending returns id of the pending deferred action
func (g *Gate) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return "", false
	}
	return g.pending.ID, true
}

func (g *Gate) run(id string, run Action) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error(context.Background(), fmt.Sprintf("action %v panicked: %v", id, r))
		}
	}()
	run()
}

// New creates a gate in NotReady state
func New(options ...Option) *Gate {
	ret := &Gate{logger: logger.Nop()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
