package latch

import (
	"context"
	"sync"
)

// Gate is a broadcast one-shot gate.
//
// Until Open is called every Wait blocks. After Open every pending and future
// Wait returns immediately. The transition happens exactly once.
type Gate struct {
	once sync.Once
	done chan struct{}
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Open opens the gate and releases all waiters.
// Returns true only for the call that performed the transition.
func (g *Gate) Open() bool {
	opened := false
	g.once.Do(func() {
		close(g.done)
		opened = true
	})
	return opened
}

// Wait blocks until the gate is open or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	default:
	}

	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed when the gate opens.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// IsOpen reports whether the gate has been opened.
func (g *Gate) IsOpen() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}
