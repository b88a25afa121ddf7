package latch

import (
	"context"
	"sync"
)

// Signal is a one-shot acknowledgement set by a single writer.
//
// Set never blocks. Readers block in Wait until the signal is set.
type Signal struct {
	once sync.Once
	done chan struct{}
}

// NewSignal creates an unset signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// NewSignals creates n unset signals.
func NewSignals(n int) []*Signal {
	signals := make([]*Signal, n)
	for i := range signals {
		signals[i] = NewSignal()
	}
	return signals
}

// Set marks the signal. Calls after the first are no-ops.
func (s *Signal) Set() {
	s.once.Do(func() { close(s.done) })
}

// Wait blocks until the signal is set or ctx is done.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed once the signal is set.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// IsSet reports whether Set has been called.
func (s *Signal) IsSet() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// WaitAll blocks until every signal is set or ctx is done.
// An empty slice is satisfied immediately.
func WaitAll(ctx context.Context, signals []*Signal) error {
	for _, s := range signals {
		if err := s.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}
