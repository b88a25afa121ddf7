package latch

import "sync/atomic"

// Flag is a monotonic stop flag.
//
// It starts lowered and can be raised once. Once Raised returns true it never
// returns false again. Polling is a single atomic load, which keeps it cheap
// inside hot loops.
type Flag struct {
	raised atomic.Bool
}

// Raise raises the flag.
// Returns true only for the call that performed the false to true transition.
func (f *Flag) Raise() bool {
	return f.raised.CompareAndSwap(false, true)
}

// Raised reports whether the flag has been raised.
func (f *Flag) Raised() bool {
	return f.raised.Load()
}
