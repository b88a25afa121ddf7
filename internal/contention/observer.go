package contention

import "time"

// Observer receives instrumentation callbacks from a run.
//
// CriticalEnter and CriticalExit are invoked while the shared lock is held,
// so an Observer can verify mutual exclusion without its own locking for
// those two calls. All other callbacks may arrive concurrently from many
// goroutines.
type Observer interface {
	// WorkerReady is called by each worker just before it sets its ready
	// signal. On a run that was not cut short, every WorkerReady call
	// happens before GateOpened.
	WorkerReady(worker int)

	// GateOpened is called once, with a timestamp taken before the gate
	// opened.
	GateOpened(at time.Time)

	// LoopEntered is called by each worker after passing the gate.
	LoopEntered(worker int, at time.Time)

	// CriticalEnter is called right after a worker acquired the lock.
	CriticalEnter(worker int)

	// CriticalExit is called right before a worker releases the lock.
	CriticalExit(worker int)

	// StopRaised is called once by the coordinator, after the stop flag was
	// raised.
	StopRaised(at time.Time)
}

// NopObserver ignores every callback.
type NopObserver struct{}

func (NopObserver) WorkerReady(int)            {}
func (NopObserver) GateOpened(time.Time)       {}
func (NopObserver) LoopEntered(int, time.Time) {}
func (NopObserver) CriticalEnter(int)          {}
func (NopObserver) CriticalExit(int)           {}
func (NopObserver) StopRaised(time.Time)       {}
