package contention

import (
	"sync"
	"sync/atomic"
	"time"
)

// recordingObserver captures ordering and exclusion evidence from a run.
type recordingObserver struct {
	workers int

	mu           sync.Mutex
	readyCount   int
	readyAtGate  int
	gateOpenedAt time.Time
	gateOpens    int
	loopEntries  map[int]time.Time
	stopRaisedAt time.Time
	stopRaises   int

	inside     atomic.Int64
	overlaps   atomic.Int64
	lastHolder atomic.Int64
	sections   atomic.Int64
}

func newRecordingObserver(workers int) *recordingObserver {
	o := &recordingObserver{
		workers:     workers,
		loopEntries: make(map[int]time.Time, workers),
	}
	o.lastHolder.Store(-1)
	return o
}

func (o *recordingObserver) WorkerReady(int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.readyCount++
}

func (o *recordingObserver) GateOpened(at time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.gateOpenedAt = at
	o.gateOpens++
	o.readyAtGate = o.readyCount
}

func (o *recordingObserver) LoopEntered(worker int, at time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loopEntries[worker] = at
}

func (o *recordingObserver) CriticalEnter(worker int) {
	if o.inside.Add(1) != 1 {
		o.overlaps.Add(1)
	}
	o.lastHolder.Store(int64(worker))
	o.sections.Add(1)
}

func (o *recordingObserver) CriticalExit(worker int) {
	if o.lastHolder.Load() != int64(worker) {
		o.overlaps.Add(1)
	}
	o.inside.Add(-1)
}

func (o *recordingObserver) StopRaised(at time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopRaisedAt = at
	o.stopRaises++
}

// panicObserver panics in the given worker once it passes the gate.
type panicObserver struct {
	NopObserver
	worker int
	value  any
}

func (o panicObserver) LoopEntered(worker int, _ time.Time) {
	if worker == o.worker {
		panic(o.value)
	}
}

// panicInLockObserver panics while holding the shared lock.
type panicInLockObserver struct {
	NopObserver
	worker int
}

func (o panicInLockObserver) CriticalEnter(worker int) {
	if worker == o.worker {
		panic("boom inside critical section")
	}
}
