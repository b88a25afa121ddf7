package contention

import (
	"sync"

	"github.com/roach88/hitcount/internal/latch"
)

// sharedState is everything the workers of one run share.
//
// INVARIANTS:
//   - mu guards every read and write of hits
//   - each worker only increments hits[id] for its own id
//   - stop only ever goes false to true
type sharedState struct {
	mu   sync.Mutex
	hits []int64
	stop latch.Flag
}

func newSharedState(workers int) *sharedState {
	return &sharedState{hits: make([]int64, workers)}
}

// hit runs one critical section for worker id.
func (s *sharedState) hit(id int, obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obs.CriticalEnter(id)
	s.hits[id]++
	obs.CriticalExit(id)
}

// snapshot copies the hit counts under the lock.
func (s *sharedState) snapshot() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, len(s.hits))
	copy(out, s.hits)
	return out
}
