// Package contention implements the mutex contention harness.
//
// A run launches a fixed pool of workers, releases them together, lets them
// hammer a single shared lock for a fixed wall-clock window, then stops and
// joins them and reports how often each worker got the lock.
//
// RUN LIFECYCLE:
//
//  1. Every worker sets its own ready signal, then blocks on the start gate.
//  2. The coordinator waits for all ready signals and opens the gate.
//  3. The coordinator sleeps for Config.Duration while workers loop:
//     lock, increment own slot, unlock, sleep Config.Backoff.
//  4. The coordinator raises the stop flag and joins every worker.
//  5. The hit counts are returned as a report.Report in worker id order.
//
// SHARED STATE:
//
// The lock, the hit counts and the stop flag live in one sharedState value
// created per run and referenced by every worker. Exactly one lock guards all
// hit-count mutations, even though each worker only touches its own slot.
// There is no package-level mutable state.
//
// TIMING:
//
// The stop is driven by a sleep, not by an iteration budget. Hit totals are
// therefore non-deterministic and differ between runs and machines; only
// positivity and ordering are stable properties. Workers also notice the stop
// flag at slightly different times since they poll it between iterations.
// Lock acquisition is not fair, so uneven hit distributions are expected.
package contention
