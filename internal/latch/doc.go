// Package latch provides the one-shot synchronization primitives used to
// start and stop a contention run.
//
// Three primitives cover the run lifecycle:
//
//   - Signal: a single-writer, one-shot acknowledgement. A worker sets its
//     Signal once it is running; the coordinator waits on it.
//   - Gate: a broadcast one-shot gate. Every waiter, including ones that
//     arrive after it opened, passes through once it is open. It is not a
//     counting semaphore.
//   - Flag: a monotonic boolean (false to true, never back) that workers poll
//     in their hot loop.
//
// All types are safe for concurrent use and must not be copied after first
// use.
package latch
