// Package scenario loads declarative contention scenarios and checks run
// reports against their expectations.
//
// Scenarios are YAML files:
//
//	name: reference_defaults
//	description: "100 workers, 100ms window, 10ns backoff"
//	workers: 100
//	duration: 100ms
//	backoff: 10ns
//	expect:
//	  lines: 100
//	  min_total: 1
//
// Durations use Go duration syntax. Because the stop is driven by wall-clock
// time, expectations can only bound hit totals from below; exact counts are
// never reproducible.
package scenario
