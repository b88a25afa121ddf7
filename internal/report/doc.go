// Package report holds the result of a contention run and renders it.
//
// The text rendering is the program's only output surface: one line per
// worker, in worker id order, of the form
//
//	[<id>] hit <count> times
//
// A run with zero workers renders nothing.
package report
