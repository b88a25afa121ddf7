package report

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is an immutable snapshot of a finished run.
// Hits is indexed by worker id.
type Report struct {
	RunID    string
	Duration time.Duration
	Backoff  time.Duration
	Hits     []int64
}

// New creates a report from a hit-count snapshot.
// The slice is copied so later mutation by the caller does not leak in.
func New(runID string, duration, backoff time.Duration, hits []int64) *Report {
	hitsCopy := make([]int64, len(hits))
	copy(hitsCopy, hits)

	return &Report{
		RunID:    runID,
		Duration: duration,
		Backoff:  backoff,
		Hits:     hitsCopy,
	}
}

// Workers returns the number of workers the report covers.
func (r *Report) Workers() int {
	return len(r.Hits)
}

// Total returns the sum of all hit counts.
func (r *Report) Total() int64 {
	var total int64
	for _, h := range r.Hits {
		total += h
	}
	return total
}

// WriteText writes one "[id] hit N times" line per worker in id order.
func (r *Report) WriteText(w io.Writer) error {
	for id, hits := range r.Hits {
		if _, err := fmt.Fprintf(w, "[%d] hit %d times\n", id, hits); err != nil {
			return fmt.Errorf("write report line %d: %w", id, err)
		}
	}
	return nil
}

var summaryPrinter = message.NewPrinter(language.English)

// Summary returns a one-line human summary, e.g.
// "100 workers, 1,234,567 hits in 100ms".
//
// It is meant for logs. It is never part of the text report.
func (r *Report) Summary() string {
	return summaryPrinter.Sprintf("%d workers, %d hits in %v", r.Workers(), r.Total(), r.Duration)
}
