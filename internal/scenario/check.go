package scenario

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/roach88/hitcount/internal/report"
)

// Check verifies rep against the scenario's expectations.
// It returns every violation, not just the first.
func Check(s *Scenario, rep *report.Report) []error {
	var errs []error

	if rep.Workers() != s.Expect.Lines {
		errs = append(errs, fmt.Errorf("expected %d workers in report, got %d", s.Expect.Lines, rep.Workers()))
	}

	for id, hits := range rep.Hits {
		if hits < 0 {
			errs = append(errs, fmt.Errorf("worker %d: negative hit count %d", id, hits))
		}
	}

	if total := rep.Total(); total < s.Expect.MinTotal {
		errs = append(errs, fmt.Errorf("expected at least %d total hits, got %d", s.Expect.MinTotal, total))
	}

	errs = append(errs, checkLines(rep)...)
	return errs
}

// checkLines renders the report and verifies line count and id order.
func checkLines(rep *report.Report) []error {
	var buf bytes.Buffer
	if err := rep.WriteText(&buf); err != nil {
		return []error{err}
	}

	var errs []error
	scanner := bufio.NewScanner(&buf)
	line := 0
	for scanner.Scan() {
		var id int
		var hits int64
		if _, err := fmt.Sscanf(scanner.Text(), "[%d] hit %d times", &id, &hits); err != nil {
			errs = append(errs, fmt.Errorf("line %d: malformed %q: %w", line, scanner.Text(), err))
		} else if id != line {
			errs = append(errs, fmt.Errorf("line %d: expected worker id %d, got %d", line, line, id))
		}
		line++
	}
	if line != rep.Workers() {
		errs = append(errs, fmt.Errorf("expected %d report lines, got %d", rep.Workers(), line))
	}

	return errs
}
