package contention

import (
	"fmt"
	"time"
)

// Defaults for a contention run.
const (
	DefaultWorkers  = 100
	DefaultDuration = 100 * time.Millisecond
	DefaultBackoff  = 10 * time.Nanosecond
)

// Config holds the parameters of a run.
type Config struct {
	// Workers is the number of concurrent workers. Zero is a valid, empty run.
	Workers int

	// Duration is the wall-clock window between opening the start gate and
	// raising the stop flag.
	Duration time.Duration

	// Backoff is the pause each worker takes after releasing the lock and
	// before polling the stop flag again. Zero disables the pause.
	Backoff time.Duration
}

// DefaultConfig returns the reference configuration: 100 workers running for
// 100ms with a 10ns backoff.
func DefaultConfig() Config {
	return Config{
		Workers:  DefaultWorkers,
		Duration: DefaultDuration,
		Backoff:  DefaultBackoff,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return NewConfigError(fmt.Sprintf("workers must be >= 0, got %d", c.Workers))
	case c.Duration < 0:
		return NewConfigError(fmt.Sprintf("duration must be >= 0, got %v", c.Duration))
	case c.Backoff < 0:
		return NewConfigError(fmt.Sprintf("backoff must be >= 0, got %v", c.Backoff))
	}
	return nil
}
