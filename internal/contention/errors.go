package contention

import (
	"errors"
	"fmt"
	"strconv"
)

// RuntimeError represents a failed run.
//
// A failed run never yields a partial report: the harness's only purpose is
// measurement and partial counts are not meaningful.
type RuntimeError struct {
	// Code identifies the error category.
	Code RuntimeErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context (e.g. the failing worker id).
	Details map[string]string

	// Err is the underlying cause, if any.
	Err error
}

// RuntimeErrorCode categorizes runtime errors.
type RuntimeErrorCode string

const (
	// ErrCodeInvalidConfig indicates the run was rejected before any worker
	// was launched.
	ErrCodeInvalidConfig RuntimeErrorCode = "INVALID_CONFIG"

	// ErrCodeWorkerPanic indicates a worker terminated abnormally.
	ErrCodeWorkerPanic RuntimeErrorCode = "WORKER_PANIC"

	// ErrCodeCancelled indicates the caller cancelled the run before the
	// window elapsed.
	ErrCodeCancelled RuntimeErrorCode = "CANCELLED"
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if worker, ok := e.Details["worker"]; ok {
		return fmt.Sprintf("%s: %s (worker=%s)", e.Code, e.Message, worker)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsWorkerPanic returns true if err is, or wraps, a worker panic error.
func IsWorkerPanic(err error) bool {
	return hasCode(err, ErrCodeWorkerPanic)
}

// IsCancelled returns true if err is, or wraps, a cancelled-run error.
func IsCancelled(err error) bool {
	return hasCode(err, ErrCodeCancelled)
}

// IsConfigError returns true if err is, or wraps, an invalid config error.
func IsConfigError(err error) bool {
	return hasCode(err, ErrCodeInvalidConfig)
}

func hasCode(err error, code RuntimeErrorCode) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// NewConfigError creates a RuntimeError for an invalid Config.
func NewConfigError(message string) *RuntimeError {
	return &RuntimeError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// NewWorkerPanicError creates a RuntimeError for a worker that panicked.
// If the recovered value is an error it becomes the cause.
func NewWorkerPanicError(workerID int, recovered any) *RuntimeError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("%v", recovered)
	}
	return &RuntimeError{
		Code:    ErrCodeWorkerPanic,
		Message: fmt.Sprintf("worker terminated abnormally: %v", recovered),
		Details: map[string]string{
			"worker": strconv.Itoa(workerID),
		},
		Err: cause,
	}
}

// NewCancelledError creates a RuntimeError for a run cut short by its context.
func NewCancelledError(cause error) *RuntimeError {
	return &RuntimeError{
		Code:    ErrCodeCancelled,
		Message: "run cancelled before the window elapsed",
		Err:     cause,
	}
}
