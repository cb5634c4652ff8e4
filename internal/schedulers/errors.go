package schedulers

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyProcessId        = errors.New("process id is empty")
	ErrDuplicateProcessId    = errors.New("duplicate process id")
	ErrReservedProcessId     = errors.New("process id is reserved for idle time")
	ErrNegativeArrivalTime   = errors.New("arrival time is negative")
	ErrNonPositiveBurstTime  = errors.New("burst time must be at least 1")
	ErrNonPositiveQuantum    = errors.New("time quantum must be at least 1")
	ErrNonPositiveAllotment  = errors.New("allotment must be at least 1")
	ErrAllotmentBelowQuantum = errors.New("allotment is smaller than time quantum")
	ErrNoLevels              = errors.New("at least one queue level is required")
	ErrUnknownAlgorithm      = errors.New("unknown algorithm")
)

// ConfigurationError reports invalid input. It is always returned before any
// simulated tick runs.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configurationError(err error, format string, args ...interface{}) error {
	return &ConfigurationError{Field: fmt.Sprintf(format, args...), Err: err}
}
