package randx

import "fmt"

// FlagClockFailure is the sentinel reported by ClockError.Flag.
const FlagClockFailure = -1

// ClockError represents a failed clock read while seeding.
type ClockError struct {
	Err error // Underlying error
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("clock read failed: %v", e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// Flag returns the negative sentinel for callers that record failures
// in an integer slot rather than propagating the error.
func (e *ClockError) Flag() int {
	return FlagClockFailure
}
