package checkkit

import "fmt"

// CheckError represents a failed result code observed by a check.
type CheckError struct {
	Code  int   // Negative result code that triggered the check
	Cause error // Underlying failure cause, if one was available
}

func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("check failed with code %d: %v", e.Code, e.Cause)
	}
	return fmt.Sprintf("check failed with code %d", e.Code)
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}
