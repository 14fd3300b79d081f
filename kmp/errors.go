package kmp

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned when a zero-length pattern is used for
	// matching. BuildLPS alone accepts it.
	ErrEmptyPattern = errors.New("kmp: empty pattern")

	// ErrInvalidLPS is returned by Search when the supplied table was not
	// built for the supplied pattern.
	ErrInvalidLPS = errors.New("kmp: lps table does not match pattern")

	// ErrInvalidMode is returned when a Mode other than ModeCount or
	// ModeLocate is requested.
	ErrInvalidMode = errors.New("kmp: invalid mode")

	// ErrPanicked wraps a runtime panic recovered from a batch job, such as
	// a failed allocation for an oversized offset list.
	ErrPanicked = errors.New("kmp: search panicked")
)

// JobError reports the failure of a single job in a batch.
type JobError struct {
	Index int
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("kmp: job %d: %v", e.Index, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}
