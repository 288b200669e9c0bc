package turtlewow

import "fmt"

// SourceUnavailableError is returned when the external database could not
// be reached: either every retry attempt failed with a transient error, or
// the server answered with a terminal (non-retryable) status.
type SourceUnavailableError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("failed to access %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a fetched document cannot be parsed as
// markup at all. It is never retried.
type FormatError struct {
	URL string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unparseable document from %s: %v", e.URL, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
