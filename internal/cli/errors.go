package cli

import (
	"errors"
	"fmt"
)

type emptyTaskError struct{}

func (emptyTaskError) Error() string { return "empty task" }

type indexRangeError struct {
	index int
	len   int
}

func (e indexRangeError) Error() string {
	if e.len == 0 {
		return fmt.Sprintf("task index out of range: %d (list is empty)", e.index)
	}
	return fmt.Sprintf("task index out of range: %d (want 0..%d)", e.index, e.len-1)
}

// reportedError marks an error that writeErr already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Reported reports whether err has already been written to stderr.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
