package main

import (
	"errors"

	"histcal/internal/calendar"
)

const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (I/O, server failure)
	ExitUsageError  = 2 // Invalid arguments or flags
	ExitInvalidDate = 3 // A date string failed the shape check
)

// usageError marks errors caused by bad command-line input.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func exitCodeFor(err error) int {
	var ue usageError
	switch {
	case errors.Is(err, calendar.ErrInvalidDateFormat):
		return ExitInvalidDate
	case errors.As(err, &ue):
		return ExitUsageError
	default:
		return ExitError
	}
}
