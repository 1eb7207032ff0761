package calendar

import "errors"

// ErrInvalidDateFormat is matched by every error returned for a string that
// does not have the shape -?digits-digits-digits.
var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidDateFormatError carries the offending raw string.
type InvalidDateFormatError struct {
	Input string
}

func (e *InvalidDateFormatError) Error() string {
	return "invalid date format: " + e.Input
}

// Is reports whether target is ErrInvalidDateFormat so callers can use
// errors.Is without caring about the concrete input.
func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}
