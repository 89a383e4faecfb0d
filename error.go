package dali

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a command parameter or address outside
	// its declared numeric range
	ErrInvalidArgument = errors.New("argument out of range")

	// ErrInvalidDestination indicates a destination that is not an int,
	// Address or Addressable
	ErrInvalidDestination = errors.New("destination must be an int, Address or Addressable")

	// ErrMissingResponse indicates a query expected a backward frame but
	// none was received
	ErrMissingResponse = errors.New("no response received")

	// ErrFramingError indicates a backward frame was received with a
	// framing error (more than one device answered at once)
	ErrFramingError = errors.New("response received with framing error")

	// ErrUnknownBit indicates a status bit name that the response type
	// does not declare
	ErrUnknownBit = errors.New("unknown status bit")

	// ErrReadTimeout indicates the timeout period expired while waiting
	// for the bus interface
	ErrReadTimeout = errors.New("read timeout")
)

// ValueError wraps ErrInvalidArgument (or another cause) with the declared
// range and the offending value
type ValueError struct {
	Cause    error
	Min, Max int
	Got      int
}

func newValueError(cause error, min, max, got int) *ValueError {
	return &ValueError{Cause: cause, Min: min, Max: max, Got: got}
}

func (ve *ValueError) Error() string {
	if ve.Cause == nil {
		return fmt.Sprintf("value %d out of range %d..%d", ve.Got, ve.Min, ve.Max)
	}
	return fmt.Sprintf("%s: value %d out of range %d..%d", ve.Cause.Error(), ve.Got, ve.Min, ve.Max)
}

// IsError compares check to err. If err is a ValueError then check is
// compared to the ValueError's cause
func IsError(check, err error) bool {
	if ve, ok := err.(*ValueError); ok {
		return ve.Cause == check
	}
	return check == err
}
