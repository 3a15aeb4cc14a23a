package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; the boundaries map them to
// transport codes. Anything that matches none of them is an internal fault.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnknownState = errors.New("unknown state")
)

var (
	ErrInvalidRange    = fmt.Errorf("%w: booking end must be after its start", ErrValidation)
	ErrItemUnavailable = fmt.Errorf("%w: item is not available for booking", ErrValidation)
	ErrSelfBooking     = fmt.Errorf("%w: owner cannot book their own item", ErrValidation)
	ErrNotWaiting      = fmt.Errorf("%w: booking is not waiting for a decision", ErrConflict)
)

// UnknownStateError carries the rejected filter token.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return "Unknown state: " + e.State
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
