package domain

import "errors"

// Domain failure kinds. Services wrap these with fmt.Errorf("...: %w")
// so callers can branch with errors.Is while still seeing which
// precondition failed. None are retried internally.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrNoRateAvailable    = errors.New("no rate available")
)
