package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrPaymentNotFound = fmt.Errorf("payment %w", ErrNotFound)
)

var (
	ErrInvalidRange      = errors.New("invalid date range")
	ErrUnavailable       = errors.New("listing is unavailable for the requested dates")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyInitiated  = errors.New("payment already initiated for this booking")
)

var (
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	// ErrChargeRejected means the gateway definitely did not accept a charge.
	ErrChargeRejected = errors.New("charge rejected by payment gateway")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
	ErrEmailTaken = errors.New("email is already taken")
)

// ConstraintError names the store constraint a write violated.
type ConstraintError struct {
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Detail)
	}
	return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return ErrConstraintViolation
}
