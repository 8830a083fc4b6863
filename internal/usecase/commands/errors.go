package commands

import (
	"fmt"

	"tripdesk/internal/pkg/errs"
)

var (
	ErrInvalidPartySize        = errs.New("party size out of range")
	ErrDateInPast              = errs.New("selected date is in the past")
	ErrPackageNotFound         = errs.New("tour package not found")
	ErrPackageExpired          = errs.New("tour package no longer bookable")
	ErrFlightNotFound          = errs.New("flight not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrAlreadyCancelled        = errs.New("booking already cancelled")
	ErrInvalidStatusTransition = errs.New("invalid status transition")
	ErrInvalidCredentials      = errs.New("invalid credentials")
	ErrUserInactive            = errs.New("user inactive")
	ErrCodeCollision           = errs.New("booking code collision not resolved")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CapacityExceededError reports how many spots remain so the caller can
// retry with a smaller party.
type CapacityExceededError struct {
	AvailableSpots int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded, %d spots available", e.AvailableSpots)
}

// InsufficientSeatsError reports the remaining seat count on rejection.
type InsufficientSeatsError struct {
	AvailableSeats int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("insufficient seats, %d available", e.AvailableSeats)
}

// InvalidFieldsError itemizes every request field that failed to parse.
type InvalidFieldsError struct {
	Fields []FieldDetail
}

type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %d field(s)", len(e.Fields))
}
