package queries

import (
	"tripdesk/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrFlightNotFound  = errs.New("flight not found")
	ErrPackageNotFound = errs.New("tour package not found")
	ErrUserNotFound    = errs.New("user not found")
	ErrUserInactive    = errs.New("user inactive")
)
