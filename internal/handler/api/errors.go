package api

import (
	"errors"
	"net/http"

	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondCommandError maps usecase errors to reason codes. Business
// rejections carry structured detail; anything unmatched is a system error.
func respondCommandError(c *gin.Context, err error) {
	var (
		capacityErr *commands.CapacityExceededError
		seatsErr    *commands.InsufficientSeatsError
		fieldsErr   *commands.InvalidFieldsError
	)

	switch {
	case errors.As(err, &fieldsErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeMissingOrInvalidFields, "Missing or invalid fields",
			gin.H{"fields": fieldsErr.Fields})
	case errors.As(err, &capacityErr):
		httperr.AbortWithError(c, http.StatusConflict, err,
			httperr.CodeCapacityExceeded, "Not enough spots left for this date",
			gin.H{"availableSpots": capacityErr.AvailableSpots})
	case errors.As(err, &seatsErr):
		httperr.AbortWithError(c, http.StatusConflict, err,
			httperr.CodeInsufficientCapacity, "Not enough seats left on this flight",
			gin.H{"availableSeats": seatsErr.AvailableSeats})
	case errors.Is(err, commands.ErrInvalidPartySize):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeInvalidPartySize, "Party size must be between 1 and 20", nil)
	case errors.Is(err, commands.ErrDateInPast):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeDateInPast, "Selected date is in the past", nil)
	case errors.Is(err, commands.ErrPackageNotFound),
		errors.Is(err, commands.ErrFlightNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			httperr.CodeResourceNotFound, "Resource not found", nil)
	case errors.Is(err, commands.ErrPackageExpired):
		httperr.AbortWithError(c, http.StatusGone, err,
			httperr.CodeResourceExpired, "Package is no longer bookable", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			httperr.CodeBookingNotFound, "Booking not found", nil)
	case errors.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err,
			httperr.CodeAlreadyCancelled, "Booking is already cancelled", nil)
	case errors.Is(err, commands.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeInvalidStatusTransition, "Status transition not allowed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeSystemError, "Internal server error", nil)
	}
}

func respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrBookingNotFound),
		errors.Is(err, queries.ErrFlightNotFound),
		errors.Is(err, queries.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			httperr.CodeResourceNotFound, "Not found", nil)
	case errors.Is(err, queries.ErrBookingAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			httperr.CodeForbidden, "Access denied", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeSystemError, "Internal server error", nil)
	}
}
