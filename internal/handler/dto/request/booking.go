package request

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateTourBookingRequest struct {
	PackageID       uuid.UUID `json:"package_id" binding:"required"`
	Participants    int       `json:"participants" binding:"required"`
	SelectedDate    time.Time `json:"selected_date" binding:"required"`
	ContactName     string    `json:"contact_name,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	SpecialRequests string    `json:"special_requests,omitempty"`
}

// CreateFlightBookingRequest accepts loosely typed JSON on purpose. Every
// field is parsed explicitly so a bad payload yields an itemized list of
// failing fields instead of a single bind error.
type CreateFlightBookingRequest struct {
	FlightID   any `json:"flight_id"`
	Passengers any `json:"passengers"`
	TotalPrice any `json:"total_price"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type FlightBookingInput struct {
	FlightID        uuid.UUID
	Passengers      int
	TotalPriceCents int64
}

// Parse coerces and validates the raw payload. A nil slice means the input
// is usable; otherwise every failing field is reported.
func (r CreateFlightBookingRequest) Parse() (FlightBookingInput, []FieldError) {
	var (
		input  FlightBookingInput
		fields []FieldError
	)

	flightID, ok := parseUUIDField(r.FlightID)
	if !ok {
		fields = append(fields, FieldError{Field: "flight_id", Reason: "must be a UUID"})
	}
	input.FlightID = flightID

	passengers, ok := parseIntField(r.Passengers)
	if !ok || passengers < 1 {
		fields = append(fields, FieldError{Field: "passengers", Reason: "must be a positive integer"})
	}
	input.Passengers = passengers

	totalPrice, ok := parseIntField(r.TotalPrice)
	if !ok || totalPrice < 0 {
		fields = append(fields, FieldError{Field: "total_price", Reason: "must be a non-negative number"})
	}
	input.TotalPriceCents = int64(totalPrice)

	return input, fields
}

func parseUUIDField(v any) (uuid.UUID, bool) {
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// JSON numbers arrive as float64 through the any type. Numeric strings are
// rejected; the contract demands numbers, not coercible text.
func parseIntField(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
