package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Kind            string     `json:"kind"`
	UserID          uuid.UUID  `json:"user_id"`
	FlightID        *uuid.UUID `json:"flight_id,omitempty"`
	PackageID       *uuid.UUID `json:"package_id,omitempty"`
	SelectedDate    *time.Time `json:"selected_date,omitempty"`
	Quantity        int32      `json:"quantity"`
	UnitPriceCents  int64      `json:"unit_price_cents"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
	ContactName     string     `json:"contact_name"`
	ContactEmail    string     `json:"contact_email"`
	ContactPhone    string     `json:"contact_phone"`
	SpecialRequests string     `json:"special_requests"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Kind            string     `json:"kind"`
	SelectedDate    *time.Time `json:"selected_date,omitempty"`
	Quantity        int32      `json:"quantity"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type FlightView struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Departure      time.Time `json:"departure"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	AvailableSeats int32     `json:"available_seats"`
	TotalSeats     int32     `json:"total_seats"`
}

type PackageView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Destination    string     `json:"destination"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	GroupSize      int32      `json:"group_size"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
}

// AuthorizedUserView carries the fields auth middleware needs per request.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
