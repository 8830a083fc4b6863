package response

import (
	"time"

	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Kind            string     `json:"kind"`
	UserID          uuid.UUID  `json:"userId"`
	FlightID        *uuid.UUID `json:"flightId,omitempty"`
	PackageID       *uuid.UUID `json:"packageId,omitempty"`
	SelectedDate    *time.Time `json:"selectedDate,omitempty"`
	Quantity        int32      `json:"quantity"`
	UnitPriceCents  int64      `json:"unitPriceCents"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	Status          string     `json:"status"`
	ContactName     string     `json:"contactName,omitempty"`
	ContactEmail    string     `json:"contactEmail,omitempty"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Kind            string     `json:"kind"`
	SelectedDate    *time.Time `json:"selectedDate,omitempty"`
	Quantity        int32      `json:"quantity"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, len(items))
	for i, item := range items {
		out[i] = FromBookingListItem(item)
	}
	return out
}
