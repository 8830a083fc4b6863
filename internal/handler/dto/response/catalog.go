package response

import (
	"time"

	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FlightResponse struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Departure      time.Time `json:"departure"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	AvailableSeats int32     `json:"availableSeats"`
	TotalSeats     int32     `json:"totalSeats"`
}

type PackageResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Destination    string     `json:"destination"`
	UnitPriceCents int64      `json:"unitPriceCents"`
	GroupSize      int32      `json:"groupSize"`
	ValidUntil     *time.Time `json:"validUntil,omitempty"`
}

func FromFlightView(rm *queries.FlightView) *FlightResponse {
	var resp FlightResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromFlightList(items []*queries.FlightView) []*FlightResponse {
	out := make([]*FlightResponse, len(items))
	for i, item := range items {
		out[i] = FromFlightView(item)
	}
	return out
}

func FromPackageView(rm *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPackageList(items []*queries.PackageView) []*PackageResponse {
	out := make([]*PackageResponse, len(items))
	for i, item := range items {
		out[i] = FromPackageView(item)
	}
	return out
}
