//go:build unit || e2e

package builder

import (
	"time"

	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type FlightBuilder struct {
	ID             uuid.UUID
	Number         string
	Origin         string
	Destination    string
	Departure      time.Time
	UnitPriceCents int64
	AvailableSeats int32
	TotalSeats     int32
}

func NewFlightBuilder() *FlightBuilder {
	return &FlightBuilder{
		ID:             uuid.New(),
		Number:         "TD204",
		Origin:         "LIS",
		Destination:    "GRU",
		Departure:      time.Now().AddDate(0, 0, 14),
		UnitPriceCents: 74900,
		AvailableSeats: 120,
		TotalSeats:     180,
	}
}

func (f *FlightBuilder) WithAvailableSeats(n int32) *FlightBuilder {
	f.AvailableSeats = n
	return f
}

func (f *FlightBuilder) BuildView() *queries.FlightView {
	return &queries.FlightView{
		ID:             f.ID,
		Number:         f.Number,
		Origin:         f.Origin,
		Destination:    f.Destination,
		Departure:      f.Departure,
		UnitPriceCents: f.UnitPriceCents,
		AvailableSeats: f.AvailableSeats,
		TotalSeats:     f.TotalSeats,
	}
}

type PackageBuilder struct {
	ID             uuid.UUID
	Name           string
	Destination    string
	UnitPriceCents int64
	GroupSize      int32
	ValidUntil     *time.Time
}

func NewPackageBuilder() *PackageBuilder {
	validUntil := time.Now().AddDate(1, 0, 0)
	return &PackageBuilder{
		ID:             uuid.New(),
		Name:           "Douro Valley Escape",
		Destination:    "Porto",
		UnitPriceCents: 49900,
		GroupSize:      20,
		ValidUntil:     &validUntil,
	}
}

func (p *PackageBuilder) WithGroupSize(n int32) *PackageBuilder {
	p.GroupSize = n
	return p
}

func (p *PackageBuilder) BuildView() *queries.PackageView {
	return &queries.PackageView{
		ID:             p.ID,
		Name:           p.Name,
		Destination:    p.Destination,
		UnitPriceCents: p.UnitPriceCents,
		GroupSize:      p.GroupSize,
		ValidUntil:     p.ValidUntil,
	}
}
