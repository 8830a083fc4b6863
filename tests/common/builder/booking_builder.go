//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	Code            string
	UserID          uuid.UUID
	PackageID       uuid.UUID
	FlightID        uuid.UUID
	Participants    int
	SelectedDate    time.Time
	UnitPriceCents  int64
	Status          string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	SpecialRequests string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:             uuid.New(),
		Code:           "TB-20260901-ABC123",
		UserID:         uuid.New(),
		PackageID:      uuid.New(),
		FlightID:       uuid.New(),
		Participants:   2,
		SelectedDate:   now.AddDate(0, 1, 0),
		UnitPriceCents: 49900,
		Status:         "confirmed",
		ContactName:    "Jordan Reyes",
		ContactEmail:   "jordan@example.com",
		ContactPhone:   "+1-555-0100",
		CreatedAt:      now,
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithPackageID(id uuid.UUID) *BookingBuilder {
	b.PackageID = id
	return b
}

func (b *BookingBuilder) WithFlightID(id uuid.UUID) *BookingBuilder {
	b.FlightID = id
	return b
}

func (b *BookingBuilder) WithParticipants(n int) *BookingBuilder {
	b.Participants = n
	return b
}

func (b *BookingBuilder) WithSelectedDate(d time.Time) *BookingBuilder {
	b.SelectedDate = d
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildTourRequestDTO() reqdto.CreateTourBookingRequest {
	return reqdto.CreateTourBookingRequest{
		PackageID:       b.PackageID,
		Participants:    b.Participants,
		SelectedDate:    b.SelectedDate,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildFlightRequestDTO() reqdto.CreateFlightBookingRequest {
	return reqdto.CreateFlightBookingRequest{
		FlightID:   b.FlightID.String(),
		Passengers: float64(b.Participants),
		TotalPrice: float64(b.UnitPriceCents * int64(b.Participants)),
	}
}

func (b *BookingBuilder) BuildTourView() *queries.BookingView {
	packageID := b.PackageID
	selectedDate := b.SelectedDate
	return &queries.BookingView{
		ID:              b.ID,
		Code:            b.Code,
		Kind:            "tour",
		UserID:          b.UserID,
		PackageID:       &packageID,
		SelectedDate:    &selectedDate,
		Quantity:        int32(b.Participants),
		UnitPriceCents:  b.UnitPriceCents,
		TotalPriceCents: b.UnitPriceCents * int64(b.Participants),
		Status:          b.Status,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildFlightView() *queries.BookingView {
	flightID := b.FlightID
	return &queries.BookingView{
		ID:              b.ID,
		Code:            b.Code,
		Kind:            "flight",
		UserID:          b.UserID,
		FlightID:        &flightID,
		Quantity:        int32(b.Participants),
		UnitPriceCents:  b.UnitPriceCents,
		TotalPriceCents: b.UnitPriceCents * int64(b.Participants),
		Status:          b.Status,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	selectedDate := b.SelectedDate
	return &queries.BookingListItem{
		ID:              b.ID,
		Code:            b.Code,
		Kind:            "tour",
		SelectedDate:    &selectedDate,
		Quantity:        int32(b.Participants),
		TotalPriceCents: b.UnitPriceCents * int64(b.Participants),
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}
