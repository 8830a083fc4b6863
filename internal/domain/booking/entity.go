package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one admitted reservation against a flight or a tour package.
// It is created only through the admission constructors below; id, code and
// status never come from user input.
type Booking struct {
	id              uuid.UUID
	code            string
	kind            Kind
	userID          uuid.UUID
	resourceID      uuid.UUID
	selectedDate    *time.Time
	quantity        PartySize
	unitPrice       Money
	totalPrice      Money
	status          Status
	contact         ContactInfo
	specialRequests string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTourBooking admits a tour reservation. The selected date must not be
// before today; comparison is date-only, time of day is ignored. Capacity
// checks against other bookings happen at the persistence boundary, inside
// the admission transaction.
func NewTourBooking(
	code string,
	packageID, userID uuid.UUID,
	participants PartySize,
	selectedDate time.Time,
	unitPrice Money,
	contact ContactInfo,
	specialRequests string,
	now time.Time,
) (*Booking, error) {
	if dateBefore(selectedDate, now) {
		return nil, ErrDateInPast
	}

	date := truncateToDate(selectedDate)
	return &Booking{
		id:              uuid.New(),
		code:            code,
		kind:            KindTour,
		userID:          userID,
		resourceID:      packageID,
		selectedDate:    &date,
		quantity:        participants,
		unitPrice:       unitPrice,
		totalPrice:      TotalPrice(unitPrice, participants),
		status:          StatusConfirmed,
		contact:         contact,
		specialRequests: specialRequests,
	}, nil
}

// NewFlightBooking admits a flight reservation. Seat availability is checked
// and decremented inside the admission transaction, not here.
func NewFlightBooking(
	code string,
	flightID, userID uuid.UUID,
	passengers PartySize,
	unitPrice Money,
) *Booking {
	return &Booking{
		id:         uuid.New(),
		code:       code,
		kind:       KindFlight,
		userID:     userID,
		resourceID: flightID,
		quantity:   passengers,
		unitPrice:  unitPrice,
		totalPrice: TotalPrice(unitPrice, passengers),
		status:     StatusConfirmed,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	code string,
	kind Kind,
	userID, resourceID uuid.UUID,
	selectedDate *time.Time,
	quantity PartySize,
	unitPrice, totalPrice Money,
	status Status,
	contact ContactInfo,
	specialRequests string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		code:            code,
		kind:            kind,
		userID:          userID,
		resourceID:      resourceID,
		selectedDate:    selectedDate,
		quantity:        quantity,
		unitPrice:       unitPrice,
		totalPrice:      totalPrice,
		status:          status,
		contact:         contact,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel flips the booking to cancelled. Cancelling twice is rejected, never
// silently absorbed: the caller relies on this to avoid double capacity
// compensation.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// TransitionTo applies an administrative status change. Cancellation must go
// through Cancel so its compensation path stays explicit.
func (b *Booking) TransitionTo(next Status) error {
	if next == StatusCancelled {
		return b.Cancel()
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Code() string             { return b.code }
func (b *Booking) Kind() Kind               { return b.kind }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) ResourceID() uuid.UUID    { return b.resourceID }
func (b *Booking) SelectedDate() *time.Time { return b.selectedDate }
func (b *Booking) Quantity() PartySize      { return b.quantity }
func (b *Booking) UnitPrice() Money         { return b.unitPrice }
func (b *Booking) TotalPrice() Money        { return b.totalPrice }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Contact() ContactInfo     { return b.contact }
func (b *Booking) SpecialRequests() string  { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateBefore compares calendar dates only, ignoring time of day.
func DateBefore(t, now time.Time) bool {
	return dateBefore(t, now)
}

func dateBefore(t, now time.Time) bool {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	if ty != ny {
		return ty < ny
	}
	if tm != nm {
		return tm < nm
	}
	return td < nd
}
