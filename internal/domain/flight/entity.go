package flight

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSeatCount = errors.New("seat count cannot be negative")

// Flight is a bookable resource with a hardened seat counter: availableSeats
// is the live remaining inventory, decremented on admission and restored on
// cancellation inside the same transaction as the booking row change.
type Flight struct {
	id             uuid.UUID
	number         string
	origin         string
	destination    string
	departure      time.Time
	unitPriceCents int64
	availableSeats int
	totalSeats     int
}

func ReconstructFlight(
	id uuid.UUID,
	number, origin, destination string,
	departure time.Time,
	unitPriceCents int64,
	availableSeats, totalSeats int,
) (*Flight, error) {
	if availableSeats < 0 || totalSeats < 0 {
		return nil, ErrInvalidSeatCount
	}
	return &Flight{
		id:             id,
		number:         number,
		origin:         origin,
		destination:    destination,
		departure:      departure,
		unitPriceCents: unitPriceCents,
		availableSeats: availableSeats,
		totalSeats:     totalSeats,
	}, nil
}

func (f *Flight) HasSeatsFor(passengers int) bool {
	return f.availableSeats >= passengers
}

func (f *Flight) ID() uuid.UUID         { return f.id }
func (f *Flight) Number() string        { return f.number }
func (f *Flight) Origin() string        { return f.origin }
func (f *Flight) Destination() string   { return f.destination }
func (f *Flight) Departure() time.Time  { return f.departure }
func (f *Flight) UnitPriceCents() int64 { return f.unitPriceCents }
func (f *Flight) AvailableSeats() int   { return f.availableSeats }
func (f *Flight) TotalSeats() int       { return f.totalSeats }
