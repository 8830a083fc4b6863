package shared

import (
	"context"
	"time"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork owns the transactional boundary of every capacity mutation.
// Capacity checks and the booking-row writes they justify always run inside
// one Within call; splitting them across round trips is how seats get
// oversold.
type UnitOfWork interface {
	// Within: full read-committed transaction for write operations, with
	// retry on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside a transaction. Anything read
	// here must be re-verified inside Within before being relied on.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Flights() FlightRepository
	Tours() TourRepository
	AuditLog() AuditLogRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads covers the snapshot reads commands actually perform:
// flight admission reads the flight inside its transaction, and login
// reads the user row. Package and booking writes go through their
// locking repositories instead.
type CommandReads interface {
	FlightByID(ctx context.Context, id uuid.UUID) (*FlightSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// FindByIDForUpdate locks the booking row for the life of the
	// transaction so cancellation and status transitions serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	// SumActiveParticipants is the tour capacity read: the live sum of
	// quantities over pending and confirmed bookings for one
	// (package, selected date) pair.
	SumActiveParticipants(ctx context.Context, packageID uuid.UUID, selectedDate time.Time) (int, error)
}

type FlightRepository interface {
	// ReserveSeats conditionally decrements available_seats in place.
	// Returns ok=false (and the live remaining count) when the flight
	// cannot seat the requested quantity; nothing is mutated in that case.
	ReserveSeats(ctx context.Context, flightID uuid.UUID, seats int) (remaining int, ok bool, err error)
	// ReleaseSeats restores seats consumed by a cancelled booking.
	ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats int) error
}

type TourRepository interface {
	// LockPackage reads the package row FOR UPDATE, serializing concurrent
	// tour admissions against the same package.
	LockPackage(ctx context.Context, packageID uuid.UUID) (*PackageSnapshot, error)
}

type AuditLogRepository interface {
	Append(ctx context.Context, entry AuditEntry) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// Write-side snapshots prevent dependency on read-side query types.
type FlightSnapshot struct {
	ID             uuid.UUID
	Number         string
	Origin         string
	Destination    string
	Departure      time.Time
	UnitPriceCents int64
	AvailableSeats int
	TotalSeats     int
}

type PackageSnapshot struct {
	ID             uuid.UUID
	Name           string
	Destination    string
	UnitPriceCents int64
	GroupSizeText  string
	ValidUntil     *time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type AuditEntry struct {
	BookingID   uuid.UUID
	Action      string
	BookingCode string
	Message     string
}
