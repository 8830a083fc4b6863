//go:build unit

package fake

import (
	"context"
	"time"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork executes the transactional callback against in-memory state.
// There is no rollback: a failed callback may leave partial writes behind,
// so each test should start from a fresh instance.
type UnitOfWork struct {
	State     *State
	WithinErr error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{State: NewState()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	return fn(ctx, u.State)
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return u.State
}

// State implements every repository interface over plain maps. It doubles
// as the Tx handed to Within callbacks.
type State struct {
	PackagesByID map[uuid.UUID]*shared.PackageSnapshot
	FlightsByID  map[uuid.UUID]*shared.FlightSnapshot
	UsersByEmail map[string]*shared.UserSnapshot
	BookingsByID map[uuid.UUID]*booking.Booking

	AuditEntries     []shared.AuditEntry
	StatusUpdates    []uuid.UUID
	LastLoginUpdates []uuid.UUID

	// CreateErrs is consumed one entry per Create call before the insert
	// happens; used to simulate duplicate-key collisions.
	CreateErrs []error
}

func NewState() *State {
	return &State{
		PackagesByID: make(map[uuid.UUID]*shared.PackageSnapshot),
		FlightsByID:  make(map[uuid.UUID]*shared.FlightSnapshot),
		UsersByEmail: make(map[string]*shared.UserSnapshot),
		BookingsByID: make(map[uuid.UUID]*booking.Booking),
	}
}

func (s *State) AddPackage(p shared.PackageSnapshot) *shared.PackageSnapshot {
	cp := p
	s.PackagesByID[p.ID] = &cp
	return &cp
}

func (s *State) AddFlight(f shared.FlightSnapshot) *shared.FlightSnapshot {
	cp := f
	s.FlightsByID[f.ID] = &cp
	return &cp
}

func (s *State) AddUser(u shared.UserSnapshot) *shared.UserSnapshot {
	cp := u
	s.UsersByEmail[u.Email] = &cp
	return &cp
}

func (s *State) AddBooking(b *booking.Booking) *booking.Booking {
	s.BookingsByID[b.ID()] = b
	return b
}

// ---- shared.Tx ----

func (s *State) Bookings() shared.BookingRepository  { return (*bookingRepo)(s) }
func (s *State) Flights() shared.FlightRepository    { return (*flightRepo)(s) }
func (s *State) Tours() shared.TourRepository        { return (*tourRepo)(s) }
func (s *State) AuditLog() shared.AuditLogRepository { return (*auditRepo)(s) }
func (s *State) Users() shared.UserRepository        { return (*userRepo)(s) }
func (s *State) Reads() shared.CommandReads          { return s }
func (s *State) DB() db.DBTX                         { return nil }

// ---- shared.CommandReads ----

func (s *State) FlightByID(_ context.Context, id uuid.UUID) (*shared.FlightSnapshot, error) {
	f, ok := s.FlightsByID[id]
	if !ok {
		return nil, infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	cp := *f
	return &cp, nil
}

func (s *State) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	u, ok := s.UsersByEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	cp := *u
	return &cp, nil
}

// ---- repositories ----

type bookingRepo State

func (r *bookingRepo) state() *State { return (*State)(r) }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	s := r.state()
	if len(s.CreateErrs) > 0 {
		err := s.CreateErrs[0]
		s.CreateErrs = s.CreateErrs[1:]
		if err != nil {
			return uuid.Nil, err
		}
	}
	for _, existing := range s.BookingsByID {
		if existing.Code() == b.Code() {
			return uuid.Nil, infra.WrapRepoErr("duplicate booking code", nil, infra.KindDuplicateKey)
		}
	}
	s.BookingsByID[b.ID()] = b
	return b.ID(), nil
}

func (r *bookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.state().BookingsByID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, _ booking.Status) error {
	s := r.state()
	if _, ok := s.BookingsByID[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	s.StatusUpdates = append(s.StatusUpdates, id)
	return nil
}

func (r *bookingRepo) SumActiveParticipants(_ context.Context, packageID uuid.UUID, selectedDate time.Time) (int, error) {
	sum := 0
	for _, b := range r.state().BookingsByID {
		if b.Kind() != booking.KindTour || b.ResourceID() != packageID {
			continue
		}
		if !b.Status().CountsTowardCapacity() {
			continue
		}
		if b.SelectedDate() == nil || !sameDate(*b.SelectedDate(), selectedDate) {
			continue
		}
		sum += b.Quantity().Value()
	}
	return sum, nil
}

type flightRepo State

func (r *flightRepo) ReserveSeats(_ context.Context, flightID uuid.UUID, seats int) (int, bool, error) {
	f, ok := (*State)(r).FlightsByID[flightID]
	if !ok {
		return 0, false, infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	if f.AvailableSeats < seats {
		return f.AvailableSeats, false, nil
	}
	f.AvailableSeats -= seats
	return f.AvailableSeats, true, nil
}

func (r *flightRepo) ReleaseSeats(_ context.Context, flightID uuid.UUID, seats int) error {
	f, ok := (*State)(r).FlightsByID[flightID]
	if !ok {
		return infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	f.AvailableSeats += seats
	return nil
}

type tourRepo State

func (r *tourRepo) LockPackage(_ context.Context, packageID uuid.UUID) (*shared.PackageSnapshot, error) {
	p, ok := (*State)(r).PackagesByID[packageID]
	if !ok {
		return nil, infra.WrapRepoErr("package not found", nil, infra.KindNotFound)
	}
	cp := *p
	return &cp, nil
}

type auditRepo State

func (r *auditRepo) Append(_ context.Context, entry shared.AuditEntry) error {
	s := (*State)(r)
	s.AuditEntries = append(s.AuditEntries, entry)
	return nil
}

type userRepo State

func (r *userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	s := (*State)(r)
	s.LastLoginUpdates = append(s.LastLoginUpdates, userID)
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
