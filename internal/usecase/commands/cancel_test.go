//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/domain/user"
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/shared"
	"tripdesk/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cancelFixture struct {
	uow    *fake.UnitOfWork
	pub    *fake.Publisher
	cache  *fake.Cache
	cmds   commands.CancelBookingCommands
	flight *shared.FlightSnapshot
}

func newCancelFixture(t *testing.T) *cancelFixture {
	t.Helper()

	uow := fake.NewUnitOfWork()
	views := &fake.BookingViews{State: uow.State}
	pub := &fake.Publisher{}
	cache := &fake.Cache{}

	flight := uow.State.AddFlight(shared.FlightSnapshot{
		ID:             uuid.New(),
		Number:         "TD204",
		UnitPriceCents: 74900,
		AvailableSeats: 5,
		TotalSeats:     180,
	})

	return &cancelFixture{
		uow:    uow,
		pub:    pub,
		cache:  cache,
		cmds:   commands.NewCancelBookingUseCase(uow, views, pub, cache, clock.NewMockClock(testNow)),
		flight: flight,
	}
}

func (f *cancelFixture) seedFlightBooking(t *testing.T, userID uuid.UUID, passengers int) *booking.Booking {
	t.Helper()

	size, err := booking.NewPartySize(passengers)
	require.NoError(t, err)
	unit, err := booking.NewMoney(f.flight.UnitPriceCents)
	require.NoError(t, err)

	entity := booking.NewFlightBooking("FB-"+uuid.NewString()[:8], f.flight.ID, userID, size, unit)
	return f.uow.State.AddBooking(entity)
}

func (f *cancelFixture) seedTourBooking(t *testing.T, userID uuid.UUID, participants int) *booking.Booking {
	t.Helper()

	size, err := booking.NewPartySize(participants)
	require.NoError(t, err)
	unit, err := booking.NewMoney(49900)
	require.NoError(t, err)

	entity, err := booking.NewTourBooking(
		"TB-"+uuid.NewString()[:8], uuid.New(), userID, size,
		testNow.AddDate(0, 1, 0), unit, booking.NewContactInfo("", "", ""), "", testNow,
	)
	require.NoError(t, err)
	return f.uow.State.AddBooking(entity)
}

func TestCancelBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("flight cancellation restores the seat counter", func(t *testing.T) {
		t.Parallel()
		f := newCancelFixture(t)
		owner := uuid.New()
		b := f.seedFlightBooking(t, owner, 3)

		view, err := f.cmds.CancelBooking(ctx, b.ID(), owner, string(user.RoleCustomer))
		require.NoError(t, err)

		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, 8, f.uow.State.FlightsByID[f.flight.ID].AvailableSeats)
		assert.Equal(t, 1, f.cache.Invalidations)
		require.Len(t, f.uow.State.AuditEntries, 1)
		assert.Equal(t, "booking_cancelled", f.uow.State.AuditEntries[0].Action)
		require.Len(t, f.pub.Events, 1)
		assert.Equal(t, "booking_cancelled", f.pub.Events[0].Action)
	})

	t.Run("tour cancellation frees spots through the live sum alone", func(t *testing.T) {
		t.Parallel()
		f := newCancelFixture(t)
		owner := uuid.New()
		b := f.seedTourBooking(t, owner, 4)

		view, err := f.cmds.CancelBooking(ctx, b.ID(), owner, string(user.RoleCustomer))
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)

		// No counter exists for tours; the cancelled row simply stops
		// counting toward the participant sum.
		sum, err := f.uow.State.Bookings().SumActiveParticipants(ctx, b.ResourceID(), *b.SelectedDate())
		require.NoError(t, err)
		assert.Zero(t, sum)
		assert.Zero(t, f.cache.Invalidations, "tour cancellations do not touch the flight cache")
	})

	t.Run("unknown booking", func(t *testing.T) {
		t.Parallel()
		f := newCancelFixture(t)

		_, err := f.cmds.CancelBooking(ctx, uuid.New(), uuid.New(), string(user.RoleCustomer))
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("another customer's booking stays hidden", func(t *testing.T) {
		t.Parallel()
		f := newCancelFixture(t)
		b := f.seedFlightBooking(t, uuid.New(), 2)

		_, err := f.cmds.CancelBooking(ctx, b.ID(), uuid.New(), string(user.RoleCustomer))
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
		assert.Equal(t, 5, f.uow.State.FlightsByID[f.flight.ID].AvailableSeats)
	})

	t.Run("agents cancel on behalf of any customer", func(t *testing.T) {
		t.Parallel()
		f := newCancelFixture(t)
		b := f.seedFlightBooking(t, uuid.New(), 2)

		view, err := f.cmds.CancelBooking(ctx, b.ID(), uuid.New(), string(user.RoleAgent))
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
	})

	t.Run("double cancellation is rejected and compensates once", func(t *testing.T) {
		t.Parallel()
		f := newCancelFixture(t)
		owner := uuid.New()
		b := f.seedFlightBooking(t, owner, 3)

		_, err := f.cmds.CancelBooking(ctx, b.ID(), owner, string(user.RoleCustomer))
		require.NoError(t, err)

		_, err = f.cmds.CancelBooking(ctx, b.ID(), owner, string(user.RoleCustomer))
		assert.ErrorIs(t, err, commands.ErrAlreadyCancelled)
		assert.Equal(t, 8, f.uow.State.FlightsByID[f.flight.ID].AvailableSeats,
			"seats must not be restored twice")
	})
}
