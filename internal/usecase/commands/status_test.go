//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/shared"
	"tripdesk/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusFixture struct {
	uow    *fake.UnitOfWork
	pub    *fake.Publisher
	cache  *fake.Cache
	cmds   commands.BookingStatusCommands
	flight *shared.FlightSnapshot
}

func newStatusFixture(t *testing.T) *statusFixture {
	t.Helper()

	uow := fake.NewUnitOfWork()
	views := &fake.BookingViews{State: uow.State}
	pub := &fake.Publisher{}
	cache := &fake.Cache{}

	flight := uow.State.AddFlight(shared.FlightSnapshot{
		ID:             uuid.New(),
		Number:         "TD204",
		UnitPriceCents: 74900,
		AvailableSeats: 10,
		TotalSeats:     180,
	})

	return &statusFixture{
		uow:    uow,
		pub:    pub,
		cache:  cache,
		cmds:   commands.NewBookingStatusUseCase(uow, views, pub, cache, clock.NewMockClock(testNow)),
		flight: flight,
	}
}

func (f *statusFixture) seedFlightBooking(t *testing.T, passengers int) *booking.Booking {
	t.Helper()

	size, err := booking.NewPartySize(passengers)
	require.NoError(t, err)
	unit, err := booking.NewMoney(f.flight.UnitPriceCents)
	require.NoError(t, err)

	entity := booking.NewFlightBooking("FB-"+uuid.NewString()[:8], f.flight.ID, uuid.New(), size, unit)
	return f.uow.State.AddBooking(entity)
}

func TestTransitionStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("confirmed moves to completed", func(t *testing.T) {
		t.Parallel()
		f := newStatusFixture(t)
		b := f.seedFlightBooking(t, 2)

		view, err := f.cmds.TransitionStatus(ctx, b.ID(), "completed")
		require.NoError(t, err)
		assert.Equal(t, "completed", view.Status)
		require.Len(t, f.uow.State.AuditEntries, 1)
		assert.Equal(t, "status_changed", f.uow.State.AuditEntries[0].Action)
	})

	t.Run("unknown status word", func(t *testing.T) {
		t.Parallel()
		f := newStatusFixture(t)
		b := f.seedFlightBooking(t, 2)

		_, err := f.cmds.TransitionStatus(ctx, b.ID(), "shipped")
		assert.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		t.Parallel()
		f := newStatusFixture(t)
		b := f.seedFlightBooking(t, 2)

		_, err := f.cmds.TransitionStatus(ctx, b.ID(), "completed")
		require.NoError(t, err)

		_, err = f.cmds.TransitionStatus(ctx, b.ID(), "confirmed")
		assert.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})

	t.Run("transition into cancelled compensates flight seats", func(t *testing.T) {
		t.Parallel()
		f := newStatusFixture(t)
		b := f.seedFlightBooking(t, 4)

		view, err := f.cmds.TransitionStatus(ctx, b.ID(), "cancelled")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, 14, f.uow.State.FlightsByID[f.flight.ID].AvailableSeats)
		assert.Equal(t, 1, f.cache.Invalidations)
	})

	t.Run("cancelled moves to refunded without touching seats again", func(t *testing.T) {
		t.Parallel()
		f := newStatusFixture(t)
		b := f.seedFlightBooking(t, 4)

		_, err := f.cmds.TransitionStatus(ctx, b.ID(), "cancelled")
		require.NoError(t, err)

		view, err := f.cmds.TransitionStatus(ctx, b.ID(), "refunded")
		require.NoError(t, err)
		assert.Equal(t, "refunded", view.Status)
		assert.Equal(t, 14, f.uow.State.FlightsByID[f.flight.ID].AvailableSeats)
	})

	t.Run("unknown booking", func(t *testing.T) {
		t.Parallel()
		f := newStatusFixture(t)

		_, err := f.cmds.TransitionStatus(ctx, uuid.New(), "completed")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
