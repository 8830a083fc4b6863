//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tripdesk/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

func mustMoney(t *testing.T, cents int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func mustPartySize(t *testing.T, n int) booking.PartySize {
	t.Helper()
	p, err := booking.NewPartySize(n)
	require.NoError(t, err)
	return p
}

func newTourBooking(t *testing.T, participants int, selectedDate time.Time) (*booking.Booking, error) {
	t.Helper()
	size, err := booking.NewPartySize(participants)
	if err != nil {
		return nil, err
	}
	return booking.NewTourBooking(
		"TUR-LXK93M0-7QFA",
		uuid.New(), uuid.New(),
		size,
		selectedDate,
		mustMoney(t, 150000),
		booking.NewContactInfo("Dana Reyes", "dana@example.com", "+31 20 555 0100"),
		"window seats please",
		now,
	)
}

func TestPartySize(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum party size", value: 1},
		{name: "maximum party size", value: 20},
		{name: "zero", value: 0, errIs: booking.ErrInvalidPartySize},
		{name: "negative", value: -3, errIs: booking.ErrInvalidPartySize},
		{name: "above maximum", value: 21, errIs: booking.ErrInvalidPartySize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			size, err := booking.NewPartySize(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, size.Value())
		})
	}
}

func TestTotalPrice(t *testing.T) {
	cases := []struct {
		name      string
		unitCents int64
		quantity  int
		expect    int64
	}{
		{name: "single participant", unitCents: 150000, quantity: 1, expect: 150000},
		{name: "full group", unitCents: 150000, quantity: 20, expect: 3000000},
		{name: "free resource", unitCents: 0, quantity: 5, expect: 0},
		{name: "odd unit price", unitCents: 33333, quantity: 3, expect: 99999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total := booking.TotalPrice(mustMoney(t, tc.unitCents), mustPartySize(t, tc.quantity))
			assert.Equal(t, tc.expect, total.Cents())
		})
	}
}

func TestNewTourBooking(t *testing.T) {
	t.Run("admits with confirmed status and computed price", func(t *testing.T) {
		b, err := newTourBooking(t, 4, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.KindTour, b.Kind())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, int64(600000), b.TotalPrice().Cents())
		require.NotNil(t, b.SelectedDate())
		assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *b.SelectedDate())
	})

	t.Run("selected date today is admitted regardless of time of day", func(t *testing.T) {
		// now is 15:30; a midnight selected date the same day must pass.
		_, err := newTourBooking(t, 2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
	})

	t.Run("selected date yesterday is rejected", func(t *testing.T) {
		_, err := newTourBooking(t, 2, time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC))
		assert.ErrorIs(t, err, booking.ErrDateInPast)
	})
}

func TestNewFlightBooking(t *testing.T) {
	b := booking.NewFlightBooking("FLT-LXK93M0-2ABC", uuid.New(), uuid.New(), mustPartySize(t, 3), mustMoney(t, 45000))

	assert.Equal(t, booking.KindFlight, b.Kind())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, int64(135000), b.TotalPrice().Cents())
	assert.Nil(t, b.SelectedDate())
}

func TestCancel(t *testing.T) {
	t.Run("cancels a confirmed booking", func(t *testing.T) {
		b, err := newTourBooking(t, 2, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		require.NoError(t, b.Cancel())
		assert.True(t, b.IsCancelled())
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		b, err := newTourBooking(t, 2, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})
}

func TestTransitionTo(t *testing.T) {
	cases := []struct {
		name  string
		from  booking.Status
		to    booking.Status
		errIs error
	}{
		{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed},
		{name: "confirmed to completed", from: booking.StatusConfirmed, to: booking.StatusCompleted},
		{name: "cancelled to refunded", from: booking.StatusCancelled, to: booking.StatusRefunded},
		{name: "completed cannot be confirmed again", from: booking.StatusCompleted, to: booking.StatusConfirmed, errIs: booking.ErrInvalidTransition},
		{name: "confirmed cannot go back to pending", from: booking.StatusConfirmed, to: booking.StatusPending, errIs: booking.ErrInvalidTransition},
		{name: "refunded is terminal", from: booking.StatusRefunded, to: booking.StatusCompleted, errIs: booking.ErrInvalidTransition},
		{name: "cancelled cannot be re-cancelled", from: booking.StatusCancelled, to: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
			b := booking.ReconstructBooking(
				uuid.New(), "TUR-LXK93M0-7QFA", booking.KindTour,
				uuid.New(), uuid.New(), &date,
				mustPartySize(t, 2), mustMoney(t, 1000), mustMoney(t, 2000),
				tc.from, booking.ContactInfo{}, "", now, now,
			)

			err := b.TransitionTo(tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, b.Status())
		})
	}
}

func TestCountsTowardCapacity(t *testing.T) {
	assert.True(t, booking.StatusPending.CountsTowardCapacity())
	assert.True(t, booking.StatusConfirmed.CountsTowardCapacity())
	assert.False(t, booking.StatusCancelled.CountsTowardCapacity())
	assert.False(t, booking.StatusCompleted.CountsTowardCapacity())
	assert.False(t, booking.StatusRefunded.CountsTowardCapacity())
}
