package commands

import (
	"context"
	"errors"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/domain/user"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/events"
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelBookingCommands interface {
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor uuid.UUID, actorRole string) (*queries.BookingView, error)
}

type cancelBookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookingRepo queries.BookingViewRepo
	publisher   events.Publisher
	cache       queries.FlightListCache
	clock       clock.Clock
}

func NewCancelBookingUseCase(
	uow shared.UnitOfWork,
	bookingRepo queries.BookingViewRepo,
	publisher events.Publisher,
	cache queries.FlightListCache,
	clock clock.Clock,
) CancelBookingCommands {
	return &cancelBookingUseCaseImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		cache:       cache,
		clock:       clock,
	}
}

// CancelBooking flips the booking to cancelled and compensates capacity.
// Flight seats go back to the counter in the same transaction. Tour
// capacity needs no restore step: it is summed over live bookings, and a
// cancelled row simply stops counting.
func (u *cancelBookingUseCaseImpl) CancelBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	actor uuid.UUID,
	actorRole string,
) (*queries.BookingView, error) {
	var (
		code string
		kind booking.Kind
	)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := authorizeBookingMutation(entity, actor, actorRole); err != nil {
			return err
		}

		if err := entity.Cancel(); err != nil {
			if errors.Is(err, booking.ErrAlreadyCancelled) {
				return ErrAlreadyCancelled
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Bookings().UpdateStatus(ctx, entity.ID(), booking.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.Kind() == booking.KindFlight {
			if err := tx.Flights().ReleaseSeats(ctx, entity.ResourceID(), entity.Quantity().Value()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		code = entity.Code()
		kind = entity.Kind()

		return tx.AuditLog().Append(ctx, shared.AuditEntry{
			BookingID:   entity.ID(),
			Action:      auditActionBookingCancelled,
			BookingCode: entity.Code(),
			Message:     "booking cancelled",
		})
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if kind == booking.KindFlight {
		u.cache.Invalidate(ctx)
	}
	u.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		BookingID:   bookingID.String(),
		BookingCode: code,
		Action:      auditActionBookingCancelled,
		Kind:        string(kind),
		OccurredAt:  u.clock.Now(),
	})

	return view, nil
}

// Customers cancel their own bookings. Agents and admins cancel any.
func authorizeBookingMutation(entity *booking.Booking, actor uuid.UUID, actorRole string) error {
	if entity.UserID() == actor {
		return nil
	}
	switch user.Role(actorRole) {
	case user.RoleAgent, user.RoleAdmin:
		return nil
	default:
		// Hide other users' bookings rather than confirming they exist.
		return ErrBookingNotFound
	}
}
