package commands

import (
	"context"
	"errors"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/events"
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingStatusCommands interface {
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, nextStatus string) (*queries.BookingView, error)
}

type bookingStatusUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookingRepo queries.BookingViewRepo
	publisher   events.Publisher
	cache       queries.FlightListCache
	clock       clock.Clock
}

func NewBookingStatusUseCase(
	uow shared.UnitOfWork,
	bookingRepo queries.BookingViewRepo,
	publisher events.Publisher,
	cache queries.FlightListCache,
	clock clock.Clock,
) BookingStatusCommands {
	return &bookingStatusUseCaseImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		cache:       cache,
		clock:       clock,
	}
}

// TransitionStatus drives the back-office state machine. Moving into
// cancelled goes through the same compensation rules as a customer
// cancellation, including the flight seat restore.
func (u *bookingStatusUseCaseImpl) TransitionStatus(
	ctx context.Context,
	bookingID uuid.UUID,
	nextStatus string,
) (*queries.BookingView, error) {
	next, err := booking.NewStatus(nextStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusTransition)
	}

	var (
		code string
		kind booking.Kind
	)

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		wasCancellation := next == booking.StatusCancelled

		if err := entity.TransitionTo(next); err != nil {
			if errors.Is(err, booking.ErrAlreadyCancelled) {
				return ErrAlreadyCancelled
			}
			return errs.Mark(err, ErrInvalidStatusTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, entity.ID(), next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if wasCancellation && entity.Kind() == booking.KindFlight {
			if err := tx.Flights().ReleaseSeats(ctx, entity.ResourceID(), entity.Quantity().Value()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		code = entity.Code()
		kind = entity.Kind()

		return tx.AuditLog().Append(ctx, shared.AuditEntry{
			BookingID:   entity.ID(),
			Action:      auditActionStatusChanged,
			BookingCode: entity.Code(),
			Message:     "status changed to " + string(next),
		})
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if next == booking.StatusCancelled && kind == booking.KindFlight {
		u.cache.Invalidate(ctx)
	}
	u.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		BookingID:   bookingID.String(),
		BookingCode: code,
		Action:      auditActionStatusChanged,
		Kind:        string(kind),
		OccurredAt:  u.clock.Now(),
	})

	return view, nil
}
