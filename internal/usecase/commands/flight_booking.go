package commands

import (
	"context"
	"log/slog"
	"time"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/domain/flight"
	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/events"
	"tripdesk/internal/pkg/bookingcode"
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlightBookingCommands interface {
	CreateFlightBooking(ctx context.Context, req reqdto.CreateFlightBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
}

type flightBookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookingRepo queries.BookingViewRepo
	codeGen     bookingcode.Generator
	publisher   events.Publisher
	cache       queries.FlightListCache
	clock       clock.Clock
}

func NewFlightBookingUseCase(
	uow shared.UnitOfWork,
	bookingRepo queries.BookingViewRepo,
	codeGen bookingcode.Generator,
	publisher events.Publisher,
	cache queries.FlightListCache,
	clock clock.Clock,
) FlightBookingCommands {
	return &flightBookingUseCaseImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		codeGen:     codeGen,
		publisher:   publisher,
		cache:       cache,
		clock:       clock,
	}
}

func (u *flightBookingUseCaseImpl) CreateFlightBooking(
	ctx context.Context,
	req reqdto.CreateFlightBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	input, fieldErrs := req.Parse()
	if len(fieldErrs) > 0 {
		details := make([]FieldDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, FieldDetail{Field: fe.Field, Reason: fe.Reason})
		}
		return nil, &InvalidFieldsError{Fields: details}
	}

	passengers, err := booking.NewPartySize(input.Passengers)
	if err != nil {
		return nil, &InvalidFieldsError{Fields: []FieldDetail{
			{Field: "passengers", Reason: "must be between 1 and 20"},
		}}
	}

	now := u.clock.Now()

	var bookingID uuid.UUID
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := u.codeGen.Generate(bookingcode.KindFlight)

		bookingID, err = u.admitFlight(ctx, input.FlightID, userID, passengers, code, now)
		if err == nil {
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Warn("booking code collision, regenerating",
				"attempt", attempt,
				"code", code)
			if attempt == maxCodeAttempts {
				return nil, errs.Mark(err, ErrCodeCollision)
			}
			continue
		}
		return nil, err
	}

	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.cache.Invalidate(ctx)
	u.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		BookingID:   view.ID.String(),
		BookingCode: view.Code,
		Action:      auditActionBookingCreated,
		Kind:        view.Kind,
		OccurredAt:  now,
	})

	return view, nil
}

// admitFlight inserts the booking and decrements the seat counter in one
// transaction. The conditional decrement settles the race: the counter
// moves only when enough seats remain at commit time.
func (u *flightBookingUseCaseImpl) admitFlight(
	ctx context.Context,
	flightID, userID uuid.UUID,
	passengers booking.PartySize,
	code string,
	now time.Time,
) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().FlightByID(ctx, flightID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrFlightNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		fl, err := flight.ReconstructFlight(
			snap.ID, snap.Number, snap.Origin, snap.Destination,
			snap.Departure, snap.UnitPriceCents, snap.AvailableSeats, snap.TotalSeats,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		// Reject on the snapshot before touching the counter; the
		// conditional decrement below still settles concurrent admissions.
		if !fl.HasSeatsFor(passengers.Value()) {
			return &InsufficientSeatsError{AvailableSeats: fl.AvailableSeats()}
		}

		remaining, ok, err := tx.Flights().ReserveSeats(ctx, fl.ID(), passengers.Value())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			return &InsufficientSeatsError{AvailableSeats: remaining}
		}

		unitPrice, err := booking.NewMoney(fl.UnitPriceCents())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		entity := booking.NewFlightBooking(code, fl.ID(), userID, passengers, unitPrice)

		bookingID, err = tx.Bookings().Create(ctx, entity)
		if err != nil {
			return err
		}

		return tx.AuditLog().Append(ctx, shared.AuditEntry{
			BookingID:   bookingID,
			Action:      auditActionBookingCreated,
			BookingCode: code,
			Message:     "flight booking admitted",
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}
