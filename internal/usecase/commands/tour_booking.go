package commands

import (
	"context"
	"log/slog"
	"time"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/domain/tour"
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

// Bounded retry on booking code collisions. The unique constraint on the
// code column is the backstop; collisions are rare enough that three fresh
// codes all but guarantee success.
const maxCodeAttempts = 3

const (
	auditActionBookingCreated   = "booking_created"
	auditActionBookingCancelled = "booking_cancelled"
	auditActionStatusChanged    = "status_changed"
)

type TourBookingCommands interface {
	CreateTourBooking(ctx context.Context, req reqdto.CreateTourBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
}

type tourBookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookingRepo queries.BookingViewRepo
	codeGen     bookingcode.Generator
	publisher   events.Publisher
	clock       clock.Clock
}

func NewTourBookingUseCase(
	uow shared.UnitOfWork,
	bookingRepo queries.BookingViewRepo,
	codeGen bookingcode.Generator,
	publisher events.Publisher,
	clock clock.Clock,
) TourBookingCommands {
	return &tourBookingUseCaseImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		codeGen:     codeGen,
		publisher:   publisher,
		clock:       clock,
	}
}

func (u *tourBookingUseCaseImpl) CreateTourBooking(
	ctx context.Context,
	req reqdto.CreateTourBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	participants, err := booking.NewPartySize(req.Participants)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPartySize)
	}

	now := u.clock.Now()
	if booking.DateBefore(req.SelectedDate, now) {
		return nil, ErrDateInPast
	}

	var bookingID uuid.UUID
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := u.codeGen.Generate(bookingcode.KindTour)

		bookingID, err = u.admitTour(ctx, req, userID, participants, code, now)
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

	u.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		BookingID:   view.ID.String(),
		BookingCode: view.Code,
		Action:      auditActionBookingCreated,
		Kind:        view.Kind,
		OccurredAt:  now,
	})

	return view, nil
}

// admitTour runs the capacity check and the insert in one transaction. The
// package row lock serializes concurrent admissions for the same package,
// so the participant sum can never be read stale.
func (u *tourBookingUseCaseImpl) admitTour(
	ctx context.Context,
	req reqdto.CreateTourBookingRequest,
	userID uuid.UUID,
	participants booking.PartySize,
	code string,
	now time.Time,
) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pkg, err := tx.Tours().LockPackage(ctx, req.PackageID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPackageNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if pkg.ValidUntil != nil && booking.DateBefore(*pkg.ValidUntil, now) {
			return ErrPackageExpired
		}

		entity, err := u.buildTourBooking(req, userID, participants, code, pkg, now)
		if err != nil {
			return err
		}

		groupSize := tour.ParseGroupSize(pkg.GroupSizeText)
		currentSum, err := tx.Bookings().SumActiveParticipants(ctx, pkg.ID, *entity.SelectedDate())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if currentSum+participants.Value() > groupSize {
			return &CapacityExceededError{AvailableSpots: groupSize - currentSum}
		}

		bookingID, err = tx.Bookings().Create(ctx, entity)
		if err != nil {
			return err
		}

		return tx.AuditLog().Append(ctx, shared.AuditEntry{
			BookingID:   bookingID,
			Action:      auditActionBookingCreated,
			BookingCode: code,
			Message:     "tour booking admitted",
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

func (u *tourBookingUseCaseImpl) buildTourBooking(
	req reqdto.CreateTourBookingRequest,
	userID uuid.UUID,
	participants booking.PartySize,
	code string,
	pkg *shared.PackageSnapshot,
	now time.Time,
) (*booking.Booking, error) {
	unitPrice, err := booking.NewMoney(pkg.UnitPriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	contact := booking.NewContactInfo(req.ContactName, req.ContactEmail, req.ContactPhone)

	entity, err := booking.NewTourBooking(
		code,
		pkg.ID,
		userID,
		participants,
		req.SelectedDate,
		unitPrice,
		contact,
		req.SpecialRequests,
		now,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDateInPast)
	}
	return entity, nil
}
