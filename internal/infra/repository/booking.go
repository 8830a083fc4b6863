package repository

import (
	"context"
	"time"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, code, kind, user_id, flight_id, package_id, selected_date,
			quantity, unit_price_cents, total_price_cents, status,
			contact_name, contact_email, contact_phone, special_requests
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	var flightID, packageID *uuid.UUID
	resourceID := b.ResourceID()
	switch b.Kind() {
	case booking.KindFlight:
		flightID = &resourceID
	case booking.KindTour:
		packageID = &resourceID
	}

	contact := b.Contact()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		b.ID(),
		b.Code(),
		string(b.Kind()),
		b.UserID(),
		flightID,
		packageID,
		b.SelectedDate(),
		b.Quantity().Value(),
		b.UnitPrice().Cents(),
		b.TotalPrice().Cents(),
		string(b.Status()),
		contact.Name(),
		contact.Email(),
		contact.Phone(),
		b.SpecialRequests(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, code, kind, user_id, flight_id, package_id, selected_date,
		       quantity, unit_price_cents, total_price_cents, status,
		       contact_name, contact_email, contact_phone, special_requests,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		row struct {
			id              uuid.UUID
			code            string
			kind            string
			userID          uuid.UUID
			flightID        *uuid.UUID
			packageID       *uuid.UUID
			selectedDate    *time.Time
			quantity        int
			unitPriceCents  int64
			totalPriceCents int64
			status          string
			contactName     string
			contactEmail    string
			contactPhone    string
			specialRequests string
			createdAt       time.Time
			updatedAt       time.Time
		}
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.id, &row.code, &row.kind, &row.userID, &row.flightID, &row.packageID,
		&row.selectedDate, &row.quantity, &row.unitPriceCents, &row.totalPriceCents,
		&row.status, &row.contactName, &row.contactEmail, &row.contactPhone,
		&row.specialRequests, &row.createdAt, &row.updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	quantity, err := booking.NewPartySize(row.quantity)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking quantity", err)
	}
	unitPrice, err := booking.NewMoney(row.unitPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking unit price", err)
	}
	totalPrice, err := booking.NewMoney(row.totalPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking total price", err)
	}
	status, err := booking.NewStatus(row.status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking status", err)
	}

	resourceID := uuid.Nil
	if row.flightID != nil {
		resourceID = *row.flightID
	} else if row.packageID != nil {
		resourceID = *row.packageID
	}

	return booking.ReconstructBooking(
		row.id,
		row.code,
		booking.Kind(row.kind),
		row.userID,
		resourceID,
		row.selectedDate,
		quantity,
		unitPrice,
		totalPrice,
		status,
		booking.NewContactInfo(row.contactName, row.contactEmail, row.contactPhone),
		row.specialRequests,
		row.createdAt,
		row.updatedAt,
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// SumActiveParticipants counts pending and confirmed participants for a
// package on a given date. Capacity is derived live from bookings rather
// than a stored counter, so cancelled rows stop counting immediately.
func (r *BookingRepository) SumActiveParticipants(ctx context.Context, packageID uuid.UUID, selectedDate time.Time) (int, error) {
	const query = `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE package_id = $1
		  AND selected_date = $2
		  AND status IN ('pending', 'confirmed')`

	var total int
	err := r.db.QueryRow(ctx, query, packageID, selectedDate).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum active participants", err)
	}
	return total, nil
}

var _ shared.BookingRepository = (*BookingRepository)(nil)
