package readstore

import (
	"context"

	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	id, code, kind, user_id, flight_id, package_id, selected_date,
	quantity, unit_price_cents, total_price_cents, status,
	contact_name, contact_email, contact_phone, special_requests,
	created_at, updated_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingViewColumns+` FROM bookings WHERE id = $1`, id)
	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByCode(ctx context.Context, code string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingViewColumns+` FROM bookings WHERE code = $1`, code)
	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by code", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT id, code, kind, selected_date, quantity, total_price_cents, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.Code, &item.Kind, &item.SelectedDate,
			&item.Quantity, &item.TotalPriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.Code, &view.Kind, &view.UserID, &view.FlightID,
		&view.PackageID, &view.SelectedDate, &view.Quantity,
		&view.UnitPriceCents, &view.TotalPriceCents, &view.Status,
		&view.ContactName, &view.ContactEmail, &view.ContactPhone,
		&view.SpecialRequests, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

var (
	_ queries.BookingViewRepo = (*BookingReadStore)(nil)
)
