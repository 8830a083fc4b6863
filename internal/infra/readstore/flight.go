package readstore

import (
	"context"

	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/queries"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlightReadStore struct {
	db db.DBTX
}

func NewFlightReadStore(dbtx db.DBTX) *FlightReadStore {
	return &FlightReadStore{db: dbtx}
}

func (r *FlightReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FlightView, error) {
	const query = `
		SELECT id, number, origin, destination, departure,
		       unit_price_cents, available_seats, total_seats
		FROM flights
		WHERE id = $1`

	var view queries.FlightView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Number, &view.Origin, &view.Destination,
		&view.Departure, &view.UnitPriceCents, &view.AvailableSeats, &view.TotalSeats,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find flight by ID", err)
	}
	return &view, nil
}

func (r *FlightReadStore) FindAll(ctx context.Context) ([]*queries.FlightView, error) {
	const query = `
		SELECT id, number, origin, destination, departure,
		       unit_price_cents, available_seats, total_seats
		FROM flights
		ORDER BY departure`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list flights", err)
	}
	defer rows.Close()

	var views []*queries.FlightView
	for rows.Next() {
		var view queries.FlightView
		if err := rows.Scan(
			&view.ID, &view.Number, &view.Origin, &view.Destination,
			&view.Departure, &view.UnitPriceCents, &view.AvailableSeats, &view.TotalSeats,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan flight row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate flight rows", err)
	}
	return views, nil
}

func (r *FlightReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.FlightSnapshot, error) {
	const query = `
		SELECT id, number, origin, destination, departure,
		       unit_price_cents, available_seats, total_seats
		FROM flights
		WHERE id = $1`

	var snap shared.FlightSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Number, &snap.Origin, &snap.Destination,
		&snap.Departure, &snap.UnitPriceCents, &snap.AvailableSeats, &snap.TotalSeats,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to snapshot flight", err)
	}
	return &snap, nil
}

var _ queries.FlightViewRepo = (*FlightReadStore)(nil)
