package repository

import (
	"context"
	"errors"

	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FlightRepository struct {
	db db.DBTX
}

func NewFlightRepository(dbtx db.DBTX) *FlightRepository {
	return &FlightRepository{db: dbtx}
}

// ReserveSeats decrements available seats only when enough remain. The
// conditional UPDATE makes check and decrement a single atomic statement,
// so two concurrent reservations can never both win the last seat.
func (r *FlightRepository) ReserveSeats(ctx context.Context, flightID uuid.UUID, seats int) (int, bool, error) {
	const query = `
		UPDATE flights
		SET available_seats = available_seats - $2, updated_at = now()
		WHERE id = $1 AND available_seats >= $2
		RETURNING available_seats`

	var remaining int
	err := r.db.QueryRow(ctx, query, flightID, seats).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the flight is missing or seats ran out. RowsAffected
			// cannot distinguish the two, so report current availability.
			remaining, err := r.currentSeats(ctx, flightID)
			if err != nil {
				return 0, false, err
			}
			return remaining, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to reserve seats", err)
	}
	return remaining, true, nil
}

func (r *FlightRepository) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	const query = `
		UPDATE flights
		SET available_seats = available_seats + $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, flightID, seats)
	if err != nil {
		return infra.WrapRepoErr("failed to release seats", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FlightRepository) currentSeats(ctx context.Context, flightID uuid.UUID) (int, error) {
	const query = `SELECT available_seats FROM flights WHERE id = $1`

	var seats int
	if err := r.db.QueryRow(ctx, query, flightID).Scan(&seats); err != nil {
		return 0, infra.WrapRepoErr("failed to read flight seats", err)
	}
	return seats, nil
}

var _ shared.FlightRepository = (*FlightRepository)(nil)
