package repository

import (
	"context"

	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type TourRepository struct {
	db db.DBTX
}

func NewTourRepository(dbtx db.DBTX) *TourRepository {
	return &TourRepository{db: dbtx}
}

// LockPackage takes a row lock on the package so that the subsequent
// capacity SUM and booking INSERT happen under mutual exclusion. Two
// admissions for the same package serialize here.
func (r *TourRepository) LockPackage(ctx context.Context, packageID uuid.UUID) (*shared.PackageSnapshot, error) {
	const query = `
		SELECT id, name, destination, unit_price_cents, group_size, valid_until
		FROM tour_packages
		WHERE id = $1
		FOR UPDATE`

	var snap shared.PackageSnapshot
	err := r.db.QueryRow(ctx, query, packageID).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Destination,
		&snap.UnitPriceCents,
		&snap.GroupSizeText,
		&snap.ValidUntil,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock tour package", err)
	}
	return &snap, nil
}

var _ shared.TourRepository = (*TourRepository)(nil)
