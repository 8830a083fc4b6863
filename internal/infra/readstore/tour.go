package readstore

import (
	"context"

	"tripdesk/internal/domain/tour"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourReadStore struct {
	db db.DBTX
}

func NewTourReadStore(dbtx db.DBTX) *TourReadStore {
	return &TourReadStore{db: dbtx}
}

func (r *TourReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	const query = `
		SELECT id, name, destination, unit_price_cents, group_size, valid_until
		FROM tour_packages
		WHERE id = $1`

	var (
		view          queries.PackageView
		groupSizeText string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Destination,
		&view.UnitPriceCents, &groupSizeText, &view.ValidUntil,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour package by ID", err)
	}
	view.GroupSize = int32(tour.ParseGroupSize(groupSizeText))
	return &view, nil
}

func (r *TourReadStore) FindAll(ctx context.Context) ([]*queries.PackageView, error) {
	const query = `
		SELECT id, name, destination, unit_price_cents, group_size, valid_until
		FROM tour_packages
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tour packages", err)
	}
	defer rows.Close()

	var views []*queries.PackageView
	for rows.Next() {
		var (
			view          queries.PackageView
			groupSizeText string
		)
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Destination,
			&view.UnitPriceCents, &groupSizeText, &view.ValidUntil,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tour package row", err)
		}
		view.GroupSize = int32(tour.ParseGroupSize(groupSizeText))
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tour package rows", err)
	}
	return views, nil
}

var _ queries.PackageViewRepo = (*TourReadStore)(nil)
