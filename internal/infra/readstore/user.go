package readstore

import (
	"context"

	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/queries"
	"tripdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// SnapshotByEmail includes the password hash for credential checks.
func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active
		FROM users
		WHERE email = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, email).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.IsActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}

var _ queries.UserReadStore = (*UserReadStore)(nil)
