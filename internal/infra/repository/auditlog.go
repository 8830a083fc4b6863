package repository

import (
	"context"

	"tripdesk/internal/infra"
	"tripdesk/internal/infra/db"
	"tripdesk/internal/usecase/shared"
)

type AuditLogRepository struct {
	db db.DBTX
}

func NewAuditLogRepository(dbtx db.DBTX) *AuditLogRepository {
	return &AuditLogRepository{db: dbtx}
}

// Append records an audit event in the same transaction as the state change
// it describes. A booking mutation and its audit row commit or roll back
// together.
func (r *AuditLogRepository) Append(ctx context.Context, entry shared.AuditEntry) error {
	const query = `
		INSERT INTO audit_events (booking_id, action, booking_code, message)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, entry.BookingID, entry.Action, entry.BookingCode, entry.Message); err != nil {
		return infra.WrapRepoErr("failed to append audit event", err)
	}
	return nil
}

var _ shared.AuditLogRepository = (*AuditLogRepository)(nil)
