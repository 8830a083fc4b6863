package queries

import (
	"context"

	"tripdesk/internal/domain/user"
	"tripdesk/internal/infra"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error)
	GetByCode(ctx context.Context, actor uuid.UUID, actorRole string, code string) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCode(ctx context.Context, code string) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return authorizeBookingView(view, actor, actorRole)
}

func (q *bookingQueriesImpl) GetByCode(ctx context.Context, actor uuid.UUID, actorRole string, code string) (*BookingView, error) {
	view, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return authorizeBookingView(view, actor, actorRole)
}

// Customers only see their own bookings. Agents and admins see all.
func authorizeBookingView(view *BookingView, actor uuid.UUID, actorRole string) (*BookingView, error) {
	if view.UserID == actor {
		return view, nil
	}
	switch user.Role(actorRole) {
	case user.RoleAgent, user.RoleAdmin:
		return view, nil
	default:
		return nil, ErrBookingAccess
	}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.FindByUserID(ctx, userID, int32(limit))
}
