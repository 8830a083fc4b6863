package components

import (
	"tripdesk/internal/infra/db"
	"tripdesk/internal/infra/readstore"
	"tripdesk/internal/infra/uow"
	"tripdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read-side stores used outside transactions
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewFlightReadStore,
			fx.As(new(queries.FlightViewRepo)),
		),
		fx.Annotate(
			readstore.NewTourReadStore,
			fx.As(new(queries.PackageViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
