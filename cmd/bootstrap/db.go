package bootstrap

import (
	"context"

	"tripdesk/internal/infra/db"
	"tripdesk/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// DBModule opens the pgx pool at startup and closes it on shutdown.
var DBModule = fx.Module("db",
	fx.Provide(newConnectionPool),
)

func newConnectionPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
