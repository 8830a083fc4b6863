package bootstrap

import (
	"context"

	"tripdesk/internal/infra/cache"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewFlightListCache,
			fx.As(new(queries.FlightListCache)),
		),
	),
)

func NewFlightListCache(lc fx.Lifecycle, cfg config.Config) *cache.FlightListCache {
	c := cache.NewFlightListCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
