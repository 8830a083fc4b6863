package components

import (
	"time"

	"tripdesk/internal/handler"
	"tripdesk/internal/handler/api"
	"tripdesk/internal/handler/middleware"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewTourBookingHandler,
		api.NewFlightBookingHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, userQ queries.UserQueries, cfg config.Config) (*api.AuthHandler, error) {
	tokenTTL, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, err
	}

	return api.NewAuthHandler(cmds, userQ, cfg.Cookie, tokenTTL), nil
}

func NewHandlers(
	auth *api.AuthHandler,
	tour *api.TourBookingHandler,
	flight *api.FlightBookingHandler,
	booking *api.BookingHandler,
	catalog *api.CatalogHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		TourBooking:   tour,
		FlightBooking: flight,
		Booking:       booking,
		Catalog:       catalog,
	}
}
