package bootstrap

import (
	"tripdesk/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads configuration from the environment once and
// shares the resulting config.Config across the graph.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)
