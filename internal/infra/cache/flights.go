package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tripdesk/internal/pkg/config"
	"tripdesk/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const flightListKey = "cache:flights"

// FlightListCache holds the public flight list in redis for a short TTL.
// Cache failures degrade to a database read, never to a request failure.
type FlightListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlightListCache(cfg config.RedisConfig) *FlightListCache {
	return &FlightListCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: cfg.FlightListTTL,
	}
}

func (c *FlightListCache) Get(ctx context.Context) ([]*queries.FlightView, bool) {
	data, err := c.client.Get(ctx, flightListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("flight list cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var flights []*queries.FlightView
	if err := json.Unmarshal(data, &flights); err != nil {
		slog.Warn("flight list cache payload corrupt", "error", err.Error())
		return nil, false
	}
	return flights, true
}

func (c *FlightListCache) Set(ctx context.Context, flights []*queries.FlightView) {
	payload, err := json.Marshal(flights)
	if err != nil {
		slog.Warn("flight list cache encode failed", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, flightListKey, payload, c.ttl).Err(); err != nil {
		slog.Warn("flight list cache write failed", "error", err.Error())
	}
}

func (c *FlightListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, flightListKey).Err(); err != nil {
		slog.Warn("flight list cache invalidation failed", "error", err.Error())
	}
}

func (c *FlightListCache) Close() error {
	return c.client.Close()
}

var _ queries.FlightListCache = (*FlightListCache)(nil)
