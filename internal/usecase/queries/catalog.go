package queries

import (
	"context"

	"tripdesk/internal/infra"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetFlight(ctx context.Context, id uuid.UUID) (*FlightView, error)
	ListFlights(ctx context.Context) ([]*FlightView, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
	ListPackages(ctx context.Context) ([]*PackageView, error)
}

type FlightViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FlightView, error)
	FindAll(ctx context.Context) ([]*FlightView, error)
}

type PackageViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	FindAll(ctx context.Context) ([]*PackageView, error)
}

// FlightListCache fronts the flight list with a short TTL. Seat counts in
// the cached list may lag the live counter; admission never reads it.
type FlightListCache interface {
	Get(ctx context.Context) ([]*FlightView, bool)
	Set(ctx context.Context, flights []*FlightView)
	Invalidate(ctx context.Context)
}

type catalogQueriesImpl struct {
	flights  FlightViewRepo
	packages PackageViewRepo
	cache    FlightListCache
}

func NewCatalogQueries(flights FlightViewRepo, packages PackageViewRepo, cache FlightListCache) CatalogQueries {
	return &catalogQueriesImpl{
		flights:  flights,
		packages: packages,
		cache:    cache,
	}
}

func (q *catalogQueriesImpl) GetFlight(ctx context.Context, id uuid.UUID) (*FlightView, error) {
	view, err := q.flights.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListFlights(ctx context.Context) ([]*FlightView, error) {
	if cached, ok := q.cache.Get(ctx); ok {
		return cached, nil
	}

	flights, err := q.flights.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q.cache.Set(ctx, flights)
	return flights, nil
}

func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	view, err := q.packages.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context) ([]*PackageView, error) {
	return q.packages.FindAll(ctx)
}
