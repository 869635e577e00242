//go:build wireinject
// +build wireinject

package dashboard

import (
	"context"

	"github.com/google/wire"

	httpDelivery "github.com/charakka/opsboard/internal/dashboard/delivery/http"
	"github.com/charakka/opsboard/internal/dashboard/domain"
	"github.com/charakka/opsboard/internal/dashboard/repository"
	"github.com/charakka/opsboard/internal/dashboard/session"
	"github.com/charakka/opsboard/internal/prefs"
)

// StrictPrice toggles numeric-shape validation of submitted prices.
type StrictPrice bool

// ProvideItemRepository provides the seeded item store wrapped with
// tracing.
func ProvideItemRepository() domain.ItemRepository {
	return repository.NewTracedItemRepository(
		repository.NewMemoryItemRepository(repository.SeedItems()),
	)
}

// ProvideRouteRepository provides the fixed route balance store.
func ProvideRouteRepository() domain.RouteRepository {
	return repository.NewMemoryRouteRepository(repository.SeedRoutes())
}

// ProvideSession provides the operator session.
func ProvideSession(ctx context.Context, items domain.ItemRepository, routes domain.RouteRepository, store prefs.Store, strictPrice StrictPrice) *session.Session {
	return session.New(ctx, items, routes, store, bool(strictPrice))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
	ProvideRouteRepository,
)

// InitializeDashboardHandler initializes the HTTP handler with all
// dependencies.
func InitializeDashboardHandler(ctx context.Context, store prefs.Store, strictPrice StrictPrice) *httpDelivery.DashboardHandler {
	wire.Build(
		RepositorySet,
		ProvideSession,
		httpDelivery.NewDashboardHandler,
	)
	return nil
}
