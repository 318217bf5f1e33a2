// Package app wires the catalog stores, services and transports together.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maramosh/parcial-practico-miguel/internal/config"
	"github.com/maramosh/parcial-practico-miguel/internal/service"
	"github.com/maramosh/parcial-practico-miguel/internal/store"
	grpcImpl "github.com/maramosh/parcial-practico-miguel/internal/transport/grpc"
	"github.com/maramosh/parcial-practico-miguel/internal/transport/rest"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging"
	"github.com/maramosh/parcial-practico-miguel/pkg/server"
	"google.golang.org/grpc"
)

type Dependencies struct {
	ProductService      service.ProductService
	StoreService        service.StoreService
	ProductStoreService service.ProductStoreService
	Health              *grpcImpl.HealthServer
	// Metrics serves /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
}

// SetupDependencies builds the stores and services once, on top of a single pool.
func SetupDependencies(dbPool *pgxpool.Pool, publisher messaging.Publisher, metrics http.Handler, logger *slog.Logger) *Dependencies {
	products := store.NewPgProductStore(dbPool)
	stores := store.NewPgStoreStore(dbPool)
	links := store.NewPgLinkStore(dbPool)

	return &Dependencies{
		ProductService:      service.NewProducts(products),
		StoreService:        service.NewStores(stores),
		ProductStoreService: service.NewProductStores(products, stores, links, publisher, logger),
		Health:              grpcImpl.NewHealthServer(dbPool, logger),
		Metrics:             metrics,
		Logger:              logger,
	}
}

// SetupHttpHandler builds the router with every route and middleware.
// Used by E2E tests to run the API on an httptest server.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.ProductService, deps.StoreService, deps.ProductStoreService, deps.Logger)
	handler.RegisterRoutes(mux)
	if deps.Metrics != nil {
		mux.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
}

// SetupHttpServer creates the HTTP server of the catalog API.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, "catalog-http", SetupHttpHandler(deps))
}

// SetupGrpcServer creates the gRPC server exposing the health service.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, deps.Health.Register)
}
