// Package rest provides the HTTP handlers of the catalog API.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/service"
	"github.com/maramosh/parcial-practico-miguel/pkg/web"
)

type Handler struct {
	products      service.ProductService
	stores        service.StoreService
	productStores service.ProductStoreService
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewHandler creates the catalog API on top of the three services.
func NewHandler(products service.ProductService, stores service.StoreService,
	productStores service.ProductStoreService, logger *slog.Logger) *Handler {
	return &Handler{
		products:      products,
		stores:        stores,
		productStores: productStores,
		validate:      validator.New(),
		logger:        logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the catalog API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAllProducts)
		r.Post("/", h.CreateProduct)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindProductByID)
			r.Put("/", h.UpdateProduct)
			r.Delete("/", h.DeleteProductByID)

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", h.FindStoresByProductID)
				r.Put("/", h.UpdateStoresProduct)
				r.Post("/{storeId}", h.AddStoreToProduct)
				r.Get("/{storeId}", h.FindStoreByProductIDStoreID)
				r.Delete("/{storeId}", h.DeleteStoreFromProduct)
			})
		})
	})

	r.Route("/api/v1/stores", func(r chi.Router) {
		r.Get("/", h.FindAllStores)
		r.Post("/", h.CreateStore)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindStoreByID)
			r.Put("/", h.UpdateStore)
			r.Delete("/", h.DeleteStoreByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple liveness endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// clientErrors are the service errors whose message is safe to return to the caller.
var clientErrors = []error{
	catalogerrors.ErrProductNotFound,
	catalogerrors.ErrStoreNotFound,
	catalogerrors.ErrStoreNotAssociated,
	catalogerrors.ErrInvalidProductType,
	catalogerrors.ErrInvalidCityCode,
}

// respondServiceError maps err to 404, 412 or 500. failure is the message used for 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, failure string) {
	status := http.StatusInternalServerError
	switch {
	case catalogerrors.IsNotFound(err):
		status = http.StatusNotFound
	case catalogerrors.IsPreconditionFailed(err):
		status = http.StatusPreconditionFailed
	}
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), failure, "error", err)
		web.RespondError(w, logger, status, failure)
		return
	}
	logger.WarnContext(r.Context(), "Request rejected", "status", status, "error", err)
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			web.RespondError(w, logger, status, clientErr.Error())
			return
		}
	}
	web.RespondError(w, logger, status, err.Error())
}

// requestLogger tags the handler logger with the request line.
// The request id is added by the context-aware slog handler.
func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	return h.logger.With("method", r.Method, "path", r.URL.Path)
}
