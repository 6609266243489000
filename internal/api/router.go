// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sales-analytics/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(salesHandler *handler.SalesHandler, logger *slog.Logger, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		timeout = handler.DefaultTimeout
	}
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)        // Add a request ID to the context
	r.Use(middleware.RealIP)           // Use the real IP address
	r.Use(middleware.Logger)           // Log HTTP requests
	r.Use(middleware.Recoverer)        // Recover from panics and return 500
	r.Use(middleware.Timeout(timeout)) // Bound every request

	r.Get("/", salesHandler.Index)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", salesHandler.Health)

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", salesHandler.UploadTransactions)
			r.Get("/", salesHandler.ListTransactions)
			r.Delete("/", salesHandler.ClearTransactions)
			r.Get("/filter", salesHandler.FilterTransactions)
		})

		r.Get("/sales/by-product", salesHandler.SalesByProduct)
		r.Get("/customers/top", salesHandler.TopCustomers)
	})

	logger.Debug("HTTP routes registered")
	return r
}
