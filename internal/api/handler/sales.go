// internal/api/handler/sales.go
package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/api/types"
	"sales-analytics/internal/domain"
	"sales-analytics/internal/service"
	"sales-analytics/internal/util" // For custom errors
)

// DefaultTimeout bounds every request when the config does not set one.
const DefaultTimeout = 60 * time.Second

// maxUploadBytes caps the body of an ingestion request.
const maxUploadBytes = 10 << 20

// SalesHandler handles HTTP requests for ingestion and analytics.
type SalesHandler struct {
	service                  service.SalesService
	logger                   *slog.Logger
	topCustomersDefaultLimit int
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(svc service.SalesService, logger *slog.Logger, topCustomersDefaultLimit int) *SalesHandler {
	return &SalesHandler{
		service:                  svc,
		logger:                   logger,
		topCustomersDefaultLimit: topCustomersDefaultLimit,
	}
}

// Helper function to send JSON responses.
func (h *SalesHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *SalesHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error() // Use the error message directly for invalid input
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Success: false, Error: message})
}

// invalidParam builds the error returned for a malformed query parameter.
func invalidParam(name, value, want string) error {
	return domain.NewValidationError(name, -1, fmt.Sprintf("%q is not %s", value, want))
}

func queryInt(q url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidParam(name, raw, "an integer")
	}
	return &n, nil
}

func queryDecimal(q url.Values, names ...string) (*decimal.Decimal, error) {
	for _, name := range names {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, invalidParam(name, raw, "a number")
		}
		return &d, nil
	}
	return nil, nil
}

func queryOffset(q url.Values) (int, error) {
	offset, err := queryInt(q, "offset")
	if err != nil || offset == nil {
		return 0, err
	}
	return max(*offset, 0), nil
}

// UploadTransactions handles the ingestion request.
// POST /api/transactions
func (h *SalesHandler) UploadTransactions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		h.respondWithError(w, domain.NewValidationError("body", -1, "request body too large or unreadable"))
		return
	}

	records, err := domain.DecodeTransactionInputs(body)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	batchID := uuid.New().String()
	added, err := h.service.AppendTransactions(r.Context(), records)
	if err != nil {
		h.logger.Info("Transaction batch rejected", "batch_id", batchID, "records", len(records), "error", err)
		h.respondWithError(w, err)
		return
	}

	total := h.service.HealthCheck(r.Context()).TotalTransactions
	h.logger.Info("Transaction batch stored", "batch_id", batchID, "added", added, "total_transactions", total)

	h.respondWithJSON(w, http.StatusCreated, types.UploadResponse{
		Success:           true,
		Message:           fmt.Sprintf("Successfully added %d transaction(s)", added),
		BatchID:           batchID,
		AddedCount:        added,
		TotalTransactions: total,
	})
}

// ListTransactions handles the paginated listing request.
// GET /api/transactions
func (h *SalesHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, err := queryOffset(q)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	transactions, total, err := h.service.ListTransactions(r.Context(), offset, limit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.PaginatedResponse[domain.Transaction]{
		Success:    true,
		Count:      len(transactions),
		Data:       transactions,
		Limit:      limit,
		Offset:     offset,
		TotalCount: total,
	})
}

// ClearTransactions handles the request that empties the store.
// DELETE /api/transactions
func (h *SalesHandler) ClearTransactions(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.ClearAll(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Cleared %d transaction(s)", removed),
	})
}

// FilterTransactions handles the multi-criteria filter request.
// GET /api/transactions/filter
func (h *SalesHandler) FilterTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := analytics.FilterParams{
		CustomerID: strings.TrimSpace(q.Get("customer_id")),
		ProductID:  strings.TrimSpace(q.Get("product_id")),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}

	var err error
	if params.MinAmount, err = queryDecimal(q, "min_amount"); err != nil {
		h.respondWithError(w, err)
		return
	}
	if params.MaxAmount, err = queryDecimal(q, "max_amount"); err != nil {
		h.respondWithError(w, err)
		return
	}
	offset, err := queryOffset(q)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	matches, err := h.service.FilterTransactions(r.Context(), params)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	page := analytics.Paginate(matches, offset, limit)

	h.respondWithJSON(w, http.StatusOK, types.FilteredResponse[domain.Transaction]{
		PaginatedResponse: types.PaginatedResponse[domain.Transaction]{
			Success:    true,
			Count:      len(page.Data),
			Data:       page.Data,
			Limit:      page.Limit,
			Offset:     page.Offset,
			TotalCount: page.TotalCount,
		},
		TotalAmount: page.TotalAmount,
	})
}

// SalesByProduct handles the per-product aggregation request.
// GET /api/sales/by-product
func (h *SalesHandler) SalesByProduct(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	summaries, err := h.service.AggregateByProduct(r.Context(), q.Get("sort_by"), q.Get("order"), limit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.ListResponse[domain.ProductSummary]{
		Success: true,
		Count:   len(summaries),
		Data:    summaries,
	})
}

// TopCustomers handles the customer ranking request.
// GET /api/customers/top
func (h *SalesHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if limit == nil {
		defaultLimit := h.topCustomersDefaultLimit
		limit = &defaultLimit
	}
	minAmount, err := queryDecimal(q, "min_amount", "min_spent")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	threshold := decimal.Zero
	if minAmount != nil {
		threshold = *minAmount
	}

	profiles, err := h.service.AggregateTopCustomers(r.Context(), limit, threshold)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.ListResponse[domain.CustomerProfile]{
		Success: true,
		Count:   len(profiles),
		Data:    profiles,
	})
}

// Health handles the health check request. It answers 503 until the
// application has finished starting.
// GET /api/health
func (h *SalesHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.service.HealthCheck(r.Context())
	code := http.StatusOK
	if !health.Ready {
		code = http.StatusServiceUnavailable
	}
	h.respondWithJSON(w, code, health)
}

// Index lists the available endpoints.
// GET /
func (h *SalesHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sales Analytics REST API",
		"version": "1.0",
		"endpoints": map[string]string{
			"POST /api/transactions":       "Upload sales transactions",
			"GET /api/transactions":        "Get all transactions",
			"DELETE /api/transactions":     "Clear all transactions",
			"GET /api/transactions/filter": "Return filtered transactions",
			"GET /api/sales/by-product":    "Calculate total sales per product",
			"GET /api/customers/top":       "Get top customers by sales",
			"GET /api/health":              "Health check",
		},
	})
}
