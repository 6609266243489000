// internal/service/sales_service.go
package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/domain"
	"sales-analytics/internal/repository"
)

// SalesService defines the sales analytics operations exposed to the API layer.
type SalesService interface {
	AppendTransactions(ctx context.Context, records []domain.TransactionInput) (int, error)
	ClearAll(ctx context.Context) (int, error)
	ListTransactions(ctx context.Context, offset int, limit *int) ([]domain.Transaction, int, error)
	FilterTransactions(ctx context.Context, params analytics.FilterParams) (iter.Seq[domain.Transaction], error)
	AggregateByProduct(ctx context.Context, sortBy, order string, limit *int) ([]domain.ProductSummary, error)
	AggregateTopCustomers(ctx context.Context, limit *int, minAmount decimal.Decimal) ([]domain.CustomerProfile, error)
	HealthCheck(ctx context.Context) domain.Health
	SetReady(ready bool)
}

// salesService implements the SalesService interface.
type salesService struct {
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
	ready           atomic.Bool
}

// NewSalesService creates a new instance of SalesService.
func NewSalesService(transactionRepo repository.TransactionRepository, logger *slog.Logger) SalesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &salesService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// AppendTransactions validates the whole batch first and only then stores it,
// so an invalid record leaves the store untouched.
func (s *salesService) AppendTransactions(ctx context.Context, records []domain.TransactionInput) (int, error) {
	if len(records) == 0 {
		return 0, domain.NewValidationError("transactions", -1, "no transactions provided")
	}

	batch := make([]domain.Transaction, 0, len(records))
	for i, record := range records {
		tx, err := record.Validate(i)
		if err != nil {
			return 0, err
		}
		batch = append(batch, tx)
	}

	added, err := s.transactionRepo.Append(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("append transactions: failed to store batch: %w", err)
	}
	s.logger.Debug("Transactions appended", "added", added)
	return added, nil
}

// ClearAll empties the store and reports how many transactions were removed.
func (s *salesService) ClearAll(ctx context.Context) (int, error) {
	removed := s.transactionRepo.Clear(ctx)
	s.logger.Info("Transaction store cleared", "removed", removed)
	return removed, nil
}

// ListTransactions returns a window of the store in insertion order together
// with the store size. A nil limit returns everything from offset on.
func (s *salesService) ListTransactions(ctx context.Context, offset int, limit *int) ([]domain.Transaction, int, error) {
	n := -1
	if limit != nil {
		if *limit <= 0 {
			return []domain.Transaction{}, s.transactionRepo.Count(ctx), nil
		}
		n = *limit
	}
	return s.transactionRepo.List(ctx, offset, n), s.transactionRepo.Count(ctx), nil
}

// FilterTransactions validates params up front and returns a lazy sequence.
// Each range over the result re-scans the store.
func (s *salesService) FilterTransactions(ctx context.Context, params analytics.FilterParams) (iter.Seq[domain.Transaction], error) {
	filter, err := analytics.NewFilter(params)
	if err != nil {
		return nil, err
	}
	return filter.Apply(s.transactionRepo.All(ctx)), nil
}

// AggregateByProduct totals sales per product, then sorts and limits the result.
func (s *salesService) AggregateByProduct(ctx context.Context, sortBy, order string, limit *int) ([]domain.ProductSummary, error) {
	if err := analytics.ValidateProductSort(sortBy, order); err != nil {
		return nil, err
	}

	summaries := analytics.ByProduct(s.transactionRepo.All(ctx))
	if err := analytics.SortProducts(summaries, sortBy, order); err != nil {
		return nil, fmt.Errorf("aggregate by product: failed to sort: %w", err)
	}
	return analytics.Limit(summaries, limit), nil
}

// AggregateTopCustomers ranks customers by total spend. Customers below
// minAmount are excluded.
func (s *salesService) AggregateTopCustomers(ctx context.Context, limit *int, minAmount decimal.Decimal) ([]domain.CustomerProfile, error) {
	if minAmount.IsNegative() {
		return nil, domain.NewValidationError("min_amount", -1, "must be non-negative")
	}

	profiles := analytics.ByCustomer(s.transactionRepo.All(ctx), minAmount)
	analytics.SortCustomers(profiles)
	return analytics.Limit(profiles, limit), nil
}

// HealthCheck reports store size and whether the service is accepting traffic.
func (s *salesService) HealthCheck(ctx context.Context) domain.Health {
	ready := s.ready.Load()
	status := "healthy"
	if !ready {
		status = "unavailable"
	}
	return domain.Health{
		Status:            status,
		Ready:             ready,
		TotalTransactions: s.transactionRepo.Count(ctx),
		Timestamp:         time.Now().UTC(),
	}
}

// SetReady flips the readiness flag reported by HealthCheck.
func (s *salesService) SetReady(ready bool) {
	s.ready.Store(ready)
}
