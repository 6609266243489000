// internal/analytics/sort.go
package analytics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"sales-analytics/internal/domain"
)

// Sort orders.
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// Product sort keys.
const (
	SortByTotalSales       = "total_sales"
	SortByTotalQuantity    = "total_quantity"
	SortByTransactionCount = "transaction_count"
)

var productSortKeys = map[string]func(domain.ProductSummary) decimal.Decimal{
	SortByTotalSales:       func(p domain.ProductSummary) decimal.Decimal { return p.TotalSales },
	SortByTotalQuantity:    func(p domain.ProductSummary) decimal.Decimal { return decimal.NewFromInt(p.TotalQuantity) },
	SortByTransactionCount: func(p domain.ProductSummary) decimal.Decimal { return decimal.NewFromInt(int64(p.TransactionCount)) },
	// short forms accepted by the public API
	"sales":    func(p domain.ProductSummary) decimal.Decimal { return p.TotalSales },
	"quantity": func(p domain.ProductSummary) decimal.Decimal { return decimal.NewFromInt(p.TotalQuantity) },
}

// ValidateProductSort checks a sort key and order without sorting anything.
// An empty key means total_sales and an empty order means desc.
func ValidateProductSort(sortBy, order string) error {
	_, _, err := productSorter(sortBy, order)
	return err
}

func productSorter(sortBy, order string) (func(domain.ProductSummary) decimal.Decimal, bool, error) {
	sortBy = strings.ToLower(strings.TrimSpace(sortBy))
	if sortBy == "" {
		sortBy = SortByTotalSales
	}
	key, ok := productSortKeys[sortBy]
	if !ok {
		return nil, false, domain.NewValidationError("sort_by", -1, fmt.Sprintf("unknown sort key %q", sortBy))
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", OrderDesc:
		return key, true, nil
	case OrderAsc:
		return key, false, nil
	default:
		return nil, false, domain.NewValidationError("order", -1, fmt.Sprintf("unknown sort order %q", order))
	}
}

// SortProducts stably sorts summaries in place by the named field.
// Ties keep their incoming relative order.
func SortProducts(summaries []domain.ProductSummary, sortBy, order string) error {
	key, desc, err := productSorter(sortBy, order)
	if err != nil {
		return err
	}
	slices.SortStableFunc(summaries, func(a, b domain.ProductSummary) int {
		c := key(a).Cmp(key(b))
		if desc {
			return -c
		}
		return c
	})
	return nil
}

// SortCustomers stably sorts profiles in place by total spent, highest first.
func SortCustomers(profiles []domain.CustomerProfile) {
	slices.SortStableFunc(profiles, func(a, b domain.CustomerProfile) int {
		return b.TotalSpent.Cmp(a.TotalSpent)
	})
}

// Limit caps items at limit elements. A nil limit keeps everything and a
// non-positive one keeps nothing.
func Limit[T any](items []T, limit *int) []T {
	if limit == nil {
		return items
	}
	if *limit <= 0 {
		return items[:0]
	}
	if *limit < len(items) {
		return items[:*limit]
	}
	return items
}
