// internal/analytics/aggregate.go
package analytics

import (
	"iter"
	"math"

	"github.com/shopspring/decimal"

	"sales-analytics/internal/domain"
)

// ByProduct totals sales and quantity per product id in one pass.
// Summaries come back in order of first appearance; the first name seen for an
// id is kept even if later records disagree.
func ByProduct(seq iter.Seq[domain.Transaction]) []domain.ProductSummary {
	index := make(map[string]int)
	var summaries []domain.ProductSummary

	for tx := range seq {
		i, ok := index[tx.ProductID]
		if !ok {
			i = len(summaries)
			index[tx.ProductID] = i
			summaries = append(summaries, domain.ProductSummary{
				ProductID:   tx.ProductID,
				ProductName: tx.ProductName,
				TotalSales:  decimal.Zero,
			})
		}
		acc := &summaries[i]
		acc.TotalSales = acc.TotalSales.Add(tx.LineTotal)
		acc.TotalQuantity = addQuantity(acc.TotalQuantity, tx.Quantity)
		acc.TransactionCount++
	}

	if summaries == nil {
		return []domain.ProductSummary{}
	}
	return summaries
}

// addQuantity sums non-negative quantities, saturating at math.MaxInt64.
func addQuantity(total, qty int64) int64 {
	if qty > math.MaxInt64-total {
		return math.MaxInt64
	}
	return total + qty
}

type customerAccumulator struct {
	name       string
	totalSpent decimal.Decimal
	count      int
	items      int64
	products   []string
	seen       map[string]struct{}
}

// ByCustomer builds spend profiles per customer id in one pass over seq.
// Profiles whose total spend is below minAmount are dropped while the results
// are assembled, not by a second scan. Order is first appearance.
func ByCustomer(seq iter.Seq[domain.Transaction], minAmount decimal.Decimal) []domain.CustomerProfile {
	accumulators := make(map[string]*customerAccumulator)
	var order []string

	for tx := range seq {
		acc, ok := accumulators[tx.CustomerID]
		if !ok {
			acc = &customerAccumulator{
				name:       tx.CustomerName,
				totalSpent: decimal.Zero,
				seen:       make(map[string]struct{}),
			}
			accumulators[tx.CustomerID] = acc
			order = append(order, tx.CustomerID)
		}
		acc.totalSpent = acc.totalSpent.Add(tx.LineTotal)
		acc.count++
		acc.items = addQuantity(acc.items, tx.Quantity)
		if _, dup := acc.seen[tx.ProductID]; !dup {
			acc.seen[tx.ProductID] = struct{}{}
			acc.products = append(acc.products, tx.ProductID)
		}
	}

	profiles := make([]domain.CustomerProfile, 0, len(order))
	for _, id := range order {
		acc := accumulators[id]
		if acc.totalSpent.LessThan(minAmount) {
			continue
		}
		// acc.count >= 1: an accumulator only exists once a transaction was seen.
		profiles = append(profiles, domain.CustomerProfile{
			CustomerID:          id,
			CustomerName:        acc.name,
			TotalSpent:          acc.totalSpent,
			TotalTransactions:   acc.count,
			TotalItems:          acc.items,
			ProductsPurchased:   acc.products,
			UniqueProductsCount: len(acc.products),
			AverageTransaction:  acc.totalSpent.Div(decimal.NewFromInt(int64(acc.count))),
		})
	}
	return profiles
}
