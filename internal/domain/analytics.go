// internal/domain/analytics.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSummary is the per-product aggregate built for a single query.
type ProductSummary struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalQuantity    int64           `json:"total_quantity"`
	TransactionCount int             `json:"transaction_count"`
}

// CustomerProfile is the per-customer spend profile built for a single query.
type CustomerProfile struct {
	CustomerID          string          `json:"customer_id"`
	CustomerName        string          `json:"customer_name"`
	TotalSpent          decimal.Decimal `json:"total_spent"`
	TotalTransactions   int             `json:"total_transactions"`
	TotalItems          int64           `json:"total_items"`
	ProductsPurchased   []string        `json:"products_purchased"` // product ids, first purchase first
	UniqueProductsCount int             `json:"unique_products_count"`
	AverageTransaction  decimal.Decimal `json:"average_transaction"`
}

// Health reports store size and readiness.
type Health struct {
	Status            string    `json:"status"`
	Ready             bool      `json:"ready"`
	TotalTransactions int       `json:"total_transactions"`
	Timestamp         time.Time `json:"timestamp"`
}
