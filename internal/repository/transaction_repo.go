// internal/repository/transaction_repo.go
package repository

import (
	"context"
	"iter"

	"sales-analytics/internal/domain"
)

// TransactionRepository defines the interface for transaction store operations.
type TransactionRepository interface {
	// Append adds already validated transactions in input order. The batch is
	// stored atomically: readers never observe part of it.
	Append(ctx context.Context, transactions []domain.Transaction) (int, error)
	// Clear removes every stored transaction and returns how many were removed.
	Clear(ctx context.Context) int
	// List returns up to limit transactions in insertion order starting at offset.
	// A negative limit means all remaining. Out-of-range offsets yield an empty slice.
	List(ctx context.Context, offset, limit int) []domain.Transaction
	// Count returns the number of stored transactions.
	Count(ctx context.Context) int
	// All returns a restartable sequence over the store. Each iteration scans a
	// point-in-time view taken when the iteration starts.
	All(ctx context.Context) iter.Seq[domain.Transaction]
}
