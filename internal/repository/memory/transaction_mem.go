// internal/repository/memory/transaction_mem.go
package memory

import (
	"context"
	"iter"
	"sync"

	"sales-analytics/internal/domain"
	"sales-analytics/internal/repository"
)

// TransactionRepository implements repository.TransactionRepository in process memory.
//
// Stored elements are never written after append, and Clear always installs a
// fresh slice instead of truncating, so a snapshot of the slice header taken
// under the lock stays valid after the lock is released.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// NewTransactionRepository creates an empty TransactionRepository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// Append adds the batch under a single write lock.
func (r *TransactionRepository) Append(ctx context.Context, transactions []domain.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, transactions...)
	return len(transactions), nil
}

// Clear empties the store. It is idempotent.
func (r *TransactionRepository) Clear(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.transactions)
	r.transactions = nil
	return removed
}

// List returns a copy of the requested window in insertion order.
func (r *TransactionRepository) List(ctx context.Context, offset, limit int) []domain.Transaction {
	snapshot := r.snapshot()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(snapshot) || limit == 0 {
		return []domain.Transaction{}
	}
	end := len(snapshot)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]domain.Transaction, end-offset)
	copy(page, snapshot[offset:end])
	return page
}

// Count returns the current number of stored transactions.
func (r *TransactionRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}

// All returns a sequence that snapshots the store each time it is ranged over.
func (r *TransactionRepository) All(ctx context.Context) iter.Seq[domain.Transaction] {
	return func(yield func(domain.Transaction) bool) {
		for _, tx := range r.snapshot() {
			if !yield(tx) {
				return
			}
		}
	}
}

// snapshot returns the current slice capped at its length, so appends made
// after the read lock is released can never show through it.
func (r *TransactionRepository) snapshot() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.transactions)
	return r.transactions[:n:n]
}
