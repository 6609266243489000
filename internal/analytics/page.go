// internal/analytics/page.go
package analytics

import (
	"iter"

	"github.com/shopspring/decimal"

	"sales-analytics/internal/domain"
)

// Page is one offset/limit window of a transaction sequence plus totals over
// every transaction in the sequence.
type Page struct {
	Data        []domain.Transaction
	TotalCount  int
	TotalAmount decimal.Decimal
	Offset      int
	Limit       *int
}

// Paginate walks seq once, keeping only the requested window. A nil limit keeps
// everything from offset on; a negative offset is treated as zero.
func Paginate(seq iter.Seq[domain.Transaction], offset int, limit *int) Page {
	if offset < 0 {
		offset = 0
	}
	page := Page{
		Data:        []domain.Transaction{},
		TotalAmount: decimal.Zero,
		Offset:      offset,
		Limit:       limit,
	}

	for tx := range seq {
		pos := page.TotalCount
		page.TotalCount++
		page.TotalAmount = page.TotalAmount.Add(tx.LineTotal)
		if pos < offset {
			continue
		}
		if limit != nil && pos-offset >= *limit {
			continue
		}
		page.Data = append(page.Data, tx)
	}
	return page
}
