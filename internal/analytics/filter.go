// internal/analytics/filter.go
package analytics

import (
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sales-analytics/internal/domain"
)

// FilterParams is a conjunction of optional predicates. Zero values mean
// "no constraint".
type FilterParams struct {
	CustomerID string
	ProductID  string
	MinAmount  *decimal.Decimal // inclusive bound on line total
	MaxAmount  *decimal.Decimal // inclusive bound on line total
	StartDate  string           // inclusive bound on timestamp
	EndDate    string           // inclusive bound on timestamp
}

type predicate func(domain.Transaction) bool

// Filter is a compiled FilterParams. It is safe to reuse across scans.
type Filter struct {
	predicates []predicate
}

// NewFilter parses the date bounds once and compiles the supplied predicates.
// Cheap equality checks are placed first so most records are rejected early.
func NewFilter(params FilterParams) (*Filter, error) {
	var start, end time.Time
	var hasStart, hasEnd bool
	var err error
	if s := strings.TrimSpace(params.StartDate); s != "" {
		if start, err = domain.ParseTimestamp(s); err != nil {
			return nil, domain.NewValidationError("start_date", -1, err.Error())
		}
		hasStart = true
	}
	if s := strings.TrimSpace(params.EndDate); s != "" {
		if end, err = domain.ParseTimestamp(s); err != nil {
			return nil, domain.NewValidationError("end_date", -1, err.Error())
		}
		hasEnd = true
	}

	f := &Filter{}
	if id := params.CustomerID; id != "" {
		f.predicates = append(f.predicates, func(tx domain.Transaction) bool { return tx.CustomerID == id })
	}
	if id := params.ProductID; id != "" {
		f.predicates = append(f.predicates, func(tx domain.Transaction) bool { return tx.ProductID == id })
	}
	if params.MinAmount != nil {
		minAmount := *params.MinAmount
		f.predicates = append(f.predicates, func(tx domain.Transaction) bool { return tx.LineTotal.GreaterThanOrEqual(minAmount) })
	}
	if params.MaxAmount != nil {
		maxAmount := *params.MaxAmount
		f.predicates = append(f.predicates, func(tx domain.Transaction) bool { return tx.LineTotal.LessThanOrEqual(maxAmount) })
	}
	if hasStart {
		f.predicates = append(f.predicates, func(tx domain.Transaction) bool { return !tx.Timestamp.Before(start) })
	}
	if hasEnd {
		f.predicates = append(f.predicates, func(tx domain.Transaction) bool { return !tx.Timestamp.After(end) })
	}
	return f, nil
}

// Match reports whether tx satisfies every predicate, stopping at the first miss.
func (f *Filter) Match(tx domain.Transaction) bool {
	for _, p := range f.predicates {
		if !p(tx) {
			return false
		}
	}
	return true
}

// Apply returns a lazy view of seq holding only matching transactions, in order.
// Ranging over the result again re-scans seq.
func (f *Filter) Apply(seq iter.Seq[domain.Transaction]) iter.Seq[domain.Transaction] {
	if len(f.predicates) == 0 {
		return seq
	}
	return func(yield func(domain.Transaction) bool) {
		for tx := range seq {
			if f.Match(tx) && !yield(tx) {
				return
			}
		}
	}
}
