// internal/analytics/filter_test.go
package analytics

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/domain"
)

func collectFiltered(t *testing.T, params FilterParams, data []domain.Transaction) []string {
	t.Helper()
	f, err := NewFilter(params)
	require.NoError(t, err)
	return transactionIDs(slices.Collect(f.Apply(slices.Values(data))))
}

func TestFilter(t *testing.T) {
	data := sampleTransactions()

	cases := []struct {
		name   string
		params FilterParams
		want   []string
	}{
		{"NoPredicates", FilterParams{}, transactionIDs(data)},
		{"Customer", FilterParams{CustomerID: "CUST001"}, []string{"TXN001", "TXN003", "TXN008"}},
		{"Product", FilterParams{ProductID: "PROD002"}, []string{"TXN002", "TXN007"}},
		{"MinAmountInclusive", FilterParams{MinAmount: dec("700")}, []string{"TXN001", "TXN004", "TXN005"}},
		{"MaxAmountInclusive", FilterParams{MaxAmount: dec("125")}, []string{"TXN002", "TXN007"}},
		{"AmountRange", FilterParams{MinAmount: dec("150"), MaxAmount: dec("350")}, []string{"TXN003", "TXN006", "TXN008"}},
		{"InvertedAmountRange", FilterParams{MinAmount: dec("500"), MaxAmount: dec("100")}, []string{}},
		{"StartDate", FilterParams{StartDate: "2026-02-05"}, []string{"TXN001", "TXN002", "TXN003", "TXN004", "TXN005"}},
		{"EndDateInclusive", FilterParams{EndDate: "2026-02-04T14:00:00"}, []string{"TXN007", "TXN008"}},
		{"InvertedDateRange", FilterParams{StartDate: "2026-02-06", EndDate: "2026-02-01"}, []string{}},
		{"Conjunction", FilterParams{CustomerID: "CUST001", MinAmount: dec("300"), EndDate: "2026-02-05T09:00:00"}, []string{"TXN008"}},
		{"NoMatch", FilterParams{CustomerID: "CUST999"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collectFiltered(t, tc.params, data))
		})
	}
}

func TestFilter_PreservesInsertionOrder(t *testing.T) {
	data := sampleTransactions()
	position := make(map[string]int, len(data))
	for i, d := range data {
		position[d.TransactionID] = i
	}

	for _, params := range []FilterParams{
		{MinAmount: dec("100")},
		{ProductID: "PROD001"},
		{StartDate: "2026-02-04T13:00:00", MaxAmount: dec("1000")},
	} {
		got := collectFiltered(t, params, data)
		for i := 1; i < len(got); i++ {
			assert.Less(t, position[got[i-1]], position[got[i]])
		}
	}
}

func TestFilter_InvalidDate(t *testing.T) {
	_, err := NewFilter(FilterParams{StartDate: "not-a-date"})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "start_date", vErr.Field)

	_, err = NewFilter(FilterParams{StartDate: "2026-02-01", EndDate: "02/05/2026"})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "end_date", vErr.Field)
}

func TestFilter_ShortCircuits(t *testing.T) {
	f, err := NewFilter(FilterParams{CustomerID: "CUST002", MinAmount: dec("1")})
	require.NoError(t, err)

	// Only the customer predicate should run for a record from another customer.
	calls := 0
	f.predicates[1] = func(domain.Transaction) bool { calls++; return true }

	assert.False(t, f.Match(sampleTransactions()[0]))
	assert.Equal(t, 0, calls)
	assert.True(t, f.Match(sampleTransactions()[1]))
	assert.Equal(t, 1, calls)
}

func TestFilter_IsLazyAndRestartable(t *testing.T) {
	data := sampleTransactions()
	scans := 0
	source := func(yield func(domain.Transaction) bool) {
		scans++
		for _, d := range data {
			if !yield(d) {
				return
			}
		}
	}

	f, err := NewFilter(FilterParams{ProductID: "PROD001"})
	require.NoError(t, err)
	seq := f.Apply(source)
	assert.Equal(t, 0, scans)

	assert.Len(t, slices.Collect(seq), 2)
	assert.Len(t, slices.Collect(seq), 2)
	assert.Equal(t, 2, scans)
}

func TestFilter_MinAmountScenario(t *testing.T) {
	data := []domain.Transaction{
		tx("TXN001", "CUST001", "Alice", "PROD001", "Laptop", 2, "1000.00", baseTime),
		tx("TXN002", "CUST001", "Alice", "PROD002", "Mouse", 1, "50.00", baseTime),
	}
	assert.Equal(t, []string{"TXN001"}, collectFiltered(t, FilterParams{MinAmount: dec("100")}, data))
}
