// internal/analytics/page_test.go
package analytics

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	data := sampleTransactions()
	grandTotal := decimal.RequireFromString("5225")

	cases := []struct {
		name   string
		offset int
		limit  *int
		want   []string
	}{
		{"Everything", 0, nil, transactionIDs(data)},
		{"Window", 2, intPtr(3), []string{"TXN003", "TXN004", "TXN005"}},
		{"OffsetOnly", 6, nil, []string{"TXN007", "TXN008"}},
		{"NegativeOffset", -3, intPtr(1), []string{"TXN001"}},
		{"OffsetPastEnd", 20, intPtr(5), []string{}},
		{"ZeroLimit", 0, intPtr(0), []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(slices.Values(data), tc.offset, tc.limit)
			assert.Equal(t, tc.want, transactionIDs(page.Data))
			assert.Equal(t, len(data), page.TotalCount)
			assert.True(t, grandTotal.Equal(page.TotalAmount), "total amount %s", page.TotalAmount)
		})
	}
}

func TestPaginate_Filtered(t *testing.T) {
	f, err := NewFilter(FilterParams{MinAmount: dec("100")})
	if err != nil {
		t.Fatal(err)
	}
	page := Paginate(f.Apply(slices.Values(sampleTransactions())), 1, intPtr(2))

	assert.Equal(t, []string{"TXN002", "TXN003"}, transactionIDs(page.Data))
	assert.Equal(t, 7, page.TotalCount)
	assert.True(t, decimal.NewFromInt(5150).Equal(page.TotalAmount))
	assert.Equal(t, 1, page.Offset)
}
