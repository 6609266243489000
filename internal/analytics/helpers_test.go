// internal/analytics/helpers_test.go
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"sales-analytics/internal/domain"
)

var baseTime = time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

func tx(id, customerID, customerName, productID, productName string, qty int64, price string, at time.Time) domain.Transaction {
	return domain.NewTransaction(id, customerID, customerName, productID, productName, qty, decimal.RequireFromString(price), at)
}

// sampleTransactions mirrors the service's bundled demo data.
func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		tx("TXN001", "CUST001", "John Doe", "PROD001", "Laptop", 2, "1200.00", baseTime.Add(10*time.Hour+30*time.Minute)),
		tx("TXN002", "CUST002", "Jane Smith", "PROD002", "Mouse", 5, "25.00", baseTime.Add(9*time.Hour+30*time.Minute)),
		tx("TXN003", "CUST001", "John Doe", "PROD003", "Keyboard", 3, "75.00", baseTime.Add(8*time.Hour+30*time.Minute)),
		tx("TXN004", "CUST003", "Bob Johnson", "PROD001", "Laptop", 1, "1200.00", baseTime.Add(7*time.Hour+30*time.Minute)),
		tx("TXN005", "CUST002", "Jane Smith", "PROD004", "Monitor", 2, "350.00", baseTime.Add(6*time.Hour+30*time.Minute)),
		tx("TXN006", "CUST004", "Alice Williams", "PROD005", "Webcam", 1, "150.00", baseTime.Add(-8*time.Hour-30*time.Minute)),
		tx("TXN007", "CUST003", "Bob Johnson", "PROD002", "Mouse", 3, "25.00", baseTime.Add(-10*time.Hour)),
		tx("TXN008", "CUST001", "John Doe", "PROD004", "Monitor", 1, "350.00", baseTime.Add(-12*time.Hour)),
	}
}

func transactionIDs(seq []domain.Transaction) []string {
	out := make([]string, 0, len(seq))
	for _, t := range seq {
		out = append(out, t.TransactionID)
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }
