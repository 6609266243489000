// internal/domain/transaction.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// MaxQuantity is the largest quantity a single record may carry. It keeps
// per-product and per-customer quantity totals far from int64 overflow.
const MaxQuantity = 1<<31 - 1

// Transaction represents one stored sales record. Values are never mutated after
// they are appended to the store.
type Transaction struct {
	TransactionID string          `json:"transaction_id"` // Caller supplied, not required to be unique
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`      // Unit price
	LineTotal     decimal.Decimal `json:"line_total"` // Quantity * Price, computed once at ingestion
	Timestamp     time.Time       `json:"timestamp"`
}

// NewTransaction creates a new Transaction and derives its line total.
// A zero timestamp is replaced with the current time.
func NewTransaction(
	transactionID string,
	customerID, customerName string,
	productID, productName string,
	quantity int64,
	price decimal.Decimal,
	timestamp time.Time,
) Transaction {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return Transaction{
		TransactionID: transactionID,
		CustomerID:    customerID,
		CustomerName:  customerName,
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      quantity,
		Price:         price,
		LineTotal:     price.Mul(decimal.NewFromInt(quantity)),
		Timestamp:     timestamp,
	}
}

// TransactionInput is the loosely typed ingestion shape. Pointer fields let
// Validate tell a missing field apart from a zero value.
type TransactionInput struct {
	TransactionID *string          `json:"transaction_id"`
	CustomerID    *string          `json:"customer_id"`
	CustomerName  *string          `json:"customer_name"`
	ProductID     *string          `json:"product_id"`
	ProductName   *string          `json:"product_name"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Price         *decimal.Decimal `json:"price"`
	Timestamp     *string          `json:"timestamp,omitempty"`
}

// Validate checks the record at position index of its batch and returns the typed
// Transaction. The returned error is always a *ValidationError.
func (in TransactionInput) Validate(index int) (Transaction, error) {
	required := []struct {
		field string
		value *string
	}{
		{"transaction_id", in.TransactionID},
		{"customer_id", in.CustomerID},
		{"customer_name", in.CustomerName},
		{"product_id", in.ProductID},
		{"product_name", in.ProductName},
	}
	for _, r := range required {
		if r.value == nil {
			return Transaction{}, NewValidationError(r.field, index, "missing required field")
		}
	}

	if in.Quantity == nil {
		return Transaction{}, NewValidationError("quantity", index, "missing required field")
	}
	if in.Quantity.IsNegative() {
		return Transaction{}, NewValidationError("quantity", index, "must be non-negative")
	}
	if !in.Quantity.IsInteger() {
		return Transaction{}, NewValidationError("quantity", index, "must be a whole number")
	}
	if in.Quantity.GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return Transaction{}, NewValidationError("quantity", index, fmt.Sprintf("must not exceed %d", MaxQuantity))
	}

	if in.Price == nil {
		return Transaction{}, NewValidationError("price", index, "missing required field")
	}
	if in.Price.IsNegative() {
		return Transaction{}, NewValidationError("price", index, "must be non-negative")
	}

	var ts time.Time
	if in.Timestamp != nil && strings.TrimSpace(*in.Timestamp) != "" {
		parsed, err := ParseTimestamp(*in.Timestamp)
		if err != nil {
			return Transaction{}, NewValidationError("timestamp", index, err.Error())
		}
		ts = parsed
	}

	return NewTransaction(
		*in.TransactionID,
		*in.CustomerID, *in.CustomerName,
		*in.ProductID, *in.ProductName,
		in.Quantity.IntPart(),
		*in.Price,
		ts,
	), nil
}

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 style timestamp or calendar date.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format %q", value)
}
