// internal/api/types/response.go
package types

import "github.com/shopspring/decimal"

// ListResponse is the envelope for unpaginated result lists.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

// PaginatedResponse defines a generic structure for paginated API responses.
// T represents the type of data contained in the 'Data' slice.
type PaginatedResponse[T any] struct {
	Success    bool `json:"success"`
	Count      int  `json:"count"`
	Data       []T  `json:"data"`
	Limit      *int `json:"limit"` // null when no limit was requested
	Offset     int  `json:"offset"`
	TotalCount int  `json:"total_count"`
}

// FilteredResponse is a PaginatedResponse that also carries the summed line
// total of every match, not just the returned page.
type FilteredResponse[T any] struct {
	PaginatedResponse[T]
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// UploadResponse is returned after a successful ingestion.
type UploadResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	BatchID           string `json:"batch_id"`
	AddedCount        int    `json:"added_count"`
	TotalTransactions int    `json:"total_transactions"`
}

// MessageResponse carries a plain success message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
