// internal/domain/decode.go
package domain

import (
	"bytes"
	"encoding/json"
)

// DecodeTransactionInputs parses an ingestion payload. A payload is a single
// transaction object, a bare array of them, or an object with a
// "transactions" array. Field validation is left to TransactionInput.Validate.
func DecodeTransactionInputs(body []byte) ([]TransactionInput, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, NewValidationError("body", -1, "no data provided")
	}

	var records []TransactionInput
	if body[0] == '[' {
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, malformed(err)
		}
		return records, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, malformed(err)
	}
	if raw, ok := fields["transactions"]; ok {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, NewValidationError("transactions", -1, "must be an array of transactions")
		}
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, NewValidationError("transactions", -1, "malformed JSON: "+err.Error())
		}
		return records, nil
	}

	var single TransactionInput
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, malformed(err)
	}
	return []TransactionInput{single}, nil
}

func malformed(err error) error {
	return NewValidationError("body", -1, "malformed JSON: "+err.Error())
}
