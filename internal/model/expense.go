// Package model defines the core domain types shared across the application.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExpenseID uniquely identifies an expense within a collection.
type ExpenseID string

// UnmarshalJSON accepts both string ids and the numeric, time-derived ids
// written by earlier versions of the tracker.
func (id *ExpenseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid expense id: %w", err)
		}
		*id = ExpenseID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid expense id %s: %w", string(data), err)
	}
	*id = ExpenseID(n.String())
	return nil
}

// String implements fmt.Stringer.
func (id ExpenseID) String() string {
	return string(id)
}

// Expense is a single recorded spending entry.
type Expense struct {
	ID          ExpenseID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
}
