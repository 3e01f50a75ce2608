// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// BalanceResponse summarizes a two-sided book.
type BalanceResponse struct {
	Received string `json:"received"`
	Given    string `json:"given"`
	Net      string `json:"net"`
	Status   string `json:"status"`
}

// ToBalanceResponse converts a Balance value object to its DTO.
func ToBalanceResponse(b valueobject.Balance) BalanceResponse {
	return BalanceResponse{
		Received: b.Received.String(),
		Given:    b.Given.String(),
		Net:      b.Net.String(),
		Status:   string(b.Status),
	}
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
