package model

import "github.com/shopspring/decimal"

// Bank represents a row in banks.csv. Balance is a display-only aggregate;
// no operation maintains it after creation.
type Bank struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"` // unique within banks
	Country string          `json:"country"`
	Balance decimal.Decimal `json:"balance"`
}
