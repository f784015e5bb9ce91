package model

import "github.com/shopspring/decimal"

// Category represents a row in categories.csv. Budget and Balance are
// tracking fields set at creation; no operation maintains them afterwards.
type Category struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"` // unique within categories
	Budget  decimal.Decimal `json:"budget"`
	Balance decimal.Decimal `json:"balance"`
}
