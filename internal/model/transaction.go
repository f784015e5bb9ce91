package model

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// ParseTransactionType validates a raw transaction type value.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return TransactionType(s), nil
	}
	return "", apperr.Validationf("invalid transaction type %q", s)
}

// Signed applies the type's sign to a positive magnitude: income stays
// positive, expense becomes negative. Balance arithmetic is then a plain sum.
func (t TransactionType) Signed(magnitude decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeExpense {
		return magnitude.Neg()
	}
	return magnitude
}

// Transaction represents a row in transactions.csv. Amount is stored already
// signed; it and Type never disagree.
type Transaction struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Type     TransactionType `json:"transaction_type"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`     // YYYY-MM-DD, stored as supplied
	Category string          `json:"category"` // references Category.Name
	Account  string          `json:"account"`  // references Account.Name
}
