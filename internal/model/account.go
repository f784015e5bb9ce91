package model

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
)

// AccountType classifies accounts for the net-worth breakdown.
type AccountType string

const (
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeInvestment AccountType = "Investment"
)

// ParseAccountType validates a raw account type value.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeSavings, AccountTypeCreditCard, AccountTypeInvestment:
		return AccountType(s), nil
	}
	return "", apperr.Validationf("invalid account type %q", s)
}

// Account represents a row in accounts.csv. Balance is mutated by exactly
// one code path, the balance ledger; everything else treats it as read-only.
type Account struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"` // unique within accounts
	Bank           string          `json:"bank"` // references Bank.Name
	Type           AccountType     `json:"account_type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Balance        decimal.Decimal `json:"balance"`
}
