// Package networth reduces the account collection into an aggregate view.
package networth

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
)

// AccountLister returns all accounts. Implemented by accounts.Service.
type AccountLister interface {
	All() ([]model.Account, error)
}

// Summary is the aggregate net worth: the sum of every account balance and
// the same sum grouped by account type.
type Summary struct {
	Total  decimal.Decimal
	ByType map[model.AccountType]decimal.Decimal
}

// Compute sums account balances. With no accounts it returns a zero total
// and an empty breakdown. Pure read, no side effects.
func Compute(accounts AccountLister) (Summary, error) {
	all, err := accounts.All()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Total:  decimal.Zero,
		ByType: make(map[model.AccountType]decimal.Decimal),
	}
	for _, a := range all {
		summary.Total = summary.Total.Add(a.Balance)
		summary.ByType[a.Type] = summary.ByType[a.Type].Add(a.Balance)
	}
	return summary, nil
}
