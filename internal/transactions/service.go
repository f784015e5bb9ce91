// Package transactions manages the transaction collection. Adding or
// deleting a transaction also moves the affected account's running balance
// through the accounts ledger; the two writes are separate and not atomic.
package transactions

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

// AccountLedger resolves account names and applies signed balance deltas.
// Implemented by accounts.Service.
type AccountLedger interface {
	Exists(name string) (bool, error)
	ApplyDelta(name string, delta decimal.Decimal) (decimal.Decimal, error)
}

// CategoryDirectory tests whether a category name exists. Implemented by
// categories.Service.
type CategoryDirectory interface {
	Exists(name string) (bool, error)
}

// Service provides transaction operations over a data directory.
type Service struct {
	dataDir    string
	accounts   AccountLedger
	categories CategoryDirectory
}

// NewService creates a transaction Service.
func NewService(dataDir string, accounts AccountLedger, categories CategoryDirectory) *Service {
	return &Service{dataDir: dataDir, accounts: accounts, categories: categories}
}

// AddParams holds parameters for creating a transaction. Amount is the
// positive magnitude; the sign is derived from Type.
type AddParams struct {
	Name     string
	Type     model.TransactionType
	Amount   decimal.Decimal
	Date     string
	Category string
	Account  string
}

// Add validates references, derives the signed amount, persists the
// transaction, and applies the delta to the account. Returns the stored row
// and the account's new balance.
func (s *Service) Add(params AddParams) (model.Transaction, decimal.Decimal, error) {
	ok, err := s.categories.Exists(params.Category)
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}
	if !ok {
		return model.Transaction{}, decimal.Zero, apperr.Validationf("%q does not exist in categories", params.Category)
	}

	ok, err = s.accounts.Exists(params.Account)
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}
	if !ok {
		return model.Transaction{}, decimal.Zero, apperr.Validationf("%q does not exist in accounts", params.Account)
	}

	if !params.Amount.IsPositive() {
		return model.Transaction{}, decimal.Zero, apperr.Validationf("amount must be greater than zero")
	}

	tx := model.Transaction{
		Name:     params.Name,
		Type:     params.Type,
		Amount:   params.Type.Signed(params.Amount),
		Date:     params.Date,
		Category: params.Category,
		Account:  params.Account,
	}
	stored, err := store.Append(s.dataDir, table, tx, func(t model.Transaction, id int) model.Transaction {
		t.ID = id
		return t
	})
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}

	balance, err := s.accounts.ApplyDelta(stored.Account, stored.Amount)
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}
	return stored, balance, nil
}

// Delete removes a transaction by id and reverses its balance effect.
// Returns the removed row and the account's new balance.
func (s *Service) Delete(id int) (model.Transaction, decimal.Decimal, error) {
	removed, err := store.Delete(s.dataDir, table, id)
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}

	balance, err := s.accounts.ApplyDelta(removed.Account, removed.Amount.Neg())
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}
	return removed, balance, nil
}

// All returns every transaction.
func (s *Service) All() ([]model.Transaction, error) {
	return store.ReadAll(s.dataDir, table)
}
