// Package accounts manages the account collection and its running balances.
package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

// BankDirectory tests whether a bank name exists. Implemented by
// banks.Service.
type BankDirectory interface {
	Exists(name string) (bool, error)
}

// Service provides account operations over a data directory.
type Service struct {
	dataDir string
	banks   BankDirectory
}

// NewService creates an account Service.
func NewService(dataDir string, banks BankDirectory) *Service {
	return &Service{dataDir: dataDir, banks: banks}
}

// Add creates an account. The bank must already exist; duplicate account
// names are a conflict. The running balance starts at initialBalance.
func (s *Service) Add(name, bank string, accountType model.AccountType, initialBalance decimal.Decimal) (model.Account, error) {
	ok, err := s.banks.Exists(bank)
	if err != nil {
		return model.Account{}, err
	}
	if !ok {
		return model.Account{}, apperr.Validationf("%q does not exist in banks", bank)
	}

	existing, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range existing {
		if a.Name == name {
			return model.Account{}, apperr.Conflictf("account %q", name)
		}
	}

	acct := model.Account{
		Name:           name,
		Bank:           bank,
		Type:           accountType,
		InitialBalance: initialBalance,
		Balance:        initialBalance,
	}
	return store.Append(s.dataDir, table, acct, func(a model.Account, id int) model.Account {
		a.ID = id
		return a
	})
}

// Delete removes an account by id and returns the removed row.
func (s *Service) Delete(id int) (model.Account, error) {
	return store.Delete(s.dataDir, table, id)
}

// All returns every account.
func (s *Service) All() ([]model.Account, error) {
	return store.ReadAll(s.dataDir, table)
}

// Exists reports whether an account with the given name exists.
func (s *Service) Exists(name string) (bool, error) {
	all, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return false, err
	}
	for _, a := range all {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ApplyDelta adds a signed amount to an account's running balance, persists
// the collection, and returns the new balance. This is the only code path
// that mutates Balance.
func (s *Service) ApplyDelta(name string, delta decimal.Decimal) (decimal.Decimal, error) {
	all, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return decimal.Zero, err
	}
	if len(all) == 0 {
		return decimal.Zero, apperr.NotFoundf("there are no accounts to update")
	}

	for i, a := range all {
		if a.Name != name {
			continue
		}
		all[i].Balance = a.Balance.Add(delta)
		if err := store.WriteAll(s.dataDir, table, all); err != nil {
			return decimal.Zero, err
		}
		return all[i].Balance, nil
	}
	return decimal.Zero, apperr.NotFoundf("account %q does not exist", name)
}
