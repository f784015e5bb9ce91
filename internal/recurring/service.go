// Package recurring manages recurring-transaction templates and
// materializes concrete transactions from them. Materialization builds an
// add-transaction request and delegates to the transaction path, so it
// shares its validation, persistence, and balance handling.
package recurring

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
	"github.com/pennybook-dev/pennybook/internal/transactions"
)

// TransactionAdder is the transaction add path. Implemented by
// transactions.Service.
type TransactionAdder interface {
	Add(params transactions.AddParams) (model.Transaction, decimal.Decimal, error)
}

// NameDirectory tests whether a named entity exists in its collection.
type NameDirectory interface {
	Exists(name string) (bool, error)
}

// Service provides recurring-template operations over a data directory.
type Service struct {
	dataDir      string
	transactions TransactionAdder
	accounts     NameDirectory
	categories   NameDirectory
}

// NewService creates a recurring Service.
func NewService(dataDir string, txs TransactionAdder, accounts, categories NameDirectory) *Service {
	return &Service{dataDir: dataDir, transactions: txs, accounts: accounts, categories: categories}
}

// CreateParams holds parameters for creating a template. Amount is the
// positive magnitude. Account, StartDate, and EndDate are optional.
type CreateParams struct {
	Name      string
	Type      model.TransactionType
	Amount    decimal.Decimal
	Category  string
	Account   string
	Frequency model.Frequency
	StartDate string
	EndDate   string
}

// Create validates references, derives the signed amount, and persists the
// template. Templates are not transactions: no balance moves.
func (s *Service) Create(params CreateParams) (model.RecurringTransaction, error) {
	ok, err := s.categories.Exists(params.Category)
	if err != nil {
		return model.RecurringTransaction{}, err
	}
	if !ok {
		return model.RecurringTransaction{}, apperr.Validationf("%q does not exist in categories", params.Category)
	}

	if params.Account != "" {
		ok, err := s.accounts.Exists(params.Account)
		if err != nil {
			return model.RecurringTransaction{}, err
		}
		if !ok {
			return model.RecurringTransaction{}, apperr.Validationf("%q does not exist in accounts", params.Account)
		}
	}

	if !params.Amount.IsPositive() {
		return model.RecurringTransaction{}, apperr.Validationf("amount must be greater than zero")
	}

	existing, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return model.RecurringTransaction{}, err
	}
	for _, r := range existing {
		if r.Name == params.Name {
			return model.RecurringTransaction{}, apperr.Conflictf("recurring transaction %q", params.Name)
		}
	}

	tmpl := model.RecurringTransaction{
		Name:      params.Name,
		Type:      params.Type,
		Amount:    params.Type.Signed(params.Amount),
		Category:  params.Category,
		Account:   params.Account,
		Frequency: params.Frequency,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	return store.Append(s.dataDir, table, tmpl, func(r model.RecurringTransaction, id int) model.RecurringTransaction {
		r.ID = id
		return r
	})
}

// Overrides are per-materialization substitutions. A nil Amount keeps the
// template amount; an empty Account keeps the template account.
type Overrides struct {
	Amount  *decimal.Decimal // positive magnitude; sign comes from the template type
	Account string
}

// Materialize produces a concrete transaction from a template for the given
// date and delegates it to the transaction add path. Returns the stored
// transaction and the account's new balance.
func (s *Service) Materialize(templateID int, date string, overrides Overrides) (model.Transaction, decimal.Decimal, error) {
	all, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return model.Transaction{}, decimal.Zero, err
	}

	var tmpl model.RecurringTransaction
	found := false
	for _, r := range all {
		if r.ID == templateID {
			tmpl = r
			found = true
			break
		}
	}
	if !found {
		return model.Transaction{}, decimal.Zero, apperr.NotFoundf("id %d does not exist in recurring_transactions", templateID)
	}

	account := tmpl.Account
	if overrides.Account != "" {
		ok, err := s.accounts.Exists(overrides.Account)
		if err != nil {
			return model.Transaction{}, decimal.Zero, err
		}
		if !ok {
			return model.Transaction{}, decimal.Zero, apperr.Validationf("%q does not exist in accounts", overrides.Account)
		}
		account = overrides.Account
	}
	if account == "" {
		return model.Transaction{}, decimal.Zero, apperr.Validationf("recurring transaction %q has no account; an account override is required", tmpl.Name)
	}

	// Template amounts are stored signed; the add path expects a magnitude.
	amount := tmpl.Amount.Abs()
	if overrides.Amount != nil {
		if !overrides.Amount.IsPositive() {
			return model.Transaction{}, decimal.Zero, apperr.Validationf("amount must be greater than zero")
		}
		amount = *overrides.Amount
	}

	return s.transactions.Add(transactions.AddParams{
		Name:     tmpl.Name,
		Type:     tmpl.Type,
		Amount:   amount,
		Date:     date,
		Category: tmpl.Category,
		Account:  account,
	})
}

// All returns every template.
func (s *Service) All() ([]model.RecurringTransaction, error) {
	return store.ReadAll(s.dataDir, table)
}

// Delete removes a template by id and returns the removed row.
func (s *Service) Delete(id int) (model.RecurringTransaction, error) {
	return store.Delete(s.dataDir, table, id)
}
