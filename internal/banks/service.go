// Package banks manages the bank collection.
package banks

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

// Service provides bank operations over a data directory.
type Service struct {
	dataDir string
}

// NewService creates a bank Service.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Add creates a bank. Duplicate names are a conflict.
func (s *Service) Add(name, country string) (model.Bank, error) {
	existing, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return model.Bank{}, err
	}
	for _, b := range existing {
		if b.Name == name {
			return model.Bank{}, apperr.Conflictf("bank %q", name)
		}
	}

	bank := model.Bank{Name: name, Country: country, Balance: decimal.Zero}
	return store.Append(s.dataDir, table, bank, func(b model.Bank, id int) model.Bank {
		b.ID = id
		return b
	})
}

// Delete removes a bank by id and returns the removed row.
func (s *Service) Delete(id int) (model.Bank, error) {
	return store.Delete(s.dataDir, table, id)
}

// All returns every bank.
func (s *Service) All() ([]model.Bank, error) {
	return store.ReadAll(s.dataDir, table)
}

// Exists reports whether a bank with the given name exists.
func (s *Service) Exists(name string) (bool, error) {
	all, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return false, err
	}
	for _, b := range all {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}
