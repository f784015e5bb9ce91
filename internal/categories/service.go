// Package categories manages the spending-category collection.
package categories

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

// Service provides category operations over a data directory.
type Service struct {
	dataDir string
}

// NewService creates a category Service.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Add creates a category. Budget is an optional tracking field; pass zero
// to leave it unset. Duplicate names are a conflict.
func (s *Service) Add(name string, budget decimal.Decimal) (model.Category, error) {
	existing, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range existing {
		if c.Name == name {
			return model.Category{}, apperr.Conflictf("category %q", name)
		}
	}

	cat := model.Category{Name: name, Budget: budget, Balance: decimal.Zero}
	return store.Append(s.dataDir, table, cat, func(c model.Category, id int) model.Category {
		c.ID = id
		return c
	})
}

// Delete removes a category by id and returns the removed row.
func (s *Service) Delete(id int) (model.Category, error) {
	return store.Delete(s.dataDir, table, id)
}

// All returns every category.
func (s *Service) All() ([]model.Category, error) {
	return store.ReadAll(s.dataDir, table)
}

// Exists reports whether a category with the given name exists.
func (s *Service) Exists(name string) (bool, error) {
	all, err := store.ReadAll(s.dataDir, table)
	if err != nil {
		return false, err
	}
	for _, c := range all {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}
