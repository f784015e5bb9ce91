package categories

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

const (
	numFields  = 4
	colID      = 0
	colName    = 1
	colBudget  = 2
	colBalance = 3
)

// table maps categories onto categories.csv.
var table = store.Table[model.Category]{
	Name:      "categories",
	Header:    []string{"id", "name", "budget", "balance"},
	Marshal:   marshalCategory,
	Unmarshal: unmarshalCategory,
	ID:        func(c model.Category) int { return c.ID },
}

func marshalCategory(c model.Category) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(c.ID)
	row[colName] = c.Name
	row[colBudget] = c.Budget.String()
	row[colBalance] = c.Balance.String()
	return row
}

func unmarshalCategory(record []string) (model.Category, error) {
	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	budget, err := decimal.NewFromString(record[colBudget])
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing budget %q: %w", record[colBudget], err)
	}
	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	return model.Category{
		ID:      id,
		Name:    record[colName],
		Budget:  budget,
		Balance: balance,
	}, nil
}
