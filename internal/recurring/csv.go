package recurring

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

const (
	numFields    = 9
	colID        = 0
	colName      = 1
	colType      = 2
	colAmount    = 3
	colCategory  = 4
	colAccount   = 5
	colFrequency = 6
	colStart     = 7
	colEnd       = 8
)

// table maps recurring templates onto recurring_transactions.csv.
var table = store.Table[model.RecurringTransaction]{
	Name: "recurring_transactions",
	Header: []string{
		"id", "name", "transaction_type", "amount", "category",
		"account", "frequency", "start_date", "end_date",
	},
	Marshal:   marshalTemplate,
	Unmarshal: unmarshalTemplate,
	ID:        func(r model.RecurringTransaction) int { return r.ID },
}

func marshalTemplate(r model.RecurringTransaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(r.ID)
	row[colName] = r.Name
	row[colType] = string(r.Type)
	row[colAmount] = r.Amount.String()
	row[colCategory] = r.Category
	row[colAccount] = r.Account
	row[colFrequency] = string(r.Frequency)
	row[colStart] = r.StartDate
	row[colEnd] = r.EndDate
	return row
}

func unmarshalTemplate(record []string) (model.RecurringTransaction, error) {
	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.RecurringTransaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	txType, err := model.ParseTransactionType(record[colType])
	if err != nil {
		return model.RecurringTransaction{}, err
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.RecurringTransaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	freq, err := model.ParseFrequency(record[colFrequency])
	if err != nil {
		return model.RecurringTransaction{}, err
	}
	return model.RecurringTransaction{
		ID:        id,
		Name:      record[colName],
		Type:      txType,
		Amount:    amount,
		Category:  record[colCategory],
		Account:   record[colAccount],
		Frequency: freq,
		StartDate: record[colStart],
		EndDate:   record[colEnd],
	}, nil
}
