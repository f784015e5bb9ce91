package transactions

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

const (
	numFields   = 7
	colID       = 0
	colName     = 1
	colType     = 2
	colAmount   = 3
	colDate     = 4
	colCategory = 5
	colAccount  = 6
)

// table maps transactions onto transactions.csv. The amount column holds
// the signed value.
var table = store.Table[model.Transaction]{
	Name:      "transactions",
	Header:    []string{"id", "name", "transaction_type", "amount", "date", "category", "account"},
	Marshal:   marshalTransaction,
	Unmarshal: unmarshalTransaction,
	ID:        func(t model.Transaction) int { return t.ID },
}

func marshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(t.ID)
	row[colName] = t.Name
	row[colType] = string(t.Type)
	row[colAmount] = t.Amount.String()
	row[colDate] = t.Date
	row[colCategory] = t.Category
	row[colAccount] = t.Account
	return row
}

func unmarshalTransaction(record []string) (model.Transaction, error) {
	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	txType, err := model.ParseTransactionType(record[colType])
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	return model.Transaction{
		ID:       id,
		Name:     record[colName],
		Type:     txType,
		Amount:   amount,
		Date:     record[colDate],
		Category: record[colCategory],
		Account:  record[colAccount],
	}, nil
}
