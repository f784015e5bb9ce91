package banks

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
	colCountry = 2
	colBalance = 3
)

// table maps banks onto banks.csv.
var table = store.Table[model.Bank]{
	Name:      "banks",
	Header:    []string{"id", "name", "country", "balance"},
	Marshal:   marshalBank,
	Unmarshal: unmarshalBank,
	ID:        func(b model.Bank) int { return b.ID },
}

func marshalBank(b model.Bank) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(b.ID)
	row[colName] = b.Name
	row[colCountry] = b.Country
	row[colBalance] = b.Balance.String()
	return row
}

func unmarshalBank(record []string) (model.Bank, error) {
	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Bank{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Bank{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	return model.Bank{
		ID:      id,
		Name:    record[colName],
		Country: record[colCountry],
		Balance: balance,
	}, nil
}
