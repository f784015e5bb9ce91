package accounts

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/store"
)

const (
	numFields  = 6
	colID      = 0
	colName    = 1
	colBank    = 2
	colType    = 3
	colInitial = 4
	colBalance = 5
)

// table maps accounts onto accounts.csv.
var table = store.Table[model.Account]{
	Name:      "accounts",
	Header:    []string{"id", "name", "bank", "account_type", "initial_balance", "balance"},
	Marshal:   marshalAccount,
	Unmarshal: unmarshalAccount,
	ID:        func(a model.Account) int { return a.ID },
}

func marshalAccount(a model.Account) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(a.ID)
	row[colName] = a.Name
	row[colBank] = a.Bank
	row[colType] = string(a.Type)
	row[colInitial] = a.InitialBalance.String()
	row[colBalance] = a.Balance.String()
	return row
}

func unmarshalAccount(record []string) (model.Account, error) {
	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	accountType, err := model.ParseAccountType(record[colType])
	if err != nil {
		return model.Account{}, err
	}
	initial, err := decimal.NewFromString(record[colInitial])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing initial_balance %q: %w", record[colInitial], err)
	}
	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	return model.Account{
		ID:             id,
		Name:           record[colName],
		Bank:           record[colBank],
		Type:           accountType,
		InitialBalance: initial,
		Balance:        balance,
	}, nil
}
