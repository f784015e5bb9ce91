package transactions

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennybook-dev/pennybook/internal/accounts"
	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/banks"
	"github.com/pennybook-dev/pennybook/internal/categories"
	"github.com/pennybook-dev/pennybook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMarshalWidthMatchesHeader(t *testing.T) {
	assert.Len(t, marshalTransaction(model.Transaction{}), len(table.Header))
}

// newFixture wires real services over one data dir with a bank, an account
// ("Checking", 100), and a category ("Food") already in place.
func newFixture(t *testing.T) (*Service, *accounts.Service) {
	t.Helper()
	dir := t.TempDir()

	bankSvc := banks.NewService(dir)
	catSvc := categories.NewService(dir)
	acctSvc := accounts.NewService(dir, bankSvc)

	_, err := bankSvc.Add("Chase", "US")
	require.NoError(t, err)
	_, err = acctSvc.Add("Checking", "Chase", model.AccountTypeSavings, dec("100"))
	require.NoError(t, err)
	_, err = catSvc.Add("Food", decimal.Zero)
	require.NoError(t, err)

	return NewService(dir, acctSvc, catSvc), acctSvc
}

func TestAddExpenseStoresSignedAmount(t *testing.T) {
	svc, _ := newFixture(t)

	tx, balance, err := svc.Add(AddParams{
		Name:     "Lunch",
		Type:     model.TransactionTypeExpense,
		Amount:   dec("20"),
		Date:     "2024-01-01",
		Category: "Food",
		Account:  "Checking",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.ID)
	assert.True(t, tx.Amount.Equal(dec("-20")), "stored amount is signed, got %s", tx.Amount)
	assert.True(t, balance.Equal(dec("80")), "got %s", balance)
}

func TestAddIncomeStaysPositive(t *testing.T) {
	svc, _ := newFixture(t)

	tx, balance, err := svc.Add(AddParams{
		Name:     "Salary",
		Type:     model.TransactionTypeIncome,
		Amount:   dec("1500"),
		Date:     "2024-01-31",
		Category: "Food",
		Account:  "Checking",
	})
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(dec("1500")))
	assert.True(t, balance.Equal(dec("1600")))
}

func TestAddNonPositiveAmountFails(t *testing.T) {
	svc, acctSvc := newFixture(t)

	for _, amount := range []string{"0", "-5"} {
		_, _, err := svc.Add(AddParams{
			Name:     "Bad",
			Type:     model.TransactionTypeExpense,
			Amount:   dec(amount),
			Date:     "2024-01-01",
			Category: "Food",
			Account:  "Checking",
		})
		require.Error(t, err, "amount %s", amount)
		assert.True(t, apperr.IsValidation(err))
	}

	// Nothing was persisted and no balance moved.
	txs, err := svc.All()
	require.NoError(t, err)
	assert.Empty(t, txs)
	all, err := acctSvc.All()
	require.NoError(t, err)
	assert.True(t, all[0].Balance.Equal(dec("100")))
}

func TestAddUnknownReferencesFail(t *testing.T) {
	svc, _ := newFixture(t)

	_, _, err := svc.Add(AddParams{
		Name: "Bad", Type: model.TransactionTypeExpense, Amount: dec("5"),
		Date: "2024-01-01", Category: "Travel", Account: "Checking",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), `"Travel" does not exist in categories`)

	_, _, err = svc.Add(AddParams{
		Name: "Bad", Type: model.TransactionTypeExpense, Amount: dec("5"),
		Date: "2024-01-01", Category: "Food", Account: "Savings",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), `"Savings" does not exist in accounts`)
}

func TestDeleteReversesBalance(t *testing.T) {
	svc, _ := newFixture(t)

	tx, balance, err := svc.Add(AddParams{
		Name:     "Lunch",
		Type:     model.TransactionTypeExpense,
		Amount:   dec("20"),
		Date:     "2024-01-01",
		Category: "Food",
		Account:  "Checking",
	})
	require.NoError(t, err)
	require.True(t, balance.Equal(dec("80")))

	removed, balance, err := svc.Delete(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, removed.ID)
	assert.True(t, removed.Amount.Equal(dec("-20")))
	assert.True(t, balance.Equal(dec("100")), "round-trip restores the pre-add balance, got %s", balance)

	txs, err := svc.All()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newFixture(t)

	_, _, err := svc.Delete(9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBalanceInvariantOverSequence(t *testing.T) {
	svc, acctSvc := newFixture(t)

	adds := []struct {
		name   string
		txType model.TransactionType
		amount string
	}{
		{"Lunch", model.TransactionTypeExpense, "12.50"},
		{"Salary", model.TransactionTypeIncome, "2000"},
		{"Groceries", model.TransactionTypeExpense, "89.99"},
		{"Refund", model.TransactionTypeIncome, "15.49"},
	}
	var ids []int
	for _, a := range adds {
		tx, _, err := svc.Add(AddParams{
			Name: a.name, Type: a.txType, Amount: dec(a.amount),
			Date: "2024-02-01", Category: "Food", Account: "Checking",
		})
		require.NoError(t, err)
		ids = append(ids, tx.ID)
	}

	// Delete a couple, then check balance == initial + sum of live amounts.
	_, _, err := svc.Delete(ids[0])
	require.NoError(t, err)
	_, _, err = svc.Delete(ids[3])
	require.NoError(t, err)

	live, err := svc.All()
	require.NoError(t, err)
	sum := dec("100") // initial balance
	for _, tx := range live {
		sum = sum.Add(tx.Amount)
	}

	all, err := acctSvc.All()
	require.NoError(t, err)
	assert.True(t, all[0].Balance.Equal(sum), "balance %s != initial+sum %s", all[0].Balance, sum)
}
