package networth

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennybook-dev/pennybook/internal/model"
)

type fakeAccounts []model.Account

func (f fakeAccounts) All() ([]model.Account, error) { return f, nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeEmpty(t *testing.T) {
	summary, err := Compute(fakeAccounts{})
	require.NoError(t, err)
	assert.True(t, summary.Total.IsZero())
	assert.Empty(t, summary.ByType)
}

func TestComputeGroupsByType(t *testing.T) {
	summary, err := Compute(fakeAccounts{
		{Name: "Checking", Type: model.AccountTypeSavings, Balance: dec("80")},
		{Name: "Holiday", Type: model.AccountTypeSavings, Balance: dec("20")},
		{Name: "Visa", Type: model.AccountTypeCreditCard, Balance: dec("-150.25")},
		{Name: "Stocks", Type: model.AccountTypeInvestment, Balance: dec("1000")},
	})
	require.NoError(t, err)

	assert.True(t, summary.Total.Equal(dec("949.75")), "got %s", summary.Total)
	assert.True(t, summary.ByType[model.AccountTypeSavings].Equal(dec("100")))
	assert.True(t, summary.ByType[model.AccountTypeCreditCard].Equal(dec("-150.25")))
	assert.True(t, summary.ByType[model.AccountTypeInvestment].Equal(dec("1000")))
}
