package commands

import (
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDisplayUsesCurrencyFraction(t *testing.T) {
	d := decimal.RequireFromString("1234")

	assert.Equal(t, money.New(123400, "USD").Display(), display(d, "USD"))
	assert.Equal(t, money.New(1234, "JPY").Display(), display(d, "JPY"))
	assert.Equal(t, money.New(1234000, "BHD").Display(), display(d, "BHD"))
}

func TestDisplayFractionalAmount(t *testing.T) {
	d := decimal.RequireFromString("-150.25")
	assert.Equal(t, money.New(-15025, "USD").Display(), display(d, "USD"))
}
