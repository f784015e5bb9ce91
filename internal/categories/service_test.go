package categories

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennybook-dev/pennybook/internal/apperr"
	"github.com/pennybook-dev/pennybook/internal/model"
)

func TestMarshalWidthMatchesHeader(t *testing.T) {
	assert.Len(t, marshalCategory(model.Category{}), len(table.Header))
}

func TestAdd(t *testing.T) {
	svc := NewService(t.TempDir())

	cat, err := svc.Add("Food", decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.ID)
	assert.Equal(t, "Food", cat.Name)
	assert.True(t, cat.Budget.Equal(decimal.NewFromInt(300)))
	assert.True(t, cat.Balance.IsZero())
}

func TestAddDuplicateNameConflicts(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Add("Food", decimal.Zero)
	require.NoError(t, err)

	_, err = svc.Add("Food", decimal.Zero)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Delete(9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestExists(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Add("Food", decimal.Zero)
	require.NoError(t, err)

	ok, err := svc.Exists("Food")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists("Rent")
	require.NoError(t, err)
	assert.False(t, ok)
}
