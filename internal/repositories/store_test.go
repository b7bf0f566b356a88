package repositories

import (
	"context"
	"errors"
	"testing"

	"finbot/internal/database"
	"finbot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WithinTransaction_RollsBackOnError(t *testing.T) {
	db := database.SetupTestDB(t)
	ctx := context.Background()
	user := database.CreateTestUser(t, db, 1001)
	store := NewStore(db.DB)

	boom := errors.New("later step failed")
	err := store.WithinTransaction(ctx, func(tx *Store) error {
		txn := &models.Transaction{UserID: user.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(10)}
		if err := tx.Transactions.Create(ctx, txn); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, total, err := store.Transactions.GetWithFilters(ctx, models.TransactionFilters{UserID: user.ID})
	require.NoError(t, err)
	assert.Zero(t, total, "no orphaned row after rollback")
}

func TestStore_WithinTransaction_ReadsOwnWrites(t *testing.T) {
	db := database.SetupTestDB(t)
	ctx := context.Background()
	user := database.CreateTestUser(t, db, 1001)
	store := NewStore(db.DB)

	err := store.WithinTransaction(ctx, func(tx *Store) error {
		txn := &models.Transaction{UserID: user.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(250)}
		if err := tx.Transactions.Create(ctx, txn); err != nil {
			return err
		}

		totals, err := tx.Transactions.GetTotals(ctx, user.ID, nil, nil)
		if err != nil {
			return err
		}
		assert.Equal(t, "250", totals.Income.String())
		return nil
	})
	require.NoError(t, err)

	totals, err := store.Transactions.GetTotals(ctx, user.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "250", totals.Income.String())
}
