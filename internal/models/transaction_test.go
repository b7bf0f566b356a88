package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "valid expense",
			transaction: Transaction{UserID: userID, Type: TransactionTypeExpense, Amount: decimal.RequireFromString("1200.00")},
		},
		{
			name:        "valid income",
			transaction: Transaction{UserID: userID, Type: TransactionTypeIncome, Amount: decimal.RequireFromString("0.01")},
		},
		{
			name:        "zero amount",
			transaction: Transaction{UserID: userID, Type: TransactionTypeExpense, Amount: decimal.Zero},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			transaction: Transaction{UserID: userID, Type: TransactionTypeIncome, Amount: decimal.NewFromInt(-10)},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "unknown type",
			transaction: Transaction{UserID: userID, Type: "transfer", Amount: decimal.NewFromInt(10)},
			wantErr:     ErrInvalidTransactionType,
		},
		{
			name:        "missing user",
			transaction: Transaction{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(10)},
			wantErr:     ErrMissingUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BeforeCreate_DefaultsOccurredAt(t *testing.T) {
	txn := &Transaction{UserID: uuid.New(), Type: TransactionTypeExpense, Amount: decimal.NewFromInt(5)}

	before := time.Now().UTC()
	require.NoError(t, txn.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.False(t, txn.OccurredAt.Before(before))
	assert.Equal(t, time.UTC, txn.OccurredAt.Location())
}

func TestTransaction_BeforeCreate_KeepsCallerOccurredAt(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	occurred := time.Date(2024, 3, 1, 12, 0, 0, 0, moscow)

	txn := &Transaction{UserID: uuid.New(), Type: TransactionTypeIncome, Amount: decimal.NewFromInt(5), OccurredAt: occurred}
	require.NoError(t, txn.BeforeCreate(nil))

	assert.True(t, txn.OccurredAt.Equal(occurred))
	assert.Equal(t, time.UTC, txn.OccurredAt.Location())
	assert.NotEqual(t, txn.OccurredAt, txn.CreatedAt)
}

func TestTransaction_BeforeCreate_RejectsInvalid(t *testing.T) {
	txn := &Transaction{UserID: uuid.New(), Type: TransactionTypeExpense, Amount: decimal.NewFromInt(-1)}
	assert.ErrorIs(t, txn.BeforeCreate(nil), ErrInvalidAmount)
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(100)}
	expense := Transaction{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(40)}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-40)))
}

func TestTransactionUpdate_Apply(t *testing.T) {
	categoryID := uuid.New()
	tx := &Transaction{
		UserID:     uuid.New(),
		Type:       TransactionTypeExpense,
		Amount:     decimal.RequireFromString("10.00"),
		CategoryID: &categoryID,
		Category:   &Category{ID: categoryID, Name: "Food"},
	}

	amount := decimal.RequireFromString("12.50")
	moscow := time.FixedZone("MSK", 3*60*60)
	occurred := time.Date(2024, 3, 1, 12, 0, 0, 0, moscow)

	changed := TransactionUpdate{Amount: &amount, ClearCategory: true, OccurredAt: &occurred}.Apply(tx)

	assert.Equal(t, []string{"amount", "category_id", "occurred_at"}, changed)
	assert.True(t, amount.Equal(tx.Amount))
	assert.Nil(t, tx.CategoryID)
	assert.Nil(t, tx.Category)
	assert.Equal(t, time.UTC, tx.OccurredAt.Location())
	assert.True(t, occurred.Equal(tx.OccurredAt))

	assert.Empty(t, TransactionUpdate{}.Apply(tx))
}
