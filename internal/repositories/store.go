package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories bound to one gorm handle, either the
// connection pool or an open transaction.
type Store struct {
	db           *gorm.DB
	Users        UserRepositoryInterface
	Categories   CategoryRepositoryInterface
	Transactions TransactionRepositoryInterface
	Budgets      BudgetRepositoryInterface
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        NewUserRepository(db),
		Categories:   NewCategoryRepository(db),
		Transactions: NewTransactionRepository(db),
		Budgets:      NewBudgetRepository(db),
	}
}

// WithinTransaction runs fn against repositories bound to a single
// transaction. fn's error or panic rolls everything back.
func (s *Store) WithinTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
