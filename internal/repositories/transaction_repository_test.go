package repositories

import (
	"context"
	"testing"
	"time"

	"finbot/internal/database"
	"finbot/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	ctx    context.Context
	user   *models.User
	food   *models.Category
	salary *models.Category
	base   time.Time
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, 1001)
	s.food = database.CreateTestCategory(s.T(), s.db, "Food", false)
	s.salary = database.CreateTestCategory(s.T(), s.db, "Salary", true)
	s.base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) record(userID uuid.UUID, txType, amount string, category *models.Category, occurredAt time.Time) *models.Transaction {
	txn := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Company(),
		OccurredAt:  occurredAt,
	}
	if category != nil {
		txn.CategoryID = &category.ID
	}
	s.Require().NoError(s.repo.Create(s.ctx, txn))
	return txn
}

func (s *TransactionRepositorySuite) TestCreate_RejectsNonPositiveAmount() {
	txn := &models.Transaction{UserID: s.user.ID, Type: models.TransactionTypeExpense, Amount: decimal.Zero}
	s.ErrorIs(s.repo.Create(s.ctx, txn), models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestCreate_CheckConstraintBacksValidation() {
	err := s.db.Exec(
		"INSERT INTO transactions (id, user_id, type, amount, occurred_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		uuid.New(), s.user.ID, "transfer", "10.00", s.base, s.base, s.base,
	).Error
	s.Error(err)
}

func (s *TransactionRepositorySuite) TestGetByIDForUser_ScopedToOwner() {
	txn := s.record(s.user.ID, models.TransactionTypeExpense, "1200.00", s.food, s.base)
	other := database.CreateTestUser(s.T(), s.db, 2002)

	found, err := s.repo.GetByIDForUser(s.ctx, txn.ID, s.user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.Category)
	s.Equal("Food", found.Category.Name)
	s.True(decimal.RequireFromString("1200").Equal(found.Amount))

	_, err = s.repo.GetByIDForUser(s.ctx, txn.ID, other.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_OrderAndPagination() {
	s.record(s.user.ID, models.TransactionTypeExpense, "10.00", s.food, s.base.Add(-2*time.Hour))
	newest := s.record(s.user.ID, models.TransactionTypeIncome, "20.00", s.salary, s.base)
	s.record(s.user.ID, models.TransactionTypeExpense, "30.00", nil, s.base.Add(-1*time.Hour))

	page, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{UserID: s.user.ID, Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 2)
	s.Equal(newest.ID, page[0].ID)
	s.Require().NotNil(page[0].Category)
	s.Equal("Salary", page[0].Category.Name)
	s.Nil(page[1].Category)

	rest, _, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{UserID: s.user.ID, Limit: 2, Offset: 2})
	s.Require().NoError(err)
	s.Len(rest, 1)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_InclusiveBoundsTypeAndCategory() {
	start := s.base
	end := s.base.Add(24 * time.Hour)

	s.record(s.user.ID, models.TransactionTypeExpense, "1.00", s.food, start.Add(-time.Second))
	onStart := s.record(s.user.ID, models.TransactionTypeExpense, "2.00", s.food, start)
	onEnd := s.record(s.user.ID, models.TransactionTypeExpense, "3.00", s.food, end)
	s.record(s.user.ID, models.TransactionTypeExpense, "4.00", s.food, end.Add(time.Second))
	s.record(s.user.ID, models.TransactionTypeIncome, "5.00", s.salary, start.Add(time.Hour))

	inRange, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		UserID:     s.user.ID,
		StartDate:  &start,
		EndDate:    &end,
		CategoryID: &s.food.ID,
		Type:       models.TransactionTypeExpense,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(inRange, 2)
	s.Equal(onEnd.ID, inRange[0].ID)
	s.Equal(onStart.ID, inRange[1].ID)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_NeverLeaksOtherUsers() {
	other := database.CreateTestUser(s.T(), s.db, 2002)
	s.record(other.ID, models.TransactionTypeExpense, "99.00", s.food, s.base)

	rows, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{UserID: s.user.ID})
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(rows)
}

func (s *TransactionRepositorySuite) TestUpdate() {
	txn := s.record(s.user.ID, models.TransactionTypeExpense, "10.00", s.food, s.base)

	txn.Amount = decimal.RequireFromString("15.50")
	txn.Description = "corrected"
	txn.CategoryID = nil
	s.Require().NoError(s.repo.Update(s.ctx, txn))

	found, err := s.repo.GetByIDForUser(s.ctx, txn.ID, s.user.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("15.50").Equal(found.Amount))
	s.Equal("corrected", found.Description)
	s.Nil(found.CategoryID)
}

func (s *TransactionRepositorySuite) TestUpdate_WrongOwner() {
	txn := s.record(s.user.ID, models.TransactionTypeExpense, "10.00", s.food, s.base)
	other := database.CreateTestUser(s.T(), s.db, 2002)

	txn.UserID = other.ID
	txn.Description = "hijacked"
	s.ErrorIs(s.repo.Update(s.ctx, txn), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	txn := s.record(s.user.ID, models.TransactionTypeExpense, "10.00", s.food, s.base)
	other := database.CreateTestUser(s.T(), s.db, 2002)

	s.ErrorIs(s.repo.Delete(s.ctx, txn.ID, other.ID), ErrTransactionNotFound)
	s.Require().NoError(s.repo.Delete(s.ctx, txn.ID, s.user.ID))

	_, err := s.repo.GetByIDForUser(s.ctx, txn.ID, s.user.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDeletingCategorySetsNull() {
	txn := s.record(s.user.ID, models.TransactionTypeExpense, "10.00", s.food, s.base)

	s.Require().NoError(s.db.Delete(&models.Category{}, "id = ?", s.food.ID).Error)

	found, err := s.repo.GetByIDForUser(s.ctx, txn.ID, s.user.ID)
	s.Require().NoError(err)
	s.Nil(found.CategoryID)
	s.Nil(found.Category)
}

func (s *TransactionRepositorySuite) TestGetTotals() {
	totals, err := s.repo.GetTotals(s.ctx, s.user.ID, nil, nil)
	s.Require().NoError(err)
	s.True(totals.Income.IsZero())
	s.True(totals.Expense.IsZero())
	s.Zero(totals.Count)

	s.record(s.user.ID, models.TransactionTypeExpense, "1200.00", s.food, s.base)
	s.record(s.user.ID, models.TransactionTypeIncome, "50000.00", s.salary, s.base.Add(time.Hour))
	s.record(s.user.ID, models.TransactionTypeExpense, "0.10", nil, s.base.Add(2*time.Hour))
	s.record(s.user.ID, models.TransactionTypeExpense, "0.20", nil, s.base.Add(3*time.Hour))

	totals, err = s.repo.GetTotals(s.ctx, s.user.ID, nil, nil)
	s.Require().NoError(err)
	s.Equal("50000", totals.Income.String())
	s.Equal("1200.3", totals.Expense.String())
	s.Equal(int64(4), totals.Count)

	until := s.base.Add(time.Hour)
	bounded, err := s.repo.GetTotals(s.ctx, s.user.ID, &s.base, &until)
	s.Require().NoError(err)
	s.Equal("1200", bounded.Expense.String())
	s.Equal(int64(2), bounded.Count)
}

func (s *TransactionRepositorySuite) TestGetCategoryTotals() {
	s.record(s.user.ID, models.TransactionTypeExpense, "100.00", s.food, s.base)
	s.record(s.user.ID, models.TransactionTypeExpense, "50.00", s.food, s.base.Add(time.Hour))
	s.record(s.user.ID, models.TransactionTypeIncome, "1000.00", s.salary, s.base)
	s.record(s.user.ID, models.TransactionTypeExpense, "7.00", nil, s.base)
	s.record(s.user.ID, models.TransactionTypeExpense, "999.00", s.food, s.base.Add(48*time.Hour))

	rows, err := s.repo.GetCategoryTotals(s.ctx, s.user.ID, s.base, s.base.Add(24*time.Hour))
	s.Require().NoError(err)

	byName := map[string]models.CategoryTypeTotal{}
	for _, row := range rows {
		byName[row.Category+"/"+row.Type] = row
	}

	s.Len(byName, 3)
	s.Equal("150", byName["Food/expense"].Total.String())
	s.Equal(int64(2), byName["Food/expense"].Count)
	s.Equal("1000", byName["Salary/income"].Total.String())
	s.Equal("7", byName[models.UncategorizedBucket+"/expense"].Total.String())
}

func (s *TransactionRepositorySuite) TestSumExpenses() {
	s.record(s.user.ID, models.TransactionTypeExpense, "1200.00", s.food, s.base)
	s.record(s.user.ID, models.TransactionTypeExpense, "300.00", nil, s.base)
	s.record(s.user.ID, models.TransactionTypeIncome, "5000.00", s.salary, s.base)
	s.record(s.user.ID, models.TransactionTypeExpense, "80.00", s.food, s.base.Add(-48*time.Hour))

	from := s.base.Add(-time.Hour)
	to := s.base.Add(time.Hour)

	food, err := s.repo.SumExpenses(s.ctx, s.user.ID, &s.food.ID, from, to)
	s.Require().NoError(err)
	s.Equal("1200", food.String())

	all, err := s.repo.SumExpenses(s.ctx, s.user.ID, nil, from, to)
	s.Require().NoError(err)
	s.Equal("1500", all.String())
}
