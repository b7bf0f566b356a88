package main

import (
	"context"

	"finbot/internal/dto"
	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/spf13/cobra"
)

// recordResult pairs a new expense with the advisory checks run before it was recorded.
type recordResult struct {
	Transaction *models.Transaction         `json:"transaction"`
	Budget      *models.BudgetCheckResult   `json:"budget,omitempty"`
	Limits      []models.SpendingLimitCheck `json:"limits,omitempty"`
}

func newRecordCommand(a *app) *cobra.Command {
	var (
		transactionType string
		amount          string
		category        string
		description     string
		occurredAt      string
		skipChecks      bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record an income or expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedAmount, err := parseAmount(amount, "amount")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				loc, err := userLocation(user)
				if err != nil {
					return nil, err
				}

				req := dto.RecordTransactionRequest{
					Type:        transactionType,
					Amount:      parsedAmount,
					Description: description,
				}
				if req.CategoryID, err = resolveCategory(ctx, tx, user.ID, category); err != nil {
					return nil, err
				}
				if req.OccurredAt, err = parseOptionalTime(occurredAt, loc, false); err != nil {
					return nil, err
				}

				result := &recordResult{}
				if transactionType == models.TransactionTypeExpense && !skipChecks && parsedAmount.IsPositive() {
					if result.Budget, err = tx.Budgets.CheckBudgetExceeded(ctx, user.ID, req.CategoryID, parsedAmount); err != nil {
						return nil, err
					}
					if result.Limits, err = tx.Budgets.CheckSpendingLimits(ctx, user.ID, parsedAmount); err != nil {
						return nil, err
					}
				}

				if result.Transaction, err = tx.Ledger.Record(ctx, user.ID, req); err != nil {
					return nil, err
				}
				return result, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&transactionType, "type", models.TransactionTypeExpense, "income or expense")
	flags.StringVar(&amount, "amount", "", "Positive amount with at most 2 decimal places")
	flags.StringVar(&category, "category", "", "Category id or name")
	flags.StringVar(&description, "description", "", "Free text description")
	flags.StringVar(&occurredAt, "at", "", "When it happened (defaults to now)")
	flags.BoolVar(&skipChecks, "no-check", false, "Skip budget and spending limit checks")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var (
		from            string
		to              string
		category        string
		transactionType string
		offset          int
		limit           int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				loc, err := userLocation(user)
				if err != nil {
					return nil, err
				}

				req := dto.ListTransactionsRequest{
					Type:   transactionType,
					Offset: offset,
					Limit:  limit,
				}
				if req.StartDate, err = parseOptionalTime(from, loc, false); err != nil {
					return nil, err
				}
				if req.EndDate, err = parseOptionalTime(to, loc, true); err != nil {
					return nil, err
				}
				if req.CategoryID, err = resolveCategory(ctx, tx, user.ID, category); err != nil {
					return nil, err
				}

				return tx.Ledger.ListForUser(ctx, user.ID, req)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&from, "from", "", "Earliest occurrence, inclusive")
	flags.StringVar(&to, "to", "", "Latest occurrence, inclusive")
	flags.StringVar(&category, "category", "", "Category id or name")
	flags.StringVar(&transactionType, "type", "", "income or expense")
	flags.IntVar(&offset, "offset", 0, "Rows to skip")
	flags.IntVar(&limit, "limit", 20, "Rows to return")

	return cmd
}

func newUpdateCommand(a *app) *cobra.Command {
	var (
		amount        string
		category      string
		clearCategory bool
		description   string
		occurredAt    string
	)

	cmd := &cobra.Command{
		Use:   "update <transaction-id>",
		Short: "Change a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := parseID(args[0], "transaction_id")
			if err != nil {
				return err
			}

			req := dto.UpdateTransactionRequest{ClearCategory: clearCategory}
			if req.Amount, err = parseOptionalAmount(amount, "amount"); err != nil {
				return err
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				loc, err := userLocation(user)
				if err != nil {
					return nil, err
				}
				if req.CategoryID, err = resolveCategory(ctx, tx, user.ID, category); err != nil {
					return nil, err
				}
				if req.OccurredAt, err = parseOptionalTime(occurredAt, loc, false); err != nil {
					return nil, err
				}

				return tx.Ledger.Update(ctx, transactionID, user.ID, req)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&amount, "amount", "", "New amount")
	flags.StringVar(&category, "category", "", "New category id or name")
	flags.BoolVar(&clearCategory, "clear-category", false, "Remove the category")
	flags.StringVar(&description, "description", "", "New description")
	flags.StringVar(&occurredAt, "at", "", "New occurrence time")

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := parseID(args[0], "transaction_id")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				if err := tx.Ledger.Delete(ctx, transactionID, user.ID); err != nil {
					return nil, err
				}
				return map[string]string{"deleted": transactionID.String()}, nil
			})
		},
	}
}
