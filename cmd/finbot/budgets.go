package main

import (
	"context"

	"finbot/internal/dto"
	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/spf13/cobra"
)

func newBudgetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
	}

	var (
		category  string
		limit     string
		period    string
		startDate string
		endDate   string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a budget for a category or for all expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			limitAmount, err := parseAmount(limit, "limit_amount")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				loc, err := userLocation(user)
				if err != nil {
					return nil, err
				}

				req := dto.CreateBudgetRequest{
					LimitAmount: limitAmount,
					Period:      period,
				}
				if req.CategoryID, err = resolveCategory(ctx, tx, user.ID, category); err != nil {
					return nil, err
				}
				if req.StartDate, err = parseOptionalTime(startDate, loc, false); err != nil {
					return nil, err
				}
				if req.EndDate, err = parseOptionalTime(endDate, loc, true); err != nil {
					return nil, err
				}

				return tx.Budgets.CreateBudget(ctx, user.ID, req)
			})
		},
	}
	create.Flags().StringVar(&category, "category", "", "Category id or name (omit for all expenses)")
	create.Flags().StringVar(&limit, "limit", "", "Spending limit")
	create.Flags().StringVar(&period, "period", models.BudgetPeriodMonthly, "daily, weekly or monthly")
	create.Flags().StringVar(&startDate, "start", "", "Start of the budget window (defaults to now)")
	create.Flags().StringVar(&endDate, "end", "", "End of the budget window (open-ended when omitted)")
	_ = create.MarkFlagRequired("limit")

	list := &cobra.Command{
		Use:   "list",
		Short: "List active budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return tx.Budgets.ListActiveBudgets(ctx, user.ID)
			})
		},
	}

	deactivate := &cobra.Command{
		Use:   "deactivate <budget-id>",
		Short: "Deactivate a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := parseID(args[0], "budget_id")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				if err := tx.Budgets.DeactivateBudget(ctx, user.ID, budgetID); err != nil {
					return nil, err
				}
				return map[string]string{"deactivated": budgetID.String()}, nil
			})
		},
	}

	var checkCategory, checkAmount string

	check := &cobra.Command{
		Use:   "check",
		Short: "Report whether an expense would exceed the most restrictive budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(checkAmount, "amount")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				categoryID, err := resolveCategory(ctx, tx, user.ID, checkCategory)
				if err != nil {
					return nil, err
				}

				result, err := tx.Budgets.CheckBudgetExceeded(ctx, user.ID, categoryID, amount)
				if err != nil {
					return nil, err
				}
				if result == nil {
					return map[string]string{"budget": "none"}, nil
				}
				return result, nil
			})
		},
	}
	check.Flags().StringVar(&checkCategory, "category", "", "Category id or name (omit for budgets covering all expenses)")
	check.Flags().StringVar(&checkAmount, "amount", "", "Candidate expense")
	_ = check.MarkFlagRequired("amount")

	cmd.AddCommand(create, list, deactivate, check)
	return cmd
}

func newLimitsCommand(a *app) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Check an expense against the user's daily and monthly limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, err := parseAmount(amount, "amount")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return tx.Budgets.CheckSpendingLimits(ctx, user.ID, candidate)
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "0", "Candidate expense")

	return cmd
}
