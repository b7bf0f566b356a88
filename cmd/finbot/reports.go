package main

import (
	"context"
	"time"

	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/spf13/cobra"
)

func newBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show all-time income, expense and balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return tx.Aggregation.GetBalance(ctx, user.ID)
			})
		},
	}
}

func newReportCommand(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show totals per category for a period (defaults to the current month)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				loc, err := userLocation(user)
				if err != nil {
					return nil, err
				}

				start, end := monthToDate(time.Now(), loc)
				if from != "" {
					if start, err = parseTime(from, loc, false); err != nil {
						return nil, err
					}
				}
				if to != "" {
					if end, err = parseTime(to, loc, true); err != nil {
						return nil, err
					}
				}

				return tx.Aggregation.GetStatisticsByPeriod(ctx, user.ID, start, end)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Period start, inclusive")
	cmd.Flags().StringVar(&to, "to", "", "Period end, inclusive")

	return cmd
}

func newRecentCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return tx.Aggregation.GetRecentOperations(ctx, user.ID, limit)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of transactions (defaults to RECENT_OPERATIONS_LIMIT)")

	return cmd
}
