package main

import (
	"context"

	"finbot/internal/dto"
	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/spf13/cobra"
)

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show or change the acting user",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the user, registering it on first contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return user, nil
			})
		},
	}

	var (
		currency      string
		timezone      string
		notifications bool
		dailyLimit    string
		monthlyLimit  string
		clearDaily    bool
		clearMonthly  bool
	)

	set := &cobra.Command{
		Use:   "set",
		Short: "Change user settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateUserRequest{
				ClearDailyLimit:   clearDaily,
				ClearMonthlyLimit: clearMonthly,
			}

			flags := cmd.Flags()
			if flags.Changed("currency") {
				req.Currency = &currency
			}
			if flags.Changed("timezone") {
				req.Timezone = &timezone
			}
			if flags.Changed("notifications") {
				req.NotificationsEnabled = &notifications
			}

			var err error
			if req.DailyLimit, err = parseOptionalAmount(dailyLimit, "daily_limit"); err != nil {
				return err
			}
			if req.MonthlyLimit, err = parseOptionalAmount(monthlyLimit, "monthly_limit"); err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return tx.Users.UpdateUser(ctx, user.ID, req)
			})
		},
	}
	set.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	set.Flags().StringVar(&timezone, "timezone", "", "IANA timezone name")
	set.Flags().BoolVar(&notifications, "notifications", true, "Enable notifications")
	set.Flags().StringVar(&dailyLimit, "daily-limit", "", "Daily spending limit")
	set.Flags().StringVar(&monthlyLimit, "monthly-limit", "", "Monthly spending limit")
	set.Flags().BoolVar(&clearDaily, "clear-daily-limit", false, "Remove the daily spending limit")
	set.Flags().BoolVar(&clearMonthly, "clear-monthly-limit", false, "Remove the monthly spending limit")

	cmd.AddCommand(show, set)
	return cmd
}
