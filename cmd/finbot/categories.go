package main

import (
	"context"

	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/spf13/cobra"
)

type membershipResult struct {
	Category *models.Category `json:"category"`
	Changed  bool             `json:"changed"`
}

func newCategoriesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the user's categories",
	}

	var incomeOnly, expenseOnly bool

	list := &cobra.Command{
		Use:   "list",
		Short: "List the user's active categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var isIncome *bool
			switch {
			case incomeOnly && expenseOnly:
				return apperrors.NewValidation(apperrors.ValidationGeneral, "--income and --expense cannot be combined")
			case incomeOnly:
				isIncome = &incomeOnly
			case expenseOnly:
				income := false
				isIncome = &income
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return tx.Categories.GetUserCategories(ctx, user.ID, isIncome)
			})
		},
	}
	list.Flags().BoolVar(&incomeOnly, "income", false, "Only income categories")
	list.Flags().BoolVar(&expenseOnly, "expense", false, "Only expense categories")

	var req dto.CategoryRequest

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a category, or reuse one with the same name, and add it to the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				category, added, err := tx.Categories.AddCustomCategory(ctx, user.ID, req)
				if err != nil {
					return nil, err
				}
				return &membershipResult{Category: category, Changed: added}, nil
			})
		},
	}
	add.Flags().StringVar(&req.Name, "name", "", "Category name")
	add.Flags().StringVar(&req.Icon, "icon", "", "Category icon")
	add.Flags().BoolVar(&req.IsIncome, "income", false, "Income category")

	remove := &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove a category from the user; other users keep it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				categoryID, err := resolveCategory(ctx, tx, user.ID, args[0])
				if err != nil {
					return nil, err
				}

				category, err := tx.Categories.GetUserCategory(ctx, user.ID, *categoryID)
				if err != nil {
					return nil, err
				}

				removed, err := tx.Categories.RemoveCategoryFromUser(ctx, user.ID, category.ID)
				if err != nil {
					return nil, err
				}
				return &membershipResult{Category: category, Changed: removed}, nil
			})
		},
	}

	restore := &cobra.Command{
		Use:   "restore",
		Short: "Attach any default categories the user lacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				added, err := tx.Categories.EnsureDefaultCategories(ctx, user.ID)
				if err != nil {
					return nil, err
				}
				return map[string]int64{"added": added}, nil
			})
		},
	}

	cmd.AddCommand(list, add, remove, restore, newCategoryActivationCommand(a, "deactivate", false), newCategoryActivationCommand(a, "activate", true))
	return cmd
}

// newCategoryActivationCommand toggles a shared category for every user holding it.
func newCategoryActivationCommand(a *app, use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <category-id>",
		Short: "Set whether a shared category is offered to users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := parseID(args[0], "category_id")
			if err != nil {
				return err
			}

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				if err := tx.Categories.SetCategoryActive(ctx, categoryID, active); err != nil {
					return nil, err
				}
				return map[string]interface{}{"category_id": categoryID, "is_active": active}, nil
			})
		},
	}
}
