package main

import (
	"context"
	"time"

	"finbot/internal/dto"
	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type demoResult struct {
	Recorded int                    `json:"recorded"`
	Skipped  int                    `json:"skipped"`
	Balance  *models.BalanceSummary `json:"balance"`
}

func newDemoCommand(a *app) *cobra.Command {
	var (
		days int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill the user's ledger with a generated history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			generator := services.NewHistoryGenerator(seed)

			return a.request(cmd.Context(), func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error) {
				return recordHistory(ctx, tx, user, generator, days)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "Length of the generated history in days")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generator seed (random when 0)")

	return cmd
}

// recordHistory records a generated history ending now. Entries whose
// category the user no longer holds are skipped.
func recordHistory(ctx context.Context, tx *services.Finance, user *models.User, generator services.HistoryGeneratorInterface, days int) (*demoResult, error) {
	balance, err := tx.Aggregation.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	categories, err := tx.Categories.GetUserCategories(ctx, user.ID, nil)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	result := &demoResult{}
	for _, planned := range generator.Generate(start, end, balance.Balance) {
		categoryID, ok := byName[planned.CategoryName]
		if !ok {
			result.Skipped++
			continue
		}

		occurredAt := planned.OccurredAt
		if _, err := tx.Ledger.Record(ctx, user.ID, dto.RecordTransactionRequest{
			Type:        planned.Type,
			Amount:      planned.Amount,
			CategoryID:  &categoryID,
			Description: planned.Description,
			OccurredAt:  &occurredAt,
		}); err != nil {
			return nil, err
		}
		result.Recorded++
	}

	if result.Balance, err = tx.Aggregation.GetBalance(ctx, user.ID); err != nil {
		return nil, err
	}
	return result, nil
}
