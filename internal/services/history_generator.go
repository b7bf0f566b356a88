package services

import (
	"math/rand"
	"sort"
	"time"

	"finbot/internal/models"

	"github.com/shopspring/decimal"
)

type historyGenerator struct {
	merchants []models.Merchant
	rng       *rand.Rand
}

const (
	biWeeklyDays      = 14
	salaryHour        = 9
	billPaymentHour   = 14
	dayStartHour      = 7
	dayEndHour        = 23
	maxDailyPurchases = 4
)

// NewHistoryGenerator returns a generator of plausible demo histories.
// The same seed yields the same history.
func NewHistoryGenerator(seed int64) HistoryGeneratorInterface {
	return &historyGenerator{
		merchants: merchantPool(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func merchantPool() []models.Merchant {
	return []models.Merchant{
		{Name: "Perekrestok", Category: "Groceries"},
		{Name: "Pyaterochka", Category: "Groceries"},
		{Name: "Magnit", Category: "Groceries"},
		{Name: "VkusVill", Category: "Groceries"},
		{Name: "Lenta", Category: "Groceries"},

		{Name: "Shokoladnitsa", Category: "Cafes & Restaurants"},
		{Name: "Coffee Like", Category: "Cafes & Restaurants"},
		{Name: "Teremok", Category: "Cafes & Restaurants"},
		{Name: "Dodo Pizza", Category: "Cafes & Restaurants"},

		{Name: "Yandex Go", Category: "Transport"},
		{Name: "Metro", Category: "Transport"},
		{Name: "Lukoil", Category: "Transport"},

		{Name: "Ozon", Category: "Shopping"},
		{Name: "Wildberries", Category: "Shopping"},
		{Name: "IKEA", Category: "Shopping"},

		{Name: "Cinema Park", Category: "Entertainment"},
		{Name: "Bowling Club", Category: "Entertainment"},

		{Name: "Rigla Pharmacy", Category: "Health"},
		{Name: "Invitro", Category: "Health"},

		{Name: "Zara", Category: "Clothing"},
		{Name: "Gloria Jeans", Category: "Clothing"},

		{Name: "Samokat", Category: "Food"},
		{Name: "Delivery Club", Category: "Food"},
	}
}

func (g *historyGenerator) Merchants() []models.Merchant {
	return g.merchants
}

// Generate plans salaries, monthly bills and daily purchases between start
// and end, ordered by time. The running balance never goes negative.
func (g *historyGenerator) Generate(start, end time.Time, openingBalance decimal.Decimal) []models.PlannedTransaction {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return nil
	}

	var planned []models.PlannedTransaction
	planned = append(planned, g.salaries(start, end)...)
	planned = append(planned, g.bills(start, end)...)
	planned = append(planned, g.purchases(start, end)...)

	sort.SliceStable(planned, func(i, j int) bool {
		return planned[i].OccurredAt.Before(planned[j].OccurredAt)
	})

	return keepSolvent(planned, openingBalance)
}

func (g *historyGenerator) salaries(start, end time.Time) []models.PlannedTransaction {
	base := []int64{80000, 95000, 120000, 150000}[g.rng.Intn(4)]

	var planned []models.PlannedTransaction
	for day := start; !day.After(end); day = day.AddDate(0, 0, biWeeklyDays) {
		at := time.Date(day.Year(), day.Month(), day.Day(), salaryHour, 0, 0, 0, time.UTC)
		if at.Before(start) || at.After(end) {
			continue
		}
		planned = append(planned, models.PlannedTransaction{
			Type:         models.TransactionTypeIncome,
			Amount:       decimal.NewFromInt(base / 2),
			CategoryName: "Salary",
			Description:  "Salary",
			OccurredAt:   at,
		})
	}
	return planned
}

func (g *historyGenerator) bills(start, end time.Time) []models.PlannedTransaction {
	bills := []struct {
		name      string
		category  string
		low, high float64
	}{
		{"Rent", "Housing", 25000, 45000},
		{"Utilities", "Housing", 3000, 7000},
		{"Mobile and internet", "Communication", 500, 1500},
		{"Streaming", "Subscriptions", 299, 999},
	}

	var planned []models.PlannedTransaction
	month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for ; !month.After(end); month = month.AddDate(0, 1, 0) {
		for _, bill := range bills {
			at := time.Date(month.Year(), month.Month(), 1+g.rng.Intn(28), billPaymentHour, 0, 0, 0, time.UTC)
			if at.Before(start) || at.After(end) {
				continue
			}
			planned = append(planned, models.PlannedTransaction{
				Type:         models.TransactionTypeExpense,
				Amount:       g.amountBetween(bill.low, bill.high),
				CategoryName: bill.category,
				Description:  bill.name,
				OccurredAt:   at,
			})
		}
	}
	return planned
}

// purchases plans 0 to 4 purchases a day. One in twenty is a refund.
func (g *historyGenerator) purchases(start, end time.Time) []models.PlannedTransaction {
	var planned []models.PlannedTransaction
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		for i := g.rng.Intn(maxDailyPurchases + 1); i > 0; i-- {
			merchant := g.merchants[g.rng.Intn(len(g.merchants))]
			at := g.timeOfDay(day)
			if at.Before(start) || at.After(end) {
				continue
			}

			entry := models.PlannedTransaction{
				Type:         models.TransactionTypeExpense,
				Amount:       g.purchaseAmount(merchant.Category),
				CategoryName: merchant.Category,
				Description:  merchant.Name,
				OccurredAt:   at,
			}
			if g.rng.Float64() < 0.05 {
				entry.Type = models.TransactionTypeIncome
				entry.CategoryName = "Refund"
				entry.Description = "Refund from " + merchant.Name
			}
			planned = append(planned, entry)
		}
	}
	return planned
}

func (g *historyGenerator) purchaseAmount(category string) decimal.Decimal {
	ranges := map[string][2]float64{
		"Groceries":           {300, 4500},
		"Cafes & Restaurants": {250, 3000},
		"Transport":           {60, 1500},
		"Shopping":            {500, 12000},
		"Entertainment":       {400, 2500},
		"Health":              {200, 5000},
		"Clothing":            {1500, 9000},
		"Food":                {400, 2000},
	}

	if r, ok := ranges[category]; ok {
		return g.amountBetween(r[0], r[1])
	}
	return g.amountBetween(100, 1000)
}

func (g *historyGenerator) amountBetween(low, high float64) decimal.Decimal {
	return decimal.NewFromFloat(low + g.rng.Float64()*(high-low)).Round(2)
}

func (g *historyGenerator) timeOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		dayStartHour+g.rng.Intn(dayEndHour-dayStartHour), g.rng.Intn(60), g.rng.Intn(60), 0, time.UTC)
}

func keepSolvent(planned []models.PlannedTransaction, balance decimal.Decimal) []models.PlannedTransaction {
	kept := planned[:0]
	for _, entry := range planned {
		if entry.Type == models.TransactionTypeExpense {
			if balance.LessThan(entry.Amount) {
				continue
			}
			balance = balance.Sub(entry.Amount)
		} else {
			balance = balance.Add(entry.Amount)
		}
		kept = append(kept, entry)
	}
	return kept
}
