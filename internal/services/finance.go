package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finbot/internal/config"
	apperrors "finbot/internal/errors"
	"finbot/internal/repositories"
)

// Finance is the entry point for callers of the finance core. Its services
// are bound either to the connection pool or, inside WithinRequest, to one
// store transaction.
type Finance struct {
	Users       UserServiceInterface
	Categories  CategoryServiceInterface
	Ledger      LedgerServiceInterface
	Aggregation AggregationServiceInterface
	Budgets     BudgetServiceInterface

	store   *repositories.Store
	cfg     config.LedgerConfig
	events  LedgerLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewFinance(store *repositories.Store, cfg config.LedgerConfig, logger *slog.Logger, metrics MetricsRecorderInterface) *Finance {
	return newFinance(store, cfg, NewLedgerLogger(logger), metrics, logger)
}

func newFinance(store *repositories.Store, cfg config.LedgerConfig, events LedgerLoggerInterface, metrics MetricsRecorderInterface, logger *slog.Logger) *Finance {
	categories := NewCategoryService(store.Categories, events, metrics)
	ledger := NewLedgerService(store.Transactions, store.Categories, events, metrics, cfg.MaxPageSize)

	return &Finance{
		Users:       NewUserService(store.Users, categories, events, metrics, cfg),
		Categories:  categories,
		Ledger:      ledger,
		Aggregation: NewAggregationService(store.Transactions, ledger, metrics, cfg.RecentOperationsLimit),
		Budgets:     NewBudgetService(store.Budgets, store.Transactions, store.Categories, store.Users, events, metrics),
		store:       store,
		cfg:         cfg,
		events:      events,
		metrics:     metrics,
		logger:      logger,
	}
}

// WithinRequest runs fn as one unit of work: every store operation made
// through the Finance passed to fn shares a single transaction, committed
// when fn returns nil and rolled back on error or panic.
func (f *Finance) WithinRequest(ctx context.Context, fn func(tx *Finance) error) (err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			f.finishRequest(ctx, start, fmt.Errorf("panic: %v", r))
			panic(r)
		}
		f.finishRequest(ctx, start, err)
	}()

	err = f.store.WithinTransaction(ctx, func(tx *repositories.Store) error {
		return fn(newFinance(tx, f.cfg, f.events, f.metrics, f.logger))
	})
	if err != nil {
		return apperrors.WrapStore(err, "request rolled back")
	}
	return nil
}

func (f *Finance) finishRequest(ctx context.Context, start time.Time, err error) {
	duration := time.Since(start)
	f.metrics.RecordProcessingTime("request", duration)

	if err == nil {
		f.metrics.IncrementCounter("request_completed", map[string]string{"status": "committed"})
		return
	}

	f.metrics.IncrementCounter("request_completed", map[string]string{"status": "rolled_back"})
	switch apperrors.KindOf(err) {
	case apperrors.KindStore, apperrors.KindInternal:
		f.events.LogRequestFailed(ctx, err.Error(), duration.Milliseconds())
	default:
		f.logger.DebugContext(ctx, "request rejected", "code", apperrors.CodeOf(err), "error", err)
	}
}
