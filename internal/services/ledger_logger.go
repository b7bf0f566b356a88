package services

import (
	"context"
	"log/slog"
	"time"

	"finbot/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey carries the id of the current unit of work in a context.
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a context tagged with requestID for event logs
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// LedgerLogger provides structured event logging for finance operations
type LedgerLogger struct {
	logger *slog.Logger
}

// NewLedgerLogger creates a new ledger logger
func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	return &LedgerLogger{
		logger: logger,
	}
}

// LogUserRegistered logs the implicit registration of a new user
func (ll *LedgerLogger) LogUserRegistered(ctx context.Context, userID uuid.UUID, telegramID int64) {
	ll.logger.InfoContext(ctx, "user registered",
		slog.String("event_type", "user_registered"),
		slog.String("user_id", userID.String()),
		slog.Int64("telegram_id", telegramID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogUserUpdated logs which settings of a user changed
func (ll *LedgerLogger) LogUserUpdated(ctx context.Context, userID uuid.UUID, updatedFields []string) {
	ll.logger.InfoContext(ctx, "user updated",
		slog.String("event_type", "user_updated"),
		slog.String("user_id", userID.String()),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogDefaultCategoriesAttached logs a default category back-fill that added edges
func (ll *LedgerLogger) LogDefaultCategoriesAttached(ctx context.Context, userID uuid.UUID, added int64) {
	ll.logger.InfoContext(ctx, "default categories attached",
		slog.String("event_type", "default_categories_attached"),
		slog.String("user_id", userID.String()),
		slog.Int64("added", added),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCategoryCreated logs a new shared category
func (ll *LedgerLogger) LogCategoryCreated(ctx context.Context, categoryID uuid.UUID, name string, isIncome bool) {
	ll.logger.InfoContext(ctx, "category created",
		slog.String("event_type", "category_created"),
		slog.String("category_id", categoryID.String()),
		slog.String("name", name),
		slog.Bool("is_income", isIncome),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCategoryMembershipChanged logs a category being added to or removed from a user
func (ll *LedgerLogger) LogCategoryMembershipChanged(ctx context.Context, userID, categoryID uuid.UUID, added bool) {
	eventType := "category_removed_from_user"
	if added {
		eventType = "category_added_to_user"
	}

	ll.logger.InfoContext(ctx, "category membership changed",
		slog.String("event_type", eventType),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogTransactionRecorded logs a new ledger entry. Descriptions are free text and are not logged.
func (ll *LedgerLogger) LogTransactionRecorded(ctx context.Context, transaction *models.Transaction) {
	categoryID := ""
	if transaction.CategoryID != nil {
		categoryID = transaction.CategoryID.String()
	}

	ll.logger.InfoContext(ctx, "transaction recorded",
		slog.String("event_type", "transaction_recorded"),
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("user_id", transaction.UserID.String()),
		slog.String("type", transaction.Type),
		slog.String("amount", transaction.Amount.StringFixed(2)),
		slog.String("category_id", categoryID),
		slog.Time("occurred_at", transaction.OccurredAt),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransactionUpdated(ctx context.Context, transactionID, userID uuid.UUID, updatedFields []string) {
	ll.logger.InfoContext(ctx, "transaction updated",
		slog.String("event_type", "transaction_updated"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("user_id", userID.String()),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransactionDeleted(ctx context.Context, transactionID, userID uuid.UUID) {
	ll.logger.InfoContext(ctx, "transaction deleted",
		slog.String("event_type", "transaction_deleted"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogLimitExceeded logs a budget or spending limit that a candidate expense would exceed
func (ll *LedgerLogger) LogLimitExceeded(ctx context.Context, userID uuid.UUID, scope string, outcome models.LimitOutcome) {
	ll.logger.WarnContext(ctx, "limit exceeded",
		slog.String("event_type", "limit_exceeded"),
		slog.String("user_id", userID.String()),
		slog.String("scope", scope),
		slog.String("limit", outcome.Limit.StringFixed(2)),
		slog.String("projected_total", outcome.ProjectedTotal.StringFixed(2)),
		slog.String("excess", outcome.Excess.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (ll *LedgerLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	ll.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRequestFailed logs a unit of work that was rolled back
func (ll *LedgerLogger) LogRequestFailed(ctx context.Context, errorMsg string, durationMs int64) {
	ll.logger.ErrorContext(ctx, "request rolled back",
		slog.String("event_type", "request_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
