package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"finbot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLedgerLogger() (LedgerLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLedgerLogger(logger), &buf
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLedgerLogger_TransactionRecordedCarriesRequestID(t *testing.T) {
	events, buf := newBufferedLedgerLogger()
	ctx := WithRequestID(context.Background(), "req-42")
	categoryID := uuid.New()

	events.LogTransactionRecorded(ctx, &models.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("1200"),
		CategoryID:  &categoryID,
		Description: "groceries for the week",
	})

	entries := decodeLogLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "transaction_recorded", entries[0]["event_type"])
	assert.Equal(t, "req-42", entries[0]["request_id"])
	assert.Equal(t, "1200.00", entries[0]["amount"])
	assert.Equal(t, categoryID.String(), entries[0]["category_id"])
	assert.NotContains(t, buf.String(), "groceries for the week")
}

func TestLedgerLogger_LimitExceededIsWarning(t *testing.T) {
	events, buf := newBufferedLedgerLogger()

	events.LogLimitExceeded(context.Background(), uuid.New(), "budget", models.EvaluateLimit(
		decimal.NewFromInt(1500), decimal.NewFromInt(1200), decimal.NewFromInt(500),
	))

	entries := decodeLogLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "200.00", entries[0]["excess"])
	assert.Equal(t, "", entries[0]["request_id"])
}

func TestLedgerLogger_MembershipEventType(t *testing.T) {
	events, buf := newBufferedLedgerLogger()

	events.LogCategoryMembershipChanged(context.Background(), uuid.New(), uuid.New(), true)
	events.LogCategoryMembershipChanged(context.Background(), uuid.New(), uuid.New(), false)

	entries := decodeLogLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "category_added_to_user", entries[0]["event_type"])
	assert.Equal(t, "category_removed_from_user", entries[1]["event_type"])
}

func TestGetRequestID(t *testing.T) {
	assert.Equal(t, "", getRequestID(context.Background()))
	assert.Equal(t, "abc", getRequestID(WithRequestID(context.Background(), "abc")))
	assert.Equal(t, "", getRequestID(context.WithValue(context.Background(), RequestIDKey, 7)))
}
