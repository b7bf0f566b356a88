package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"finbot/internal/config"
	"finbot/internal/database"
	"finbot/internal/dto"
	"finbot/internal/models"
	"finbot/internal/repositories"
	"finbot/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// app holds what every command shares: configuration, the open store and
// the caller identity given on the command line.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfg     *config.Config
	logger  *slog.Logger
	db      *database.DB
	finance *services.Finance

	requestID  string
	telegramID int64
	username   string
	firstName  string
	lastName   string
}

type requestFunc func(ctx context.Context, tx *services.Finance, user *models.User) (interface{}, error)

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:       out,
		errOut:    errOut,
		requestID: uuid.NewString(),
	}
}

// setup loads .env and the environment, and installs the process logger.
func (a *app) setup() error {
	// .env is optional outside local development
	_ = godotenv.Load()

	a.cfg = config.Load()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = newLogger(a.errOut, a.cfg.App)
	slog.SetDefault(a.logger)
	return nil
}

func newLogger(w io.Writer, cfg config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// open connects to the store, migrating and seeding as configured.
func (a *app) open(ctx context.Context) error {
	if a.finance != nil {
		return nil
	}

	db, err := database.Initialize(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	a.finance = services.NewFinance(
		repositories.NewStore(db.DB),
		a.cfg.Ledger,
		a.logger,
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
	)
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}

func (a *app) profile() dto.UserProfile {
	var profile dto.UserProfile
	if a.username != "" {
		profile.Username = &a.username
	}
	if a.firstName != "" {
		profile.FirstName = &a.firstName
	}
	if a.lastName != "" {
		profile.LastName = &a.lastName
	}
	return profile
}

// request runs fn for the calling user as one unit of work and prints its result.
func (a *app) request(ctx context.Context, fn requestFunc) error {
	if err := a.open(ctx); err != nil {
		return err
	}

	ctx = services.WithRequestID(ctx, a.requestID)

	var result interface{}
	err := a.finance.WithinRequest(ctx, func(tx *services.Finance) error {
		user, _, err := tx.Users.GetOrCreateUser(ctx, a.telegramID, a.profile())
		if err != nil {
			return err
		}

		result, err = fn(ctx, tx, user)
		return err
	})
	if err != nil {
		return err
	}

	return a.print(result)
}

func (a *app) print(v interface{}) error {
	if v == nil {
		return nil
	}
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
